package models

// Team is a group of students submitting one project together
type Team struct {
	TeamID   uint   `json:"team_id" gorm:"primaryKey;column:team_id"`
	TeamName string `json:"team_name" gorm:"uniqueIndex:idx_teams_team_name;not null;size:100"`
	TeamSize int    `json:"team_size" gorm:"not null"`
	BaseModel

	// Relationships
	Members []TeamMember      `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Project *SubmittedProject `json:"project,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
