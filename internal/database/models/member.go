package models

// TeamMember is one student on a team. A USN may appear on at most one team.
type TeamMember struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	TeamID   uint   `json:"team_id" gorm:"not null;index"`
	Position int    `json:"position" gorm:"not null"`
	Name     string `json:"name" gorm:"not null;size:100"`
	USN      string `json:"usn" gorm:"column:usn;uniqueIndex:idx_team_members_usn;not null;size:20"`
	Email    string `json:"email" gorm:"not null;size:255"`
	Dept     string `json:"dept" gorm:"not null;size:50"`
	BaseModel
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
