package models

import (
	"github.com/lib/pq"
)

// SubmittedProject is the proposal a team submits. Similarity fields are written once,
// when the submission is committed.
type SubmittedProject struct {
	ProjectID            uint           `json:"project_id" gorm:"primaryKey;column:project_id"`
	TeamID               uint           `json:"team_id" gorm:"not null;uniqueIndex:idx_submitted_projects_team_id"`
	Title                string         `json:"title" gorm:"not null;size:200"`
	Synopsis             string         `json:"synopsis" gorm:"type:text"`
	Status               ProjectStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	MentorID             *uint          `json:"mentor_id,omitempty" gorm:"index"`
	SimilarityScore      float64        `json:"similarity_score" gorm:"not null;default:0"`
	SimilarProjectIDs    pq.Int64Array  `json:"similar_projects_id" gorm:"type:bigint[]"`
	SimilarProjectTitles pq.StringArray `json:"similar_project_titles" gorm:"type:text[]"`
	SimilarityVerdict    string         `json:"similarity_description" gorm:"column:similarity_description;type:text"`
	BaseModel

	// Relationships
	Mentor *Teacher `json:"mentor,omitempty" gorm:"foreignKey:MentorID;references:TeacherID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for SubmittedProject
func (SubmittedProject) TableName() string {
	return "submitted_projects"
}

// ArchivedProject is a prior project. The similarity index is built from this table.
type ArchivedProject struct {
	ProjectID uint   `json:"project_id" gorm:"primaryKey;column:project_id"`
	Title     string `json:"title" gorm:"uniqueIndex:idx_projects_title;not null;size:200" validate:"required,min=1,max=200"`
	Synopsis  string `json:"synopsis" gorm:"type:text"`
	BaseModel
}

// TableName returns the table name for ArchivedProject
func (ArchivedProject) TableName() string {
	return "projects"
}
