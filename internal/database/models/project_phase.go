package models

// ProjectPhase holds a mentor's marks and remarks for the three review phases
type ProjectPhase struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	SubmittedProjectID uint   `json:"submitted_project_id" gorm:"not null;uniqueIndex:idx_project_phases_project"`
	Phase1Marks        int    `json:"phase1_marks" gorm:"not null;default:0"`
	Phase1Remarks      string `json:"phase1_remarks" gorm:"type:text;not null;default:''"`
	Phase2Marks        int    `json:"phase2_marks" gorm:"not null;default:0"`
	Phase2Remarks      string `json:"phase2_remarks" gorm:"type:text;not null;default:''"`
	Phase3Marks        int    `json:"phase3_marks" gorm:"not null;default:0"`
	Phase3Remarks      string `json:"phase3_remarks" gorm:"type:text;not null;default:''"`
	BaseModel

	SubmittedProject *SubmittedProject `json:"-" gorm:"foreignKey:SubmittedProjectID;references:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectPhase
func (ProjectPhase) TableName() string {
	return "project_phases"
}
