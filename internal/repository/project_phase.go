package repository

import (
	"time"

	"project-intake-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PhaseUpdate carries the phase fields to write. Nil fields keep their stored value.
type PhaseUpdate struct {
	Phase1Marks   *int
	Phase1Remarks *string
	Phase2Marks   *int
	Phase2Remarks *string
	Phase3Marks   *int
	Phase3Remarks *string
}

// IsEmpty reports whether no field is set
func (u PhaseUpdate) IsEmpty() bool {
	return u.Phase1Marks == nil && u.Phase1Remarks == nil &&
		u.Phase2Marks == nil && u.Phase2Remarks == nil &&
		u.Phase3Marks == nil && u.Phase3Remarks == nil
}

// ProjectPhaseRepository handles database operations for project phases
type ProjectPhaseRepository struct {
	db *gorm.DB
}

// NewProjectPhaseRepository creates a new project phase repository
func NewProjectPhaseRepository(db *gorm.DB) *ProjectPhaseRepository {
	return &ProjectPhaseRepository{db: db}
}

// GetByProjectID retrieves the phase record of a submitted project
func (r *ProjectPhaseRepository) GetByProjectID(projectID uint) (*models.ProjectPhase, error) {
	var phase models.ProjectPhase
	err := r.db.First(&phase, "submitted_project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &phase, nil
}

// Upsert inserts the phase record with zero marks and empty remarks for omitted fields,
// or, when one exists, overwrites only the fields present in update.
func (r *ProjectPhaseRepository) Upsert(projectID uint, update PhaseUpdate) (*models.ProjectPhase, error) {
	phase := models.ProjectPhase{SubmittedProjectID: projectID}
	assignments := map[string]interface{}{}

	if update.Phase1Marks != nil {
		phase.Phase1Marks = *update.Phase1Marks
		assignments["phase1_marks"] = gorm.Expr("excluded.phase1_marks")
	}
	if update.Phase1Remarks != nil {
		phase.Phase1Remarks = *update.Phase1Remarks
		assignments["phase1_remarks"] = gorm.Expr("excluded.phase1_remarks")
	}
	if update.Phase2Marks != nil {
		phase.Phase2Marks = *update.Phase2Marks
		assignments["phase2_marks"] = gorm.Expr("excluded.phase2_marks")
	}
	if update.Phase2Remarks != nil {
		phase.Phase2Remarks = *update.Phase2Remarks
		assignments["phase2_remarks"] = gorm.Expr("excluded.phase2_remarks")
	}
	if update.Phase3Marks != nil {
		phase.Phase3Marks = *update.Phase3Marks
		assignments["phase3_marks"] = gorm.Expr("excluded.phase3_marks")
	}
	if update.Phase3Remarks != nil {
		phase.Phase3Remarks = *update.Phase3Remarks
		assignments["phase3_remarks"] = gorm.Expr("excluded.phase3_remarks")
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "submitted_project_id"}},
		DoNothing: true,
	}
	if len(assignments) > 0 {
		assignments["updated_at"] = time.Now()
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "submitted_project_id"}},
			DoUpdates: clause.Assignments(assignments),
		}
	}

	if err := r.db.Omit("SubmittedProject").Clauses(onConflict).Create(&phase).Error; err != nil {
		return nil, err
	}

	return r.GetByProjectID(projectID)
}
