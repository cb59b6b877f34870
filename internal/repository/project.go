package repository

import (
	"project-intake-backend/internal/database/models"

	"gorm.io/gorm"
)

// SubmittedProjectRepository handles database operations for submitted projects
type SubmittedProjectRepository struct {
	db *gorm.DB
}

// NewSubmittedProjectRepository creates a new submitted project repository
func NewSubmittedProjectRepository(db *gorm.DB) *SubmittedProjectRepository {
	return &SubmittedProjectRepository{db: db}
}

// Create creates a new submitted project
func (r *SubmittedProjectRepository) Create(project *models.SubmittedProject) error {
	return r.db.Omit("Mentor").Create(project).Error
}

// GetByID retrieves a submitted project with its mentor
func (r *SubmittedProjectRepository) GetByID(id uint) (*models.SubmittedProject, error) {
	var project models.SubmittedProject
	err := r.db.Preload("Mentor").First(&project, "project_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTeamID retrieves the project submitted by a team
func (r *SubmittedProjectRepository) GetByTeamID(teamID uint) (*models.SubmittedProject, error) {
	var project models.SubmittedProject
	err := r.db.Preload("Mentor").First(&project, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByMentorID retrieves all projects supervised by a mentor
func (r *SubmittedProjectRepository) GetByMentorID(mentorID uint) ([]models.SubmittedProject, error) {
	var projects []models.SubmittedProject
	err := r.db.Where("mentor_id = ?", mentorID).Order("project_id ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetAll retrieves submitted projects with pagination
func (r *SubmittedProjectRepository) GetAll(limit, offset int) ([]models.SubmittedProject, int64, error) {
	var projects []models.SubmittedProject
	var total int64

	if err := r.db.Model(&models.SubmittedProject{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("project_id ASC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// AssignMentor binds a mentor to a project
func (r *SubmittedProjectRepository) AssignMentor(projectID, mentorID uint) error {
	result := r.db.Model(&models.SubmittedProject{}).
		Where("project_id = ?", projectID).
		Update("mentor_id", mentorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus sets the review status of a project
func (r *SubmittedProjectRepository) UpdateStatus(projectID uint, status models.ProjectStatus) error {
	result := r.db.Model(&models.SubmittedProject{}).
		Where("project_id = ?", projectID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ArchivedProjectRepository handles database operations for prior projects
type ArchivedProjectRepository struct {
	db *gorm.DB
}

// NewArchivedProjectRepository creates a new archived project repository
func NewArchivedProjectRepository(db *gorm.DB) *ArchivedProjectRepository {
	return &ArchivedProjectRepository{db: db}
}

// Create creates a new archived project
func (r *ArchivedProjectRepository) Create(project *models.ArchivedProject) error {
	return r.db.Create(project).Error
}

// GetByID retrieves an archived project by ID
func (r *ArchivedProjectRepository) GetByID(id uint) (*models.ArchivedProject, error) {
	var project models.ArchivedProject
	err := r.db.First(&project, "project_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTitle retrieves an archived project by title
func (r *ArchivedProjectRepository) GetByTitle(title string) (*models.ArchivedProject, error) {
	var project models.ArchivedProject
	err := r.db.First(&project, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves every archived project ordered by ID
func (r *ArchivedProjectRepository) GetAll() ([]models.ArchivedProject, error) {
	var projects []models.ArchivedProject
	err := r.db.Order("project_id ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Count returns the number of archived projects
func (r *ArchivedProjectRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.ArchivedProject{}).Count(&total).Error
	return total, err
}
