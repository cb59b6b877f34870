package repository

import (
	"project-intake-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MentorRepository handles database operations for teachers acting as mentors
type MentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

// Create creates a new mentor
func (r *MentorRepository) Create(teacher *models.Teacher) error {
	return r.db.Create(teacher).Error
}

// GetByID retrieves a mentor by ID
func (r *MentorRepository) GetByID(id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.First(&teacher, "teacher_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetByEmail retrieves a mentor by email
func (r *MentorRepository) GetByEmail(email string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.First(&teacher, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetByDept retrieves all mentors of a department ordered by ID
func (r *MentorRepository) GetByDept(dept string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.Where("dept = ?", dept).Order("teacher_id ASC").Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// GetAll retrieves all mentors ordered by ID
func (r *MentorRepository) GetAll() ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.Order("teacher_id ASC").Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// LockDepartment takes a transaction-scoped advisory lock for dept. Allocators for the
// same department queue here until the holder commits or rolls back.
// Must be called inside a transaction.
func (r *MentorRepository) LockDepartment(dept string) error {
	return r.db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", dept).Error
}

// FindAvailableForUpdate returns the lowest-ID mentor of dept below capacity and
// row-locks it until the surrounding transaction ends.
func (r *MentorRepository) FindAvailableForUpdate(dept string, capacity int) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("dept = ? AND total_projects < ?", dept, capacity).
		Order("teacher_id ASC").
		Take(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// IncrementLoad adds one project to a mentor's count
func (r *MentorRepository) IncrementLoad(id uint) error {
	result := r.db.Model(&models.Teacher{}).
		Where("teacher_id = ?", id).
		UpdateColumn("total_projects", gorm.Expr("total_projects + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
