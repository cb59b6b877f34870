package service

import (
	"errors"
	"fmt"
	"strings"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MentorService provides mentor (teacher) business logic
type MentorService struct {
	repo      repository.MentorRepositoryInterface
	validator *validator.Validate
}

// Ensure MentorService implements MentorServiceInterface
var _ MentorServiceInterface = (*MentorService)(nil)

// NewMentorService creates a new mentor service
func NewMentorService(repo repository.MentorRepositoryInterface, validator *validator.Validate) *MentorService {
	return &MentorService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMentorRequest represents the request to register a mentor
type CreateMentorRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Dept  string `json:"dept" validate:"required,min=1,max=50"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// MentorResponse represents a mentor in API responses
type MentorResponse struct {
	TeacherID         uint   `json:"teacher_id"`
	Name              string `json:"name"`
	Dept              string `json:"dept"`
	Email             string `json:"email"`
	TotalProjects     int    `json:"total_projects"`
	Capacity          int    `json:"capacity"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

// CreateMentor registers a mentor with no assigned projects
func (s *MentorService) CreateMentor(req *CreateMentorRequest) (*MentorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, apperrors.NewValidationError(verrs[0].Field(), verrs[0].Tag())
		}
		return nil, apperrors.NewValidationError("", err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing mentor: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMentorExists
	}

	mentor := &models.Teacher{
		Name:  strings.TrimSpace(req.Name),
		Dept:  strings.TrimSpace(req.Dept),
		Email: email,
	}
	if err := s.repo.Create(mentor); err != nil {
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}

	resp := toMentorResponse(mentor)
	return &resp, nil
}

// GetMentor retrieves a mentor by ID
func (s *MentorService) GetMentor(id uint) (*MentorResponse, error) {
	mentor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to get mentor: %w", err)
	}

	resp := toMentorResponse(mentor)
	return &resp, nil
}

// ListMentors returns every mentor, or only those of dept when it is set
func (s *MentorService) ListMentors(dept string) ([]MentorResponse, error) {
	var (
		mentors []models.Teacher
		err     error
	)
	if dept = strings.TrimSpace(dept); dept != "" {
		mentors, err = s.repo.GetByDept(dept)
	} else {
		mentors, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}

	responses := make([]MentorResponse, len(mentors))
	for i := range mentors {
		responses[i] = toMentorResponse(&mentors[i])
	}
	return responses, nil
}

func toMentorResponse(t *models.Teacher) MentorResponse {
	remaining := config.MentorCapacity - t.TotalProjects
	if remaining < 0 {
		remaining = 0
	}
	return MentorResponse{
		TeacherID:         t.TeacherID,
		Name:              t.Name,
		Dept:              t.Dept,
		Email:             t.Email,
		TotalProjects:     t.TotalProjects,
		Capacity:          config.MentorCapacity,
		RemainingCapacity: remaining,
	}
}
