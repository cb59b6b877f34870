package service

import (
	"errors"
	"fmt"
	"time"

	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/judge"
	"project-intake-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProjectService provides submitted and archived project business logic
type ProjectService struct {
	projectRepo repository.SubmittedProjectRepositoryInterface
	phaseRepo   repository.ProjectPhaseRepositoryInterface
	archiveRepo repository.ArchivedProjectRepositoryInterface
	validator   *validator.Validate
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.SubmittedProjectRepositoryInterface, phaseRepo repository.ProjectPhaseRepositoryInterface, archiveRepo repository.ArchivedProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		phaseRepo:   phaseRepo,
		archiveRepo: archiveRepo,
		validator:   validator,
	}
}

// ProjectResponse represents a submitted project in API responses
type ProjectResponse struct {
	ProjectID            uint      `json:"project_id"`
	TeamID               uint      `json:"team_id"`
	Title                string    `json:"title"`
	Synopsis             string    `json:"synopsis"`
	Status               string    `json:"status"`
	MentorID             *uint     `json:"mentor_id,omitempty"`
	MentorName           string    `json:"mentor_name,omitempty"`
	SimilarityScore      float64   `json:"similarity_score"`
	SimilarProjectIDs    []int64   `json:"similar_projects_id"`
	SimilarProjectTitles []string  `json:"similar_project_titles"`
	SimilarityVerdict    string    `json:"similarity_description"`
	VerdictStatus        string    `json:"verdict_status,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// ProjectListResponse represents a paginated list of submitted projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// UpdateStatusRequest represents the request to change a project's review status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpsertPhasesRequest carries phase marks and remarks. Omitted fields keep their stored value.
type UpsertPhasesRequest struct {
	Phase1Marks   *int    `json:"phase1_marks,omitempty" validate:"omitempty,min=0,max=100"`
	Phase1Remarks *string `json:"phase1_remarks,omitempty" validate:"omitempty,max=2000"`
	Phase2Marks   *int    `json:"phase2_marks,omitempty" validate:"omitempty,min=0,max=100"`
	Phase2Remarks *string `json:"phase2_remarks,omitempty" validate:"omitempty,max=2000"`
	Phase3Marks   *int    `json:"phase3_marks,omitempty" validate:"omitempty,min=0,max=100"`
	Phase3Remarks *string `json:"phase3_remarks,omitempty" validate:"omitempty,max=2000"`
}

// PhaseResponse represents the phase marks of a submitted project
type PhaseResponse struct {
	ProjectID     uint   `json:"project_id"`
	Phase1Marks   int    `json:"phase1_marks"`
	Phase1Remarks string `json:"phase1_remarks"`
	Phase2Marks   int    `json:"phase2_marks"`
	Phase2Remarks string `json:"phase2_remarks"`
	Phase3Marks   int    `json:"phase3_marks"`
	Phase3Remarks string `json:"phase3_remarks"`
}

// CreateArchivedProjectRequest represents the request to add a prior project to the corpus
type CreateArchivedProjectRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Synopsis string `json:"synopsis" validate:"max=5000"`
}

// ArchivedProjectResponse represents a prior project in API responses
type ArchivedProjectResponse struct {
	ProjectID uint   `json:"project_id"`
	Title     string `json:"title"`
	Synopsis  string `json:"synopsis"`
}

// GetProject retrieves a submitted project by ID
func (s *ProjectService) GetProject(id uint) (*ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	resp := toProjectResponse(project)
	return &resp, nil
}

// ListProjects retrieves submitted projects with pagination
func (s *ProjectService) ListProjects(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.projectRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = toProjectResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListProjectsByMentor retrieves the projects assigned to a mentor
func (s *ProjectService) ListProjectsByMentor(mentorID uint) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.GetByMentorID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for mentor: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = toProjectResponse(&projects[i])
	}
	return responses, nil
}

// UpdateStatus sets the review status of a project. It does not touch similarity or mentor data.
func (s *ProjectService) UpdateStatus(id uint, req *UpdateStatusRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("status", err.Error())
	}

	status, ok := models.ParseProjectStatus(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("status", "must be one of pending, approved, rejected")
	}

	if err := s.projectRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	return s.GetProject(id)
}

// GetPhases retrieves the phase marks of a project
func (s *ProjectService) GetPhases(id uint) (*PhaseResponse, error) {
	phase, err := s.phaseRepo.GetByProjectID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectPhaseNotFound
		}
		return nil, fmt.Errorf("failed to get project phases: %w", err)
	}

	resp := toPhaseResponse(phase)
	return &resp, nil
}

// UpsertPhases writes the provided phase fields, creating the record on first use
func (s *ProjectService) UpsertPhases(id uint, req *UpsertPhasesRequest) (*PhaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("phases", err.Error())
	}

	if _, err := s.projectRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	phase, err := s.phaseRepo.Upsert(id, repository.PhaseUpdate{
		Phase1Marks:   req.Phase1Marks,
		Phase1Remarks: req.Phase1Remarks,
		Phase2Marks:   req.Phase2Marks,
		Phase2Remarks: req.Phase2Remarks,
		Phase3Marks:   req.Phase3Marks,
		Phase3Remarks: req.Phase3Remarks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save project phases: %w", err)
	}

	resp := toPhaseResponse(phase)
	return &resp, nil
}

// ListArchived returns the prior-project corpus the similarity index is built from
func (s *ProjectService) ListArchived() ([]ArchivedProjectResponse, error) {
	projects, err := s.archiveRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list archived projects: %w", err)
	}

	responses := make([]ArchivedProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ArchivedProjectResponse{ProjectID: p.ProjectID, Title: p.Title, Synopsis: p.Synopsis}
	}
	return responses, nil
}

// CreateArchived adds a prior project. The index picks it up on the next rebuild.
func (s *ProjectService) CreateArchived(req *CreateArchivedProjectRequest) (*ArchivedProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("title", err.Error())
	}

	existing, err := s.archiveRepo.GetByTitle(req.Title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing archived project: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrArchivedProjectExists
	}

	project := &models.ArchivedProject{Title: req.Title, Synopsis: req.Synopsis}
	if err := s.archiveRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create archived project: %w", err)
	}

	return &ArchivedProjectResponse{ProjectID: project.ProjectID, Title: project.Title, Synopsis: project.Synopsis}, nil
}

func toProjectResponse(p *models.SubmittedProject) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:            p.ProjectID,
		TeamID:               p.TeamID,
		Title:                p.Title,
		Synopsis:             p.Synopsis,
		Status:               string(p.Status),
		MentorID:             p.MentorID,
		SimilarityScore:      p.SimilarityScore,
		SimilarProjectIDs:    []int64(p.SimilarProjectIDs),
		SimilarProjectTitles: []string(p.SimilarProjectTitles),
		SimilarityVerdict:    p.SimilarityVerdict,
		CreatedAt:            p.CreatedAt,
	}
	if resp.SimilarProjectIDs == nil {
		resp.SimilarProjectIDs = []int64{}
	}
	if resp.SimilarProjectTitles == nil {
		resp.SimilarProjectTitles = []string{}
	}
	if p.Mentor != nil {
		resp.MentorName = p.Mentor.Name
	}
	// best effort: the stored payload is opaque and may not parse
	if p.SimilarityVerdict != "" {
		if judgment, err := judge.ParseVerdict(p.SimilarityVerdict); err == nil {
			resp.VerdictStatus = judgment.Verdict.Status
		}
	}
	return resp
}

func toPhaseResponse(p *models.ProjectPhase) PhaseResponse {
	return PhaseResponse{
		ProjectID:     p.SubmittedProjectID,
		Phase1Marks:   p.Phase1Marks,
		Phase1Remarks: p.Phase1Remarks,
		Phase2Marks:   p.Phase2Marks,
		Phase2Remarks: p.Phase2Remarks,
		Phase3Marks:   p.Phase3Marks,
		Phase3Remarks: p.Phase3Remarks,
	}
}
