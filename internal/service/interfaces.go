package service

import (
	"context"

	"project-intake-backend/internal/vectorindex"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SimilarityServiceInterface defines the interface for similarity orchestration
type SimilarityServiceInterface interface {
	Evaluate(ctx context.Context, title, synopsis string) SimilarityResult
	RebuildIndex(ctx context.Context, projects []vectorindex.ProjectText) (*IndexStatusResponse, error)
	RebuildFromStore(ctx context.Context) (*IndexStatusResponse, error)
	Status() *IndexStatusResponse
}

// SubmissionServiceInterface defines the interface for the team and project submission flow
type SubmissionServiceInterface interface {
	CreateTeamAndProject(ctx context.Context, req *CreateTeamRequest) (*SubmissionResponse, error)
}

// ProjectServiceInterface defines the interface for submitted and archived projects
type ProjectServiceInterface interface {
	GetProject(id uint) (*ProjectResponse, error)
	ListProjects(page, pageSize int) (*ProjectListResponse, error)
	ListProjectsByMentor(mentorID uint) ([]ProjectResponse, error)
	UpdateStatus(id uint, req *UpdateStatusRequest) (*ProjectResponse, error)
	GetPhases(id uint) (*PhaseResponse, error)
	UpsertPhases(id uint, req *UpsertPhasesRequest) (*PhaseResponse, error)
	ListArchived() ([]ArchivedProjectResponse, error)
	CreateArchived(req *CreateArchivedProjectRequest) (*ArchivedProjectResponse, error)
}

// TeamServiceInterface defines the interface for team read models
type TeamServiceInterface interface {
	GetTeam(id uint) (*TeamResponse, error)
	ListTeams(page, pageSize int) (*TeamListResponse, error)
}

// MentorServiceInterface defines the interface for mentor management
type MentorServiceInterface interface {
	CreateMentor(req *CreateMentorRequest) (*MentorResponse, error)
	GetMentor(id uint) (*MentorResponse, error)
	ListMentors(dept string) ([]MentorResponse, error)
}
