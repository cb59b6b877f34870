package repository

import (
	"context"

	"project-intake-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetWithMembers(id uint) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	FindMemberships(usns []string) ([]Membership, error)
}

// SubmittedProjectRepositoryInterface defines the interface for submitted project repository operations
type SubmittedProjectRepositoryInterface interface {
	Create(project *models.SubmittedProject) error
	GetByID(id uint) (*models.SubmittedProject, error)
	GetByTeamID(teamID uint) (*models.SubmittedProject, error)
	GetByMentorID(mentorID uint) ([]models.SubmittedProject, error)
	GetAll(limit, offset int) ([]models.SubmittedProject, int64, error)
	AssignMentor(projectID, mentorID uint) error
	UpdateStatus(projectID uint, status models.ProjectStatus) error
}

// MentorRepositoryInterface defines the interface for mentor (teacher) repository operations
type MentorRepositoryInterface interface {
	Create(teacher *models.Teacher) error
	GetByID(id uint) (*models.Teacher, error)
	GetByEmail(email string) (*models.Teacher, error)
	GetByDept(dept string) ([]models.Teacher, error)
	GetAll() ([]models.Teacher, error)
	LockDepartment(dept string) error
	FindAvailableForUpdate(dept string, capacity int) (*models.Teacher, error)
	IncrementLoad(id uint) error
}

// ArchivedProjectRepositoryInterface defines the interface for the prior-project store
type ArchivedProjectRepositoryInterface interface {
	Create(project *models.ArchivedProject) error
	GetByID(id uint) (*models.ArchivedProject, error)
	GetByTitle(title string) (*models.ArchivedProject, error)
	GetAll() ([]models.ArchivedProject, error)
	Count() (int64, error)
}

// ProjectPhaseRepositoryInterface defines the interface for project phase repository operations
type ProjectPhaseRepositoryInterface interface {
	GetByProjectID(projectID uint) (*models.ProjectPhase, error)
	Upsert(projectID uint, update PhaseUpdate) (*models.ProjectPhase, error)
}

// TransactorInterface runs fn with repositories bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
