package service

import (
	"errors"
	"fmt"
	"time"

	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/repository"

	"gorm.io/gorm"
)

// TeamService provides read access to registered teams
type TeamService struct {
	repo repository.TeamRepositoryInterface
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface) *TeamService {
	return &TeamService{repo: repo}
}

// MemberResponse represents a team member in API responses
type MemberResponse struct {
	Name  string `json:"name"`
	USN   string `json:"usn"`
	Email string `json:"email"`
	Dept  string `json:"dept"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	TeamID    uint             `json:"team_id"`
	TeamName  string           `json:"team_name"`
	TeamSize  int              `json:"team_size"`
	Members   []MemberResponse `json:"team_members"`
	Project   *ProjectResponse `json:"project,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// GetTeam retrieves a team with its members and project
func (s *TeamService) GetTeam(id uint) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	resp := toTeamResponse(team)
	return &resp, nil
}

// ListTeams retrieves teams with pagination. Members and projects are not loaded.
func (s *TeamService) ListTeams(page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toTeamResponse(t *models.Team) TeamResponse {
	resp := TeamResponse{
		TeamID:    t.TeamID,
		TeamName:  t.TeamName,
		TeamSize:  t.TeamSize,
		Members:   make([]MemberResponse, len(t.Members)),
		CreatedAt: t.CreatedAt,
	}
	for i, m := range t.Members {
		resp.Members[i] = MemberResponse{Name: m.Name, USN: m.USN, Email: m.Email, Dept: m.Dept}
	}
	if t.Project != nil {
		project := toProjectResponse(t.Project)
		resp.Project = &project
	}
	return resp
}
