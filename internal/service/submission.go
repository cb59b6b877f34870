package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MemberRequest is one student in a team submission
type MemberRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	USN   string `json:"usn" validate:"required,min=1,max=20"`
	Email string `json:"email" validate:"required,email,max=255"`
	Dept  string `json:"dept" validate:"required,min=1,max=50"`
}

// CreateTeamRequest represents the request to register a team with its project proposal
type CreateTeamRequest struct {
	TeamName        string          `json:"team_name" validate:"required,min=1,max=100"`
	TeamSize        int             `json:"team_size" validate:"required,min=1,max=10"`
	Members         []MemberRequest `json:"team_members" validate:"required,min=1,max=10,dive"`
	ProjectTitle    string          `json:"project_title" validate:"required,min=1,max=200"`
	ProjectSynopsis string          `json:"project_synopsis" validate:"max=5000"`
}

// SubmissionResponse represents the result of a committed submission
type SubmissionResponse struct {
	TeamID          uint    `json:"team_id"`
	ProjectID       uint    `json:"project_id"`
	MentorID        uint    `json:"mentor_id"`
	MentorName      string  `json:"mentor_name"`
	SimilarityScore float64 `json:"similarity_score"`
}

// SubmissionService creates a team, its project, and its mentor assignment as one unit
type SubmissionService struct {
	teamRepo   repository.TeamRepositoryInterface
	transactor repository.TransactorInterface
	similarity SimilarityServiceInterface
	validator  *validator.Validate
}

// Ensure SubmissionService implements SubmissionServiceInterface
var _ SubmissionServiceInterface = (*SubmissionService)(nil)

// NewSubmissionService creates a new submission service
func NewSubmissionService(teamRepo repository.TeamRepositoryInterface, transactor repository.TransactorInterface, similarity SimilarityServiceInterface, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{
		teamRepo:   teamRepo,
		transactor: transactor,
		similarity: similarity,
		validator:  validator,
	}
}

// CreateTeamAndProject validates the request, runs the similarity check outside any
// transaction, then persists team, members, and project and claims a mentor slot in the
// first member's department in a single transaction. Any failure leaves no rows behind.
func (s *SubmissionService) CreateTeamAndProject(ctx context.Context, req *CreateTeamRequest) (*SubmissionResponse, error) {
	req = normalizeRequest(req)
	log := logger.WithContext(ctx).WithField("team_name", req.TeamName)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	usns := make([]string, len(req.Members))
	for i, m := range req.Members {
		usns[i] = m.USN
	}
	memberships, err := s.teamRepo.FindMemberships(usns)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing memberships: %w", err)
	}
	if len(memberships) > 0 {
		return nil, &apperrors.AlreadyOnTeamError{USN: memberships[0].USN, TeamName: memberships[0].TeamName}
	}

	// advisory and bounded in time; it must not run while row locks are held
	similarity := s.similarity.Evaluate(ctx, req.ProjectTitle, req.ProjectSynopsis)

	dept := req.Members[0].Dept
	var resp SubmissionResponse
	err = s.transactor.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		team := &models.Team{
			TeamName: req.TeamName,
			TeamSize: req.TeamSize,
			Members:  make([]models.TeamMember, len(req.Members)),
		}
		for i, m := range req.Members {
			team.Members[i] = models.TeamMember{Name: m.Name, USN: m.USN, Email: m.Email, Dept: m.Dept}
		}
		if err := repos.Teams.Create(team); err != nil {
			return classifyInsertError(err, req.TeamName)
		}

		project := &models.SubmittedProject{
			TeamID:               team.TeamID,
			Title:                req.ProjectTitle,
			Synopsis:             req.ProjectSynopsis,
			Status:               models.ProjectStatusPending,
			SimilarityScore:      similarity.Score,
			SimilarProjectIDs:    toInt64Array(similarity.MatchedProjectIDs),
			SimilarProjectTitles: pq.StringArray(similarity.MatchedTitles),
			SimilarityVerdict:    similarity.VerdictPayload,
		}
		if err := repos.Projects.Create(project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		if err := repos.Mentors.LockDepartment(dept); err != nil {
			return fmt.Errorf("failed to lock department %s: %w", dept, err)
		}
		mentor, err := repos.Mentors.FindAvailableForUpdate(dept, config.MentorCapacity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NoMentorAvailableError{Department: dept}
			}
			return fmt.Errorf("failed to find mentor: %w", err)
		}
		if err := repos.Mentors.IncrementLoad(mentor.TeacherID); err != nil {
			return fmt.Errorf("failed to claim mentor slot: %w", err)
		}
		if err := repos.Projects.AssignMentor(project.ProjectID, mentor.TeacherID); err != nil {
			return fmt.Errorf("failed to assign mentor: %w", err)
		}

		resp = SubmissionResponse{
			TeamID:          team.TeamID,
			ProjectID:       project.ProjectID,
			MentorID:        mentor.TeacherID,
			MentorName:      mentor.Name,
			SimilarityScore: similarity.Score,
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("submission rolled back")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"team_id":    resp.TeamID,
		"project_id": resp.ProjectID,
		"mentor_id":  resp.MentorID,
	}).Info("submission committed")
	return &resp, nil
}

func (s *SubmissionService) validate(req *CreateTeamRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewValidationError(verrs[0].Field(), verrs[0].Tag())
		}
		return apperrors.NewValidationError("", err.Error())
	}
	if req.TeamSize != len(req.Members) {
		return apperrors.NewValidationError("team_size", apperrors.ErrTeamSizeMismatch.Error())
	}

	seen := make(map[string]struct{}, len(req.Members))
	for _, m := range req.Members {
		if _, dup := seen[m.USN]; dup {
			return &apperrors.DuplicateMemberError{USN: m.USN}
		}
		seen[m.USN] = struct{}{}
	}
	return nil
}

// normalizeRequest returns a copy of req with member identity fields in canonical form.
// USNs are compared and stored upper-case; departments match mentor departments, which
// are stored trimmed.
func normalizeRequest(req *CreateTeamRequest) *CreateTeamRequest {
	out := *req
	out.TeamName = strings.TrimSpace(req.TeamName)
	out.Members = make([]MemberRequest, len(req.Members))
	for i, m := range req.Members {
		out.Members[i] = MemberRequest{
			Name:  strings.TrimSpace(m.Name),
			USN:   strings.ToUpper(strings.TrimSpace(m.USN)),
			Email: strings.TrimSpace(m.Email),
			Dept:  strings.TrimSpace(m.Dept),
		}
	}
	if req.Members == nil {
		out.Members = nil
	}
	return &out
}

var usnDetail = regexp.MustCompile(`\(usn\)=\(([^)]*)\)`)

// classifyInsertError maps unique violations raised while inserting the team and its
// members to the submission errors the caller can act on.
func classifyInsertError(err error, teamName string) error {
	pgErr, ok := repository.UniqueViolation(err)
	if !ok {
		return fmt.Errorf("failed to create team: %w", err)
	}
	switch pgErr.ConstraintName {
	case repository.ConstraintTeamName:
		return &apperrors.DuplicateTeamNameError{TeamName: teamName}
	case repository.ConstraintMemberUSN:
		usn := ""
		if m := usnDetail.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			usn = m[1]
		}
		return &apperrors.AlreadyOnTeamError{USN: usn}
	default:
		return fmt.Errorf("failed to create team: %w", err)
	}
}

func toInt64Array(ids []int) pq.Int64Array {
	out := make(pq.Int64Array, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
