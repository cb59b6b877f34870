package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/judge"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/repository"
	"project-intake-backend/internal/vectorindex"
)

// TopK is the number of nearest prior projects compared against every submission.
const TopK = 3

const defaultJudgeTimeout = 30 * time.Second

// SimilarityIndex is the subset of *vectorindex.Index the orchestration needs
type SimilarityIndex interface {
	Ready() bool
	Len() int
	Load() (bool, error)
	Build(ctx context.Context, projects []vectorindex.ProjectText) error
	Search(ctx context.Context, title, synopsis string, k int) ([]vectorindex.SimilarityMatch, error)
}

// SimilarityResult is the advisory similarity outcome stored with a submission.
// MatchedProjectIDs and MatchedTitles are index-aligned.
type SimilarityResult struct {
	Score             float64  `json:"score"`
	MatchedProjectIDs []int    `json:"matched_project_ids"`
	MatchedTitles     []string `json:"matched_titles"`
	VerdictPayload    string   `json:"verdict_payload"`
}

// EvaluateRequest represents the request to check a proposal for near-duplicates
type EvaluateRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Synopsis string `json:"synopsis" validate:"max=5000"`
}

// RebuildIndexRequest represents an explicit list of projects to index
type RebuildIndexRequest struct {
	Projects []IndexProjectRequest `json:"projects" validate:"required,min=1,dive"`
}

// IndexProjectRequest is one project of a rebuild request
type IndexProjectRequest struct {
	ID       int    `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Synopsis string `json:"synopsis"`
}

// IndexStatusResponse describes the resident index
type IndexStatusResponse struct {
	Ready    bool `json:"ready"`
	Projects int  `json:"projects"`
}

// SimilarityService orchestrates index search and the judge into a SimilarityResult
type SimilarityService struct {
	index        SimilarityIndex
	judge        judge.JudgeInterface
	archiveRepo  repository.ArchivedProjectRepositoryInterface
	judgeTimeout time.Duration
}

// Ensure SimilarityService implements SimilarityServiceInterface
var _ SimilarityServiceInterface = (*SimilarityService)(nil)

// NewSimilarityService creates a new similarity service
func NewSimilarityService(index SimilarityIndex, judgeClient judge.JudgeInterface, archiveRepo repository.ArchivedProjectRepositoryInterface, judgeTimeout time.Duration) *SimilarityService {
	if judgeTimeout <= 0 {
		judgeTimeout = defaultJudgeTimeout
	}
	return &SimilarityService{
		index:        index,
		judge:        judgeClient,
		archiveRepo:  archiveRepo,
		judgeTimeout: judgeTimeout,
	}
}

// Evaluate never fails: every error on the way is folded into a zero-score result whose
// payload carries the reason.
func (s *SimilarityService) Evaluate(ctx context.Context, title, synopsis string) (result SimilarityResult) {
	log := logger.WithContext(ctx).WithField("component", "similarity")

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("similarity check panicked: %v", r)
			result = degradedResult(fmt.Sprintf("similarity check failed: %v", r))
		}
	}()

	if !s.index.Ready() {
		found, err := s.index.Load()
		if err != nil {
			log.WithError(err).Warn("similarity index could not be loaded")
			return degradedResult(fmt.Sprintf("index load failed: %v", err))
		}
		if !found {
			log.Warn("similarity index not found, skipping check")
			return degradedResult("Index not found")
		}
	}

	matches, err := s.index.Search(ctx, title, synopsis, TopK)
	if err != nil {
		log.WithError(err).Warn("similarity search failed")
		return degradedResult(fmt.Sprintf("similarity search failed: %v", err))
	}
	if len(matches) == 0 {
		return emptyResult()
	}

	judgeCtx, cancel := context.WithTimeout(ctx, s.judgeTimeout)
	defer cancel()
	payload := s.judge.Judge(judgeCtx, judge.NewProject{Title: title, Synopsis: synopsis}, matches)

	result = SimilarityResult{
		Score:             matches[0].SimilarityScore,
		MatchedProjectIDs: make([]int, len(matches)),
		MatchedTitles:     make([]string, len(matches)),
		VerdictPayload:    judge.Sanitize(payload),
	}
	for i, m := range matches {
		result.MatchedProjectIDs[i] = m.ProjectID
		result.MatchedTitles[i] = m.Title
	}

	log.WithFields(map[string]interface{}{
		"score":   result.Score,
		"matches": len(matches),
	}).Info("similarity check complete")
	return result
}

// RebuildIndex replaces the index with projects.
func (s *SimilarityService) RebuildIndex(ctx context.Context, projects []vectorindex.ProjectText) (*IndexStatusResponse, error) {
	if err := s.index.Build(ctx, projects); err != nil {
		var empty *apperrors.EmptyInputError
		if errors.As(err, &empty) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return s.Status(), nil
}

// RebuildFromStore rebuilds the index from every archived project.
func (s *SimilarityService) RebuildFromStore(ctx context.Context) (*IndexStatusResponse, error) {
	archived, err := s.archiveRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load archived projects: %w", err)
	}

	projects := make([]vectorindex.ProjectText, len(archived))
	for i, p := range archived {
		projects[i] = vectorindex.ProjectText{ID: int(p.ProjectID), Title: p.Title, Synopsis: p.Synopsis}
	}
	return s.RebuildIndex(ctx, projects)
}

// Status reports whether the index is resident and how many projects it holds
func (s *SimilarityService) Status() *IndexStatusResponse {
	return &IndexStatusResponse{Ready: s.index.Ready(), Projects: s.index.Len()}
}

func degradedResult(message string) SimilarityResult {
	return SimilarityResult{
		Score:             0,
		MatchedProjectIDs: []int{},
		MatchedTitles:     []string{},
		VerdictPayload:    judge.FailurePayload(message),
	}
}

func emptyResult() SimilarityResult {
	payload, _ := json.Marshal(judge.Judgment{
		Analysis: "No indexed projects to compare against.",
		Verdict: judge.Verdict{
			Status:    "Unique",
			Score:     0,
			Reasoning: "The similarity index holds no prior projects.",
		},
	})
	return SimilarityResult{
		Score:             0,
		MatchedProjectIDs: []int{},
		MatchedTitles:     []string{},
		VerdictPayload:    string(payload),
	}
}
