package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/judge"
	"project-intake-backend/internal/mocks"
	"project-intake-backend/internal/service"
	"project-intake-backend/internal/vectorindex"
	"project-intake-backend/internal/vectorindex/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// emptyIndex is resident but matches nothing
type emptyIndex struct{}

func (emptyIndex) Ready() bool         { return true }
func (emptyIndex) Len() int            { return 0 }
func (emptyIndex) Load() (bool, error) { return true, nil }

func (emptyIndex) Build(context.Context, []vectorindex.ProjectText) error {
	return nil
}

func (emptyIndex) Search(context.Context, string, string, int) ([]vectorindex.SimilarityMatch, error) {
	return nil, nil
}

// SimilarityServiceTestSuite defines the test suite for SimilarityService
type SimilarityServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockJudge       *mocks.MockJudgeInterface
	mockArchiveRepo *mocks.MockArchivedProjectRepositoryInterface
	ctx             context.Context
	dir             string
	index           *vectorindex.Index
	service         *service.SimilarityService
}

// SetupTest sets up the test suite
func (suite *SimilarityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockJudge = mocks.NewMockJudgeInterface(suite.ctrl)
	suite.mockArchiveRepo = mocks.NewMockArchivedProjectRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()
	suite.dir = suite.T().TempDir()
	suite.index = vectorindex.New(suite.dir, embedding.NewHash(128))
	suite.service = service.NewSimilarityService(suite.index, suite.mockJudge, suite.mockArchiveRepo, 5*time.Second)
}

// TearDownTest cleans up after each test
func (suite *SimilarityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SimilarityServiceTestSuite) corpus() []vectorindex.ProjectText {
	return []vectorindex.ProjectText{
		{ID: 1, Title: "Chat Bot", Synopsis: "NLP chatbot"},
		{ID: 2, Title: "Weather App", Synopsis: "Forecast UI"},
		{ID: 3, Title: "Library Manager", Synopsis: "Track books and library loans"},
		{ID: 4, Title: "Attendance Tracker", Synopsis: "Face recognition attendance for classrooms"},
	}
}

func (suite *SimilarityServiceTestSuite) assertDegraded(result service.SimilarityResult, reason string) {
	assert.Equal(suite.T(), 0.0, result.Score)
	assert.Empty(suite.T(), result.MatchedProjectIDs)
	assert.Empty(suite.T(), result.MatchedTitles)

	j, err := judge.ParseVerdict(result.VerdictPayload)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Error", j.Verdict.Status)
	assert.Contains(suite.T(), j.Error, reason)
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_IndexNotFound() {
	result := suite.service.Evaluate(suite.ctx, "Chatbot", "A conversational bot")

	suite.assertDegraded(result, "Index not found")
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_IndexLoadFails() {
	// metadata without vectors is an incomplete artifact pair
	err := os.WriteFile(filepath.Join(suite.dir, vectorindex.MetadataFile), []byte("[]"), 0o644)
	suite.Require().NoError(err)

	result := suite.service.Evaluate(suite.ctx, "Chatbot", "A conversational bot")

	suite.assertDegraded(result, "index load failed")
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_Success() {
	suite.Require().NoError(suite.index.Build(suite.ctx, suite.corpus()))
	expected, err := suite.index.Search(suite.ctx, "Chat Bot", "NLP chatbot for students", service.TopK)
	suite.Require().NoError(err)

	payload := `{"analysis":"close","comparison":[],"verdict":{"status":"Suspicious","score":72,"reasoning":"same domain"}}`
	suite.mockJudge.EXPECT().
		Judge(gomock.Any(), judge.NewProject{Title: "Chat Bot", Synopsis: "NLP chatbot for students"}, gomock.Len(service.TopK)).
		Return(payload)

	result := suite.service.Evaluate(suite.ctx, "Chat Bot", "NLP chatbot for students")

	assert.Equal(suite.T(), expected[0].SimilarityScore, result.Score)
	suite.Require().Len(result.MatchedProjectIDs, service.TopK)
	suite.Require().Len(result.MatchedTitles, service.TopK)
	assert.Equal(suite.T(), 1, result.MatchedProjectIDs[0])
	assert.Equal(suite.T(), "Chat Bot", result.MatchedTitles[0])
	for i, m := range expected {
		assert.Equal(suite.T(), m.ProjectID, result.MatchedProjectIDs[i])
		assert.Equal(suite.T(), m.Title, result.MatchedTitles[i])
	}
	assert.Equal(suite.T(), payload, result.VerdictPayload)
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_LoadsPersistedIndex() {
	suite.Require().NoError(suite.index.Build(suite.ctx, suite.corpus()))

	fresh := vectorindex.New(suite.dir, embedding.NewHash(128))
	svc := service.NewSimilarityService(fresh, suite.mockJudge, suite.mockArchiveRepo, time.Second)
	suite.mockJudge.EXPECT().Judge(gomock.Any(), gomock.Any(), gomock.Any()).Return(`{"verdict":{"status":"Unique","score":10}}`)

	result := svc.Evaluate(suite.ctx, "Weather App", "Forecast UI")

	assert.True(suite.T(), fresh.Ready())
	suite.Require().NotEmpty(result.MatchedProjectIDs)
	assert.Equal(suite.T(), 2, result.MatchedProjectIDs[0])
	assert.Equal(suite.T(), 100.0, result.Score)
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_StripsNonASCIIFromVerdict() {
	suite.Require().NoError(suite.index.Build(suite.ctx, suite.corpus()))
	suite.mockJudge.EXPECT().Judge(gomock.Any(), gomock.Any(), gomock.Any()).Return("{\"verdict\":{\"status\":\"Unique\",\"score\":5,\"reasoning\":\"café \U0001F680\"}}")

	result := suite.service.Evaluate(suite.ctx, "Crop Advisor", "Soil data")

	assert.Equal(suite.T(), `{"verdict":{"status":"Unique","score":5,"reasoning":"caf "}}`, result.VerdictPayload)
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_JudgeRunsUnderDeadline() {
	suite.Require().NoError(suite.index.Build(suite.ctx, suite.corpus()))
	suite.mockJudge.EXPECT().Judge(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ judge.NewProject, _ []vectorindex.SimilarityMatch) string {
			deadline, ok := ctx.Deadline()
			assert.True(suite.T(), ok)
			assert.WithinDuration(suite.T(), time.Now().Add(5*time.Second), deadline, time.Second)
			return judge.ErrorPayload(context.DeadlineExceeded)
		})

	result := suite.service.Evaluate(suite.ctx, "Chat Bot", "NLP chatbot")

	// the judge failing does not discard the matches
	assert.NotEmpty(suite.T(), result.MatchedProjectIDs)
	assert.Contains(suite.T(), result.VerdictPayload, "AI Check Failed")
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_JudgePanicIsContained() {
	suite.Require().NoError(suite.index.Build(suite.ctx, suite.corpus()))
	suite.mockJudge.EXPECT().Judge(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, judge.NewProject, []vectorindex.SimilarityMatch) string {
			panic("boom")
		})

	result := suite.service.Evaluate(suite.ctx, "Chat Bot", "NLP chatbot")

	suite.assertDegraded(result, "boom")
}

func (suite *SimilarityServiceTestSuite) TestEvaluate_NoMatches() {
	svc := service.NewSimilarityService(emptyIndex{}, suite.mockJudge, suite.mockArchiveRepo, time.Second)

	result := svc.Evaluate(suite.ctx, "Chat Bot", "NLP chatbot")

	assert.Equal(suite.T(), 0.0, result.Score)
	assert.Empty(suite.T(), result.MatchedProjectIDs)
	j, err := judge.ParseVerdict(result.VerdictPayload)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Unique", j.Verdict.Status)
}

func (suite *SimilarityServiceTestSuite) TestRebuildIndex() {
	status, err := suite.service.RebuildIndex(suite.ctx, suite.corpus())

	suite.Require().NoError(err)
	assert.True(suite.T(), status.Ready)
	assert.Equal(suite.T(), 4, status.Projects)
}

func (suite *SimilarityServiceTestSuite) TestRebuildIndex_EmptyInput() {
	suite.Require().NoError(suite.index.Build(suite.ctx, suite.corpus()))

	status, err := suite.service.RebuildIndex(suite.ctx, nil)

	assert.Nil(suite.T(), status)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyIndexInput)
	assert.Equal(suite.T(), 4, suite.service.Status().Projects)
}

func (suite *SimilarityServiceTestSuite) TestRebuildFromStore() {
	suite.mockArchiveRepo.EXPECT().GetAll().Return([]models.ArchivedProject{
		{ProjectID: 10, Title: "Smart Parking", Synopsis: "IoT parking slots"},
		{ProjectID: 11, Title: "Canteen Orders", Synopsis: "Pre-order food at the campus canteen"},
	}, nil)

	status, err := suite.service.RebuildFromStore(suite.ctx)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 2, status.Projects)

	matches, err := suite.index.Search(suite.ctx, "Smart Parking", "IoT parking slots", 1)
	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	assert.Equal(suite.T(), 10, matches[0].ProjectID)
}

func (suite *SimilarityServiceTestSuite) TestRebuildFromStore_RepositoryError() {
	suite.mockArchiveRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	status, err := suite.service.RebuildFromStore(suite.ctx)

	assert.Nil(suite.T(), status)
	assert.ErrorContains(suite.T(), err, "connection refused")
	assert.False(suite.T(), suite.service.Status().Ready)
}

func (suite *SimilarityServiceTestSuite) TestRebuildFromStore_EmptyStore() {
	suite.mockArchiveRepo.EXPECT().GetAll().Return([]models.ArchivedProject{}, nil)

	_, err := suite.service.RebuildFromStore(suite.ctx)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyIndexInput)
}

// TestSimilarityServiceTestSuite runs the test suite
func TestSimilarityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SimilarityServiceTestSuite))
}
