package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-intake-backend/internal/api/handlers"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/mocks"
	"project-intake-backend/internal/service"
	"project-intake-backend/internal/vectorindex"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SimilarityHandlerTestSuite defines the test suite for SimilarityHandler
type SimilarityHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSimilarityServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *SimilarityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSimilarityServiceInterface(suite.ctrl)

	handler := handlers.NewSimilarityHandler(suite.mockService, validator.New())
	suite.router = gin.New()
	suite.router.POST("/similarity/evaluate", handler.Evaluate)
	suite.router.GET("/similarity/index", handler.Status)
	suite.router.PUT("/similarity/index", handler.RebuildIndex)
	suite.router.POST("/similarity/index/rebuild", handler.RebuildFromStore)
}

// TearDownTest cleans up after each test
func (suite *SimilarityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SimilarityHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SimilarityHandlerTestSuite) TestEvaluate() {
	suite.mockService.EXPECT().Evaluate(gomock.Any(), "Chat Bot", "NLP chatbot").Return(service.SimilarityResult{
		Score:             88.2,
		MatchedProjectIDs: []int{1},
		MatchedTitles:     []string{"Chat Bot"},
		VerdictPayload:    `{"verdict":{"status":"Plagiarized","score":88}}`,
	})

	w := suite.do(http.MethodPost, "/similarity/evaluate", map[string]string{"title": "Chat Bot", "synopsis": "NLP chatbot"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp service.SimilarityResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), 88.2, resp.Score)
	assert.Equal(suite.T(), []int{1}, resp.MatchedProjectIDs)
}

func (suite *SimilarityHandlerTestSuite) TestEvaluate_MissingTitle() {
	w := suite.do(http.MethodPost, "/similarity/evaluate", map[string]string{"synopsis": "NLP chatbot"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SimilarityHandlerTestSuite) TestStatus() {
	suite.mockService.EXPECT().Status().Return(&service.IndexStatusResponse{Ready: true, Projects: 12})

	w := suite.do(http.MethodGet, "/similarity/index", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"ready":true,"projects":12}`, w.Body.String())
}

func (suite *SimilarityHandlerTestSuite) TestRebuildIndex() {
	suite.mockService.EXPECT().
		RebuildIndex(gomock.Any(), []vectorindex.ProjectText{{ID: 1, Title: "Chat Bot", Synopsis: "NLP chatbot"}}).
		Return(&service.IndexStatusResponse{Ready: true, Projects: 1}, nil)

	w := suite.do(http.MethodPut, "/similarity/index", map[string]interface{}{
		"projects": []map[string]interface{}{{"id": 1, "title": "Chat Bot", "synopsis": "NLP chatbot"}},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SimilarityHandlerTestSuite) TestRebuildIndex_EmptyList() {
	w := suite.do(http.MethodPut, "/similarity/index", map[string]interface{}{"projects": []interface{}{}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SimilarityHandlerTestSuite) TestRebuildFromStore_EmptyStore() {
	suite.mockService.EXPECT().RebuildFromStore(gomock.Any()).Return(nil, apperrors.ErrEmptyIndexInput)

	w := suite.do(http.MethodPost, "/similarity/index/rebuild", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "empty input")
}

// TestSimilarityHandlerTestSuite runs the test suite
func TestSimilarityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SimilarityHandlerTestSuite))
}
