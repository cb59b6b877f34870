package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-intake-backend/internal/api/handlers"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/mocks"
	"project-intake-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SubmissionHandlerTestSuite defines the test suite for SubmissionHandler
type SubmissionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSubmissionServiceInterface
	handler     *handlers.SubmissionHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *SubmissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSubmissionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSubmissionHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/teams", suite.handler.CreateTeam)
}

// TearDownTest cleans up after each test
func (suite *SubmissionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubmissionHandlerTestSuite) post(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validSubmission() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"team_name": "Team Alpha",
		"team_size": 1,
		"team_members": []map[string]string{
			{"name": "Asha", "usn": "1RV21CS001", "email": "asha@college.edu", "dept": "CSE"},
		},
		"project_title":    "Smart Attendance",
		"project_synopsis": "Face recognition based attendance",
	})
	return body
}

func (suite *SubmissionHandlerTestSuite) TestCreateTeam_Success() {
	suite.mockService.EXPECT().CreateTeamAndProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateTeamRequest) (*service.SubmissionResponse, error) {
			assert.Equal(suite.T(), "Team Alpha", req.TeamName)
			assert.Len(suite.T(), req.Members, 1)
			assert.Equal(suite.T(), "CSE", req.Members[0].Dept)
			return &service.SubmissionResponse{TeamID: 7, ProjectID: 11, MentorID: 3, MentorName: "Dr. Rao", SimilarityScore: 41.5}, nil
		})

	w := suite.post(validSubmission())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var resp service.SubmissionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), uint(7), resp.TeamID)
	assert.Equal(suite.T(), "Dr. Rao", resp.MentorName)
	assert.Equal(suite.T(), 41.5, resp.SimilarityScore)
}

func (suite *SubmissionHandlerTestSuite) TestCreateTeam_InvalidJSON() {
	w := suite.post([]byte("invalid json"))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "error")
}

func (suite *SubmissionHandlerTestSuite) TestCreateTeam_ErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"Validation", apperrors.NewValidationError("team_size", "mismatch"), http.StatusBadRequest, "team_size"},
		{"Duplicate member", &apperrors.DuplicateMemberError{USN: "1RV21CS001"}, http.StatusConflict, "duplicate USN"},
		{"Already on team", &apperrors.AlreadyOnTeamError{USN: "1RV21CS001", TeamName: "Beta"}, http.StatusConflict, "already in team 'Beta'"},
		{"Duplicate team name", &apperrors.DuplicateTeamNameError{TeamName: "Team Alpha"}, http.StatusConflict, "already exists"},
		{"No mentor", &apperrors.NoMentorAvailableError{Department: "CSE"}, http.StatusUnprocessableEntity, "no mentor available in CSE"},
		{"Internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().CreateTeamAndProject(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := suite.post(validSubmission())

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

// TestSubmissionHandlerTestSuite runs the test suite
func TestSubmissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}
