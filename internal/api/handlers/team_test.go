package handlers_test

import (
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	handler := handlers.NewTeamHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/teams", handler.ListTeams)
	suite.router.GET("/teams/:id", handler.GetTeam)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/-1", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid team ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeam(uint(42)).Return(nil, apperrors.ErrTeamNotFound)

		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/42", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeam(uint(7)).Return(&service.TeamResponse{
			TeamID:   7,
			TeamName: "Team Alpha",
			Members:  []service.MemberResponse{{Name: "Asha", USN: "1RV21CS001"}},
		}, nil)

		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/7", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"team_members":[`)
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().ListTeams(1, 20).Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Page: 1, PageSize: 20}, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams?page=abc", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
