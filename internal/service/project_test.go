package service_test

import (
	"errors"
	"testing"

	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/mocks"
	"project-intake-backend/internal/repository"
	"project-intake-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockSubmittedProjectRepositoryInterface
	mockPhaseRepo   *mocks.MockProjectPhaseRepositoryInterface
	mockArchiveRepo *mocks.MockArchivedProjectRepositoryInterface
	projectService  *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockSubmittedProjectRepositoryInterface(suite.ctrl)
	suite.mockPhaseRepo = mocks.NewMockProjectPhaseRepositoryInterface(suite.ctrl)
	suite.mockArchiveRepo = mocks.NewMockArchivedProjectRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(suite.mockProjectRepo, suite.mockPhaseRepo, suite.mockArchiveRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func submittedProject() *models.SubmittedProject {
	mentorID := uint(3)
	return &models.SubmittedProject{
		ProjectID:            11,
		TeamID:               7,
		Title:                "Smart Attendance",
		Synopsis:             "Face recognition based attendance",
		Status:               models.ProjectStatusPending,
		MentorID:             &mentorID,
		SimilarityScore:      41.5,
		SimilarProjectIDs:    pq.Int64Array{4, 2},
		SimilarProjectTitles: pq.StringArray{"Attendance Tracker", "Weather App"},
		SimilarityVerdict:    "```json\n{\"verdict\":{\"status\":\"Suspicious\",\"score\":41.5}}\n```",
		Mentor:               &models.Teacher{TeacherID: 3, Name: "Dr. Rao"},
	}
}

func (suite *ProjectServiceTestSuite) TestGetProject_Success() {
	suite.mockProjectRepo.EXPECT().GetByID(uint(11)).Return(submittedProject(), nil)

	resp, err := suite.projectService.GetProject(11)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Smart Attendance", resp.Title)
	assert.Equal(suite.T(), "pending", resp.Status)
	assert.Equal(suite.T(), "Dr. Rao", resp.MentorName)
	assert.Equal(suite.T(), []int64{4, 2}, resp.SimilarProjectIDs)
	assert.Equal(suite.T(), "Suspicious", resp.VerdictStatus)
}

func (suite *ProjectServiceTestSuite) TestGetProject_UnparseableVerdict() {
	project := submittedProject()
	project.SimilarityVerdict = "the model rambled"
	project.SimilarProjectIDs = nil
	project.SimilarProjectTitles = nil
	suite.mockProjectRepo.EXPECT().GetByID(uint(11)).Return(project, nil)

	resp, err := suite.projectService.GetProject(11)

	suite.Require().NoError(err)
	assert.Empty(suite.T(), resp.VerdictStatus)
	assert.Equal(suite.T(), "the model rambled", resp.SimilarityVerdict)
	assert.NotNil(suite.T(), resp.SimilarProjectIDs)
	assert.NotNil(suite.T(), resp.SimilarProjectTitles)
}

func (suite *ProjectServiceTestSuite) TestGetProject_NotFound() {
	suite.mockProjectRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.projectService.GetProject(99)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestListProjects_DefaultPagination() {
	suite.mockProjectRepo.EXPECT().GetAll(20, 0).Return([]models.SubmittedProject{*submittedProject()}, int64(1), nil)

	resp, err := suite.projectService.ListProjects(0, 0)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Projects, 1)
}

func (suite *ProjectServiceTestSuite) TestListProjects_CustomPagination() {
	suite.mockProjectRepo.EXPECT().GetAll(10, 20).Return([]models.SubmittedProject{}, int64(25), nil)

	resp, err := suite.projectService.ListProjects(3, 10)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 3, resp.Page)
	assert.Empty(suite.T(), resp.Projects)
}

func (suite *ProjectServiceTestSuite) TestListProjectsByMentor() {
	suite.mockProjectRepo.EXPECT().GetByMentorID(uint(3)).Return([]models.SubmittedProject{*submittedProject()}, nil)

	resp, err := suite.projectService.ListProjectsByMentor(3)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	assert.Equal(suite.T(), uint(11), resp[0].ProjectID)
}

func (suite *ProjectServiceTestSuite) TestUpdateStatus() {
	testCases := []struct {
		name     string
		input    string
		expected models.ProjectStatus
	}{
		{name: "Lowercase", input: "approved", expected: models.ProjectStatusApproved},
		{name: "Mixed case", input: "Rejected", expected: models.ProjectStatusRejected},
		{name: "Padded", input: "  PENDING ", expected: models.ProjectStatusPending},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			updated := submittedProject()
			updated.Status = tc.expected
			suite.mockProjectRepo.EXPECT().UpdateStatus(uint(11), tc.expected).Return(nil)
			suite.mockProjectRepo.EXPECT().GetByID(uint(11)).Return(updated, nil)

			resp, err := suite.projectService.UpdateStatus(11, &service.UpdateStatusRequest{Status: tc.input})

			assert.NoError(t, err)
			assert.Equal(t, string(tc.expected), resp.Status)
		})
	}
}

func (suite *ProjectServiceTestSuite) TestUpdateStatus_Invalid() {
	resp, err := suite.projectService.UpdateStatus(11, &service.UpdateStatusRequest{Status: "archived"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestUpdateStatus_NotFound() {
	suite.mockProjectRepo.EXPECT().UpdateStatus(uint(99), models.ProjectStatusApproved).Return(gorm.ErrRecordNotFound)

	resp, err := suite.projectService.UpdateStatus(99, &service.UpdateStatusRequest{Status: "approved"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestUpsertPhases_PassesOnlyProvidedFields() {
	marks := 18
	remarks := "Good progress"
	suite.mockProjectRepo.EXPECT().GetByID(uint(11)).Return(submittedProject(), nil)
	suite.mockPhaseRepo.EXPECT().Upsert(uint(11), repository.PhaseUpdate{Phase2Marks: &marks, Phase2Remarks: &remarks}).
		Return(&models.ProjectPhase{SubmittedProjectID: 11, Phase1Marks: 20, Phase2Marks: 18, Phase2Remarks: remarks}, nil)

	resp, err := suite.projectService.UpsertPhases(11, &service.UpsertPhasesRequest{Phase2Marks: &marks, Phase2Remarks: &remarks})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 20, resp.Phase1Marks)
	assert.Equal(suite.T(), 18, resp.Phase2Marks)
	assert.Equal(suite.T(), "Good progress", resp.Phase2Remarks)
}

func (suite *ProjectServiceTestSuite) TestUpsertPhases_OutOfRange() {
	marks := 150

	resp, err := suite.projectService.UpsertPhases(11, &service.UpsertPhasesRequest{Phase1Marks: &marks})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestUpsertPhases_ProjectNotFound() {
	marks := 10
	suite.mockProjectRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.projectService.UpsertPhases(99, &service.UpsertPhasesRequest{Phase1Marks: &marks})

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestGetPhases_NotFound() {
	suite.mockPhaseRepo.EXPECT().GetByProjectID(uint(11)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.projectService.GetPhases(11)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectPhaseNotFound)
}

func (suite *ProjectServiceTestSuite) TestListArchived() {
	suite.mockArchiveRepo.EXPECT().GetAll().Return([]models.ArchivedProject{
		{ProjectID: 1, Title: "Chat Bot", Synopsis: "NLP chatbot"},
	}, nil)

	resp, err := suite.projectService.ListArchived()

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	assert.Equal(suite.T(), "Chat Bot", resp[0].Title)
}

func (suite *ProjectServiceTestSuite) TestCreateArchived() {
	suite.mockArchiveRepo.EXPECT().GetByTitle("Chat Bot").Return(nil, gorm.ErrRecordNotFound)
	suite.mockArchiveRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.ArchivedProject) error {
		p.ProjectID = 5
		return nil
	})

	resp, err := suite.projectService.CreateArchived(&service.CreateArchivedProjectRequest{Title: "Chat Bot", Synopsis: "NLP chatbot"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(5), resp.ProjectID)
}

func (suite *ProjectServiceTestSuite) TestCreateArchived_Duplicate() {
	suite.mockArchiveRepo.EXPECT().GetByTitle("Chat Bot").Return(&models.ArchivedProject{ProjectID: 1, Title: "Chat Bot"}, nil)

	_, err := suite.projectService.CreateArchived(&service.CreateArchivedProjectRequest{Title: "Chat Bot"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrArchivedProjectExists)
}

func (suite *ProjectServiceTestSuite) TestCreateArchived_RepositoryError() {
	suite.mockArchiveRepo.EXPECT().GetByTitle("Chat Bot").Return(nil, errors.New("timeout"))

	_, err := suite.projectService.CreateArchived(&service.CreateArchivedProjectRequest{Title: "Chat Bot"})

	assert.ErrorContains(suite.T(), err, "timeout")
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
