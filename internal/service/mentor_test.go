package service_test

import (
	"testing"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database/models"
	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/mocks"
	"project-intake-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MentorServiceTestSuite defines the test suite for MentorService
type MentorServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMentorRepo *mocks.MockMentorRepositoryInterface
	mentorService  *service.MentorService
}

// SetupTest sets up the test suite
func (suite *MentorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMentorRepo = mocks.NewMockMentorRepositoryInterface(suite.ctrl)
	suite.mentorService = service.NewMentorService(suite.mockMentorRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *MentorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MentorServiceTestSuite) TestCreateMentor_Success() {
	suite.mockMentorRepo.EXPECT().GetByEmail("rao@college.edu").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMentorRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Teacher) error {
		assert.Equal(suite.T(), "CSE", t.Dept)
		assert.Equal(suite.T(), 0, t.TotalProjects)
		t.TeacherID = 3
		return nil
	})

	resp, err := suite.mentorService.CreateMentor(&service.CreateMentorRequest{
		Name:  "Dr. Rao",
		Dept:  "CSE",
		Email: "Rao@College.edu",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(3), resp.TeacherID)
	assert.Equal(suite.T(), "rao@college.edu", resp.Email)
	assert.Equal(suite.T(), config.MentorCapacity, resp.RemainingCapacity)
}

func (suite *MentorServiceTestSuite) TestCreateMentor_DuplicateEmail() {
	suite.mockMentorRepo.EXPECT().GetByEmail("rao@college.edu").Return(&models.Teacher{TeacherID: 3}, nil)

	_, err := suite.mentorService.CreateMentor(&service.CreateMentorRequest{Name: "Dr. Rao", Dept: "CSE", Email: "rao@college.edu"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMentorExists)
}

func (suite *MentorServiceTestSuite) TestCreateMentor_Validation() {
	_, err := suite.mentorService.CreateMentor(&service.CreateMentorRequest{Name: "Dr. Rao", Email: "rao@college.edu"})

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	assert.Equal(suite.T(), "Dept", verr.Field)
}

func (suite *MentorServiceTestSuite) TestGetMentor_NotFound() {
	suite.mockMentorRepo.EXPECT().GetByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.mentorService.GetMentor(9)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMentorNotFound)
}

func (suite *MentorServiceTestSuite) TestListMentors() {
	testCases := []struct {
		name   string
		dept   string
		expect func()
	}{
		{
			name: "All departments",
			dept: "",
			expect: func() {
				suite.mockMentorRepo.EXPECT().GetAll().Return([]models.Teacher{{TeacherID: 1, Dept: "CSE", TotalProjects: 5}}, nil)
			},
		},
		{
			name: "One department",
			dept: " CSE ",
			expect: func() {
				suite.mockMentorRepo.EXPECT().GetByDept("CSE").Return([]models.Teacher{{TeacherID: 1, Dept: "CSE", TotalProjects: 5}}, nil)
			},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			tc.expect()

			resp, err := suite.mentorService.ListMentors(tc.dept)

			assert.NoError(t, err)
			if assert.Len(t, resp, 1) {
				assert.Equal(t, 0, resp[0].RemainingCapacity)
				assert.Equal(t, config.MentorCapacity, resp[0].Capacity)
			}
		})
	}
}

// TestMentorServiceTestSuite runs the test suite
func TestMentorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MentorServiceTestSuite))
}
