//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database/models"
	"project-intake-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MentorRepositoryTestSuite tests the MentorRepository and mentor allocation under a transaction
type MentorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MentorRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MentorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMentorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MentorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MentorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MentorRepositoryTestSuite) TestGetByDept() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Teacher.Create("CSE")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Teacher.Create("ECE")))

	mentors, err := suite.repo.GetByDept("CSE")

	suite.Require().NoError(err)
	suite.Require().Len(mentors, 1)
	suite.Equal("CSE", mentors[0].Dept)
}

func (suite *MentorRepositoryTestSuite) TestFindAvailableForUpdate_LowestIDBelowCapacity() {
	full := suite.factories.Teacher.WithLoad("CSE", config.MentorCapacity)
	open := suite.factories.Teacher.WithLoad("CSE", 2)
	later := suite.factories.Teacher.Create("CSE")
	for _, m := range []*models.Teacher{full, open, later} {
		suite.Require().NoError(suite.repo.Create(m))
	}

	var found *models.Teacher
	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = NewMentorRepository(tx).FindAvailableForUpdate("CSE", config.MentorCapacity)
		return err
	})

	suite.Require().NoError(err)
	suite.Equal(open.TeacherID, found.TeacherID)
}

func (suite *MentorRepositoryTestSuite) TestFindAvailableForUpdate_NoneAvailable() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Teacher.WithLoad("CSE", config.MentorCapacity)))

	_, err := suite.repo.FindAvailableForUpdate("CSE", config.MentorCapacity)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MentorRepositoryTestSuite) TestIncrementLoad() {
	mentor := suite.factories.Teacher.Create("CSE")
	suite.Require().NoError(suite.repo.Create(mentor))

	suite.Require().NoError(suite.repo.IncrementLoad(mentor.TeacherID))

	found, err := suite.repo.GetByID(mentor.TeacherID)
	suite.Require().NoError(err)
	suite.Equal(1, found.TotalProjects)
	suite.ErrorIs(suite.repo.IncrementLoad(9999), gorm.ErrRecordNotFound)
}

func (suite *MentorRepositoryTestSuite) TestIncrementLoad_CapacityConstraint() {
	mentor := suite.factories.Teacher.WithLoad("CSE", config.MentorCapacity)
	suite.Require().NoError(suite.repo.Create(mentor))

	err := suite.repo.IncrementLoad(mentor.TeacherID)

	suite.Error(err)
}

// Several transactions race for the last free slot of a department. The advisory lock
// and row lock together must let exactly one of them claim it.
func (suite *MentorRepositoryTestSuite) TestConcurrentAllocation_LastSlot() {
	mentor := suite.factories.Teacher.WithLoad("CSE", config.MentorCapacity-1)
	suite.Require().NoError(suite.repo.Create(mentor))

	transactor := NewTransactor(suite.baseTestSuite.DB)
	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		claimed   int
		exhausted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := transactor.WithinTransaction(context.Background(), func(repos *Repositories) error {
				if err := repos.Mentors.LockDepartment("CSE"); err != nil {
					return err
				}
				m, err := repos.Mentors.FindAvailableForUpdate("CSE", config.MentorCapacity)
				if err != nil {
					return err
				}
				return repos.Mentors.IncrementLoad(m.TeacherID)
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				claimed++
			case errors.Is(err, gorm.ErrRecordNotFound):
				exhausted++
			default:
				suite.T().Errorf("unexpected allocation error: %v", err)
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, claimed)
	suite.Equal(workers-1, exhausted)

	found, err := suite.repo.GetByID(mentor.TeacherID)
	suite.Require().NoError(err)
	suite.Equal(config.MentorCapacity, found.TotalProjects)
}

// TestMentorRepositoryTestSuite runs the test suite
func TestMentorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MentorRepositoryTestSuite))
}
