package testutils

import (
	"fmt"
	"strings"
	"sync/atomic"

	"project-intake-backend/internal/database/models"
)

var seq atomic.Int64

func next() int64 {
	return seq.Add(1)
}

// TeacherFactory builds mentors with unique emails
type TeacherFactory struct{}

// NewTeacherFactory creates a new TeacherFactory
func NewTeacherFactory() *TeacherFactory {
	return &TeacherFactory{}
}

// Create returns an unsaved mentor of dept with no assigned projects
func (f *TeacherFactory) Create(dept string) *models.Teacher {
	n := next()
	return &models.Teacher{
		Name:  fmt.Sprintf("Mentor %d", n),
		Dept:  dept,
		Email: fmt.Sprintf("mentor%d@college.edu", n),
	}
}

// WithLoad returns a mentor already supervising load projects
func (f *TeacherFactory) WithLoad(dept string, load int) *models.Teacher {
	t := f.Create(dept)
	t.TotalProjects = load
	return t
}

// TeamFactory builds teams with unique names and USNs
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create returns an unsaved team of size members in dept
func (f *TeamFactory) Create(dept string, size int) *models.Team {
	n := next()
	team := &models.Team{TeamName: fmt.Sprintf("Team %d", n), TeamSize: size}
	for i := 0; i < size; i++ {
		team.Members = append(team.Members, models.TeamMember{
			Name:     fmt.Sprintf("Student %d-%d", n, i),
			USN:      fmt.Sprintf("1RV%s%03d%d", strings.ToUpper(dept[:min(2, len(dept))]), n, i),
			Email:    fmt.Sprintf("student%d.%d@college.edu", n, i),
			Dept:     dept,
			Position: i,
		})
	}
	return team
}

// ArchivedProjectFactory builds prior projects
type ArchivedProjectFactory struct{}

// NewArchivedProjectFactory creates a new ArchivedProjectFactory
func NewArchivedProjectFactory() *ArchivedProjectFactory {
	return &ArchivedProjectFactory{}
}

// Create returns an unsaved archived project
func (f *ArchivedProjectFactory) Create(title, synopsis string) *models.ArchivedProject {
	return &models.ArchivedProject{Title: title, Synopsis: synopsis}
}

// FactorySet bundles every factory for suites that need several
type FactorySet struct {
	Teacher  *TeacherFactory
	Team     *TeamFactory
	Archived *ArchivedProjectFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Teacher:  NewTeacherFactory(),
		Team:     NewTeamFactory(),
		Archived: NewArchivedProjectFactory(),
	}
}
