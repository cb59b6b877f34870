package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamFactory_ProducesUniqueTeams(t *testing.T) {
	f := NewTeamFactory()

	a := f.Create("CSE", 4)
	b := f.Create("CSE", 4)

	require.Len(t, a.Members, 4)
	assert.Equal(t, 4, a.TeamSize)
	assert.NotEqual(t, a.TeamName, b.TeamName)

	seen := make(map[string]bool)
	for _, m := range append(a.Members, b.Members...) {
		assert.Equal(t, "CSE", m.Dept)
		assert.False(t, seen[m.USN], "duplicate USN %s", m.USN)
		seen[m.USN] = true
	}
}

func TestTeacherFactory_WithLoad(t *testing.T) {
	f := NewTeacherFactory()

	mentor := f.WithLoad("ECE", 3)

	assert.Equal(t, "ECE", mentor.Dept)
	assert.Equal(t, 3, mentor.TotalProjects)
	assert.NotEqual(t, mentor.Email, f.Create("ECE").Email)
}
