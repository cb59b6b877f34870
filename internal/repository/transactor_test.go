package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		expected   bool
		constraint string
	}{
		{
			name:       "Wrapped unique violation",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: ConstraintTeamName}),
			expected:   true,
			constraint: ConstraintTeamName,
		},
		{
			name: "Other Postgres error",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "chk_teachers_total_projects"},
		},
		{
			name: "Plain error",
			err:  errors.New("connection reset"),
		},
		{
			name: "Nil",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pgErr, ok := UniqueViolation(tc.err)

			assert.Equal(t, tc.expected, ok)
			if tc.expected {
				assert.Equal(t, tc.constraint, pgErr.ConstraintName)
			} else {
				assert.Nil(t, pgErr)
			}
		})
	}
}

func TestPhaseUpdate_IsEmpty(t *testing.T) {
	marks := 0
	assert.True(t, PhaseUpdate{}.IsEmpty())
	assert.False(t, PhaseUpdate{Phase3Marks: &marks}.IsEmpty())
}
