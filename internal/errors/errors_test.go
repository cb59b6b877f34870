package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrProjectNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrMentorNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrProjectNotFound)))
		assert.False(t, IsNotFound(ErrTeamSizeMismatch))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "mentor already exists with this email", ErrMentorExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrArchivedProjectExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "status", Message: "must be pending, approved or rejected"}
		assert.Equal(t, "validation error: status - must be pending, approved or rejected", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestSubmissionErrors(t *testing.T) {
	t.Run("DuplicateMemberError", func(t *testing.T) {
		err := &DuplicateMemberError{USN: "1RV21CS001"}
		assert.Equal(t, "duplicate USN 1RV21CS001 in request", err.Error())
		assert.True(t, errors.Is(err, &DuplicateMemberError{}))
		assert.False(t, errors.Is(err, &DuplicateMemberError{USN: "1RV21CS002"}))
	})

	t.Run("AlreadyOnTeamError names the team", func(t *testing.T) {
		err := &AlreadyOnTeamError{USN: "1RV21CS001", TeamName: "Byte Knights"}
		assert.Equal(t, "student 1RV21CS001 is already in team 'Byte Knights'", err.Error())
		assert.True(t, errors.Is(fmt.Errorf("validate: %w", err), &AlreadyOnTeamError{}))
	})

	t.Run("AlreadyOnTeamError without team", func(t *testing.T) {
		err := &AlreadyOnTeamError{USN: "1RV21CS001"}
		assert.Equal(t, "student 1RV21CS001 is already in a team", err.Error())
	})

	t.Run("DuplicateTeamNameError", func(t *testing.T) {
		err := &DuplicateTeamNameError{TeamName: "Byte Knights"}
		assert.Equal(t, "team name 'Byte Knights' already exists", err.Error())
		assert.True(t, errors.Is(err, &DuplicateTeamNameError{}))
	})

	t.Run("IsSubmissionConflict helper", func(t *testing.T) {
		assert.True(t, IsSubmissionConflict(&DuplicateMemberError{USN: "x"}))
		assert.True(t, IsSubmissionConflict(&AlreadyOnTeamError{USN: "x"}))
		assert.True(t, IsSubmissionConflict(&DuplicateTeamNameError{TeamName: "x"}))
		assert.False(t, IsSubmissionConflict(&NoMentorAvailableError{Department: "CSE"}))
	})
}

func TestNoMentorAvailableError(t *testing.T) {
	err := fmt.Errorf("allocate mentor: %w", &NoMentorAvailableError{Department: "CSE"})

	assert.Equal(t, "allocate mentor: no mentor available in CSE", err.Error())
	assert.True(t, errors.Is(err, &NoMentorAvailableError{}))
	assert.True(t, errors.Is(err, &NoMentorAvailableError{Department: "CSE"}))
	assert.False(t, errors.Is(err, &NoMentorAvailableError{Department: "ECE"}))
	assert.True(t, IsNoMentorAvailable(err))
}

func TestEmptyInputError(t *testing.T) {
	assert.Equal(t, "build index: empty input", ErrEmptyIndexInput.Error())
	assert.True(t, errors.Is(fmt.Errorf("rebuild: %w", ErrEmptyIndexInput), &EmptyInputError{}))
}

func TestConfigurationError(t *testing.T) {
	assert.Equal(t, "judge API key not set", ErrJudgeAPIKeyMissing.Error())
	assert.True(t, IsConfiguration(ErrJudgeAPIKeyMissing))
	assert.False(t, IsConfiguration(ErrIndexNotReady))
}
