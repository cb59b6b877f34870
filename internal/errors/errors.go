package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// DuplicateMemberError is returned when two members of one submission share a USN.
type DuplicateMemberError struct {
	USN string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("duplicate USN %s in request", e.USN)
}

// Is matches any DuplicateMemberError when the target carries no USN.
func (e *DuplicateMemberError) Is(target error) bool {
	t, ok := target.(*DuplicateMemberError)
	if !ok {
		return false
	}
	return t.USN == "" || e.USN == t.USN
}

// AlreadyOnTeamError is returned when a member already belongs to a committed team.
type AlreadyOnTeamError struct {
	USN      string
	TeamName string
}

func (e *AlreadyOnTeamError) Error() string {
	if e.TeamName == "" {
		return fmt.Sprintf("student %s is already in a team", e.USN)
	}
	return fmt.Sprintf("student %s is already in team '%s'", e.USN, e.TeamName)
}

// Is matches any AlreadyOnTeamError when the target carries no USN.
func (e *AlreadyOnTeamError) Is(target error) bool {
	t, ok := target.(*AlreadyOnTeamError)
	if !ok {
		return false
	}
	return t.USN == "" || e.USN == t.USN
}

// DuplicateTeamNameError is returned when the team name is already taken.
type DuplicateTeamNameError struct {
	TeamName string
}

func (e *DuplicateTeamNameError) Error() string {
	if e.TeamName == "" {
		return "team name already exists"
	}
	return fmt.Sprintf("team name '%s' already exists", e.TeamName)
}

// Is matches any DuplicateTeamNameError when the target carries no name.
func (e *DuplicateTeamNameError) Is(target error) bool {
	t, ok := target.(*DuplicateTeamNameError)
	if !ok {
		return false
	}
	return t.TeamName == "" || e.TeamName == t.TeamName
}

// NoMentorAvailableError is returned when every mentor of a department is at capacity.
type NoMentorAvailableError struct {
	Department string
}

func (e *NoMentorAvailableError) Error() string {
	return fmt.Sprintf("no mentor available in %s", e.Department)
}

// Is matches any NoMentorAvailableError when the target carries no department.
func (e *NoMentorAvailableError) Is(target error) bool {
	t, ok := target.(*NoMentorAvailableError)
	if !ok {
		return false
	}
	return t.Department == "" || e.Department == t.Department
}

// EmptyInputError is returned when an operation that needs at least one item gets none.
type EmptyInputError struct {
	Operation string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Operation)
}

// Is matches any EmptyInputError.
func (e *EmptyInputError) Is(target error) bool {
	_, ok := target.(*EmptyInputError)
	return ok
}

// Entity Not Found Errors
var (
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrMentorNotFound       = &NotFoundError{Entity: "mentor"}
	ErrProjectPhaseNotFound = &NotFoundError{Entity: "project phase"}
)

// Already Exists Errors
var (
	ErrMentorExists          = &AlreadyExistsError{Entity: "mentor", Context: "with this email"}
	ErrArchivedProjectExists = &AlreadyExistsError{Entity: "archived project", Context: "with this title"}
)

// Business Logic Errors
var (
	ErrTeamSizeMismatch  = errors.New("team size does not match number of members")
	ErrIndexNotReady     = errors.New("vector index not ready: build or load it first")
	ErrIndexArtifactLost = errors.New("vector index artifacts incomplete: index and metadata must exist together")
	ErrIndexCorrupt      = errors.New("vector index artifacts are inconsistent")
	ErrEmptyIndexInput   = &EmptyInputError{Operation: "build index"}
)

// Configuration Errors
var (
	ErrJudgeAPIKeyMissing = &ConfigurationError{Message: "judge API key not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsSubmissionConflict reports whether err is one of the submission validation failures
// that the caller must fix before resubmitting.
func IsSubmissionConflict(err error) bool {
	var dup *DuplicateMemberError
	var onTeam *AlreadyOnTeamError
	var teamName *DuplicateTeamNameError
	return errors.As(err, &dup) || errors.As(err, &onTeam) || errors.As(err, &teamName)
}

// IsNoMentorAvailable checks if an error is a NoMentorAvailableError
func IsNoMentorAvailable(err error) bool {
	var noMentor *NoMentorAvailableError
	return errors.As(err, &noMentor)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
