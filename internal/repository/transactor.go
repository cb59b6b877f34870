package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Unique index names the submission flow distinguishes when an insert collides
const (
	ConstraintTeamName    = "idx_teams_team_name"
	ConstraintMemberUSN   = "idx_team_members_usn"
	ConstraintProjectTeam = "idx_submitted_projects_team_id"
)

const uniqueViolationCode = "23505"

// Repositories groups the repositories that take part in a submission transaction
type Repositories struct {
	Teams    TeamRepositoryInterface
	Projects SubmittedProjectRepositoryInterface
	Mentors  MentorRepositoryInterface
}

// Transactor opens GORM transactions and hands out transaction-bound repositories
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction runs fn in one transaction. Returning an error, or panicking, rolls back.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repositories{
			Teams:    NewTeamRepository(tx),
			Projects: NewSubmittedProjectRepository(tx),
			Mentors:  NewMentorRepository(tx),
		})
	})
}

// UniqueViolation reports whether err is a Postgres unique violation and returns the
// underlying error so callers can inspect the constraint name and detail.
func UniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr, true
	}
	return nil, false
}
