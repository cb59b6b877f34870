package models

import "strings"

// ProjectStatus is the review state of a submitted project
type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "pending"
	ProjectStatusApproved ProjectStatus = "approved"
	ProjectStatusRejected ProjectStatus = "rejected"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusApproved, ProjectStatusRejected:
		return true
	}
	return false
}

// ParseProjectStatus normalizes s and reports whether it names a known status.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	status := ProjectStatus(strings.ToLower(strings.TrimSpace(s)))
	return status, status.IsValid()
}

