package models

import (
	"fmt"
	"time"
)

// Status values mirror the application_status enum owned by the backend. The
// client never computes transitions; it validates display values and groups
// them into board columns.
type Status string

const (
	StatusApplied            Status = "applied"
	StatusScreening          Status = "screening"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusInterviewCompleted Status = "interview_completed"
	StatusOfferReceived      Status = "offer_received"
	StatusOfferAccepted      Status = "offer_accepted"
	StatusRejected           Status = "rejected"
	StatusWithdrawn          Status = "withdrawn"
)

// BoardColumn groups statuses for the applications board view.
type BoardColumn string

const (
	ColumnPending BoardColumn = "pending"
	ColumnActive  BoardColumn = "active"
	ColumnClosed  BoardColumn = "closed"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusApplied, StatusScreening, StatusInterviewScheduled, StatusInterviewCompleted,
		StatusOfferReceived, StatusOfferAccepted, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Column returns the board column a status is displayed under.
func (s Status) Column() BoardColumn {
	switch s {
	case StatusApplied, StatusScreening:
		return ColumnPending
	case StatusInterviewScheduled, StatusInterviewCompleted, StatusOfferReceived:
		return ColumnActive
	default:
		return ColumnClosed
	}
}

// Application is a status-tagged record for a job a student applied to through
// the platform.
type Application struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	JobID      string    `json:"jobId"`
	Employer   string    `json:"employer"`
	RoleTitle  string    `json:"roleTitle"`
	Status     Status    `json:"status"`
	AppliedAt  time.Time `json:"appliedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	NextAction string    `json:"nextAction,omitempty"`
}

// SelfApplication is a student-reported application to a job found outside
// the platform. Same status vocabulary, verified by a coordinator.
type SelfApplication struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Employer  string    `json:"employer"`
	RoleTitle string    `json:"roleTitle"`
	JobURL    string    `json:"jobUrl"`
	Status    Status    `json:"status"`
	Verified  bool      `json:"verified"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
