package models

import "time"

// NotificationType values come from the backend; the client resolves them to
// routes through the notifications package lookup table.
type NotificationType string

const (
	NotifSkillApprovalNeeded NotificationType = "skill_approval_needed"
	NotifApplicationUpdate   NotificationType = "application_update"
	NotifJobPosted           NotificationType = "job_posted"
	NotifReadinessVerified   NotificationType = "readiness_verified"
	NotifScamReportComment   NotificationType = "scam_report_comment"
	NotifAnnouncement        NotificationType = "announcement"
)

// Notification is a read/unread, typed, timestamped message with an optional
// deep link. When Link is empty the client derives one from Type + RelatedID.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	RelatedID string           `json:"relatedEntityId,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}