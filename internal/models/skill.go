package models

import "time"

// Skill is a tag a student claims and a campus POC approves.
type Skill struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Approved   bool   `json:"approved"`
	ApprovedBy string `json:"approvedBy,omitempty"`
}

// SkillApproval is a pending approval request as seen by a campus POC.
type SkillApproval struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	SkillName   string    `json:"skillName"`
	Evidence    string    `json:"evidence,omitempty"`
	Status      string    `json:"status"` // pending | approved | rejected
	RequestedAt time.Time `json:"requestedAt"`
}

// Settings is the administrative settings document.
type Settings struct {
	PlacementCycleID  string `json:"placementCycleId"`
	AllowSelfReports  bool   `json:"allowSelfReports"`
	ScamRadarEnabled  bool   `json:"scamRadarEnabled"`
	NotifyOnJobPosted bool   `json:"notifyOnJobPosted"`
}
