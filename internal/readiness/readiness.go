// Package readiness holds the job-readiness criteria model and the merge
// that derives a school's effective criteria list from its own config, other
// schools' shared configs, and the Common pool.
package readiness

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchoolCommon is the shared pool every school inherits from.
const SchoolCommon = "Common"

// CriterionStatus tracks a student's progress on one criterion.
type CriterionStatus string

const (
	CriterionPending   CriterionStatus = "pending"
	CriterionCompleted CriterionStatus = "completed"
	CriterionVerified  CriterionStatus = "verified"
)

// ParseCriterionStatus converts a raw string to a CriterionStatus.
func ParseCriterionStatus(s string) (CriterionStatus, error) {
	st := CriterionStatus(s)
	switch st {
	case CriterionPending, CriterionCompleted, CriterionVerified:
		return st, nil
	}
	return "", fmt.Errorf("unknown criterion status %q", s)
}

// Criterion is one job-readiness requirement, keyed by a stable string id.
// TargetSchools lists other schools the owning school shares it with.
type Criterion struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	TargetSchools []string `json:"targetSchools,omitempty"`
}

// Config is one school's criteria document.
type Config struct {
	School   string      `json:"school"`
	Criteria []Criterion `json:"criteria"`
}

func (c Config) MarshalBinary() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Config) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, c)
}

// ConfigList exists so the full set of documents can round-trip through the
// cache.
type ConfigList []Config

func (l ConfigList) MarshalBinary() ([]byte, error) {
	return json.Marshal(l)
}

func (l *ConfigList) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, l)
}

// Progress is a student's state against one criterion.
type Progress struct {
	CriterionID string          `json:"criterionId"`
	Status      CriterionStatus `json:"status"`
	Rating      int             `json:"rating,omitempty"`
	Comment     string          `json:"comment,omitempty"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Record is a student's progress document for one school's criteria list.
type Record struct {
	ID        string     `json:"id"`
	StudentID string     `json:"studentId"`
	School    string     `json:"school"`
	Items     []Progress `json:"items"`
}
