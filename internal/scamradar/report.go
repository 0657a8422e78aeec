// Package scamradar normalizes AI scam-analysis responses and runs the local
// pre-screen phrase scan. All actual scam-pattern analysis happens behind the
// API; the client only fills fallbacks and derives the verdict band when the
// backend omits it.
package scamradar

import (
	"encoding/json"
	"time"
)

// Verdict is the trust band displayed for an analyzed offer.
type Verdict string

const (
	VerdictSafe    Verdict = "SAFE"
	VerdictWarning Verdict = "WARNING"
	VerdictDanger  Verdict = "DANGER"
)

// SubScores break the trust score down by dimension; any of them may be
// missing in the raw response.
type SubScores struct {
	OfferRealism       int `json:"offerRealism"`
	CompanyCredibility int `json:"companyCredibility"`
	ContactLegitimacy  int `json:"contactLegitimacy"`
	PaymentSafety      int `json:"paymentSafety"`
}

// Resource is a verification link shown alongside an analysis.
type Resource struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Analysis is the normalized trust assessment of one job offer.
type Analysis struct {
	TrustScore int        `json:"trustScore"`
	Verdict    Verdict    `json:"verdict"`
	SubScores  SubScores  `json:"subScores"`
	Signals    []string   `json:"signals"`
	Resources  []Resource `json:"resources"`
	Summary    string     `json:"summary"`
}

// Comment is one entry in a report's discussion thread.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	ParentID  string    `json:"parentId,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report is a community scam report: the analysis plus voting counters and a
// comment thread, displayed as returned.
type Report struct {
	ID        string    `json:"id"`
	OfferText string    `json:"offerText"`
	Employer  string    `json:"employer,omitempty"`
	Analysis  Analysis  `json:"analysis"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Report) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Report) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}
