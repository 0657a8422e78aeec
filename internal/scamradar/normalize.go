package scamradar

// Verdict thresholds when the backend omits the band.
const (
	safeThreshold    = 72
	warningThreshold = 40
)

// defaultResources are shown whenever the analysis carries no links of its
// own: the national cyber-crime portal, its helpline, and two employer-review
// sites students can cross-check offers against.
var defaultResources = []Resource{
	{Label: "National Cyber Crime Reporting Portal", URL: "https://cybercrime.gov.in"},
	{Label: "Cyber Crime Helpline 1930", URL: "tel:1930"},
	{Label: "Glassdoor company reviews", URL: "https://www.glassdoor.co.in/Reviews"},
	{Label: "AmbitionBox company reviews", URL: "https://www.ambitionbox.com/reviews"},
}

// RawAnalysis mirrors the analysis endpoint response. Pointer fields
// distinguish "omitted" from zero.
type RawAnalysis struct {
	TrustScore int        `json:"trustScore"`
	Verdict    *Verdict   `json:"verdict,omitempty"`
	SubScores  struct {
		OfferRealism       *int `json:"offerRealism,omitempty"`
		CompanyCredibility *int `json:"companyCredibility,omitempty"`
		ContactLegitimacy  *int `json:"contactLegitimacy,omitempty"`
		PaymentSafety      *int `json:"paymentSafety,omitempty"`
	} `json:"subScores"`
	Signals   []string   `json:"signals"`
	Resources []Resource `json:"resources"`
	Summary   string     `json:"summary"`
}

// BandVerdict maps a trust score to its verdict band.
func BandVerdict(trustScore int) Verdict {
	switch {
	case trustScore >= safeThreshold:
		return VerdictSafe
	case trustScore >= warningThreshold:
		return VerdictWarning
	default:
		return VerdictDanger
	}
}

// Normalize fills in whatever the backend left out: missing sub-scores fall
// back to derivations of the trust score, a missing verdict is banded from
// fixed thresholds, and empty resources get the default verification list.
func Normalize(raw RawAnalysis) Analysis {
	analysis := Analysis{
		TrustScore: clampScore(raw.TrustScore),
		Signals:    raw.Signals,
		Resources:  raw.Resources,
		Summary:    raw.Summary,
	}

	if raw.Verdict != nil {
		analysis.Verdict = *raw.Verdict
	} else {
		analysis.Verdict = BandVerdict(analysis.TrustScore)
	}

	analysis.SubScores = SubScores{
		OfferRealism:       subScore(raw.SubScores.OfferRealism, analysis.TrustScore-5),
		CompanyCredibility: subScore(raw.SubScores.CompanyCredibility, analysis.TrustScore),
		ContactLegitimacy:  subScore(raw.SubScores.ContactLegitimacy, analysis.TrustScore),
		PaymentSafety:      subScore(raw.SubScores.PaymentSafety, analysis.TrustScore),
	}

	if analysis.Signals == nil {
		analysis.Signals = []string{}
	}
	if len(analysis.Resources) == 0 {
		analysis.Resources = defaultResources
	}

	return analysis
}

func subScore(raw *int, fallback int) int {
	if raw != nil {
		return clampScore(*raw)
	}
	return clampScore(fallback)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
