package scamradar_test

import (
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/scamradar"
)

// ── Verdict banding ────────────────────────────────────────────────────────

func TestNormalize_VerdictBands(t *testing.T) {
	cases := []struct {
		trustScore int
		want       scamradar.Verdict
	}{
		{80, scamradar.VerdictSafe},
		{72, scamradar.VerdictSafe},
		{71, scamradar.VerdictWarning},
		{50, scamradar.VerdictWarning},
		{40, scamradar.VerdictWarning},
		{39, scamradar.VerdictDanger},
		{30, scamradar.VerdictDanger},
		{0, scamradar.VerdictDanger},
	}
	for _, c := range cases {
		raw := scamradar.RawAnalysis{TrustScore: c.trustScore}
		got := scamradar.Normalize(raw)
		if got.Verdict != c.want {
			t.Errorf("Normalize(trustScore=%d).Verdict = %s, want %s", c.trustScore, got.Verdict, c.want)
		}
	}
}

func TestNormalize_BackendVerdictWins(t *testing.T) {
	verdict := scamradar.VerdictDanger
	raw := scamradar.RawAnalysis{TrustScore: 90, Verdict: &verdict}
	got := scamradar.Normalize(raw)
	if got.Verdict != scamradar.VerdictDanger {
		t.Errorf("backend verdict must not be overridden, got %s", got.Verdict)
	}
}

// ── Sub-score fallbacks ────────────────────────────────────────────────────

func TestNormalize_MissingOfferRealismDerived(t *testing.T) {
	raw := scamradar.RawAnalysis{TrustScore: 50}
	got := scamradar.Normalize(raw)
	if got.SubScores.OfferRealism != 45 {
		t.Errorf("missing offerRealism should default to trustScore-5 = 45, got %d", got.SubScores.OfferRealism)
	}
}

func TestNormalize_OfferRealismClampedAtZero(t *testing.T) {
	raw := scamradar.RawAnalysis{TrustScore: 3}
	got := scamradar.Normalize(raw)
	if got.SubScores.OfferRealism != 0 {
		t.Errorf("offerRealism fallback must clamp at 0, got %d", got.SubScores.OfferRealism)
	}
}

func TestNormalize_PresentSubScoresKept(t *testing.T) {
	realism := 12
	raw := scamradar.RawAnalysis{TrustScore: 90}
	raw.SubScores.OfferRealism = &realism
	got := scamradar.Normalize(raw)
	if got.SubScores.OfferRealism != 12 {
		t.Errorf("present sub-score must be kept, got %d", got.SubScores.OfferRealism)
	}
}

// ── Resource fallbacks ─────────────────────────────────────────────────────

func TestNormalize_DefaultResourcesWhenEmpty(t *testing.T) {
	got := scamradar.Normalize(scamradar.RawAnalysis{TrustScore: 60})
	if len(got.Resources) != 4 {
		t.Fatalf("expected the 4 default verification resources, got %d", len(got.Resources))
	}
}

func TestNormalize_BackendResourcesKept(t *testing.T) {
	raw := scamradar.RawAnalysis{
		TrustScore: 60,
		Resources:  []scamradar.Resource{{Label: "HR contact", URL: "https://example.com"}},
	}
	got := scamradar.Normalize(raw)
	if len(got.Resources) != 1 || got.Resources[0].Label != "HR contact" {
		t.Errorf("backend resources must be kept as-is, got %+v", got.Resources)
	}
}

func TestNormalize_TrustScoreClamped(t *testing.T) {
	if got := scamradar.Normalize(scamradar.RawAnalysis{TrustScore: 140}); got.TrustScore != 100 {
		t.Errorf("trust score must clamp at 100, got %d", got.TrustScore)
	}
	if got := scamradar.Normalize(scamradar.RawAnalysis{TrustScore: -10}); got.TrustScore != 0 {
		t.Errorf("trust score must clamp at 0, got %d", got.TrustScore)
	}
}
