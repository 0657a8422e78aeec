package readiness_test

import (
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/readiness"
)

func configs() []readiness.Config {
	return []readiness.Config{
		{
			School: "Common",
			Criteria: []readiness.Criterion{
				{ID: "c-english", Title: "Spoken English assessment"},
			},
		},
		{
			School: "School of Programming",
			Criteria: []readiness.Criterion{
				{ID: "sop-dsa", Title: "DSA mock interview"},
				{ID: "sop-git", Title: "Git workflow check", TargetSchools: []string{"School of Design"}},
			},
		},
		{
			School: "School of Design",
			Criteria: []readiness.Criterion{
				{ID: "sod-portfolio", Title: "Portfolio review"},
			},
		},
	}
}

func find(t *testing.T, merged []readiness.MergedCriterion, id string) readiness.MergedCriterion {
	t.Helper()
	for _, c := range merged {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("criterion %q not in merged view", id)
	return readiness.MergedCriterion{}
}

func count(merged []readiness.MergedCriterion, id string) int {
	n := 0
	for _, c := range merged {
		if c.ID == id {
			n++
		}
	}
	return n
}

// ── School view ────────────────────────────────────────────────────────────

func TestMerge_SchoolViewUnionsOwnAndCommon(t *testing.T) {
	merged := readiness.Merge("School of Programming", configs())

	own := find(t, merged, "sop-dsa")
	if !own.Editable {
		t.Error("own criterion should be editable")
	}
	if own.Source != "School of Programming" {
		t.Errorf("own criterion source = %q, want School of Programming", own.Source)
	}

	common := find(t, merged, "c-english")
	if common.Editable {
		t.Error("Common criterion must be read-only in a school view")
	}
	if common.Source != "Common" {
		t.Errorf("Common criterion source = %q, want Common", common.Source)
	}

	for _, id := range []string{"sop-dsa", "c-english"} {
		if n := count(merged, id); n != 1 {
			t.Errorf("criterion %q appears %d times, want exactly once", id, n)
		}
	}
}

func TestMerge_SharedCriterionVisibleToTarget(t *testing.T) {
	merged := readiness.Merge("School of Design", configs())

	shared := find(t, merged, "sop-git")
	if shared.Editable {
		t.Error("shared criterion must be read-only in the target school's view")
	}
	if shared.Source != "School of Programming" {
		t.Errorf("shared criterion source = %q, want School of Programming", shared.Source)
	}
}

func TestMerge_SharedCriterionHiddenFromNonTarget(t *testing.T) {
	cfgs := append(configs(), readiness.Config{
		School: "School of Business",
		Criteria: []readiness.Criterion{
			{ID: "sob-pitch", Title: "Pitch practice", TargetSchools: []string{"School of Design"}},
		},
	})
	merged := readiness.Merge("School of Programming", cfgs)
	if n := count(merged, "sob-pitch"); n != 0 {
		t.Errorf("criterion targeted elsewhere leaked into the view (%d entries)", n)
	}
}

func TestMerge_SchoolPrecedenceOverCommon(t *testing.T) {
	cfgs := []readiness.Config{
		{School: "Common", Criteria: []readiness.Criterion{{ID: "x", Title: "common version"}}},
		{School: "A", Criteria: []readiness.Criterion{{ID: "x", Title: "school version"}}},
	}
	merged := readiness.Merge("A", cfgs)

	if n := count(merged, "x"); n != 1 {
		t.Fatalf("criterion x appears %d times, want exactly once", n)
	}
	got := find(t, merged, "x")
	if got.Title != "school version" || !got.Editable {
		t.Errorf("school-specific criterion must override Common, got %+v", got)
	}
}

// ── Common view ────────────────────────────────────────────────────────────

func TestMerge_CommonViewShowsNativeAndShared(t *testing.T) {
	merged := readiness.Merge("Common", configs())

	native := find(t, merged, "c-english")
	if !native.Editable {
		t.Error("native Common criterion should be editable in the Common view")
	}

	// sop-git is explicitly shared, so the Common view includes it read-only.
	shared := find(t, merged, "sop-git")
	if shared.Editable {
		t.Error("shared criterion must be read-only in the Common view")
	}

	// sop-dsa is school-private and must not appear.
	if n := count(merged, "sop-dsa"); n != 0 {
		t.Errorf("school-private criterion leaked into the Common view (%d entries)", n)
	}
}

// ── Determinism ────────────────────────────────────────────────────────────

func TestMerge_OrderIndependent(t *testing.T) {
	cfgs := configs()
	reversed := make([]readiness.Config, len(cfgs))
	for i, cfg := range cfgs {
		reversed[len(cfgs)-1-i] = cfg
	}

	a := readiness.Merge("School of Design", cfgs)
	b := readiness.Merge("School of Design", reversed)

	if len(a) != len(b) {
		t.Fatalf("merge length differs with input order: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Source != b[i].Source || a[i].Editable != b[i].Editable {
			t.Errorf("position %d differs with input order: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMerge_UnknownSchoolFallsBackToCommon(t *testing.T) {
	merged := readiness.Merge("School of Nothing", configs())
	if n := count(merged, "c-english"); n != 1 {
		t.Errorf("unknown school should still inherit Common, got %d entries", n)
	}
}
