package screens_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache/memory"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/readiness"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/screens"

	"go.uber.org/zap"
)

func newBoardClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:    server.URL,
		APITimeout:    5 * time.Second,
		ScamAPIPath:   "/scam-reports/analyze",
		UploadMaxSize: 5 << 20,
		CacheTTL:      time.Minute,
	}
	client, err := api.NewClient(zap.NewNop(), cfg, memory.New(cache.Options{}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func boardFixture() []readiness.Config {
	return []readiness.Config{
		{
			School: readiness.SchoolCommon,
			Criteria: []readiness.Criterion{
				{ID: "c-resume", Title: "Resume reviewed"},
			},
		},
		{
			School: "School of Programming",
			Criteria: []readiness.Criterion{
				{ID: "c-dsa", Title: "DSA fundamentals"},
				{ID: "c-shared", Title: "Mock interview", TargetSchools: []string{"School of Design"}},
			},
		},
	}
}

func boardHandler(t *testing.T, deletes *atomic.Int64) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/job-readiness/configs", func(w http.ResponseWriter, r *http.Request) {
		writeBoardJSON(w, boardFixture())
	})
	mux.HandleFunc("/job-readiness/records", func(w http.ResponseWriter, r *http.Request) {
		writeBoardJSON(w, []readiness.Record{{ID: "r-1", StudentID: "u-1", School: r.URL.Query().Get("school")}})
	})
	mux.HandleFunc("/job-readiness/configs/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			if deletes != nil {
				deletes.Add(1)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeBoardJSON(w, readiness.Criterion{ID: "c-new"})
	})
	return mux
}

func writeBoardJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestReadinessBoard_LoadMergesSelectedSchool(t *testing.T) {
	client := newBoardClient(t, boardHandler(t, nil))
	b := screens.NewReadinessBoard(client, "School of Programming", zap.NewNop())

	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	criteria := b.Criteria()
	if len(criteria) != 3 {
		t.Fatalf("expected 3 merged criteria, got %d", len(criteria))
	}
	byID := map[string]bool{}
	for _, c := range criteria {
		byID[c.ID] = c.Editable
	}
	if !byID["c-dsa"] {
		t.Error("own criterion must be editable")
	}
	if editable, ok := byID["c-resume"]; !ok || editable {
		t.Error("inherited Common criterion must be present and read-only")
	}
}

func TestReadinessBoard_InheritedCriterionRejectsEdits(t *testing.T) {
	var deletes atomic.Int64
	client := newBoardClient(t, boardHandler(t, &deletes))
	b := screens.NewReadinessBoard(client, "School of Programming", zap.NewNop())
	ctx := context.Background()

	if err := b.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	err := b.DeleteCriterion(ctx, "c-resume")
	if err == nil {
		t.Fatal("expected inherited criterion to be read-only")
	}
	domainErr, ok := err.(*errors.DomainError)
	if !ok || domainErr.Type != errors.ErrTypeInvalidInput {
		t.Errorf("expected invalid input error, got %v", err)
	}
	if deletes.Load() != 0 {
		t.Error("the delete call must never reach the backend")
	}

	if err := b.DeleteCriterion(ctx, "c-dsa"); err != nil {
		t.Fatalf("deleting an own criterion: %v", err)
	}
	if deletes.Load() != 1 {
		t.Errorf("expected 1 backend delete, got %d", deletes.Load())
	}
}

func TestReadinessBoard_UnknownCriterionNotFound(t *testing.T) {
	client := newBoardClient(t, boardHandler(t, nil))
	b := screens.NewReadinessBoard(client, "School of Programming", zap.NewNop())
	ctx := context.Background()

	if err := b.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	err := b.UpdateCriterion(ctx, "c-missing", api.CriterionInput{Title: "x"})
	domainErr, ok := err.(*errors.DomainError)
	if !ok || domainErr.Type != errors.ErrTypeNotFound {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestReadinessBoard_SelectSchoolRemerges(t *testing.T) {
	client := newBoardClient(t, boardHandler(t, nil))
	b := screens.NewReadinessBoard(client, "School of Programming", zap.NewNop())
	ctx := context.Background()

	if err := b.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := b.SelectSchool(ctx, "School of Design"); err != nil {
		t.Fatalf("SelectSchool: %v", err)
	}

	criteria := b.Criteria()
	// Design has no own document: Common plus the criterion shared to it.
	if len(criteria) != 2 {
		t.Fatalf("expected 2 criteria for School of Design, got %d", len(criteria))
	}
	for _, c := range criteria {
		if c.Editable {
			t.Errorf("criterion %s is inherited and must be read-only", c.ID)
		}
	}
}
