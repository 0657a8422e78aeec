package scamradar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const historyKey = "scamradar:history"

// ScanRecord is one locally kept scan: the advisory tags and, when the
// analysis call succeeded, its normalized result.
type ScanRecord struct {
	ID        string        `json:"id"`
	OfferText string        `json:"offerText"`
	Tags      []AdvisoryTag `json:"tags"`
	Analysis  *Analysis     `json:"analysis,omitempty"`
	ScannedAt time.Time     `json:"scannedAt"`
}

type historyList []ScanRecord

func (l historyList) MarshalBinary() ([]byte, error) {
	return json.Marshal(l)
}

func (l *historyList) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, l)
}

// History is the offline fallback for past scans: readable when the
// server-backed reports feed is down. Entries are capped and deduplicated by
// a UUID derived from the offer text, so re-scanning the same offer updates
// its entry in place.
type History struct {
	cache  cache.Cache
	logger *zap.Logger
	limit  int
}

func NewHistory(c cache.Cache, logger *zap.Logger, limit int) *History {
	if limit <= 0 {
		limit = 50
	}
	return &History{cache: c, logger: logger, limit: limit}
}

// recordID derives a stable UUID from the offer text so identical offers
// collapse into one history entry.
func recordID(offerText string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(offerText)).String()
}

// Add prepends a scan, replacing any prior entry for the same offer text and
// trimming to the cap.
func (h *History) Add(ctx context.Context, offerText string, tags []AdvisoryTag, analysis *Analysis) (ScanRecord, error) {
	record := ScanRecord{
		ID:        recordID(offerText),
		OfferText: offerText,
		Tags:      tags,
		Analysis:  analysis,
		ScannedAt: time.Now().UTC(),
	}

	existing, err := h.List(ctx)
	if err != nil {
		h.logger.Warn("failed to load scan history, starting fresh", zap.Error(err))
		existing = nil
	}

	updated := historyList{record}
	for _, prior := range existing {
		if prior.ID == record.ID {
			continue
		}
		updated = append(updated, prior)
	}
	if len(updated) > h.limit {
		updated = updated[:h.limit]
	}

	if err := h.cache.Set(ctx, historyKey, updated, 0); err != nil {
		return record, err
	}
	return record, nil
}

// List returns the kept scans, newest first.
func (h *History) List(ctx context.Context) ([]ScanRecord, error) {
	var records historyList
	err := h.cache.Get(ctx, historyKey, &records)
	if err == cache.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Clear drops the local history.
func (h *History) Clear(ctx context.Context) error {
	return h.cache.Delete(ctx, historyKey)
}
