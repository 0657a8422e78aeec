package screens

import (
	"context"
	"sync"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/readiness"

	"go.uber.org/zap"
)

// ReadinessBoard shows one school's effective criteria list next to student
// progress records. Configs and records are independent fetches; the merged
// view is recomputed whenever the selected school or the configs change.
type ReadinessBoard struct {
	client *api.Client
	logger *zap.Logger

	Records *ListController[readiness.Record]

	mu       sync.RWMutex
	school   string
	configs  []readiness.Config
	merged   []readiness.MergedCriterion
}

func NewReadinessBoard(client *api.Client, school string, logger *zap.Logger) *ReadinessBoard {
	b := &ReadinessBoard{client: client, logger: logger, school: school}

	fetch := func(ctx context.Context, _ Filter) ([]readiness.Record, error) {
		return client.ListReadinessRecords(ctx, b.School())
	}
	b.Records = NewListController[readiness.Record]("readiness-records", FilterServer, fetch, nil, logger)
	return b
}

// Load fetches configs and records in parallel, then recomputes the merge.
func (b *ReadinessBoard) Load(ctx context.Context) error {
	err := FetchAll(ctx,
		func(ctx context.Context) error {
			configs, err := b.client.ListReadinessConfigs(ctx)
			if err != nil {
				return err
			}
			b.mu.Lock()
			b.configs = configs
			b.mu.Unlock()
			return nil
		},
		b.Records.Load,
	)
	if err != nil {
		return err
	}

	b.remerge()
	return nil
}

// SelectSchool switches the view to another school and refetches its records.
func (b *ReadinessBoard) SelectSchool(ctx context.Context, school string) error {
	b.mu.Lock()
	b.school = school
	b.mu.Unlock()

	b.remerge()
	return b.Records.Load(ctx)
}

func (b *ReadinessBoard) remerge() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.merged = readiness.Merge(b.school, b.configs)
}

func (b *ReadinessBoard) School() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.school
}

// Criteria returns the merged criteria list for the selected school.
func (b *ReadinessBoard) Criteria() []readiness.MergedCriterion {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]readiness.MergedCriterion(nil), b.merged...)
}

// CreateCriterion adds a criterion to the selected school and refetches the
// configs so the merged view reflects it.
func (b *ReadinessBoard) CreateCriterion(ctx context.Context, input api.CriterionInput) error {
	if _, err := b.client.CreateCriterion(ctx, b.School(), input); err != nil {
		return err
	}
	return b.Load(ctx)
}

// UpdateCriterion edits a criterion in the selected view. Inherited criteria
// are read-only here; they must be edited from their origin school.
func (b *ReadinessBoard) UpdateCriterion(ctx context.Context, criterionID string, input api.CriterionInput) error {
	if err := b.requireEditable(criterionID); err != nil {
		return err
	}
	if _, err := b.client.UpdateCriterion(ctx, b.School(), criterionID, input); err != nil {
		return err
	}
	return b.Load(ctx)
}

func (b *ReadinessBoard) DeleteCriterion(ctx context.Context, criterionID string) error {
	if err := b.requireEditable(criterionID); err != nil {
		return err
	}
	if err := b.client.DeleteCriterion(ctx, b.School(), criterionID); err != nil {
		return err
	}
	return b.Load(ctx)
}

func (b *ReadinessBoard) requireEditable(criterionID string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, criterion := range b.merged {
		if criterion.ID != criterionID {
			continue
		}
		if !criterion.Editable {
			return errors.InvalidInput("criterion is inherited from "+criterion.Source+" and read-only here", nil)
		}
		return nil
	}
	return errors.NotFound("criterion not in the current view", nil)
}

// UpdateProgress sets a student's status on one criterion, then refetches the
// records list.
func (b *ReadinessBoard) UpdateProgress(ctx context.Context, recordID, criterionID string, input api.ProgressInput) error {
	return b.Records.Mutate(ctx, func(ctx context.Context) error {
		_, err := b.client.UpdateProgress(ctx, recordID, criterionID, input)
		return err
	})
}
