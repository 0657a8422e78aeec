package api

import (
	"context"
	"net/url"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/readiness"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"go.uber.org/zap"
)

const readinessConfigsKey = "readiness:configs"

// ListReadinessConfigs returns every school's criteria document, including
// Common. The readiness package merges them into one school's effective view.
// The full set is cached briefly since every board load needs all of it.
func (c *Client) ListReadinessConfigs(ctx context.Context) ([]readiness.Config, error) {
	ctx, span := tracer.Start(ctx, "ListReadinessConfigs")
	defer span.End()

	var cached readiness.ConfigList
	err := c.cache.Get(ctx, readinessConfigsKey, &cached)
	if err == nil {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		return cached, nil
	} else if err != cache.ErrNotFound {
		span.SetAttributes(telemetry.String("cache.result", "error"))
		c.logger.Warn("cache error for readiness configs", zap.Error(err))
	} else {
		span.SetAttributes(telemetry.String("cache.result", "miss"))
	}

	var configs readiness.ConfigList
	if err := c.get(ctx, "/job-readiness/configs", nil, &configs); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("configs.count", len(configs)))

	if err := c.cache.Set(ctx, readinessConfigsKey, configs, c.config.CacheTTL); err != nil {
		c.logger.Warn("failed to cache readiness configs", zap.Error(err))
	}
	return configs, nil
}

// invalidateConfigs drops the cached documents after any criterion edit so
// the next board load sees the change.
func (c *Client) invalidateConfigs(ctx context.Context) {
	if err := c.cache.Delete(ctx, readinessConfigsKey); err != nil {
		c.logger.Warn("failed to invalidate readiness configs", zap.Error(err))
	}
}

type CriterionInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	TargetSchools []string `json:"targetSchools,omitempty"`
}

// CreateCriterion adds a criterion to the given school's document. The server
// rejects edits against documents the caller's role cannot own.
func (c *Client) CreateCriterion(ctx context.Context, school string, input CriterionInput) (*readiness.Criterion, error) {
	ctx, span := tracer.Start(ctx, "CreateCriterion")
	defer span.End()

	var criterion readiness.Criterion
	if err := c.post(ctx, "/job-readiness/configs/"+url.PathEscape(school)+"/criteria", input, &criterion); err != nil {
		span.RecordError(err)
		return nil, err
	}
	c.invalidateConfigs(ctx)
	return &criterion, nil
}

func (c *Client) UpdateCriterion(ctx context.Context, school, criterionID string, input CriterionInput) (*readiness.Criterion, error) {
	ctx, span := tracer.Start(ctx, "UpdateCriterion")
	defer span.End()

	var criterion readiness.Criterion
	if err := c.put(ctx, "/job-readiness/configs/"+url.PathEscape(school)+"/criteria/"+criterionID, input, &criterion); err != nil {
		span.RecordError(err)
		return nil, err
	}
	c.invalidateConfigs(ctx)
	return &criterion, nil
}

func (c *Client) DeleteCriterion(ctx context.Context, school, criterionID string) error {
	ctx, span := tracer.Start(ctx, "DeleteCriterion")
	defer span.End()

	if err := c.delete(ctx, "/job-readiness/configs/"+url.PathEscape(school)+"/criteria/"+criterionID); err != nil {
		return err
	}
	c.invalidateConfigs(ctx)
	return nil
}

// ListReadinessRecords returns student progress records for one school.
func (c *Client) ListReadinessRecords(ctx context.Context, school string) ([]readiness.Record, error) {
	ctx, span := tracer.Start(ctx, "ListReadinessRecords")
	defer span.End()

	query := url.Values{}
	if school != "" {
		query.Set("school", school)
	}

	var records []readiness.Record
	if err := c.get(ctx, "/job-readiness/records", query, &records); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("records.count", len(records)))
	return records, nil
}

type ProgressInput struct {
	Status  readiness.CriterionStatus `json:"status"`
	Rating  int                       `json:"rating,omitempty"`
	Comment string                    `json:"comment,omitempty"`
}

// UpdateProgress sets a student's state on one criterion.
func (c *Client) UpdateProgress(ctx context.Context, recordID, criterionID string, input ProgressInput) (*readiness.Record, error) {
	ctx, span := tracer.Start(ctx, "UpdateProgress")
	defer span.End()

	if _, err := readiness.ParseCriterionStatus(string(input.Status)); err != nil {
		return nil, err
	}

	var record readiness.Record
	if err := c.put(ctx, "/job-readiness/records/"+recordID+"/items/"+criterionID, input, &record); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &record, nil
}
