package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"go.uber.org/zap"
)

// JobFilter is the server-side filter for the jobs listing. Screens that
// filter client-side pass the zero value and match locally.
type JobFilter struct {
	Cycle  string
	School string
	Search string
	Page   int
}

func (f JobFilter) values() url.Values {
	query := url.Values{}
	if f.Cycle != "" {
		query.Set("cycle", f.Cycle)
	}
	if f.School != "" {
		query.Set("school", f.School)
	}
	if f.Search != "" {
		query.Set("q", f.Search)
	}
	if f.Page > 0 {
		query.Set("page", strconv.Itoa(f.Page))
	}
	return query
}

// ListJobs fetches postings for a filter. The unfiltered first page is cached
// briefly since it backs several screens at once.
func (c *Client) ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	ctx, span := tracer.Start(ctx, "ListJobs")
	defer span.End()

	cacheable := filter == JobFilter{}
	cacheKey := "jobs:list:front"

	if cacheable {
		var cached models.JobList
		err := c.cache.Get(ctx, cacheKey, &cached)
		if err == nil {
			span.SetAttributes(telemetry.String("cache.result", "hit"))
			c.logger.Debug("cache hit for jobs list")
			return cached, nil
		} else if err != cache.ErrNotFound {
			span.SetAttributes(telemetry.String("cache.result", "error"))
			span.RecordError(err)
			c.logger.Warn("cache error for jobs list", zap.Error(err))
		} else {
			span.SetAttributes(telemetry.String("cache.result", "miss"))
		}
	}

	var jobs models.JobList
	if err := c.get(ctx, "/jobs", filter.values(), &jobs); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("jobs.count", len(jobs)))

	if cacheable {
		if err := c.cache.Set(ctx, cacheKey, jobs, c.config.CacheTTL); err != nil {
			c.logger.Warn("failed to cache jobs list", zap.Error(err))
		}
	}

	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id string) (*models.Job, error) {
	ctx, span := tracer.Start(ctx, "GetJob")
	defer span.End()
	span.SetAttributes(telemetry.String("job.id", id))

	cacheKey := fmt.Sprintf("jobs:item:%s", id)
	var cached models.Job
	err := c.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		c.logger.Debug("cache hit", zap.String("id", id))
		return &cached, nil
	} else if err != cache.ErrNotFound {
		c.logger.Warn("cache error", zap.Error(err))
	}

	var job models.Job
	if err := c.get(ctx, "/jobs/"+id, nil, &job); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := c.cache.Set(ctx, cacheKey, job, c.config.CacheTTL); err != nil {
		c.logger.Warn("failed to cache job", zap.String("id", id), zap.Error(err))
	}

	return &job, nil
}

func (c *Client) ListPlacementCycles(ctx context.Context) ([]models.PlacementCycle, error) {
	ctx, span := tracer.Start(ctx, "ListPlacementCycles")
	defer span.End()

	var cycles []models.PlacementCycle
	if err := c.get(ctx, "/placement-cycles", nil, &cycles); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cycles, nil
}

func (c *Client) ListCampuses(ctx context.Context) ([]models.Campus, error) {
	ctx, span := tracer.Start(ctx, "ListCampuses")
	defer span.End()

	var campuses []models.Campus
	if err := c.get(ctx, "/campuses", nil, &campuses); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return campuses, nil
}
