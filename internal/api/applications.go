package api

import (
	"context"
	"net/url"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"
)

// ApplicationFilter narrows the applications listing server-side.
type ApplicationFilter struct {
	StudentID string
	Status    models.Status
	Cycle     string
}

func (f ApplicationFilter) values() url.Values {
	query := url.Values{}
	if f.StudentID != "" {
		query.Set("studentId", f.StudentID)
	}
	if f.Status != "" {
		query.Set("status", string(f.Status))
	}
	if f.Cycle != "" {
		query.Set("cycle", f.Cycle)
	}
	return query
}

func (c *Client) ListApplications(ctx context.Context, filter ApplicationFilter) ([]models.Application, error) {
	ctx, span := tracer.Start(ctx, "ListApplications")
	defer span.End()

	var apps []models.Application
	if err := c.get(ctx, "/applications", filter.values(), &apps); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("applications.count", len(apps)))
	return apps, nil
}

func (c *Client) CreateApplication(ctx context.Context, jobID string) (*models.Application, error) {
	ctx, span := tracer.Start(ctx, "CreateApplication")
	defer span.End()
	span.SetAttributes(telemetry.String("job.id", jobID))

	var app models.Application
	if err := c.post(ctx, "/applications", map[string]string{"jobId": jobID}, &app); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &app, nil
}

// UpdateApplicationStatus sends the requested status and displays whatever
// the backend returns; transition rules live server-side.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, status models.Status) (*models.Application, error) {
	ctx, span := tracer.Start(ctx, "UpdateApplicationStatus")
	defer span.End()

	var app models.Application
	if err := c.patch(ctx, "/applications/"+id, map[string]string{"status": string(status)}, &app); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &app, nil
}

func (c *Client) WithdrawApplication(ctx context.Context, id string) (*models.Application, error) {
	return c.UpdateApplicationStatus(ctx, id, models.StatusWithdrawn)
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteApplication")
	defer span.End()
	return c.delete(ctx, "/applications/"+id)
}

// ── Self-reported applications ──────────────────────────────────────────────

type SelfApplicationInput struct {
	Employer  string        `json:"employer"`
	RoleTitle string        `json:"roleTitle"`
	JobURL    string        `json:"jobUrl"`
	Status    models.Status `json:"status"`
}

func (c *Client) ListSelfApplications(ctx context.Context, studentID string) ([]models.SelfApplication, error) {
	ctx, span := tracer.Start(ctx, "ListSelfApplications")
	defer span.End()

	query := url.Values{}
	if studentID != "" {
		query.Set("studentId", studentID)
	}

	var apps []models.SelfApplication
	if err := c.get(ctx, "/self-applications", query, &apps); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return apps, nil
}

func (c *Client) CreateSelfApplication(ctx context.Context, input SelfApplicationInput) (*models.SelfApplication, error) {
	ctx, span := tracer.Start(ctx, "CreateSelfApplication")
	defer span.End()

	var app models.SelfApplication
	if err := c.post(ctx, "/self-applications", input, &app); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &app, nil
}

func (c *Client) UpdateSelfApplication(ctx context.Context, id string, input SelfApplicationInput) (*models.SelfApplication, error) {
	ctx, span := tracer.Start(ctx, "UpdateSelfApplication")
	defer span.End()

	var app models.SelfApplication
	if err := c.put(ctx, "/self-applications/"+id, input, &app); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &app, nil
}

func (c *Client) DeleteSelfApplication(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteSelfApplication")
	defer span.End()
	return c.delete(ctx, "/self-applications/"+id)
}

// VerifySelfApplication marks a student-reported application as checked by a
// coordinator.
func (c *Client) VerifySelfApplication(ctx context.Context, id string) (*models.SelfApplication, error) {
	ctx, span := tracer.Start(ctx, "VerifySelfApplication")
	defer span.End()

	var app models.SelfApplication
	if err := c.post(ctx, "/self-applications/"+id+"/verify", nil, &app); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &app, nil
}
