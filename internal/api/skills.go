package api

import (
	"context"
	"net/url"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"
)

func (c *Client) ListSkillApprovals(ctx context.Context, status string) ([]models.SkillApproval, error) {
	ctx, span := tracer.Start(ctx, "ListSkillApprovals")
	defer span.End()

	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var approvals []models.SkillApproval
	if err := c.get(ctx, "/skills/approvals", query, &approvals); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("approvals.count", len(approvals)))
	return approvals, nil
}

func (c *Client) RequestSkill(ctx context.Context, skillName, evidence string) (*models.SkillApproval, error) {
	ctx, span := tracer.Start(ctx, "RequestSkill")
	defer span.End()

	body := map[string]string{"skillName": skillName, "evidence": evidence}
	var approval models.SkillApproval
	if err := c.post(ctx, "/skills/approvals", body, &approval); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &approval, nil
}

func (c *Client) ApproveSkill(ctx context.Context, approvalID string) (*models.SkillApproval, error) {
	return c.resolveSkill(ctx, approvalID, "approve")
}

func (c *Client) RejectSkill(ctx context.Context, approvalID string) (*models.SkillApproval, error) {
	return c.resolveSkill(ctx, approvalID, "reject")
}

func (c *Client) resolveSkill(ctx context.Context, approvalID, action string) (*models.SkillApproval, error) {
	ctx, span := tracer.Start(ctx, "ResolveSkill")
	defer span.End()
	span.SetAttributes(
		telemetry.String("approval.id", approvalID),
		telemetry.String("approval.action", action),
	)

	var approval models.SkillApproval
	if err := c.post(ctx, "/skills/approvals/"+approvalID+"/"+action, nil, &approval); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &approval, nil
}
