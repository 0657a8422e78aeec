package screens

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"

	"go.uber.org/zap"
)

// SkillApprovalsScreen is the campus POC's approval queue. The status filter
// is server-delegated; approve/reject refetch the queue so a resolved request
// drops out of the pending view.
type SkillApprovalsScreen struct {
	client *api.Client

	List  *ListController[models.SkillApproval]
	Modal Modal[models.SkillApproval]
}

func NewSkillApprovalsScreen(client *api.Client, logger *zap.Logger) *SkillApprovalsScreen {
	fetch := func(ctx context.Context, filter Filter) ([]models.SkillApproval, error) {
		return client.ListSkillApprovals(ctx, filter.Status)
	}
	return &SkillApprovalsScreen{
		client: client,
		List:   NewListController[models.SkillApproval]("skill-approvals", FilterServer, fetch, nil, logger),
	}
}

func (s *SkillApprovalsScreen) Approve(ctx context.Context, approvalID string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.ApproveSkill(ctx, approvalID)
		return err
	})
}

func (s *SkillApprovalsScreen) Reject(ctx context.Context, approvalID string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.RejectSkill(ctx, approvalID)
		return err
	})
}
