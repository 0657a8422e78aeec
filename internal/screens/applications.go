package screens

import (
	"context"
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"

	"go.uber.org/zap"
)

// ApplicationsScreen is the student's applications board: client-side
// filtering over the fetched list, status-change mutations, and a modal for
// the update dialog.
type ApplicationsScreen struct {
	client    *api.Client
	studentID string
	cycles    []models.PlacementCycle

	List  *ListController[models.Application]
	Modal Modal[models.Application]
}

func NewApplicationsScreen(client *api.Client, studentID string, logger *zap.Logger) *ApplicationsScreen {
	s := &ApplicationsScreen{client: client, studentID: studentID}

	fetch := func(ctx context.Context, _ Filter) ([]models.Application, error) {
		return client.ListApplications(ctx, api.ApplicationFilter{StudentID: studentID})
	}
	match := func(app models.Application, filter Filter) bool {
		if filter.Status != "" && string(app.Status.Column()) != filter.Status && string(app.Status) != filter.Status {
			return false
		}
		if filter.Search == "" {
			return true
		}
		needle := strings.ToLower(filter.Search)
		return strings.Contains(strings.ToLower(app.Employer), needle) ||
			strings.Contains(strings.ToLower(app.RoleTitle), needle)
	}

	s.List = NewListController("applications", FilterClient, fetch, match, logger)
	return s
}

// Load fetches the applications and placement cycles in parallel; neither
// depends on the other.
func (s *ApplicationsScreen) Load(ctx context.Context) error {
	return FetchAll(ctx,
		s.List.Load,
		func(ctx context.Context) error {
			cycles, err := s.client.ListPlacementCycles(ctx)
			if err != nil {
				return err
			}
			s.cycles = cycles
			return nil
		},
	)
}

func (s *ApplicationsScreen) Cycles() []models.PlacementCycle {
	return s.cycles
}

func (s *ApplicationsScreen) OpenStatusModal(app models.Application) {
	s.Modal = Modal[models.Application]{Open: true, Payload: app}
}

func (s *ApplicationsScreen) CloseModal() {
	s.Modal = Modal[models.Application]{}
}

func (s *ApplicationsScreen) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.UpdateApplicationStatus(ctx, id, status)
		return err
	})
}

func (s *ApplicationsScreen) Withdraw(ctx context.Context, id string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.WithdrawApplication(ctx, id)
		return err
	})
}

func (s *ApplicationsScreen) Delete(ctx context.Context, id string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteApplication(ctx, id)
	})
}

// ── Self-reported applications ──────────────────────────────────────────────

// SelfApplicationsScreen tracks applications students report from outside the
// platform. Filtering is server-delegated on this screen.
type SelfApplicationsScreen struct {
	client *api.Client

	List  *ListController[models.SelfApplication]
	Modal Modal[models.SelfApplication]
}

func NewSelfApplicationsScreen(client *api.Client, studentID string, logger *zap.Logger) *SelfApplicationsScreen {
	fetch := func(ctx context.Context, _ Filter) ([]models.SelfApplication, error) {
		return client.ListSelfApplications(ctx, studentID)
	}
	return &SelfApplicationsScreen{
		client: client,
		List:   NewListController[models.SelfApplication]("self-applications", FilterServer, fetch, nil, logger),
	}
}

func (s *SelfApplicationsScreen) Create(ctx context.Context, input api.SelfApplicationInput) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.CreateSelfApplication(ctx, input)
		return err
	})
}

func (s *SelfApplicationsScreen) Update(ctx context.Context, id string, input api.SelfApplicationInput) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.UpdateSelfApplication(ctx, id, input)
		return err
	})
}

func (s *SelfApplicationsScreen) Delete(ctx context.Context, id string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteSelfApplication(ctx, id)
	})
}

func (s *SelfApplicationsScreen) Verify(ctx context.Context, id string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.VerifySelfApplication(ctx, id)
		return err
	})
}
