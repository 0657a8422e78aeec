package notifications_test

import (
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/notifications"
)

func TestResolveLink_ServerLinkWins(t *testing.T) {
	n := models.Notification{
		Type: models.NotifJobPosted,
		Link: "/student/jobs/abc?highlight=true",
	}
	if got := notifications.ResolveLink(n, models.RoleStudent); got != "/student/jobs/abc?highlight=true" {
		t.Errorf("server link must win, got %q", got)
	}
}

func TestResolveLink_SkillApprovalDependsOnRole(t *testing.T) {
	n := models.Notification{Type: models.NotifSkillApprovalNeeded}

	if got := notifications.ResolveLink(n, models.RoleCampusPOC); got != "/campus-poc/skill-approvals" {
		t.Errorf("campus POC must land on the approval queue, got %q", got)
	}
	if got := notifications.ResolveLink(n, models.RoleStudent); got != "/student/profile" {
		t.Errorf("student must land on their profile, got %q", got)
	}
}

func TestResolveLink_Table(t *testing.T) {
	cases := []struct {
		name string
		n    models.Notification
		role models.Role
		want string
	}{
		{
			name: "application update with entity",
			n:    models.Notification{Type: models.NotifApplicationUpdate, RelatedID: "app-7"},
			role: models.RoleStudent,
			want: "/student/applications/app-7",
		},
		{
			name: "application update without entity",
			n:    models.Notification{Type: models.NotifApplicationUpdate},
			role: models.RoleCoordinator,
			want: "/coordinator/applications",
		},
		{
			name: "job posted with entity",
			n:    models.Notification{Type: models.NotifJobPosted, RelatedID: "job-3"},
			role: models.RoleStudent,
			want: "/student/jobs/job-3",
		},
		{
			name: "job posted without entity",
			n:    models.Notification{Type: models.NotifJobPosted},
			role: models.RoleManager,
			want: "/manager/jobs",
		},
		{
			name: "readiness verified",
			n:    models.Notification{Type: models.NotifReadinessVerified, RelatedID: "ignored"},
			role: models.RoleStudent,
			want: "/student/job-readiness",
		},
		{
			name: "scam report comment",
			n:    models.Notification{Type: models.NotifScamReportComment, RelatedID: "rep-9"},
			role: models.RoleStudent,
			want: "/student/scam-radar/reports/rep-9",
		},
		{
			name: "scam report comment without entity",
			n:    models.Notification{Type: models.NotifScamReportComment},
			role: models.RoleStudent,
			want: "/student/scam-radar",
		},
		{
			name: "announcement",
			n:    models.Notification{Type: models.NotifAnnouncement},
			role: models.RoleCampusPOC,
			want: "/campus-poc/announcements",
		},
		{
			name: "unknown type falls back to inbox",
			n:    models.Notification{Type: models.NotificationType("mystery")},
			role: models.RoleCoordinator,
			want: "/coordinator/notifications",
		},
		{
			name: "unknown role falls back to student namespace",
			n:    models.Notification{Type: models.NotifJobPosted, RelatedID: "job-3"},
			role: models.Role("auditor"),
			want: "/student/jobs/job-3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := notifications.ResolveLink(tc.n, tc.role); got != tc.want {
				t.Errorf("ResolveLink() = %q, want %q", got, tc.want)
			}
		})
	}
}
