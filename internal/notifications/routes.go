// Package notifications resolves notification deep links and polls the
// unread-count badge.
package notifications

import (
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
)

// rolePrefixes map each role to its route namespace.
var rolePrefixes = map[models.Role]string{
	models.RoleStudent:     "/student",
	models.RoleCampusPOC:   "/campus-poc",
	models.RoleCoordinator: "/coordinator",
	models.RoleManager:     "/manager",
}

// ResolveLink returns the screen path a notification opens. A server-provided
// link always wins; otherwise the (type, relatedEntityId) pair goes through
// the static lookup below, prefixed by the viewer's role namespace.
func ResolveLink(n models.Notification, role models.Role) string {
	if n.Link != "" {
		return n.Link
	}

	prefix, ok := rolePrefixes[role]
	if !ok {
		prefix = rolePrefixes[models.RoleStudent]
	}

	switch n.Type {
	case models.NotifSkillApprovalNeeded:
		// POCs land on their approval queue; everyone else sees their own
		// profile where the skill lives.
		if role == models.RoleCampusPOC {
			return prefix + "/skill-approvals"
		}
		return prefix + "/profile"
	case models.NotifApplicationUpdate:
		if n.RelatedID != "" {
			return prefix + "/applications/" + n.RelatedID
		}
		return prefix + "/applications"
	case models.NotifJobPosted:
		if n.RelatedID != "" {
			return prefix + "/jobs/" + n.RelatedID
		}
		return prefix + "/jobs"
	case models.NotifReadinessVerified:
		return prefix + "/job-readiness"
	case models.NotifScamReportComment:
		if n.RelatedID != "" {
			return prefix + "/scam-radar/reports/" + n.RelatedID
		}
		return prefix + "/scam-radar"
	case models.NotifAnnouncement:
		return prefix + "/announcements"
	default:
		return prefix + "/notifications"
	}
}
