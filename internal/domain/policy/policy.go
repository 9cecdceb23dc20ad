// Package policy is the stateless authorization decision table. It is a
// pure function of (role, action, ownership); callers translate a deny
// into errorz.Forbidden.
package policy

import "github.com/collegevents/backend/internal/domain/entity"

type Action string

const (
	CreateEvent            Action = "create_event"
	MutateEvent            Action = "mutate_event" // update or delete
	RegisterForEvent       Action = "register_for_event"
	ViewEventRegistrations Action = "view_event_registrations"
	ViewOwnedEvents        Action = "view_owned_events"
	CreateAnnouncement     Action = "create_announcement"
	DecideSocietyRequest   Action = "decide_society_request"
	ManageQueries          Action = "manage_queries" // reply and list-all
)

// Allowed reports whether role may perform action. owns is the
// resource-ownership flag (event.SocietyID == caller id) and is only
// consulted for ownership-scoped actions.
func Allowed(role entity.Role, action Action, owns bool) bool {
	switch action {
	case CreateEvent, CreateAnnouncement, DecideSocietyRequest, ManageQueries:
		return role == entity.Admin
	case MutateEvent, ViewEventRegistrations:
		return role == entity.Admin || (role == entity.RoleSociety && owns)
	case RegisterForEvent:
		// Anyone who is not a society or admin account registers as a
		// student.
		return role != entity.RoleSociety && role != entity.Admin
	case ViewOwnedEvents:
		return role == entity.Admin || role == entity.RoleSociety
	}
	return false
}
