package domain

import "time"

// Activity is an audit-log entry describing a user or system action.
type Activity struct {
	OccurredAt  time.Time
	Actor       *string // nil for anonymous actions
	Type        ActivityType
	Description string
}

// IsAnonymous reports whether the entry has no known actor.
func (a Activity) IsAnonymous() bool {
	return a.Actor == nil || *a.Actor == ""
}
