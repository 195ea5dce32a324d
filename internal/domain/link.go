package domain

import (
	"strings"
	"time"
)

// Link is a URL submission awaiting or having received a moderation decision.
type Link struct {
	ID         int64
	URL        string
	UploadedAt time.Time
	UploadedBy string
	Status     LinkStatus
	Categories []CategoryRef
}

// CategoryIDs returns the ids of the assigned categories in order.
func (l Link) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(l.Categories))
	for _, c := range l.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// HasCategory reports whether the link is tagged with the category id.
func (l Link) HasCategory(id int64) bool {
	for _, c := range l.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Category is an operator-defined tag assignable to many Links.
type Category struct {
	ID   int64
	Name string
}

// CategoryRef is a Category as referenced from a Link. Name is empty when the
// backend returned only the id.
type CategoryRef struct {
	ID   int64
	Name string
}

// Resolved reports whether the reference carries a display name.
func (r CategoryRef) Resolved() bool {
	return strings.TrimSpace(r.Name) != ""
}

// LinkUpdate describes a PATCH on a Link. A nil CategoryIDs leaves the
// assignment unchanged; an empty non-nil slice clears it.
type LinkUpdate struct {
	Status      LinkStatus
	CategoryIDs []int64
}
