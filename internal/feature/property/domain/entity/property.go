// Package entity defines the domain entities for the property feature.
package entity

import "time"

// Property is a real-estate listing owned by exactly one user.
// Images holds media URLs in display order; index 0 is the cover.
type Property struct {
	ID          uint
	Title       string
	Description string
	Price       int64 // whole currency units
	Location    string
	Images      []string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cover returns the first media URL, or "" when the listing has none.
func (p *Property) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
