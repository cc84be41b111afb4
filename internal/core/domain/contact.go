package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrMissingContactFields = errors.New("email and message required")

// ContactMessage is a visitor-submitted message. Records are immutable once
// stored; there is no update or delete endpoint.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"size:150"`
	LastName  string    `json:"last_name" gorm:"size:150"`
	// Name is the legacy combined field, kept for older clients that still
	// send a single name value.
	Name      string    `json:"name" gorm:"size:300"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// DisplayName prefers the split first/last fields over the legacy combined
// name. Returns "" when no name was supplied at all.
func (m *ContactMessage) DisplayName() string {
	if m.FirstName != "" || m.LastName != "" {
		return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
	}
	return m.Name
}
