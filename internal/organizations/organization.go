// Package organizations implements the client organization domain for Tutela.
// Consultancies manage compliance for many organizations; each AI system in
// the inventory belongs to exactly one.
package organizations

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a client organization whose AI systems are tracked.
type Organization struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Sector       string    `json:"sector"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new organization.
type CreateCommand struct {
	Name         string `json:"name"`
	Sector       string `json:"sector"`
	ContactEmail string `json:"contact_email"`
}

// UpdateCommand carries the mutable fields of an organization.
type UpdateCommand struct {
	Name         string `json:"name"`
	Sector       string `json:"sector"`
	ContactEmail string `json:"contact_email"`
}
