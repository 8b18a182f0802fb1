// Package remediation implements remediation task tracking for Tutela.
// Tasks are derived from the obligations of a risk assessment; each carries
// the legal article it stems from and a deadline. Closing the last open task
// of a system marks that system compliant.
package remediation

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single remediation obligation for an AI system.
type Task struct {
	ID            uuid.UUID  `json:"id"`
	SystemID      uuid.UUID  `json:"system_id"`
	ObligationKey string     `json:"obligation_key"`
	Article       string     `json:"article"`
	Description   string     `json:"description"`
	Deadline      time.Time  `json:"deadline"`
	Status        string     `json:"status"`
	CompletedBy   *string    `json:"completed_by"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CompleteCommand carries the data needed to close a remediation task.
type CompleteCommand struct {
	CompletedBy string `json:"completed_by"`
}
