// Package aisystems implements the AI system inventory domain for Tutela.
// It provides types, data access, and business logic for registering and
// managing the AI systems an organization must keep under compliance watch.
package aisystems

import (
	"time"

	"github.com/google/uuid"
)

// AISystem represents a registered AI system with its compliance lifecycle state.
// RiskLevel is nil until a classification has been run.
type AISystem struct {
	ID                uuid.UUID `json:"id"`
	OrganizationID    uuid.UUID `json:"organization_id"`
	Name              string    `json:"name"`
	Purpose           string    `json:"purpose"`
	ProviderRole      string    `json:"provider_role"`
	DeploymentContext string    `json:"deployment_context"`
	Status            string    `json:"status"`
	RiskLevel         *string   `json:"risk_level"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new AI system.
type CreateCommand struct {
	OrganizationID    uuid.UUID `json:"organization_id"`
	Name              string    `json:"name"`
	Purpose           string    `json:"purpose"`
	ProviderRole      string    `json:"provider_role"`
	DeploymentContext string    `json:"deployment_context"`
}

// UpdateCommand carries the mutable descriptive fields of an AI system.
// Lifecycle status and risk level change only through assessment and
// remediation operations, never through a direct update.
type UpdateCommand struct {
	Name              string `json:"name"`
	Purpose           string `json:"purpose"`
	ProviderRole      string `json:"provider_role"`
	DeploymentContext string `json:"deployment_context"`
}
