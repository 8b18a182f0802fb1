package aisystems

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "ai_systems", "s").
	Project("id", "ID").
	Project("organization_id", "OrganizationID").
	Project("name", "Name").
	Project("purpose", "Purpose").
	Project("provider_role", "ProviderRole").
	Project("deployment_context", "DeploymentContext").
	Project("status", "Status").
	Project("risk_level", "RiskLevel").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UpdatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for AI system queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Status         *string    `json:"status,omitempty"`
	RiskLevel      *string    `json:"risk_level,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("OrganizationID", f.OrganizationID).
		WhereEquals("Status", f.Status).
		WhereEquals("RiskLevel", f.RiskLevel)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if o := values.Get("organization_id"); o != "" {
		if id, err := uuid.Parse(o); err == nil {
			f.OrganizationID = &id
		}
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if r := values.Get("risk_level"); r != "" {
		f.RiskLevel = &r
	}

	return f
}

func scanAISystem(s repository.Scanner) (AISystem, error) {
	var sys AISystem

	err := s.Scan(
		&sys.ID,
		&sys.OrganizationID,
		&sys.Name,
		&sys.Purpose,
		&sys.ProviderRole,
		&sys.DeploymentContext,
		&sys.Status,
		&sys.RiskLevel,
		&sys.CreatedAt,
		&sys.UpdatedAt,
	)

	return sys, err
}
