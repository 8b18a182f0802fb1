package remediation

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "remediation_tasks", "t").
	Project("id", "ID").
	Project("system_id", "SystemID").
	Project("obligation_key", "ObligationKey").
	Project("article", "Article").
	Project("description", "Description").
	Project("deadline", "Deadline").
	Project("status", "Status").
	Project("completed_by", "CompletedBy").
	Project("completed_at", "CompletedAt").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field: "Deadline",
}

// Filters contains optional filtering criteria for remediation task queries.
// Overdue restricts results to open tasks whose deadline has passed.
type Filters struct {
	SystemID *uuid.UUID `json:"system_id,omitempty"`
	Status   *string    `json:"status,omitempty"`
	Overdue  bool       `json:"overdue,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("SystemID", f.SystemID).
		WhereEquals("Status", f.Status)

	if f.Overdue {
		b.
			WhereEquals("Status", string(StatusOpen)).
			WhereBefore("Deadline", time.Now())
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("system_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.SystemID = &id
		}
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	f.Overdue = values.Get("overdue") == "true"

	return f
}

func scanTask(s repository.Scanner) (Task, error) {
	var t Task

	err := s.Scan(
		&t.ID,
		&t.SystemID,
		&t.ObligationKey,
		&t.Article,
		&t.Description,
		&t.Deadline,
		&t.Status,
		&t.CompletedBy,
		&t.CompletedAt,
		&t.CreatedAt,
	)

	return t, err
}
