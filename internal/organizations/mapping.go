package organizations

import (
	"net/url"

	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "organizations", "o").
	Project("id", "ID").
	Project("name", "Name").
	Project("sector", "Sector").
	Project("contact_email", "ContactEmail").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for organization queries.
type Filters struct {
	Sector *string `json:"sector,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Sector", f.Sector)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("sector"); s != "" {
		f.Sector = &s
	}

	return f
}

func scanOrganization(s repository.Scanner) (Organization, error) {
	var org Organization

	err := s.Scan(
		&org.ID,
		&org.Name,
		&org.Sector,
		&org.ContactEmail,
		&org.CreatedAt,
		&org.UpdatedAt,
	)

	return org, err
}
