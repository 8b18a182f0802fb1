package evidence

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "evidence", "e").
	Project("id", "ID").
	Project("system_id", "SystemID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("description", "Description").
	Project("uploaded_at", "UploadedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for evidence queries.
// Nil fields are ignored. SystemID and ContentType use exact matching.
// Filename uses case-insensitive contains matching.
type Filters struct {
	SystemID    *uuid.UUID `json:"system_id,omitempty"`
	Filename    *string    `json:"filename,omitempty"`
	ContentType *string    `json:"content_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("SystemID", f.SystemID).
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("system_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.SystemID = &id
		}
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

func scanEvidence(s repository.Scanner) (Evidence, error) {
	var e Evidence
	err := s.Scan(
		&e.ID,
		&e.SystemID,
		&e.Filename,
		&e.ContentType,
		&e.SizeBytes,
		&e.PageCount,
		&e.StorageKey,
		&e.Description,
		&e.UploadedAt,
	)
	return e, err
}
