package assessments

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "assessments", "a").
	Project("id", "ID").
	Project("system_id", "SystemID").
	Project("risk_level", "RiskLevel").
	Project("is_prohibited", "IsProhibited").
	Project("score", "Score").
	Project("prohibition_reasons", "ProhibitionReasons").
	Project("applicable_articles", "ApplicableArticles").
	Project("obligations", "Obligations").
	Project("recommendations", "Recommendations").
	Project("summary", "Summary").
	Project("detailed_explanation", "DetailedExplanation").
	Project("locale", "Locale").
	Project("assessed_at", "AssessedAt").
	Project("reviewed_by", "ReviewedBy").
	Project("reviewed_at", "ReviewedAt").
	Project("override_rationale", "OverrideRationale")

var defaultSort = query.SortField{
	Field:      "AssessedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for assessment queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	RiskLevel    *string    `json:"risk_level,omitempty"`
	IsProhibited *bool      `json:"is_prohibited,omitempty"`
	SystemID     *uuid.UUID `json:"system_id,omitempty"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("RiskLevel", f.RiskLevel).
		WhereEquals("IsProhibited", f.IsProhibited).
		WhereEquals("SystemID", f.SystemID).
		WhereEquals("ReviewedBy", f.ReviewedBy)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if r := values.Get("risk_level"); r != "" {
		f.RiskLevel = &r
	}

	if p := values.Get("is_prohibited"); p != "" {
		if prohibited, err := strconv.ParseBool(p); err == nil {
			f.IsProhibited = &prohibited
		}
	}

	if s := values.Get("system_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.SystemID = &id
		}
	}

	if r := values.Get("reviewed_by"); r != "" {
		f.ReviewedBy = &r
	}

	return f
}

func scanAssessment(s repository.Scanner) (Assessment, error) {
	var a Assessment
	var reasonsRaw, articlesRaw, obligationsRaw, recommendationsRaw []byte

	err := s.Scan(
		&a.ID,
		&a.SystemID,
		&a.RiskLevel,
		&a.IsProhibited,
		&a.Score,
		&reasonsRaw,
		&articlesRaw,
		&obligationsRaw,
		&recommendationsRaw,
		&a.Summary,
		&a.DetailedExplanation,
		&a.Locale,
		&a.AssessedAt,
		&a.ReviewedBy,
		&a.ReviewedAt,
		&a.OverrideRationale,
	)

	if err != nil {
		return a, err
	}

	if err := unmarshalColumn(reasonsRaw, &a.ProhibitionReasons, "prohibition_reasons"); err != nil {
		return a, err
	}
	if err := unmarshalColumn(articlesRaw, &a.ApplicableArticles, "applicable_articles"); err != nil {
		return a, err
	}
	if err := unmarshalColumn(obligationsRaw, &a.Obligations, "obligations"); err != nil {
		return a, err
	}
	if err := unmarshalColumn(recommendationsRaw, &a.Recommendations, "recommendations"); err != nil {
		return a, err
	}

	return a, nil
}

func unmarshalColumn[T any](raw []byte, dest *[]T, column string) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, dest); err != nil {
			return fmt.Errorf("unmarshal %s: %w", column, err)
		}
	}
	if *dest == nil {
		*dest = []T{}
	}
	return nil
}
