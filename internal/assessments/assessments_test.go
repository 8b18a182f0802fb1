package assessments_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/internal/assessments"
	"github.com/JaimeStill/tutela/internal/catalog"
	"github.com/JaimeStill/tutela/internal/classifier"
	"github.com/JaimeStill/tutela/pkg/pagination"
)

func testSystem() assessments.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return assessments.New(nil, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, 0)
}

func classifiableAnswers() []catalog.Answer {
	return []catalog.Answer{
		{QuestionID: catalog.QSystemType, Value: catalog.SystemTypePredictive},
		{QuestionID: catalog.QSector, Value: "finance"},
		{QuestionID: catalog.QSubliminalManipulation, Value: false},
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", assessments.ErrNotFound, http.StatusNotFound},
		{"system not found", assessments.ErrSystemNotFound, http.StatusNotFound},
		{"duplicate", assessments.ErrDuplicate, http.StatusConflict},
		{"already reviewed", assessments.ErrAlreadyReviewed, http.StatusConflict},
		{"insufficient answers", assessments.ErrInsufficientAnswers, http.StatusUnprocessableEntity},
		{"invalid risk level", assessments.ErrInvalidRiskLevel, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", errors.Join(errors.New("ctx"), assessments.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessments.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPreviewRequiresMandatoryAnswers(t *testing.T) {
	sys := testSystem()

	_, err := sys.Preview(assessments.ClassifyCommand{
		Answers: []catalog.Answer{
			{QuestionID: catalog.QSystemType, Value: catalog.SystemTypeChatbot},
		},
	})

	if !errors.Is(err, assessments.ErrInsufficientAnswers) {
		t.Errorf("Preview() error = %v, want ErrInsufficientAnswers", err)
	}
}

func TestPreviewClassifies(t *testing.T) {
	sys := testSystem()

	result, err := sys.Preview(assessments.ClassifyCommand{
		Answers: classifiableAnswers(),
		Locale:  "en",
	})
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	if result.RiskLevel != classifier.RiskMinimal {
		t.Errorf("RiskLevel = %s, want minimal", result.RiskLevel)
	}
	if result.Locale != catalog.LocaleEN {
		t.Errorf("Locale = %s, want en", result.Locale)
	}
}

func TestPreviewDefaultsLocale(t *testing.T) {
	sys := testSystem()

	result, err := sys.Preview(assessments.ClassifyCommand{
		Answers: classifiableAnswers(),
	})
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	if result.Locale != catalog.DefaultLocale {
		t.Errorf("Locale = %s, want default %s", result.Locale, catalog.DefaultLocale)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	systemID := uuid.New()

	values := url.Values{}
	values.Set("risk_level", "high")
	values.Set("is_prohibited", "true")
	values.Set("system_id", systemID.String())
	values.Set("reviewed_by", "ana")

	f := assessments.FiltersFromQuery(values)

	if f.RiskLevel == nil || *f.RiskLevel != "high" {
		t.Error("RiskLevel not parsed")
	}
	if f.IsProhibited == nil || !*f.IsProhibited {
		t.Error("IsProhibited not parsed")
	}
	if f.SystemID == nil || *f.SystemID != systemID {
		t.Error("SystemID not parsed")
	}
	if f.ReviewedBy == nil || *f.ReviewedBy != "ana" {
		t.Error("ReviewedBy not parsed")
	}
}

func TestFiltersFromQueryIgnoresInvalid(t *testing.T) {
	values := url.Values{}
	values.Set("is_prohibited", "not-a-bool")
	values.Set("system_id", "not-a-uuid")

	f := assessments.FiltersFromQuery(values)

	if f.IsProhibited != nil {
		t.Error("invalid is_prohibited should be ignored")
	}
	if f.SystemID != nil {
		t.Error("invalid system_id should be ignored")
	}
}

func TestFiltersFromQueryEmpty(t *testing.T) {
	f := assessments.FiltersFromQuery(url.Values{})

	if f.RiskLevel != nil || f.IsProhibited != nil || f.SystemID != nil || f.ReviewedBy != nil {
		t.Error("empty query should produce zero filters")
	}
}
