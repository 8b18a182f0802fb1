// Package classifier implements the deterministic risk classification engine.
// It maps a folded questionnaire answer set to a regulatory risk tier, a
// prohibition verdict, applicable legal articles, obligations, and a bilingual
// explanation. The engine is pure: no I/O, no shared mutable state, and every
// call produces a complete new result.
package classifier

import (
	"errors"
	"slices"

	"github.com/JaimeStill/tutela/internal/catalog"
)

// RiskLevel is the regulation's ordered severity classification.
type RiskLevel string

// Risk tiers from most to least restrictive.
const (
	RiskUnacceptable RiskLevel = "unacceptable"
	RiskHigh         RiskLevel = "high"
	RiskLimited      RiskLevel = "limited"
	RiskMinimal      RiskLevel = "minimal"
)

var riskLevels = []RiskLevel{RiskUnacceptable, RiskHigh, RiskLimited, RiskMinimal}

// ErrInvalidRiskLevel indicates a string that names no known risk tier.
var ErrInvalidRiskLevel = errors.New("invalid risk level")

// ParseRiskLevel validates a string as a known risk tier.
func ParseRiskLevel(s string) (RiskLevel, error) {
	v := RiskLevel(s)
	if !slices.Contains(riskLevels, v) {
		return "", ErrInvalidRiskLevel
	}
	return v, nil
}

// Rank returns the tier's severity order: higher means more restrictive.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskUnacceptable:
		return 3
	case RiskHigh:
		return 2
	case RiskLimited:
		return 1
	default:
		return 0
	}
}

// Obligation is a concrete compliance duty tied to the legal citation it
// derives from. Key is stable across locales; Description is locale-rendered.
type Obligation struct {
	Key         string `json:"key"`
	Article     string `json:"article"`
	Description string `json:"description"`
}

// Result is the classifier's complete output: a derived value object with no
// identity of its own. Persisting it is the caller's concern.
type Result struct {
	RiskLevel           RiskLevel      `json:"risk_level"`
	IsProhibited        bool           `json:"is_prohibited"`
	ProhibitionReasons  []string       `json:"prohibition_reasons"`
	ApplicableArticles  []string       `json:"applicable_articles"`
	Obligations         []Obligation   `json:"obligations"`
	Recommendations     []string       `json:"recommendations"`
	Score               int            `json:"score"`
	Summary             string         `json:"summary"`
	DetailedExplanation string         `json:"detailed_explanation"`
	Locale              catalog.Locale `json:"locale"`
}
