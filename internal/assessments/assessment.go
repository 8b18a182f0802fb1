// Package assessments implements the risk assessment domain for Tutela.
// It invokes the classification engine for a registered AI system, persists
// the resulting verdict, and supports human review and override of results.
package assessments

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/internal/catalog"
	"github.com/JaimeStill/tutela/internal/classifier"
)

// Assessment is the persisted classification result for an AI system.
// One current assessment exists per system; re-classifying replaces it and
// clears any prior review state.
type Assessment struct {
	ID                  uuid.UUID               `json:"id"`
	SystemID            uuid.UUID               `json:"system_id"`
	RiskLevel           string                  `json:"risk_level"`
	IsProhibited        bool                    `json:"is_prohibited"`
	Score               int                     `json:"score"`
	ProhibitionReasons  []string                `json:"prohibition_reasons"`
	ApplicableArticles  []string                `json:"applicable_articles"`
	Obligations         []classifier.Obligation `json:"obligations"`
	Recommendations     []string                `json:"recommendations"`
	Summary             string                  `json:"summary"`
	DetailedExplanation string                  `json:"detailed_explanation"`
	Locale              string                  `json:"locale"`
	AssessedAt          time.Time               `json:"assessed_at"`
	ReviewedBy          *string                 `json:"reviewed_by"`
	ReviewedAt          *time.Time              `json:"reviewed_at"`
	OverrideRationale   *string                 `json:"override_rationale"`
}

// ClassifyCommand carries the questionnaire answers and locale for a
// classification run.
type ClassifyCommand struct {
	Answers []catalog.Answer `json:"answers"`
	Locale  string           `json:"locale"`
}

// ReviewCommand carries the data needed to mark an assessment as
// human-reviewed. ReviewedBy identifies the compliance officer who confirmed
// the engine's verdict.
type ReviewCommand struct {
	ReviewedBy string `json:"reviewed_by"`
}

// OverrideCommand carries a manual risk level override. RiskLevel replaces
// the engine's verdict and Rationale documents the legal reasoning.
// UpdatedBy identifies the human who made the override (stored as reviewed_by).
type OverrideCommand struct {
	RiskLevel string `json:"risk_level"`
	Rationale string `json:"rationale"`
	UpdatedBy string `json:"updated_by"`
}
