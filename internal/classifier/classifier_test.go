package classifier_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/JaimeStill/tutela/internal/catalog"
	"github.com/JaimeStill/tutela/internal/classifier"
)

// answersWith builds a full answer set with every risk flag false, then
// applies overrides. Context fields default to a chatbot in education.
func answersWith(overrides map[string]any) []catalog.Answer {
	values := map[string]any{
		catalog.QSystemType:              catalog.SystemTypeChatbot,
		catalog.QSector:                  "education",
		catalog.QSubliminalManipulation:  false,
		catalog.QVulnerabilityExploit:    false,
		catalog.QSocialScoring:           false,
		catalog.QRealtimeBiometricPublic: false,
		catalog.QEmotionRecognition:      false,
		catalog.QFacialScraping:          false,
		catalog.QBiometricIdentification: false,
		catalog.QCriticalInfrastructure:  false,
		catalog.QEducationAccess:         false,
		catalog.QEmploymentDecisions:     false,
		catalog.QEssentialServices:       false,
		catalog.QLawEnforcementUse:       false,
		catalog.QMigrationBorderControl:  false,
		catalog.QJusticeDemocratic:       false,
		catalog.QInteractsWithPersons:    false,
		catalog.QSyntheticContent:        false,
	}
	for k, v := range overrides {
		values[k] = v
	}

	answers := make([]catalog.Answer, 0, len(values))
	for id, v := range values {
		answers = append(answers, catalog.Answer{QuestionID: id, Value: v})
	}
	return answers
}

func TestProhibitionPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{
			name: "subliminal manipulation in education chatbot",
			overrides: map[string]any{
				catalog.QSubliminalManipulation: true,
			},
		},
		{
			name: "social scoring in public sector predictive system",
			overrides: map[string]any{
				catalog.QSystemType:    catalog.SystemTypePredictive,
				catalog.QSector:        "public_administration",
				catalog.QSocialScoring: true,
			},
		},
		{
			name: "realtime biometric in security sector biometric system",
			overrides: map[string]any{
				catalog.QSystemType:              catalog.SystemTypeBiometric,
				catalog.QSector:                  "security",
				catalog.QRealtimeBiometricPublic: true,
			},
		},
		{
			name: "prohibition wins over high-risk flags",
			overrides: map[string]any{
				catalog.QSubliminalManipulation:  true,
				catalog.QEmploymentDecisions:     true,
				catalog.QBiometricIdentification: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(answersWith(tt.overrides), catalog.LocaleES)

			if result.RiskLevel != classifier.RiskUnacceptable {
				t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, classifier.RiskUnacceptable)
			}
			if !result.IsProhibited {
				t.Error("IsProhibited = false, want true")
			}
			if len(result.ProhibitionReasons) < 1 {
				t.Error("ProhibitionReasons empty, want at least one")
			}
			if len(result.Obligations) != 0 {
				t.Errorf("Obligations length = %d, want 0 for prohibited system", len(result.Obligations))
			}
		})
	}
}

func TestHighRiskClassification(t *testing.T) {
	tests := []struct {
		name        string
		overrides   map[string]any
		wantArticle string
	}{
		{
			name: "employment decisions",
			overrides: map[string]any{
				catalog.QEmploymentDecisions: true,
			},
			wantArticle: "Anexo III.4",
		},
		{
			name: "biometric identification",
			overrides: map[string]any{
				catalog.QBiometricIdentification: true,
			},
			wantArticle: "Anexo III.1",
		},
		{
			name: "critical infrastructure",
			overrides: map[string]any{
				catalog.QCriticalInfrastructure: true,
			},
			wantArticle: "Anexo III.2",
		},
		{
			name: "essential services",
			overrides: map[string]any{
				catalog.QEssentialServices: true,
			},
			wantArticle: "Anexo III.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(answersWith(tt.overrides), catalog.LocaleES)

			if result.RiskLevel != classifier.RiskHigh {
				t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, classifier.RiskHigh)
			}
			if result.IsProhibited {
				t.Error("IsProhibited = true, want false")
			}
			if len(result.Obligations) == 0 {
				t.Error("Obligations empty, want at least one")
			}

			found := false
			for _, a := range result.ApplicableArticles {
				if a == tt.wantArticle {
					found = true
				}
			}
			if !found {
				t.Errorf("ApplicableArticles = %v, want to contain %q", result.ApplicableArticles, tt.wantArticle)
			}
		})
	}
}

func TestChatbotFallback(t *testing.T) {
	result := classifier.Classify(answersWith(nil), catalog.LocaleES)

	if result.RiskLevel != classifier.RiskLimited && result.RiskLevel != classifier.RiskMinimal {
		t.Errorf("RiskLevel = %s, want limited or minimal", result.RiskLevel)
	}
	if result.IsProhibited {
		t.Error("IsProhibited = true, want false")
	}
}

func TestMinimalClassification(t *testing.T) {
	result := classifier.Classify(answersWith(map[string]any{
		catalog.QSystemType: catalog.SystemTypePredictive,
	}), catalog.LocaleES)

	if result.RiskLevel != classifier.RiskMinimal {
		t.Errorf("RiskLevel = %s, want %s", result.RiskLevel, classifier.RiskMinimal)
	}
	if len(result.ApplicableArticles) != 0 {
		t.Errorf("ApplicableArticles = %v, want empty", result.ApplicableArticles)
	}
}

func TestLimitedTransparencyObligations(t *testing.T) {
	result := classifier.Classify(answersWith(map[string]any{
		catalog.QSystemType:           catalog.SystemTypePredictive,
		catalog.QInteractsWithPersons: true,
	}), catalog.LocaleES)

	if result.RiskLevel != classifier.RiskLimited {
		t.Fatalf("RiskLevel = %s, want %s", result.RiskLevel, classifier.RiskLimited)
	}
	if len(result.Obligations) == 0 {
		t.Error("Obligations empty, want transparency duties")
	}

	found := false
	for _, a := range result.ApplicableArticles {
		if a == "Art. 50.1" {
			found = true
		}
	}
	if !found {
		t.Errorf("ApplicableArticles = %v, want to contain Art. 50.1", result.ApplicableArticles)
	}
}

func TestResultShapeCompleteness(t *testing.T) {
	cases := map[string][]catalog.Answer{
		"prohibited": answersWith(map[string]any{catalog.QFacialScraping: true}),
		"high":       answersWith(map[string]any{catalog.QLawEnforcementUse: true}),
		"limited":    answersWith(map[string]any{catalog.QInteractsWithPersons: true}),
		"minimal":    answersWith(map[string]any{catalog.QSystemType: catalog.SystemTypePredictive}),
	}

	for name, answers := range cases {
		t.Run(name, func(t *testing.T) {
			result := classifier.Classify(answers, catalog.LocaleEN)

			if result.RiskLevel == "" {
				t.Error("RiskLevel empty")
			}
			if result.ProhibitionReasons == nil {
				t.Error("ProhibitionReasons nil, want slice")
			}
			if result.ApplicableArticles == nil {
				t.Error("ApplicableArticles nil, want slice")
			}
			if result.Obligations == nil {
				t.Error("Obligations nil, want slice")
			}
			if len(result.Recommendations) == 0 {
				t.Error("Recommendations empty")
			}
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("Score = %d, want in [0,100]", result.Score)
			}
			if result.Summary == "" {
				t.Error("Summary empty")
			}
			if result.DetailedExplanation == "" {
				t.Error("DetailedExplanation empty")
			}
			if result.Locale != catalog.LocaleEN {
				t.Errorf("Locale = %s, want en", result.Locale)
			}
		})
	}
}

func TestLocaleDifferentiation(t *testing.T) {
	answers := answersWith(map[string]any{catalog.QEmploymentDecisions: true})

	es := classifier.Classify(answers, catalog.LocaleES)
	en := classifier.Classify(answers, catalog.LocaleEN)

	if es.Summary == en.Summary {
		t.Error("es and en summaries identical, want locale-specific text")
	}
	if es.DetailedExplanation == en.DetailedExplanation {
		t.Error("es and en explanations identical, want locale-specific text")
	}

	// Identity fields must not vary with locale.
	if es.RiskLevel != en.RiskLevel || es.Score != en.Score {
		t.Error("risk level or score varies with locale")
	}
	if !reflect.DeepEqual(es.ApplicableArticles, en.ApplicableArticles) {
		t.Error("applicable articles vary with locale")
	}
}

func TestUnsupportedLocaleFallsBack(t *testing.T) {
	answers := answersWith(nil)

	got := classifier.Classify(answers, catalog.Locale("de"))
	want := classifier.Classify(answers, catalog.DefaultLocale)

	if !reflect.DeepEqual(got, want) {
		t.Error("unsupported locale result differs from default locale result")
	}
}

func TestIdempotenceAndOrderIndependence(t *testing.T) {
	answers := answersWith(map[string]any{
		catalog.QEmploymentDecisions: true,
		catalog.QEducationAccess:     true,
	})

	first := classifier.Classify(answers, catalog.LocaleES)
	second := classifier.Classify(answers, catalog.LocaleES)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated classification differs")
	}

	shuffled := append([]catalog.Answer{}, answers...)
	r := rand.New(rand.NewSource(7))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	reordered := classifier.Classify(shuffled, catalog.LocaleES)
	if !reflect.DeepEqual(first, reordered) {
		t.Error("reordered answers produce a different result")
	}
}

func TestScoreMonotoneWithTier(t *testing.T) {
	prohibited := classifier.Classify(answersWith(map[string]any{
		catalog.QSubliminalManipulation: true,
	}), catalog.LocaleES)
	high := classifier.Classify(answersWith(map[string]any{
		catalog.QEmploymentDecisions: true,
	}), catalog.LocaleES)
	limited := classifier.Classify(answersWith(map[string]any{
		catalog.QInteractsWithPersons: true,
	}), catalog.LocaleES)
	minimal := classifier.Classify(answersWith(map[string]any{
		catalog.QSystemType: catalog.SystemTypePredictive,
	}), catalog.LocaleES)

	if !(prohibited.Score >= high.Score) {
		t.Errorf("prohibited score %d < high score %d", prohibited.Score, high.Score)
	}
	if !(high.Score >= limited.Score) {
		t.Errorf("high score %d < limited score %d", high.Score, limited.Score)
	}
	if !(limited.Score >= minimal.Score) {
		t.Errorf("limited score %d < minimal score %d", limited.Score, minimal.Score)
	}
}

func TestScoreGrowsWithMatchesWithinTier(t *testing.T) {
	one := classifier.Classify(answersWith(map[string]any{
		catalog.QEmploymentDecisions: true,
	}), catalog.LocaleES)
	three := classifier.Classify(answersWith(map[string]any{
		catalog.QEmploymentDecisions:     true,
		catalog.QEducationAccess:         true,
		catalog.QBiometricIdentification: true,
	}), catalog.LocaleES)

	if three.Score <= one.Score {
		t.Errorf("three-rule score %d not greater than one-rule score %d", three.Score, one.Score)
	}
	if three.Score > 100 {
		t.Errorf("score %d exceeds 100", three.Score)
	}
}

func TestMalformedAnswersDegradeGracefully(t *testing.T) {
	result := classifier.Classify([]catalog.Answer{
		{QuestionID: catalog.QSystemType, Value: 12},
		{QuestionID: catalog.QSubliminalManipulation, Value: "maybe"},
		{QuestionID: catalog.QEmploymentDecisions, Value: []any{"true"}},
	}, catalog.LocaleES)

	if result.RiskLevel != classifier.RiskMinimal {
		t.Errorf("RiskLevel = %s, want minimal for malformed flags", result.RiskLevel)
	}
	if result.IsProhibited {
		t.Error("IsProhibited = true for malformed flags, want false")
	}
}

func TestObligationsDeduplicated(t *testing.T) {
	result := classifier.Classify(answersWith(map[string]any{
		catalog.QEmploymentDecisions:     true,
		catalog.QBiometricIdentification: true,
	}), catalog.LocaleES)

	seen := make(map[string]struct{})
	for _, o := range result.Obligations {
		if _, ok := seen[o.Key]; ok {
			t.Errorf("duplicate obligation key %q", o.Key)
		}
		seen[o.Key] = struct{}{}

		if o.Description == "" {
			t.Errorf("obligation %q has empty description", o.Key)
		}
	}
}

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    classifier.RiskLevel
		wantErr bool
	}{
		{"unacceptable", classifier.RiskUnacceptable, false},
		{"high", classifier.RiskHigh, false},
		{"limited", classifier.RiskLimited, false},
		{"minimal", classifier.RiskMinimal, false},
		{"critical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := classifier.ParseRiskLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRiskLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRiskLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRiskLevelRankOrdering(t *testing.T) {
	ordered := []classifier.RiskLevel{
		classifier.RiskMinimal,
		classifier.RiskLimited,
		classifier.RiskHigh,
		classifier.RiskUnacceptable,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Errorf("Rank(%s) = %d not greater than Rank(%s) = %d",
				ordered[i], ordered[i].Rank(), ordered[i-1], ordered[i-1].Rank())
		}
	}
}
