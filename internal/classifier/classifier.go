package classifier

import (
	"slices"
	"strings"

	"github.com/JaimeStill/tutela/internal/catalog"
)

// Tier base scores and ceilings. Exact values are an implementation choice;
// the load-bearing invariant is that score ranges never overlap across tiers,
// keeping score monotone with tier severity.
const (
	scoreUnacceptableBase = 90
	scoreHighBase         = 60
	scoreLimitedBase      = 30
	scoreMinimal          = 10
	scorePerExtraRule     = 2

	scoreUnacceptableCap = 100
	scoreHighCap         = 75
	scoreLimitedCap      = 45
)

// Classify evaluates the answer set against the rule tables in strict tier
// precedence: prohibition, then high risk, then limited risk, then minimal.
// The first tier with any match decides the risk level; later tiers are not
// evaluated. Unknown locales fall back to the default. The call is pure and
// never mutates answers.
func Classify(answers []catalog.Answer, loc catalog.Locale) Result {
	loc = catalog.ParseLocale(string(loc))
	set := catalog.Fold(answers)

	if matched := evaluate(prohibitionRules, set); len(matched) > 0 {
		return prohibitedResult(matched, loc)
	}

	if matched := evaluate(highRiskRules, set); len(matched) > 0 {
		return highRiskResult(matched, loc)
	}

	if matched := evaluate(limitedRiskRules, set); len(matched) > 0 {
		return limitedRiskResult(matched, loc)
	}

	return minimalResult(loc)
}

func evaluate(rules []rule, set catalog.AnswerSet) []rule {
	matched := make([]rule, 0, len(rules))
	for _, r := range rules {
		if r.predicate(set) {
			matched = append(matched, r)
		}
	}
	return matched
}

func prohibitedResult(matched []rule, loc catalog.Locale) Result {
	reasons := make([]string, len(matched))
	for i, r := range matched {
		reasons[i] = r.reason.In(loc)
	}

	// Prohibited systems have no compliance path, so no obligations.
	return Result{
		RiskLevel:           RiskUnacceptable,
		IsProhibited:        true,
		ProhibitionReasons:  reasons,
		ApplicableArticles:  collectArticles(matched),
		Obligations:         []Obligation{},
		Recommendations:     renderRecommendations(RiskUnacceptable, loc),
		Score:               score(scoreUnacceptableBase, scoreUnacceptableCap, len(matched)),
		Summary:             renderSummary(RiskUnacceptable, matched, loc),
		DetailedExplanation: renderExplanation(RiskUnacceptable, matched, loc),
		Locale:              loc,
	}
}

func highRiskResult(matched []rule, loc catalog.Locale) Result {
	specs := make([]obligationSpec, 0, len(matched)+len(highRiskBaseline))
	for _, r := range matched {
		specs = append(specs, r.obligations...)
	}
	specs = append(specs, highRiskBaseline...)

	return Result{
		RiskLevel:           RiskHigh,
		IsProhibited:        false,
		ProhibitionReasons:  []string{},
		ApplicableArticles:  collectArticles(matched),
		Obligations:         renderObligations(specs, loc),
		Recommendations:     renderRecommendations(RiskHigh, loc),
		Score:               score(scoreHighBase, scoreHighCap, len(matched)),
		Summary:             renderSummary(RiskHigh, matched, loc),
		DetailedExplanation: renderExplanation(RiskHigh, matched, loc),
		Locale:              loc,
	}
}

func limitedRiskResult(matched []rule, loc catalog.Locale) Result {
	specs := make([]obligationSpec, 0, len(matched))
	for _, r := range matched {
		specs = append(specs, r.obligations...)
	}

	return Result{
		RiskLevel:           RiskLimited,
		IsProhibited:        false,
		ProhibitionReasons:  []string{},
		ApplicableArticles:  collectArticles(matched),
		Obligations:         renderObligations(specs, loc),
		Recommendations:     renderRecommendations(RiskLimited, loc),
		Score:               score(scoreLimitedBase, scoreLimitedCap, len(matched)),
		Summary:             renderSummary(RiskLimited, matched, loc),
		DetailedExplanation: renderExplanation(RiskLimited, matched, loc),
		Locale:              loc,
	}
}

func minimalResult(loc catalog.Locale) Result {
	return Result{
		RiskLevel:           RiskMinimal,
		IsProhibited:        false,
		ProhibitionReasons:  []string{},
		ApplicableArticles:  []string{},
		Obligations:         []Obligation{},
		Recommendations:     renderRecommendations(RiskMinimal, loc),
		Score:               scoreMinimal,
		Summary:             renderSummary(RiskMinimal, nil, loc),
		DetailedExplanation: renderExplanation(RiskMinimal, nil, loc),
		Locale:              loc,
	}
}

// collectArticles gathers citations from matched rules, de-duplicated with
// insertion order preserved.
func collectArticles(matched []rule) []string {
	articles := make([]string, 0, len(matched))
	for _, r := range matched {
		if !slices.Contains(articles, r.article) {
			articles = append(articles, r.article)
		}
	}
	return articles
}

func renderObligations(specs []obligationSpec, loc catalog.Locale) []Obligation {
	obligations := make([]Obligation, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))

	for _, spec := range specs {
		if _, ok := seen[spec.key]; ok {
			continue
		}
		seen[spec.key] = struct{}{}

		obligations = append(obligations, Obligation{
			Key:         spec.key,
			Article:     spec.article,
			Description: spec.description.In(loc),
		})
	}
	return obligations
}

func score(base, ceiling, matches int) int {
	s := base + (matches-1)*scorePerExtraRule
	if s > ceiling {
		return ceiling
	}
	return s
}

func ruleNames(matched []rule, loc catalog.Locale) string {
	names := make([]string, len(matched))
	for i, r := range matched {
		names[i] = r.name.In(loc)
	}
	return strings.Join(names, ", ")
}
