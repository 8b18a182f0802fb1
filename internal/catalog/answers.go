package catalog

import "slices"

// Answer pairs a question ID with its raw answer value. The value shape
// depends on the question type: bool for boolean questions, string for
// single-select, and a string slice for multi-select. Values arriving from
// JSON clients are tolerated in loosely typed form and coerced on read.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
}

// AnswerSet is an answer list folded into a map keyed by question ID.
// Folding makes evaluation order-independent; later answers for the same
// question override earlier ones.
type AnswerSet map[string]any

// Fold collapses an answer list into an AnswerSet, last write wins.
// Unknown question IDs are kept; readers simply never consult them.
func Fold(answers []Answer) AnswerSet {
	set := make(AnswerSet, len(answers))
	for _, a := range answers {
		if a.QuestionID == "" {
			continue
		}
		set[a.QuestionID] = a.Value
	}
	return set
}

// Bool reads a boolean answer. Malformed or missing values coerce to false
// rather than erroring, so one bad answer degrades a classification instead
// of failing it.
func (s AnswerSet) Bool(id string) bool {
	switch v := s[id].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// String reads a single-select answer, coercing non-string values to "".
func (s AnswerSet) String(id string) string {
	if v, ok := s[id].(string); ok {
		return v
	}
	return ""
}

// Strings reads a multi-select answer. JSON decoding produces []any, which
// is flattened to its string elements; anything else coerces to nil.
func (s AnswerSet) Strings(id string) []string {
	switch v := s[id].(type) {
	case []string:
		return v
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				values = append(values, str)
			}
		}
		return values
	default:
		return nil
	}
}

// Has reports whether the question has any answer at all.
func (s AnswerSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// satisfies matches a visibility condition against the referenced answer.
// Conditions target single-select questions, so the answer is read as a
// string; non-string values coerce to "" and fail the match.
func (s AnswerSet) satisfies(c *Condition) bool {
	if c == nil {
		return true
	}
	return slices.Contains(c.AnyOf, s.String(c.QuestionID))
}

// VisibleQuestions filters the catalog to questions whose visibility
// condition is satisfied by the given answers. Deterministic for a given
// answer set regardless of the order answers were supplied.
func VisibleQuestions(answers []Answer, loc Locale) []Question {
	set := Fold(answers)

	visible := make([]Question, 0, len(catalog))
	for _, e := range catalog {
		if set.satisfies(e.visibleWhen) {
			visible = append(visible, e.resolve(ParseLocale(string(loc))))
		}
	}
	return visible
}

// Progress returns the answered share of total question weight as an integer
// percentage in [0,100]. Unknown question IDs contribute nothing; duplicates
// fold first so redundant answers can never push past 100.
func Progress(answers []Answer) int {
	if len(answers) == 0 {
		return 0
	}

	set := Fold(answers)
	answered := 0
	for _, e := range catalog {
		if set.Has(e.id) {
			answered += e.weight
		}
	}

	total := TotalWeight()
	if total == 0 {
		return 0
	}

	pct := (answered*100 + total/2) / total
	if pct > 100 {
		pct = 100
	}
	return pct
}

// CanClassify reports whether the minimum mandatory question set has been
// answered: system type, sector, and the primary prohibition flag. The gate
// keeps callers from classifying an empty questionnaire into a meaningless
// minimal-risk verdict.
func CanClassify(answers []Answer) bool {
	set := Fold(answers)

	for _, e := range catalog {
		if e.mandatory && !set.Has(e.id) {
			return false
		}
	}
	return true
}
