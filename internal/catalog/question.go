package catalog

// QuestionType determines how a question's answer value is interpreted.
type QuestionType string

// Valid question types.
const (
	TypeBoolean      QuestionType = "boolean"
	TypeSingleSelect QuestionType = "single_select"
	TypeMultiSelect  QuestionType = "multi_select"
)

// Option is a selectable value for select-type questions, with its
// locale-resolved label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Condition gates a question's visibility on an earlier question's answer.
// The question is visible when the referenced answer matches any listed value.
type Condition struct {
	QuestionID string   `json:"question_id"`
	AnyOf      []string `json:"any_of"`
}

// Question is a single classification prompt with its text resolved to one locale.
// IDs, types, and weights are identical across locales; only text varies.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Weight      int          `json:"weight"`
	Mandatory   bool         `json:"mandatory"`
	Text        string       `json:"text"`
	Help        string       `json:"help,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	VisibleWhen *Condition   `json:"visible_when,omitempty"`
}

// entry is the internal catalog record carrying bilingual text.
type entry struct {
	id          string
	qtype       QuestionType
	weight      int
	mandatory   bool
	text        Text
	help        Text
	options     []option
	visibleWhen *Condition
}

type option struct {
	value string
	label Text
}

func (e entry) resolve(loc Locale) Question {
	q := Question{
		ID:          e.id,
		Type:        e.qtype,
		Weight:      e.weight,
		Mandatory:   e.mandatory,
		Text:        e.text.In(loc),
		Help:        e.help.In(loc),
		VisibleWhen: e.visibleWhen,
	}

	if len(e.options) > 0 {
		q.Options = make([]Option, len(e.options))
		for i, opt := range e.options {
			q.Options[i] = Option{Value: opt.value, Label: opt.label.In(loc)}
		}
	}

	return q
}

// Questions returns the full ordered question catalog resolved to the given
// locale. Unsupported locales fall back to the default locale's text; the
// returned question identities never vary.
func Questions(loc Locale) []Question {
	loc = ParseLocale(string(loc))

	questions := make([]Question, len(catalog))
	for i, e := range catalog {
		questions[i] = e.resolve(loc)
	}
	return questions
}

// TotalWeight returns the summed weight of every catalog question.
func TotalWeight() int {
	total := 0
	for _, e := range catalog {
		total += e.weight
	}
	return total
}
