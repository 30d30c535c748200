// Package engine implements the conditional questionnaire engine: a typed
// form schema with option-gated follow-up questions (two levels deep), the
// interpreter that reconciles a raw form post against that schema, the
// optional quiz grading pass, and the export projection. The engine is pure
// computation; persistence and transport belong to the callers.
package engine

import "fmt"

// QuestionType is the closed set of field types a form may use.
type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeEmail          QuestionType = "email"
	TypeTel            QuestionType = "tel"
	TypeNumber         QuestionType = "number"
	TypeRadio          QuestionType = "radio"
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeCheckbox       QuestionType = "checkbox"
)

// Kind collapses QuestionType into the three behaviors the evaluation
// algorithms care about.
type Kind int

const (
	KindFreeText Kind = iota
	KindSingleChoice
	KindMultiChoice
)

func (t QuestionType) Kind() Kind {
	switch t {
	case TypeRadio, TypeMultipleChoice:
		return KindSingleChoice
	case TypeCheckbox:
		return KindMultiChoice
	default:
		return KindFreeText
	}
}

func (t QuestionType) Valid() bool {
	switch t {
	case TypeText, TypeEmail, TypeTel, TypeNumber, TypeRadio, TypeMultipleChoice, TypeCheckbox:
		return true
	}
	return false
}

// IsChoice reports whether the type carries an option list.
func (t QuestionType) IsChoice() bool {
	return t.Kind() != KindFreeText
}

// OptionSeparator joins the selected option texts of a multi-choice answer
// into its stored value. The join is lossy if an option text itself contains
// the separator substring.
const OptionSeparator = ", "

// PathSeparator joins a level-0 option text with a level-1 option text into
// the parent key of a level-2 subquestion, so identical level-1 option texts
// under different level-0 options do not collide.
const PathSeparator = "|"

// Option is a single selectable value of a choice question. Its text doubles
// as the join key for follow-up questions.
type Option struct {
	Text string
}

// SubQuestion is a conditionally visible follow-up field. It only becomes
// answerable when the option named by ParentKey is selected on its parent
// question (level 1), or when the full selection path named by the composite
// ParentKey is taken (level 2).
type SubQuestion struct {
	ID        uint
	ParentKey string // option text at level 1, "<l0 option>|<l1 option>" at level 2
	Level     int    // 1 or 2
	Text      string
	Type      QuestionType
	Required  bool
	Order     int
	Options   []Option
}

// Question is a top-level form field. Choice-typed questions own their
// follow-up subquestions of both nesting levels, flattened and keyed by
// ParentKey.
type Question struct {
	ID       uint
	Text     string
	Type     QuestionType
	Required bool
	Order    int
	Options  []Option

	// Quiz metadata, meaningful only when the owning schema is a quiz.
	IsQuizQuestion bool
	CorrectAnswer  string
	Points         float64
	Feedback       string

	SubQuestions []SubQuestion
}

// Schema is the validated model of one form version. It is read-only once
// built; concurrent submissions may share it freely.
type Schema struct {
	FormID       uint
	IsQuiz       bool
	PassingScore float64
	ShowScore    bool
	Questions    []Question

	// Warnings records the fields the builder degraded rather than rejected,
	// such as options columns holding unparsable JSON.
	Warnings []string
}

// FieldKey is the submission field name for a top-level question.
func (q Question) FieldKey() string {
	return fmt.Sprintf("question_%d", q.ID)
}

// FieldKey is the submission field name for a subquestion. The same scheme
// covers both nesting levels; subquestion IDs are unique across levels.
func (sq SubQuestion) FieldKey() string {
	return fmt.Sprintf("subq_%d", sq.ID)
}

// OptionTexts returns the option values in display order.
func (q Question) OptionTexts() []string {
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}
	return texts
}

// Question returns the top-level question with the given identity.
func (s *Schema) Question(id uint) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// SubQuestion returns the subquestion with the given identity, searching all
// questions and both nesting levels.
func (s *Schema) SubQuestion(id uint) (SubQuestion, bool) {
	for _, q := range s.Questions {
		for _, sq := range q.SubQuestions {
			if sq.ID == id {
				return sq, true
			}
		}
	}
	return SubQuestion{}, false
}
