package engine

import "strings"

// Submission is one raw form post: field key to submitted values, as an HTML
// form encodes it. Top-level questions use "question_<id>" keys and
// subquestions of both levels use "subq_<id>" keys.
type Submission map[string][]string

// Answer is the recorded value of one top-level question, with the answers
// of the follow-up questions its selection revealed.
type Answer struct {
	QuestionID uint
	Value      string
	Sub        []SubAnswer
}

// SubAnswer is the recorded value of one subquestion. Level-1 answers carry
// the level-2 answers their own selection revealed; level-2 answers never
// nest further.
type SubAnswer struct {
	SubQuestionID uint
	Level         int
	Value         string
	Sub           []SubAnswer
}

// AnswerSet is everything one submission answered, in schema order.
// It is append-only during interpretation and carries the subquestion
// linkage forward so projection never repeats the option matching.
type AnswerSet struct {
	FormID  uint
	Answers []Answer
}

// Interpret walks the schema top-down and extracts the answer for each
// question, descending into a question's subquestions only for the options
// the submission actually selected. Questions with empty values produce no
// answer and their branches are never evaluated; required-ness is the
// submitting client's concern, not the engine's.
func Interpret(s *Schema, values Submission) *AnswerSet {
	set := &AnswerSet{FormID: s.FormID}

	for _, q := range s.Questions {
		value := extractValue(values, q.FieldKey(), q.Type)
		if value == "" {
			continue
		}

		ans := Answer{QuestionID: q.ID, Value: value}
		if q.Type.IsChoice() {
			for _, selected := range splitSelections(value, q.Type) {
				for _, sq := range q.SubQuestions {
					if sq.Level != 1 || sq.ParentKey != selected {
						continue
					}
					if sub, ok := evaluateSub(&q, sq, values, selected); ok {
						ans.Sub = append(ans.Sub, sub)
					}
				}
			}
		}
		set.Answers = append(set.Answers, ans)
	}
	return set
}

// evaluateSub extracts a level-1 subquestion's answer and, when it is
// choice-typed, descends into the level-2 subquestions reachable through the
// composite "<parentOption>|<selection>" key.
func evaluateSub(q *Question, sq SubQuestion, values Submission, parentOption string) (SubAnswer, bool) {
	value := extractValue(values, sq.FieldKey(), sq.Type)
	if value == "" {
		return SubAnswer{}, false
	}

	sub := SubAnswer{SubQuestionID: sq.ID, Level: sq.Level, Value: value}
	if sq.Level == 1 && sq.Type.IsChoice() {
		for _, selected := range splitSelections(value, sq.Type) {
			pathKey := parentOption + PathSeparator + selected
			for _, nested := range q.SubQuestions {
				if nested.Level != 2 || nested.ParentKey != pathKey {
					continue
				}
				nestedValue := extractValue(values, nested.FieldKey(), nested.Type)
				if nestedValue == "" {
					continue
				}
				sub.Sub = append(sub.Sub, SubAnswer{
					SubQuestionID: nested.ID,
					Level:         nested.Level,
					Value:         nestedValue,
				})
			}
		}
	}
	return sub, true
}

// extractValue pulls the raw answer for one field key. Multi-choice fields
// collect every selected value joined with OptionSeparator; everything else
// takes the first value.
func extractValue(values Submission, key string, t QuestionType) string {
	raw, ok := values[key]
	if !ok {
		return ""
	}
	if t.Kind() == KindMultiChoice {
		var selected []string
		for _, v := range raw {
			if v != "" {
				selected = append(selected, v)
			}
		}
		return strings.Join(selected, OptionSeparator)
	}
	if len(raw) == 0 {
		return ""
	}
	return raw[0]
}

// splitSelections recovers the set of selected option texts from a stored
// answer value.
func splitSelections(value string, t QuestionType) []string {
	if t.Kind() == KindMultiChoice {
		return strings.Split(value, OptionSeparator)
	}
	return []string{value}
}
