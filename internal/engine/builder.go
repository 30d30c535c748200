package engine

import (
	"encoding/json"
	"fmt"
)

// ValidationError rejects a malformed schema-authoring payload. It is the
// only error the builder surfaces; recoverable decode problems degrade to
// warnings instead.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid schema payload: " + e.Reason
}

// QuestionPayload is one question descriptor of the authoring payload.
// Options may be a JSON array of strings, an array of option objects with
// nested subquestions, or a JSON-string-encoded form of either.
type QuestionPayload struct {
	Text           string          `json:"question_text"`
	Type           string          `json:"question_type"`
	Required       bool            `json:"required"`
	Options        json.RawMessage `json:"options"`
	IsQuizQuestion bool            `json:"is_quiz_question"`
	CorrectAnswer  json.RawMessage `json:"correct_answer"`
	Points         float64         `json:"points"`
	Feedback       string          `json:"feedback"`
}

// SubQuestionPayload is a follow-up descriptor nested under an option.
type SubQuestionPayload struct {
	Text     string          `json:"text"`
	Type     string          `json:"type"`
	Required bool            `json:"required"`
	Options  json.RawMessage `json:"options"`
}

// OptionPayload is an option descriptor that may carry its own follow-ups.
type OptionPayload struct {
	Text         string               `json:"text"`
	SubQuestions []SubQuestionPayload `json:"subquestions"`
}

// Payload is the top-level authoring payload.
type Payload struct {
	IsQuiz       bool              `json:"is_quiz"`
	PassingScore float64           `json:"passing_score"`
	ShowScore    bool              `json:"show_score"`
	Questions    []QuestionPayload `json:"questions"`
}

// Build decodes and validates a schema-authoring payload. A payload without
// a "questions" list, or a question missing question_text or question_type,
// is rejected with a ValidationError. Unparsable options fields are degraded
// to empty option lists and recorded on Schema.Warnings.
func Build(data []byte) (*Schema, error) {
	var raw struct {
		IsQuiz       bool              `json:"is_quiz"`
		PassingScore float64           `json:"passing_score"`
		ShowScore    bool              `json:"show_score"`
		Questions    []QuestionPayload `json:"questions"`
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ValidationError{Reason: "payload is not a JSON object"}
	}
	if _, ok := probe["questions"]; !ok {
		return nil, &ValidationError{Reason: "missing questions list"}
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Reason: "questions is not a list of question descriptors"}
	}

	return BuildPayload(Payload{
		IsQuiz:       raw.IsQuiz,
		PassingScore: raw.PassingScore,
		ShowScore:    raw.ShowScore,
		Questions:    raw.Questions,
	})
}

// BuildPayload builds a Schema from an already-decoded payload. Question and
// subquestion identities are assigned sequentially; callers that persist the
// schema typically rebuild it afterwards with storage-assigned identities.
func BuildPayload(p Payload) (*Schema, error) {
	b := &builder{}
	schema := &Schema{
		IsQuiz:       p.IsQuiz,
		PassingScore: p.PassingScore,
		ShowScore:    p.ShowScore,
	}

	for idx, qp := range p.Questions {
		if qp.Text == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("question at index %d has no question_text", idx)}
		}
		if qp.Type == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("question %q has no question_type", qp.Text)}
		}
		qt := QuestionType(qp.Type)
		if !qt.Valid() {
			return nil, &ValidationError{Reason: fmt.Sprintf("question %q has unknown question_type %q", qp.Text, qp.Type)}
		}

		b.questionSeq++
		q := Question{
			ID:             b.questionSeq,
			Text:           qp.Text,
			Type:           qt,
			Required:       qp.Required,
			Order:          idx,
			IsQuizQuestion: qp.IsQuizQuestion,
			CorrectAnswer:  decodeScalar(qp.CorrectAnswer),
			Points:         qp.Points,
			Feedback:       qp.Feedback,
		}

		if qt.IsChoice() {
			opts, ok := decodeOptions(qp.Options)
			if !ok {
				schema.Warnings = append(schema.Warnings,
					fmt.Sprintf("question %q: options field is not valid JSON, treating as no options", qp.Text))
			}
			for _, op := range opts {
				q.Options = append(q.Options, Option{Text: op.Text})
				b.buildLevelOne(schema, &q, op)
			}
		}

		schema.Questions = append(schema.Questions, q)
	}
	return schema, nil
}

type builder struct {
	questionSeq uint
	subSeq      uint
}

func (b *builder) buildLevelOne(schema *Schema, q *Question, op OptionPayload) {
	for order, sp := range op.SubQuestions {
		st := QuestionType(sp.Type)
		if sp.Type == "" {
			st = TypeText
		}
		b.subSeq++
		sub := SubQuestion{
			ID:        b.subSeq,
			ParentKey: op.Text,
			Level:     1,
			Text:      sp.Text,
			Type:      st,
			Required:  sp.Required,
			Order:     order,
		}

		if st.IsChoice() {
			subOpts, ok := decodeOptions(sp.Options)
			if !ok {
				schema.Warnings = append(schema.Warnings,
					fmt.Sprintf("subquestion %q under option %q: options field is not valid JSON, treating as no options", sp.Text, op.Text))
			}
			for _, so := range subOpts {
				sub.Options = append(sub.Options, Option{Text: so.Text})
				b.buildLevelTwo(schema, q, op.Text, so)
			}
		}

		q.SubQuestions = append(q.SubQuestions, sub)
	}
}

func (b *builder) buildLevelTwo(schema *Schema, q *Question, parentOption string, so OptionPayload) {
	for order, np := range so.SubQuestions {
		nt := QuestionType(np.Type)
		if np.Type == "" {
			nt = TypeText
		}
		b.subSeq++
		nested := SubQuestion{
			ID:        b.subSeq,
			ParentKey: parentOption + PathSeparator + so.Text,
			Level:     2,
			Text:      np.Text,
			Type:      nt,
			Required:  np.Required,
			Order:     order,
		}

		if nt.IsChoice() {
			nestedOpts, ok := decodeOptions(np.Options)
			if !ok {
				schema.Warnings = append(schema.Warnings,
					fmt.Sprintf("subquestion %q under option path %q: options field is not valid JSON, treating as no options", np.Text, nested.ParentKey))
			}
			for _, no := range nestedOpts {
				nested.Options = append(nested.Options, Option{Text: no.Text})
				if len(no.SubQuestions) > 0 {
					schema.Warnings = append(schema.Warnings,
						fmt.Sprintf("option %q nests follow-ups below level 2, ignoring them", no.Text))
				}
			}
		}

		q.SubQuestions = append(q.SubQuestions, nested)
	}
}

// decodeOptions normalizes the three accepted encodings of an options field
// into option descriptors. A missing field yields no options; a present but
// unparsable field yields no options and ok=false so the caller can record a
// warning.
func decodeOptions(raw json.RawMessage) (opts []OptionPayload, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}

	// A JSON string holding an encoded list: unwrap once and retry.
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return nil, true
		}
		return decodeOptions(json.RawMessage(encoded))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	for _, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			if text != "" {
				opts = append(opts, OptionPayload{Text: text})
			}
			continue
		}
		var op OptionPayload
		if err := json.Unmarshal(item, &op); err != nil {
			return nil, false
		}
		if op.Text != "" {
			opts = append(opts, op)
		}
	}
	return opts, true
}

// decodeScalar reads a correct-answer field that may arrive as a JSON string
// or number. Anything else degrades to empty, which the scorer treats as
// never-correct.
func decodeScalar(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
