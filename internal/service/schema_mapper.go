package service

import (
	"encoding/json"

	"github.com/lshigami/Margays/internal/engine"
	"github.com/lshigami/Margays/internal/model"
	"github.com/rs/zerolog/log"
)

// schemaFromModel rebuilds the evaluation schema from persisted rows, so the
// engine sees storage-assigned question identities. Options columns holding
// unparsable JSON degrade to empty option lists, mirroring the builder.
func schemaFromModel(form *model.Form) *engine.Schema {
	schema := &engine.Schema{
		FormID:       form.ID,
		IsQuiz:       form.IsQuiz,
		PassingScore: form.PassingScore,
		ShowScore:    form.ShowScore,
	}

	for _, q := range form.Questions {
		eq := engine.Question{
			ID:             q.ID,
			Text:           q.QuestionText,
			Type:           engine.QuestionType(q.QuestionType),
			Required:       q.Required,
			Order:          q.OrderInForm,
			IsQuizQuestion: q.IsQuizQuestion,
			CorrectAnswer:  q.CorrectAnswer,
			Points:         q.Points,
			Feedback:       q.Feedback,
		}
		for _, text := range decodeOptionTexts(q.Options) {
			eq.Options = append(eq.Options, engine.Option{Text: text})
		}
		for _, sq := range q.SubQuestions {
			esq := engine.SubQuestion{
				ID:        sq.ID,
				ParentKey: sq.ParentOption,
				Level:     sq.NestingLevel,
				Text:      sq.QuestionText,
				Type:      engine.QuestionType(sq.QuestionType),
				Required:  sq.Required,
				Order:     sq.OrderInParent,
			}
			for _, text := range decodeOptionTexts(sq.Options) {
				esq.Options = append(esq.Options, engine.Option{Text: text})
			}
			eq.SubQuestions = append(eq.SubQuestions, esq)
		}
		schema.Questions = append(schema.Questions, eq)
	}
	return schema
}

// decodeOptionTexts reads a stored options column. Empty and malformed
// columns both yield no options; malformed ones are logged, not fatal.
func decodeOptionTexts(raw string) []string {
	if raw == "" {
		return nil
	}
	var texts []string
	if err := json.Unmarshal([]byte(raw), &texts); err != nil {
		log.Warn().Err(err).Str("options", raw).Msg("Stored options column is not valid JSON, treating as no options")
		return nil
	}
	return texts
}

// encodeOptionTexts writes an options column. Questions without options store
// an empty column rather than an empty JSON list.
func encodeOptionTexts(texts []string) string {
	if len(texts) == 0 {
		return ""
	}
	data, err := json.Marshal(texts)
	if err != nil {
		return ""
	}
	return string(data)
}
