package engine

// RecordEntry is one answered question in the export record. Choice
// questions with evaluated branches mirror the same shape one level down.
type RecordEntry struct {
	QuestionID   uint          `json:"question_id"`
	QuestionText string        `json:"question_text"`
	QuestionType QuestionType  `json:"question_type"`
	Answer       string        `json:"answer"`
	Sub          []RecordEntry `json:"subquestions,omitempty"`
}

// Record is the flat, serializable projection of one submission, ready for
// storage or export.
type Record struct {
	FormID     uint          `json:"form_id"`
	ResponseID uint          `json:"response_id,omitempty"`
	Entries    []RecordEntry `json:"entries"`
	Score      *Score        `json:"score,omitempty"`
}

// Project assembles the export record for one answer set. It consumes the
// subquestion linkage the interpreter carried forward instead of re-matching
// selected options against parent keys.
func Project(s *Schema, set *AnswerSet, score *Score, responseID uint) *Record {
	rec := &Record{
		FormID:     s.FormID,
		ResponseID: responseID,
		Score:      score,
	}

	for _, a := range set.Answers {
		q, ok := s.Question(a.QuestionID)
		if !ok {
			continue
		}
		entry := RecordEntry{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			QuestionType: q.Type,
			Answer:       a.Value,
		}
		entry.Sub = projectSubs(s, a.Sub)
		rec.Entries = append(rec.Entries, entry)
	}
	return rec
}

func projectSubs(s *Schema, subs []SubAnswer) []RecordEntry {
	var entries []RecordEntry
	for _, sa := range subs {
		sq, ok := s.SubQuestion(sa.SubQuestionID)
		if !ok {
			continue
		}
		entries = append(entries, RecordEntry{
			QuestionID:   sq.ID,
			QuestionText: sq.Text,
			QuestionType: sq.Type,
			Answer:       sa.Value,
			Sub:          projectSubs(s, sa.Sub),
		})
	}
	return entries
}
