package engine

import (
	"strconv"
	"strings"
)

// Score is the grading result of one quiz submission. MaxScore sums the
// point values of the quiz questions that were actually answered, not of
// every quiz question the form defines.
type Score struct {
	Score           float64 `json:"score"`
	MaxScore        float64 `json:"max_score"`
	ScorePercentage float64 `json:"score_percentage"`
	Passed          bool    `json:"passed"`
}

// ScoreAnswers grades an answer set against the schema's correct-answer
// keys. It returns nil for non-quiz schemas. Grading is idempotent and
// independent of question order; a quiz with no answered quiz questions
// scores 0% and fails rather than dividing by zero.
func ScoreAnswers(s *Schema, set *AnswerSet) *Score {
	if !s.IsQuiz {
		return nil
	}

	answered := make(map[uint]string, len(set.Answers))
	for _, a := range set.Answers {
		answered[a.QuestionID] = a.Value
	}

	score := &Score{}
	for _, q := range s.Questions {
		if !q.IsQuizQuestion {
			continue
		}
		value, ok := answered[q.ID]
		if !ok {
			continue
		}
		score.MaxScore += q.Points
		if isCorrect(q, value) {
			score.Score += q.Points
		}
	}

	if score.MaxScore > 0 {
		score.ScorePercentage = score.Score / score.MaxScore * 100
		score.Passed = score.ScorePercentage >= s.PassingScore
	}
	return score
}

// isCorrect compares one answered value against the stored correct-answer
// key. For choice questions the key is the index of the correct option; a
// non-numeric or out-of-range key makes the question unanswerable-correctly
// but never aborts grading. Free-text comparison is exact and
// case-sensitive.
func isCorrect(q Question, value string) bool {
	switch q.Type.Kind() {
	case KindSingleChoice, KindMultiChoice:
		idx, err := strconv.Atoi(strings.TrimSpace(q.CorrectAnswer))
		if err != nil || idx < 0 || idx >= len(q.Options) {
			return false
		}
		return value == q.Options[idx].Text
	default:
		return value == q.CorrectAnswer
	}
}
