package engine

import "testing"

// quizSchema builds a two-question quiz: a 10-point radio question with the
// correct option at index 1, and a 5-point free-text question.
func quizSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := Build([]byte(`{
		"is_quiz": true,
		"passing_score": 50,
		"questions": [
			{
				"question_text": "Pick the letter B",
				"question_type": "radio",
				"options": ["A", "B", "C"],
				"is_quiz_question": true,
				"correct_answer": "1",
				"points": 10
			},
			{
				"question_text": "Type exactly: Go",
				"question_type": "text",
				"is_quiz_question": true,
				"correct_answer": "Go",
				"points": 5
			}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return schema
}

func TestScoreAnswers_NonQuizSchema(t *testing.T) {
	schema := petSchema(t)
	set := Interpret(schema, Submission{schema.Questions[0].FieldKey(): {"Cat"}})
	if got := ScoreAnswers(schema, set); got != nil {
		t.Errorf("ScoreAnswers() = %+v, want nil for a non-quiz form", got)
	}
}

func TestScoreAnswers_IndexKeyedChoice(t *testing.T) {
	schema := quizSchema(t)
	radio := schema.Questions[0]

	tests := []struct {
		answer string
		want   float64
	}{
		{"B", 10}, // option at index 1
		{"A", 0},
		{"C", 0},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			set := &AnswerSet{Answers: []Answer{{QuestionID: radio.ID, Value: tt.answer}}}
			score := ScoreAnswers(schema, set)
			if score.Score != tt.want {
				t.Errorf("Score = %v, want %v", score.Score, tt.want)
			}
			if score.MaxScore != 10 {
				t.Errorf("MaxScore = %v, want 10 (only the answered question counts)", score.MaxScore)
			}
		})
	}
}

func TestScoreAnswers_FreeTextExactMatch(t *testing.T) {
	schema := quizSchema(t)
	text := schema.Questions[1]

	tests := []struct {
		answer string
		want   float64
	}{
		{"Go", 5},
		{"go", 0}, // case-sensitive
		{"Go ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			set := &AnswerSet{Answers: []Answer{{QuestionID: text.ID, Value: tt.answer}}}
			if score := ScoreAnswers(schema, set); score.Score != tt.want {
				t.Errorf("Score = %v, want %v", score.Score, tt.want)
			}
		})
	}
}

func TestScoreAnswers_MalformedKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"non-numeric index", "first"},
		{"out-of-range index", "7"},
		{"negative index", "-1"},
		{"empty key", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := quizSchema(t)
			schema.Questions[0].CorrectAnswer = tt.key
			set := &AnswerSet{Answers: []Answer{
				{QuestionID: schema.Questions[0].ID, Value: "B"},
				{QuestionID: schema.Questions[1].ID, Value: "Go"},
			}}

			score := ScoreAnswers(schema, set)
			if score.MaxScore != 15 {
				t.Errorf("MaxScore = %v, want 15 (broken key still counts toward max)", score.MaxScore)
			}
			if score.Score != 5 {
				t.Errorf("Score = %v, want 5 (broken question never correct, grading continues)", score.Score)
			}
		})
	}
}

func TestScoreAnswers_NoAnsweredQuizQuestions(t *testing.T) {
	schema := quizSchema(t)
	score := ScoreAnswers(schema, &AnswerSet{})

	if score.MaxScore != 0 || score.Score != 0 {
		t.Errorf("score = %v/%v, want 0/0", score.Score, score.MaxScore)
	}
	if score.Passed {
		t.Error("Passed = true, want false when nothing was answered")
	}
	if score.ScorePercentage != 0 {
		t.Errorf("ScorePercentage = %v, want 0 (no division by zero)", score.ScorePercentage)
	}
}

func TestScoreAnswers_PassingThreshold(t *testing.T) {
	tests := []struct {
		name    string
		answers []Answer
		wantPct float64
		want    bool
	}{
		{
			"both correct passes",
			[]Answer{{QuestionID: 1, Value: "B"}, {QuestionID: 2, Value: "Go"}},
			100, true,
		},
		{
			"10 of 15 passes at 50%",
			[]Answer{{QuestionID: 1, Value: "B"}, {QuestionID: 2, Value: "no"}},
			100.0 / 15 * 10, true,
		},
		{
			"5 of 15 fails at 50%",
			[]Answer{{QuestionID: 1, Value: "A"}, {QuestionID: 2, Value: "Go"}},
			100.0 / 15 * 5, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := quizSchema(t)
			score := ScoreAnswers(schema, &AnswerSet{Answers: tt.answers})
			if score.Passed != tt.want {
				t.Errorf("Passed = %v, want %v", score.Passed, tt.want)
			}
			if diff := score.ScorePercentage - tt.wantPct; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ScorePercentage = %v, want %v", score.ScorePercentage, tt.wantPct)
			}
		})
	}
}

func TestScoreAnswers_IdempotentAndOrderIndependent(t *testing.T) {
	schema := quizSchema(t)
	set := &AnswerSet{Answers: []Answer{
		{QuestionID: schema.Questions[1].ID, Value: "Go"},
		{QuestionID: schema.Questions[0].ID, Value: "B"},
	}}

	first := ScoreAnswers(schema, set)
	second := ScoreAnswers(schema, set)
	if *first != *second {
		t.Errorf("rescoring changed the result: %+v vs %+v", first, second)
	}

	// Permute schema question order; totals must not change.
	schema.Questions[0], schema.Questions[1] = schema.Questions[1], schema.Questions[0]
	permuted := ScoreAnswers(schema, set)
	if permuted.Score != first.Score || permuted.MaxScore != first.MaxScore || permuted.Passed != first.Passed {
		t.Errorf("permuted schema changed totals: %+v vs %+v", permuted, first)
	}
}
