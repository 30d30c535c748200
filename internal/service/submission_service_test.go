package service

import (
	"testing"

	"github.com/lshigami/Margays/internal/model"
)

func petForm() *model.Form {
	return &model.Form{
		ID: 1,
		Questions: []model.Question{
			{
				ID:           10,
				QuestionText: "Do you have a pet?",
				QuestionType: "radio",
				Options:      `["Yes","No"]`,
				OrderInForm:  0,
				SubQuestions: []model.SubQuestion{
					{ID: 20, ParentOption: "Yes", NestingLevel: 1, QuestionText: "Which kind?", QuestionType: "radio", Options: `["Dog","Cat"]`},
					{ID: 21, ParentOption: "Yes|Dog", NestingLevel: 2, QuestionText: "Breed?", QuestionType: "text"},
				},
			},
			{
				ID:           11,
				QuestionText: "Toppings?",
				QuestionType: "checkbox",
				Options:      `["Cheese","Olives","Ham"]`,
				OrderInForm:  1,
			},
		},
	}
}

func TestProjectResponse_RebuildsNestedRecord(t *testing.T) {
	svc := &submissionService{}
	schema := schemaFromModel(petForm())

	response := &model.Response{
		ID:     99,
		FormID: 1,
		Answers: []model.Answer{
			{QuestionID: 10, AnswerText: "Yes"},
			{QuestionID: 11, AnswerText: "Cheese, Olives"},
		},
		SubQuestionAnswers: []model.SubQuestionAnswer{
			{SubQuestionID: 20, AnswerText: "Dog"},
			{SubQuestionID: 21, AnswerText: "Labrador"},
		},
	}

	record := svc.projectResponse(schema, response)

	if record.ID != 99 || record.FormID != 1 {
		t.Errorf("record identity = %+v", record)
	}
	if record.Score != nil {
		t.Errorf("non-quiz response got a score: %+v", record.Score)
	}
	if len(record.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(record.Entries))
	}

	pet := record.Entries[0]
	if pet.Answer != "Yes" || len(pet.SubQuestions) != 1 {
		t.Fatalf("pet entry = %+v", pet)
	}
	kind := pet.SubQuestions[0]
	if kind.Answer != "Dog" || len(kind.SubQuestions) != 1 {
		t.Fatalf("kind entry = %+v", kind)
	}
	if breed := kind.SubQuestions[0]; breed.Answer != "Labrador" {
		t.Errorf("breed entry = %+v", breed)
	}

	// The stored checkbox value is the joined form; it survives the rebuild.
	if got := record.Entries[1].Answer; got != "Cheese, Olives" {
		t.Errorf("checkbox answer = %q", got)
	}
}

func TestProjectResponse_SkipsRetiredQuestionRows(t *testing.T) {
	svc := &submissionService{}
	schema := schemaFromModel(petForm())

	// Rows referencing question identities that a later schema replacement
	// retired must not produce entries.
	response := &model.Response{
		ID:     100,
		FormID: 1,
		Answers: []model.Answer{
			{QuestionID: 10, AnswerText: "No"},
			{QuestionID: 999, AnswerText: "orphaned"},
		},
		SubQuestionAnswers: []model.SubQuestionAnswer{
			{SubQuestionID: 888, AnswerText: "orphaned"},
		},
	}

	record := svc.projectResponse(schema, response)
	if len(record.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(record.Entries))
	}
	if record.Entries[0].Answer != "No" || len(record.Entries[0].SubQuestions) != 0 {
		t.Errorf("entry = %+v", record.Entries[0])
	}
}

func TestProjectResponse_UsesStoredScore(t *testing.T) {
	svc := &submissionService{}

	form := petForm()
	form.IsQuiz = true
	form.PassingScore = 50
	schema := schemaFromModel(form)

	score, maxScore, pct, passed := 10.0, 20.0, 50.0, true
	response := &model.Response{
		ID:              101,
		FormID:          1,
		Score:           &score,
		MaxScore:        &maxScore,
		ScorePercentage: &pct,
		Passed:          &passed,
		Answers: []model.Answer{
			{QuestionID: 10, AnswerText: "No"},
		},
	}

	record := svc.projectResponse(schema, response)
	if record.Score == nil {
		t.Fatal("stored grading columns should surface on the record")
	}
	if record.Score.Score != 10 || record.Score.MaxScore != 20 || !record.Score.Passed {
		t.Errorf("score = %+v", record.Score)
	}
}

func TestStoredScore(t *testing.T) {
	if got := storedScore(&model.Response{}); got != nil {
		t.Errorf("response without grading columns should yield nil, got %+v", got)
	}

	s, m := 5.0, 15.0
	got := storedScore(&model.Response{Score: &s, MaxScore: &m})
	if got == nil || got.Score != 5 || got.MaxScore != 15 {
		t.Errorf("storedScore = %+v", got)
	}
	if got.ScorePercentage != 0 || got.Passed {
		t.Errorf("absent percentage columns should zero-value, got %+v", got)
	}
}
