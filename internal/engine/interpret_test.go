package engine

import (
	"fmt"
	"testing"
)

// petSchema builds the recurring fixture: a radio question whose "Dog"
// option reveals a free-text follow-up.
func petSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := Build([]byte(`{"questions": [{
		"question_text": "Pet?",
		"question_type": "radio",
		"options": [
			{"text": "Dog", "subquestions": [{"text": "Breed?", "type": "text"}]},
			{"text": "Cat"}
		]
	}]}`))
	if err != nil {
		t.Fatal(err)
	}
	return schema
}

func TestInterpret_FlatSchema(t *testing.T) {
	schema, err := Build([]byte(`{"questions": [
		{"question_text": "Name?", "question_type": "text"},
		{"question_text": "Email?", "question_type": "email"},
		{"question_text": "Phone?", "question_type": "tel"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	values := Submission{
		schema.Questions[0].FieldKey(): {"Ada"},
		schema.Questions[1].FieldKey(): {""},
		// Phone? not submitted at all.
	}
	set := Interpret(schema, values)

	if len(set.Answers) != 1 {
		t.Fatalf("got %d answers, want exactly one per non-empty value", len(set.Answers))
	}
	if set.Answers[0].QuestionID != schema.Questions[0].ID || set.Answers[0].Value != "Ada" {
		t.Errorf("answer = %+v, want Name?=Ada", set.Answers[0])
	}
}

func TestInterpret_SelectedBranchOnly(t *testing.T) {
	schema := petSchema(t)
	q := schema.Questions[0]
	breed := q.SubQuestions[0]

	t.Run("selected option reveals follow-up", func(t *testing.T) {
		set := Interpret(schema, Submission{
			q.FieldKey():     {"Dog"},
			breed.FieldKey(): {"Labrador"},
		})
		if len(set.Answers) != 1 {
			t.Fatalf("got %d answers, want 1", len(set.Answers))
		}
		ans := set.Answers[0]
		if ans.Value != "Dog" {
			t.Errorf("answer = %q, want Dog", ans.Value)
		}
		if len(ans.Sub) != 1 || ans.Sub[0].SubQuestionID != breed.ID || ans.Sub[0].Value != "Labrador" {
			t.Errorf("sub answers = %+v, want Breed?=Labrador", ans.Sub)
		}
	})

	t.Run("non-selected option excludes follow-up even when a value was posted", func(t *testing.T) {
		set := Interpret(schema, Submission{
			q.FieldKey():     {"Cat"},
			breed.FieldKey(): {"Labrador"},
		})
		if len(set.Answers) != 1 {
			t.Fatalf("got %d answers, want 1", len(set.Answers))
		}
		if set.Answers[0].Value != "Cat" {
			t.Errorf("answer = %q, want Cat", set.Answers[0].Value)
		}
		if len(set.Answers[0].Sub) != 0 {
			t.Errorf("sub answers = %+v, want none under a non-selected option", set.Answers[0].Sub)
		}
	})

	t.Run("empty parent answer skips the whole branch", func(t *testing.T) {
		set := Interpret(schema, Submission{
			breed.FieldKey(): {"Labrador"},
		})
		if len(set.Answers) != 0 {
			t.Errorf("answers = %+v, want none when the parent value is empty", set.Answers)
		}
	})
}

func TestInterpret_ExactOptionMatch(t *testing.T) {
	// "Dog" must not reveal the follow-ups of "Dogmatic": matching is exact
	// equality, not substring containment.
	schema, err := Build([]byte(`{"questions": [{
		"question_text": "Pick one",
		"question_type": "radio",
		"options": [
			{"text": "Dogmatic", "subquestions": [{"text": "Why?", "type": "text"}]},
			{"text": "Dog"}
		]
	}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := schema.Questions[0]
	why := q.SubQuestions[0]

	set := Interpret(schema, Submission{
		q.FieldKey():   {"Dog"},
		why.FieldKey(): {"because"},
	})
	if len(set.Answers[0].Sub) != 0 {
		t.Errorf("sub answers = %+v, want none for a partial key match", set.Answers[0].Sub)
	}
}

func TestInterpret_CheckboxJoinAndFanOut(t *testing.T) {
	schema, err := Build([]byte(`{"questions": [{
		"question_text": "Toppings?",
		"question_type": "checkbox",
		"options": [
			{"text": "Cheese", "subquestions": [{"text": "Which cheese?", "type": "text"}]},
			{"text": "Ham", "subquestions": [{"text": "Smoked?", "type": "text"}]},
			{"text": "Olives"}
		]
	}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := schema.Questions[0]
	whichCheese := q.SubQuestions[0]
	smoked := q.SubQuestions[1]

	set := Interpret(schema, Submission{
		q.FieldKey():           {"Cheese", "Olives"},
		whichCheese.FieldKey(): {"Brie"},
		smoked.FieldKey():      {"yes"}, // Ham not selected, must be ignored
	})

	if got := set.Answers[0].Value; got != "Cheese, Olives" {
		t.Errorf("joined value = %q, want %q", got, "Cheese, Olives")
	}
	if len(set.Answers[0].Sub) != 1 {
		t.Fatalf("sub answers = %+v, want only the Cheese follow-up", set.Answers[0].Sub)
	}
	if set.Answers[0].Sub[0].SubQuestionID != whichCheese.ID || set.Answers[0].Sub[0].Value != "Brie" {
		t.Errorf("sub answer = %+v, want Which cheese?=Brie", set.Answers[0].Sub[0])
	}
}

func TestInterpret_TwoLevelNesting(t *testing.T) {
	schema, err := Build([]byte(`{"questions": [{
		"question_text": "Pet?",
		"question_type": "radio",
		"options": [{"text": "Dog", "subquestions": [
			{"text": "Breed?", "type": "radio", "options": [
				{"text": "Labrador", "subquestions": [{"text": "Color?", "type": "text"}]},
				{"text": "Poodle", "subquestions": [{"text": "Cut?", "type": "text"}]}
			]}
		]}]
	}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := schema.Questions[0]

	var breed SubQuestion
	byText := make(map[string]SubQuestion)
	for _, sq := range q.SubQuestions {
		byText[sq.Text] = sq
		if sq.Text == "Breed?" {
			breed = sq
		}
	}

	t.Run("selection path reveals exactly its composite-keyed set", func(t *testing.T) {
		set := Interpret(schema, Submission{
			q.FieldKey():                {"Dog"},
			breed.FieldKey():            {"Labrador"},
			byText["Color?"].FieldKey(): {"Black"},
			byText["Cut?"].FieldKey():   {"Short"}, // Poodle path not taken
		})
		breedAns := set.Answers[0].Sub[0]
		if len(breedAns.Sub) != 1 {
			t.Fatalf("level-2 answers = %+v, want only Color?", breedAns.Sub)
		}
		if breedAns.Sub[0].SubQuestionID != byText["Color?"].ID || breedAns.Sub[0].Value != "Black" {
			t.Errorf("level-2 answer = %+v, want Color?=Black", breedAns.Sub[0])
		}
	})

	t.Run("changing the level-1 selection changes the visible level-2 set", func(t *testing.T) {
		set := Interpret(schema, Submission{
			q.FieldKey():                {"Dog"},
			breed.FieldKey():            {"Poodle"},
			byText["Color?"].FieldKey(): {"Black"},
			byText["Cut?"].FieldKey():   {"Short"},
		})
		breedAns := set.Answers[0].Sub[0]
		if len(breedAns.Sub) != 1 || breedAns.Sub[0].SubQuestionID != byText["Cut?"].ID {
			t.Fatalf("level-2 answers = %+v, want only Cut?", breedAns.Sub)
		}
	})
}

func TestInterpret_DeadBranchIsSilent(t *testing.T) {
	schema := petSchema(t)
	// Point the follow-up at an option text that no longer exists.
	schema.Questions[0].SubQuestions[0].ParentKey = "Ferret"

	set := Interpret(schema, Submission{
		schema.Questions[0].FieldKey():                 {"Dog"},
		schema.Questions[0].SubQuestions[0].FieldKey(): {"Labrador"},
	})
	if len(set.Answers) != 1 || len(set.Answers[0].Sub) != 0 {
		t.Errorf("answers = %+v, want the Dog answer with no sub answers", set.Answers)
	}
}

func TestInterpret_PreservesSchemaOrder(t *testing.T) {
	var questions string
	for i := 0; i < 5; i++ {
		if i > 0 {
			questions += ","
		}
		questions += fmt.Sprintf(`{"question_text": "Q%d", "question_type": "text"}`, i)
	}
	schema, err := Build([]byte(`{"questions": [` + questions + `]}`))
	if err != nil {
		t.Fatal(err)
	}

	values := Submission{}
	for _, q := range schema.Questions {
		values[q.FieldKey()] = []string{q.Text}
	}
	set := Interpret(schema, values)

	if len(set.Answers) != 5 {
		t.Fatalf("got %d answers, want 5", len(set.Answers))
	}
	for i, ans := range set.Answers {
		if ans.QuestionID != schema.Questions[i].ID {
			t.Errorf("answer %d is for question %d, want schema order preserved", i, ans.QuestionID)
		}
	}
}
