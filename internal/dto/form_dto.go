package dto

import "time"

// FormCreateDTO is the request body for creating a new form shell.
type FormCreateDTO struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	IsQuiz       bool    `json:"is_quiz"`
	PassingScore float64 `json:"passing_score" binding:"omitempty,min=0,max=100"`
	ShowScore    bool    `json:"show_score"`
}

// OptionDTO carries one choice of a choice-typed question together with the
// follow-up questions revealed when it is selected.
type OptionDTO struct {
	Text         string           `json:"text"`
	SubQuestions []SubQuestionDTO `json:"subquestions,omitempty"`
}

// SubQuestionDTO is a follow-up question shown only when its parent option
// is selected.
type SubQuestionDTO struct {
	ID           uint        `json:"id"`
	ParentOption string      `json:"parent_option"`
	NestingLevel int         `json:"nesting_level"`
	QuestionText string      `json:"question_text"`
	QuestionType string      `json:"question_type"`
	Required     bool        `json:"required"`
	Options      []OptionDTO `json:"options,omitempty"`
}

// QuestionDTO is used for displaying a question and its conditional tree.
type QuestionDTO struct {
	ID             uint        `json:"id"`
	QuestionText   string      `json:"question_text"`
	QuestionType   string      `json:"question_type"`
	Required       bool        `json:"required"`
	OrderInForm    int         `json:"order_in_form"`
	Options        []OptionDTO `json:"options,omitempty"`
	IsQuizQuestion bool        `json:"is_quiz_question,omitempty"`
	Points         float64     `json:"points,omitempty"`
}

// FormResponseDTO is used for displaying full form details.
type FormResponseDTO struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	IsQuiz       bool          `json:"is_quiz"`
	PassingScore float64       `json:"passing_score"`
	ShowScore    bool          `json:"show_score"`
	Questions    []QuestionDTO `json:"questions,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// FormSummaryDTO is used for listing forms.
type FormSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	IsQuiz        bool      `json:"is_quiz"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SchemaUpdateResultDTO is returned after a schema replacement. Warnings list
// the payload fields that were degraded rather than rejected.
type SchemaUpdateResultDTO struct {
	Form     FormResponseDTO `json:"form"`
	Warnings []string        `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
