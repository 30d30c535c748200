package dto

import "time"

// SubmissionDTO is the request body for submitting answers to a form. Values
// is keyed by field name ("question_<id>" and "subq_<id>"); checkbox fields
// may carry several values per key.
type SubmissionDTO struct {
	Values map[string][]string `json:"values" binding:"required"`
}

// ScoreDTO carries the grading result of a quiz submission.
type ScoreDTO struct {
	Score           float64 `json:"score"`
	MaxScore        float64 `json:"max_score"`
	ScorePercentage float64 `json:"score_percentage"`
	Passed          bool    `json:"passed"`
}

// RecordEntryDTO is one answered question in a response record, with any
// follow-up answers nested beneath it.
type RecordEntryDTO struct {
	QuestionID   uint             `json:"question_id"`
	QuestionText string           `json:"question_text"`
	QuestionType string           `json:"question_type"`
	Answer       string           `json:"answer"`
	SubQuestions []RecordEntryDTO `json:"subquestions,omitempty"`
}

// ResponseRecordDTO is the exported view of one stored response.
type ResponseRecordDTO struct {
	ID          uint             `json:"id"`
	FormID      uint             `json:"form_id"`
	SubmittedAt time.Time        `json:"submitted_at"`
	Entries     []RecordEntryDTO `json:"entries"`
	Score       *ScoreDTO        `json:"score,omitempty"`
}

// SubmissionResultDTO is returned right after a submission is stored. Score
// is present only for quiz forms that show their score.
type SubmissionResultDTO struct {
	ResponseID uint      `json:"response_id"`
	Score      *ScoreDTO `json:"score,omitempty"`
}
