package model

import (
	"time"

	"gorm.io/gorm"
)

type Response struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	FormID      uint      `json:"form_id" gorm:"not null;index"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`

	// Grading result, populated only for quiz forms.
	Score           *float64 `json:"score,omitempty"`
	MaxScore        *float64 `json:"max_score,omitempty"`
	ScorePercentage *float64 `json:"score_percentage,omitempty"`
	Passed          *bool    `json:"passed,omitempty"`

	Answers            []Answer            `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SubQuestionAnswers []SubQuestionAnswer `json:"subquestion_answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	DeletedAt          gorm.DeletedAt      `gorm:"index" json:"-"`
}
