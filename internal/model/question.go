package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	FormID       uint   `json:"form_id" gorm:"not null;index"`
	QuestionText string `json:"question_text" gorm:"type:text;not null"`
	QuestionType string `json:"question_type" gorm:"not null"` // "text", "email", "tel", "number", "radio", "multiple_choice", "checkbox"
	Options      string `json:"options,omitempty" gorm:"type:text"` // JSON-encoded option text list
	Required     bool   `json:"required" gorm:"default:false"`
	OrderInForm  int    `json:"order_in_form" gorm:"not null"`

	// Quiz columns, meaningful only when the owning form is a quiz.
	IsQuizQuestion bool    `json:"is_quiz_question" gorm:"default:false"`
	CorrectAnswer  string  `json:"correct_answer,omitempty"`
	Points         float64 `json:"points" gorm:"default:0"`
	Feedback       string  `json:"feedback,omitempty" gorm:"type:text"`

	SubQuestions []SubQuestion  `json:"subquestions,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
