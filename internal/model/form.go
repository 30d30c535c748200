package model

import (
	"time"

	"gorm.io/gorm"
)

type Form struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	IsQuiz       bool           `json:"is_quiz" gorm:"default:false"`
	PassingScore float64        `json:"passing_score" gorm:"default:0"`
	ShowScore    bool           `json:"show_score" gorm:"default:false"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Responses    []Response     `json:"responses,omitempty" gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
