package model

import (
	"time"

	"gorm.io/gorm"
)

// SubQuestion is a follow-up field conditioned on one option of its parent
// question. ParentOption holds the option text at nesting level 1 and the
// composite "<level0 option>|<level1 option>" path at level 2.
type SubQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionID    uint           `json:"question_id" gorm:"not null;index"`
	ParentOption  string         `json:"parent_option" gorm:"not null"`
	NestingLevel  int            `json:"nesting_level" gorm:"default:1"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  string         `json:"question_type" gorm:"not null"`
	Options       string         `json:"options,omitempty" gorm:"type:text"`
	Required      bool           `json:"required" gorm:"default:false"`
	OrderInParent int            `json:"order_in_parent" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
