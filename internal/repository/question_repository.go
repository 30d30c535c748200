package repository

import (
	"github.com/lshigami/Margays/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByFormID(formID uint) ([]model.Question, error)
	DeleteByFormID(tx *gorm.DB, formID uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByFormID(formID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Preload("SubQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_questions.nesting_level ASC, sub_questions.order_in_parent ASC")
		}).
		Where("form_id = ?", formID).
		Order("order_in_form ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// DeleteByFormID hard-deletes a form's questions and their subquestions
// inside the caller's transaction. Schema replacement is delete-and-recreate
// by design; soft-deleted question rows would keep stale parent-option keys
// reachable.
func (r *questionRepository) DeleteByFormID(tx *gorm.DB, formID uint) error {
	err := tx.Unscoped().
		Where("question_id IN (?)", tx.Model(&model.Question{}).Select("id").Where("form_id = ?", formID)).
		Delete(&model.SubQuestion{}).Error
	if err != nil {
		return err
	}
	return tx.Unscoped().Where("form_id = ?", formID).Delete(&model.Question{}).Error
}
