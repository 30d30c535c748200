package repository

import (
	"github.com/lshigami/Margays/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(tx *gorm.DB, response *model.Response) error
	FindByIDWithAnswers(id uint) (*model.Response, error)
	FindAllByFormID(formID uint) ([]model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

// Create persists the response and its associated answer rows inside the
// caller's transaction.
func (r *responseRepository) Create(tx *gorm.DB, response *model.Response) error {
	return tx.Create(response).Error
}

func (r *responseRepository) FindByIDWithAnswers(id uint) (*model.Response, error) {
	var response model.Response
	err := r.db.
		Preload("Answers").
		Preload("SubQuestionAnswers").
		First(&response, id).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllByFormID(formID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Preload("Answers").
		Preload("SubQuestionAnswers").
		Where("form_id = ?", formID).
		Order("submitted_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
