package repository

import (
	"github.com/lshigami/Margays/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByIDWithSchema(id uint) (*model.Form, error)
	FindAllWithQuestionCount() ([]struct {
		model.Form
		QuestionCount int
	}, error)
	Update(form *model.Form) error
	Delete(id uint) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// FindByIDWithSchema loads the form with its full conditional schema:
// questions in display order, each with its subquestions ordered by nesting
// level and position.
func (r *formRepository) FindByIDWithSchema(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_form ASC")
		}).
		Preload("Questions.SubQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_questions.nesting_level ASC, sub_questions.order_in_parent ASC")
		}).
		First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAllWithQuestionCount() ([]struct {
	model.Form
	QuestionCount int
}, error) {
	var results []struct {
		model.Form
		QuestionCount int
	}
	err := r.db.Model(&model.Form{}).
		Select("forms.*, (SELECT COUNT(*) FROM questions WHERE questions.form_id = forms.id AND questions.deleted_at IS NULL) as question_count").
		Where("forms.deleted_at IS NULL").
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) Update(form *model.Form) error {
	return r.db.Save(form).Error
}

func (r *formRepository) Delete(id uint) error {
	return r.db.Delete(&model.Form{}, id).Error
}
