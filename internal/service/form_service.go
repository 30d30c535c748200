package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/engine"
	"github.com/lshigami/Margays/internal/model"
	"github.com/lshigami/Margays/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FormService interface {
	CreateForm(req dto.FormCreateDTO) (*dto.FormResponseDTO, error)
	GetForm(id uint) (*dto.FormResponseDTO, error)
	ListForms() ([]dto.FormSummaryDTO, error)
	ReplaceSchema(formID uint, payload []byte) (*dto.FormResponseDTO, []string, error)
	DeleteForm(id uint) error
}

type formService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB // For transactions
}

func NewFormService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, db *gorm.DB) FormService {
	return &formService{formRepo: formRepo, questionRepo: questionRepo, db: db}
}

func (s *formService) CreateForm(req dto.FormCreateDTO) (*dto.FormResponseDTO, error) {
	form := model.Form{
		Title:        req.Title,
		Description:  req.Description,
		IsQuiz:       req.IsQuiz,
		PassingScore: req.PassingScore,
		ShowScore:    req.ShowScore,
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("Failed to create form")
		return nil, err
	}

	var resp dto.FormResponseDTO
	copier.Copy(&resp, &form)
	return &resp, nil
}

func (s *formService) GetForm(id uint) (*dto.FormResponseDTO, error) {
	form, err := s.formRepo.FindByIDWithSchema(id)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", id, err)
	}

	var resp dto.FormResponseDTO
	copier.Copy(&resp, form)
	resp.Questions = make([]dto.QuestionDTO, len(form.Questions))
	for i, q := range form.Questions {
		resp.Questions[i] = questionToDTO(q)
	}
	return &resp, nil
}

func (s *formService) ListForms() ([]dto.FormSummaryDTO, error) {
	rows, err := s.formRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list forms")
		return nil, err
	}

	summaries := make([]dto.FormSummaryDTO, 0, len(rows))
	for _, row := range rows {
		var summary dto.FormSummaryDTO
		copier.Copy(&summary, &row.Form)
		summary.QuestionCount = row.QuestionCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ReplaceSchema validates a schema-authoring payload and swaps the form's
// question tree for it atomically. Existing questions and their subquestions
// are dropped and recreated rather than diffed; stored responses keep their
// answer rows but reference the retired question identities.
func (s *formService) ReplaceSchema(formID uint, payload []byte) (*dto.FormResponseDTO, []string, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		return nil, nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	schema, err := engine.Build(payload)
	if err != nil {
		return nil, nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.DeleteByFormID(tx, formID); err != nil {
			return fmt.Errorf("failed to clear existing questions for form %d: %w", formID, err)
		}

		for _, q := range schema.Questions {
			question := model.Question{
				FormID:         formID,
				QuestionText:   q.Text,
				QuestionType:   string(q.Type),
				Options:        encodeOptionTexts(q.OptionTexts()),
				Required:       q.Required,
				OrderInForm:    q.Order,
				IsQuizQuestion: q.IsQuizQuestion,
				CorrectAnswer:  q.CorrectAnswer,
				Points:         q.Points,
				Feedback:       q.Feedback,
			}
			for _, sq := range q.SubQuestions {
				question.SubQuestions = append(question.SubQuestions, model.SubQuestion{
					ParentOption:  sq.ParentKey,
					NestingLevel:  sq.Level,
					QuestionText:  sq.Text,
					QuestionType:  string(sq.Type),
					Options:       encodeOptionTexts(subOptionTexts(sq)),
					Required:      sq.Required,
					OrderInParent: sq.Order,
				})
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("failed to create question %q for form %d: %w", q.Text, formID, err)
			}
		}

		form.IsQuiz = schema.IsQuiz
		form.PassingScore = schema.PassingScore
		form.ShowScore = schema.ShowScore
		return tx.Save(form).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to replace form schema in transaction")
		return nil, nil, err
	}

	resp, err := s.GetForm(formID)
	if err != nil {
		return nil, nil, err
	}
	return resp, schema.Warnings, nil
}

func (s *formService) DeleteForm(id uint) error {
	if _, err := s.formRepo.FindByID(id); err != nil {
		return fmt.Errorf("form not found with ID %d: %w", id, err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.DeleteByFormID(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.Form{}, id).Error
	})
}

// questionToDTO folds a question's flattened subquestion rows back into the
// nested option tree the clients author and render: level-1 subquestions hang
// off the option whose text matches their parent key, level-2 subquestions
// off the "<l0 option>|<l1 option>" path.
func questionToDTO(q model.Question) dto.QuestionDTO {
	qDTO := dto.QuestionDTO{
		ID:             q.ID,
		QuestionText:   q.QuestionText,
		QuestionType:   q.QuestionType,
		Required:       q.Required,
		OrderInForm:    q.OrderInForm,
		IsQuizQuestion: q.IsQuizQuestion,
		Points:         q.Points,
	}

	for _, optText := range decodeOptionTexts(q.Options) {
		opt := dto.OptionDTO{Text: optText}
		for _, sq := range q.SubQuestions {
			if sq.NestingLevel != 1 || sq.ParentOption != optText {
				continue
			}
			opt.SubQuestions = append(opt.SubQuestions, subQuestionToDTO(q, sq))
		}
		qDTO.Options = append(qDTO.Options, opt)
	}
	return qDTO
}

func subQuestionToDTO(q model.Question, sq model.SubQuestion) dto.SubQuestionDTO {
	sqDTO := dto.SubQuestionDTO{
		ID:           sq.ID,
		ParentOption: sq.ParentOption,
		NestingLevel: sq.NestingLevel,
		QuestionText: sq.QuestionText,
		QuestionType: sq.QuestionType,
		Required:     sq.Required,
	}

	for _, optText := range decodeOptionTexts(sq.Options) {
		opt := dto.OptionDTO{Text: optText}
		if sq.NestingLevel == 1 {
			pathKey := sq.ParentOption + engine.PathSeparator + optText
			for _, nested := range q.SubQuestions {
				if nested.NestingLevel != 2 || nested.ParentOption != pathKey {
					continue
				}
				opt.SubQuestions = append(opt.SubQuestions, subQuestionToDTO(q, nested))
			}
		}
		sqDTO.Options = append(sqDTO.Options, opt)
	}
	return sqDTO
}

func subOptionTexts(sq engine.SubQuestion) []string {
	texts := make([]string, len(sq.Options))
	for i, o := range sq.Options {
		texts[i] = o.Text
	}
	return texts
}
