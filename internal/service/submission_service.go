package service

import (
	"fmt"
	"time"

	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/engine"
	"github.com/lshigami/Margays/internal/model"
	"github.com/lshigami/Margays/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService interprets raw form posts against the form's conditional
// schema, grades quiz submissions, and projects stored responses into nested
// export records.
type SubmissionService interface {
	SubmitResponse(formID uint, req dto.SubmissionDTO) (*dto.SubmissionResultDTO, error)
	GetResponse(responseID uint) (*dto.ResponseRecordDTO, error)
	ListResponses(formID uint) ([]dto.ResponseRecordDTO, error)
}

type submissionService struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
	db           *gorm.DB // For transactions
}

func NewSubmissionService(formRepo repository.FormRepository, responseRepo repository.ResponseRepository, db *gorm.DB) SubmissionService {
	return &submissionService{formRepo: formRepo, responseRepo: responseRepo, db: db}
}

// SubmitResponse evaluates one raw submission. Only answers reachable through
// the selected options are stored; values posted for dead branches are
// silently dropped. Quiz forms are graded and the result persisted alongside
// the answers, but only returned to the submitter when the form shows scores.
func (s *submissionService) SubmitResponse(formID uint, req dto.SubmissionDTO) (*dto.SubmissionResultDTO, error) {
	form, err := s.formRepo.FindByIDWithSchema(formID)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}
	if len(form.Questions) == 0 {
		return nil, fmt.Errorf("form %d has no questions, submission is not possible", formID)
	}

	schema := schemaFromModel(form)
	set := engine.Interpret(schema, engine.Submission(req.Values))
	if len(set.Answers) == 0 {
		return nil, fmt.Errorf("submission answered none of the questions of form %d", formID)
	}
	score := engine.ScoreAnswers(schema, set)

	response := model.Response{
		FormID:      formID,
		SubmittedAt: time.Now(),
	}
	if score != nil {
		response.Score = &score.Score
		response.MaxScore = &score.MaxScore
		response.ScorePercentage = &score.ScorePercentage
		response.Passed = &score.Passed
	}

	var collectSubs func(subs []engine.SubAnswer)
	collectSubs = func(subs []engine.SubAnswer) {
		for _, sa := range subs {
			response.SubQuestionAnswers = append(response.SubQuestionAnswers, model.SubQuestionAnswer{
				SubQuestionID: sa.SubQuestionID,
				AnswerText:    sa.Value,
			})
			collectSubs(sa.Sub)
		}
	}
	for _, a := range set.Answers {
		response.Answers = append(response.Answers, model.Answer{
			QuestionID: a.QuestionID,
			AnswerText: a.Value,
		})
		collectSubs(a.Sub)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.responseRepo.Create(tx, &response)
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to store response in transaction")
		return nil, err
	}

	result := &dto.SubmissionResultDTO{ResponseID: response.ID}
	if score != nil && form.ShowScore {
		result.Score = scoreToDTO(score)
	}
	return result, nil
}

// GetResponse rebuilds the nested record of a stored response. Answer rows
// are flat; the response is re-interpreted against the current schema to
// recover the subquestion linkage, while the grading columns stored at
// submission time are returned as-is.
func (s *submissionService) GetResponse(responseID uint) (*dto.ResponseRecordDTO, error) {
	response, err := s.responseRepo.FindByIDWithAnswers(responseID)
	if err != nil {
		return nil, fmt.Errorf("response not found with ID %d: %w", responseID, err)
	}

	form, err := s.formRepo.FindByIDWithSchema(response.FormID)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", response.FormID, err)
	}

	return s.projectResponse(schemaFromModel(form), response), nil
}

func (s *submissionService) ListResponses(formID uint) ([]dto.ResponseRecordDTO, error) {
	form, err := s.formRepo.FindByIDWithSchema(formID)
	if err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}
	schema := schemaFromModel(form)

	responses, err := s.responseRepo.FindAllByFormID(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to list responses")
		return nil, err
	}

	records := make([]dto.ResponseRecordDTO, 0, len(responses))
	for i := range responses {
		records = append(records, *s.projectResponse(schema, &responses[i]))
	}
	return records, nil
}

func (s *submissionService) projectResponse(schema *engine.Schema, response *model.Response) *dto.ResponseRecordDTO {
	values := engine.Submission{}
	for _, a := range response.Answers {
		if q, ok := schema.Question(a.QuestionID); ok {
			values[q.FieldKey()] = []string{a.AnswerText}
		}
	}
	for _, sa := range response.SubQuestionAnswers {
		if sq, ok := schema.SubQuestion(sa.SubQuestionID); ok {
			values[sq.FieldKey()] = []string{sa.AnswerText}
		}
	}

	set := engine.Interpret(schema, values)
	record := engine.Project(schema, set, storedScore(response), response.ID)

	recordDTO := &dto.ResponseRecordDTO{
		ID:          response.ID,
		FormID:      response.FormID,
		SubmittedAt: response.SubmittedAt,
		Entries:     recordEntryDTOs(record.Entries),
	}
	if record.Score != nil {
		recordDTO.Score = scoreToDTO(record.Score)
	}
	return recordDTO
}

// storedScore reconstructs the grading result persisted with a response.
// Responses to non-quiz forms have no grading columns and yield nil.
func storedScore(response *model.Response) *engine.Score {
	if response.Score == nil || response.MaxScore == nil {
		return nil
	}
	score := &engine.Score{
		Score:    *response.Score,
		MaxScore: *response.MaxScore,
	}
	if response.ScorePercentage != nil {
		score.ScorePercentage = *response.ScorePercentage
	}
	if response.Passed != nil {
		score.Passed = *response.Passed
	}
	return score
}

func scoreToDTO(score *engine.Score) *dto.ScoreDTO {
	return &dto.ScoreDTO{
		Score:           score.Score,
		MaxScore:        score.MaxScore,
		ScorePercentage: score.ScorePercentage,
		Passed:          score.Passed,
	}
}

func recordEntryDTOs(entries []engine.RecordEntry) []dto.RecordEntryDTO {
	var out []dto.RecordEntryDTO
	for _, e := range entries {
		out = append(out, dto.RecordEntryDTO{
			QuestionID:   e.QuestionID,
			QuestionText: e.QuestionText,
			QuestionType: string(e.QuestionType),
			Answer:       e.Answer,
			SubQuestions: recordEntryDTOs(e.Sub),
		})
	}
	return out
}
