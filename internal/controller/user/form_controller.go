package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FormController struct {
	formService       service.FormService
	submissionService service.SubmissionService
}

func NewFormController(formService service.FormService, submissionService service.SubmissionService) *FormController {
	return &FormController{formService: formService, submissionService: submissionService}
}

// GetForm godoc
// @Summary (User) Get a form for filling out
// @Description Get a form with its full question tree: top-level questions, their options, and the follow-up questions each option reveals.
// @Tags User - Forms & Responses
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Form ID format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	formIDStr := ctx.Param("form_id")
	formID, err := strconv.ParseUint(formIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Form ID format"})
		return
	}

	formResp, err := c.formService.GetForm(uint(formID))
	if err != nil {
		log.Warn().Err(err).Uint64("formID", formID).Msg("User GetForm: Form not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, formResp)
}

// SubmitResponse godoc
// @Summary (User) Submit a filled-out form
// @Description Submit answer values keyed by field name. Answers for follow-up questions whose parent option was not selected are ignored. Quiz forms are graded on submission; the score is echoed back only when the form shows scores.
// @Tags User - Forms & Responses
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param submission body dto.SubmissionDTO true "Field values, multi-valued for checkbox fields"
// @Success 201 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or empty submission"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms/{form_id}/responses [post]
func (c *FormController) SubmitResponse(ctx *gin.Context) {
	formIDStr := ctx.Param("form_id")
	formID, err := strconv.ParseUint(formIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Form ID format"})
		return
	}

	var req dto.SubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitResponse: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Values) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Submission must contain at least one value."})
		return
	}

	result, err := c.submissionService.SubmitResponse(uint(formID), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("formID", formID).Msg("User SubmitResponse: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to submit response: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetResponse godoc
// @Summary (User) Get a stored response
// @Description Retrieve one submitted response as a nested record mirroring the form's conditional structure, with the stored quiz score when present.
// @Tags User - Forms & Responses
// @Produce json
// @Param response_id path int true "Response ID"
// @Success 200 {object} dto.ResponseRecordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Response ID format"
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Router /responses/{response_id} [get]
func (c *FormController) GetResponse(ctx *gin.Context) {
	responseIDStr := ctx.Param("response_id")
	responseID, err := strconv.ParseUint(responseIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Response ID format"})
		return
	}

	record, err := c.submissionService.GetResponse(uint(responseID))
	if err != nil {
		log.Warn().Err(err).Uint64("responseID", responseID).Msg("User GetResponse: Response not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, record)
}
