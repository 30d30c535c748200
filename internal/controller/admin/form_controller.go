package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/engine"
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

// CreateForm godoc
// @Summary (Admin) Create a new form
// @Description Admin creates an empty form shell. Questions are attached afterwards through the schema endpoint.
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Param form_data body dto.FormCreateDTO true "Form metadata"
// @Success 201 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.FormCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateForm: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	formResp, err := c.formService.CreateForm(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create form: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, formResp)
}

// ListForms godoc
// @Summary (Admin) List all forms
// @Description Get a summary list of all forms with their question counts.
// @Tags Admin - Forms
// @Produce json
// @Success 200 {array} dto.FormSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.formService.ListForms()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListForms: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve forms"})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// ReplaceSchema godoc
// @Summary (Admin) Replace a form's question schema
// @Description Validates a schema-authoring payload and swaps the form's entire question tree for it. Existing questions are dropped and recreated.
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param schema body object true "Schema payload with a questions list; options may nest subquestions up to two levels"
// @Success 200 {object} dto.SchemaUpdateResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed schema payload"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms/{form_id}/schema [put]
func (c *FormController) ReplaceSchema(ctx *gin.Context) {
	formIDStr := ctx.Param("form_id")
	formID, err := strconv.ParseUint(formIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Form ID format"})
		return
	}

	payload, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read request body"})
		return
	}

	formResp, warnings, err := c.formService.ReplaceSchema(uint(formID), payload)
	if err != nil {
		var vErr *engine.ValidationError
		switch {
		case errors.As(err, &vErr):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Uint64("formID", formID).Msg("Admin ReplaceSchema: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to replace schema: " + err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.SchemaUpdateResultDTO{Form: *formResp, Warnings: warnings})
}

// DeleteForm godoc
// @Summary (Admin) Delete a form
// @Description Delete a form together with its question schema.
// @Tags Admin - Forms
// @Param form_id path int true "Form ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid Form ID format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms/{form_id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	formIDStr := ctx.Param("form_id")
	formID, err := strconv.ParseUint(formIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Form ID format"})
		return
	}

	if err := c.formService.DeleteForm(uint(formID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("formID", formID).Msg("Admin DeleteForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete form: " + err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListResponses godoc
// @Summary (Admin) List all responses to a form
// @Description Retrieve every stored response of a form as a nested record, newest first.
// @Tags Admin - Responses
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.ResponseRecordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Form ID format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms/{form_id}/responses [get]
func (c *FormController) ListResponses(ctx *gin.Context) {
	formIDStr := ctx.Param("form_id")
	formID, err := strconv.ParseUint(formIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Form ID format"})
		return
	}

	records, err := c.submissionService.ListResponses(uint(formID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("formID", formID).Msg("Admin ListResponses: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve responses"})
		return
	}
	ctx.JSON(http.StatusOK, records)
}
