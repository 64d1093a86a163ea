package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-editor/api/http/presenter"
	"github.com/artem13815/resume-editor/pkg/enhance"
)

type EnhanceHandler struct {
	svc enhance.UseCase
}

func NewEnhanceHandler(svc enhance.UseCase) *EnhanceHandler {
	return &EnhanceHandler{svc: svc}
}

// EnhanceRequest: both keys must be present; content may be blank.
type EnhanceRequest struct {
	Section *string `json:"section" example:"summary"`
	Content *string `json:"content" example:"five years in sales"`
}

type EnhanceResponse struct {
	EnhancedContent string `json:"enhanced_content"`
}

// Enhance rewrites one resume section using the section's template.
// @Summary     Enhance a resume section
// @Description Wraps the text in fixed wording for the section kind (summary, experience, education, skills; anything else gets a generic template).
// @Tags        enhance
// @Accept      json
// @Produce     json
// @Param       request body EnhanceRequest true "Section kind and text"
// @Success     200 {object} EnhanceResponse
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /ai-enhance [post]
func (h *EnhanceHandler) Enhance(c *fiber.Ctx) error {
	var req EnhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
	}
	if req.Section == nil || req.Content == nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "section and content are required")
	}
	out, err := h.svc.Enhance(c.Context(), *req.Section, *req.Content)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to enhance section: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, EnhanceResponse{EnhancedContent: out})
}
