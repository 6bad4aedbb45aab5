package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// FeedbackHandler handles the public feedback form plus its admin-side
// management routes.
type FeedbackHandler struct {
	service ports.FeedbackService
	audit   AuditRecorder
}

func NewFeedbackHandler(service ports.FeedbackService, audit AuditRecorder) *FeedbackHandler {
	return &FeedbackHandler{service: service, audit: audit}
}

type submitFeedbackRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit handles POST /api/feedbacks/add. No authentication required.
//
// @Summary      Submit feedback
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Param        body  body      submitFeedbackRequest  true  "Feedback message"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  map[string]string
// @Router       /feedbacks/add [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	feedback, err := h.service.Submit(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, feedback)
}

// List handles GET /api/feedbacks.
//
// @Summary      List feedback messages
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Feedback
// @Router       /feedbacks [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	feedbacks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbacks)
}

// Get handles GET /api/feedbacks/:id.
//
// @Summary      Get a feedback message by id
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feedback id"
// @Success      200  {object}  domain.Feedback
// @Failure      404  {object}  map[string]string
// @Router       /feedbacks/{id} [get]
func (h *FeedbackHandler) Get(c echo.Context) error {
	feedback, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedback)
}

// Resolve handles PUT /api/feedbacks/resolve/:id.
//
// @Summary      Mark a feedback message resolved
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feedback id"
// @Success      200  {object}  domain.Feedback
// @Failure      404  {object}  map[string]string
// @Router       /feedbacks/resolve/{id} [put]
func (h *FeedbackHandler) Resolve(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	feedback, err := h.service.Resolve(c.Request().Context(), id)
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "resolve", "feedback", id)
	return c.JSON(http.StatusOK, feedback)
}

// Delete handles DELETE /api/feedbacks/delete/:id.
//
// @Summary      Delete a feedback message
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feedback id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /feedbacks/delete/{id} [delete]
func (h *FeedbackHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "delete", "feedback", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "feedback deleted"})
}
