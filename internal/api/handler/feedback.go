package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
	"github.com/paptec/pregador/internal/apptheme"
	"github.com/paptec/pregador/internal/feedback"
)

// FeedbackHandler handles the client-facing feedback and theme endpoints.
type FeedbackHandler struct {
	feedback *feedback.Service
	themes   *apptheme.Service
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *feedback.Service, themes *apptheme.Service) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedbackService, themes: themes}
}

// Send handles POST /v1/feedback - submit a feedback message.
func (h *FeedbackHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	msg, err := h.feedback.Send(r.Context(), input.Type, input.Message, input.Contact)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrEmptyMessage):
			response.BadRequest(w, r, "message is required", []models.FieldError{
				{Field: "message", Message: "must not be empty", Code: "required"},
			})
		case errors.Is(err, feedback.ErrInvalidType):
			response.BadRequest(w, r, "unknown feedback type", []models.FieldError{
				{Field: "type", Message: "must be suggestion, complaint or other", Code: "invalid"},
			})
		default:
			response.InternalError(w, r, "could not store feedback")
		}
		return
	}

	response.Created(w, r, "/v1/feedback/"+msg.ID, msg)
}

// Theme handles GET /v1/theme - the current client theme.
func (h *FeedbackHandler) Theme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themes.Get(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not read theme")
		return
	}
	response.JSON(w, r, http.StatusOK, theme)
}
