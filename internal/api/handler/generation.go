package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/api/response"
	"github.com/paptec/pregador/internal/generation"
)

// GenerationHandler handles content generation endpoints. Entitlement gating
// happens in middleware; everything here assumes an entitled device.
type GenerationHandler struct {
	generator *generation.Service
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generator *generation.Service) *GenerationHandler {
	return &GenerationHandler{generator: generator}
}

// writeGenerationError maps generation errors onto problem responses.
func writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, generation.ErrEmptyTopic),
		errors.Is(err, generation.ErrInvalidAudience),
		errors.Is(err, generation.ErrInvalidTone),
		errors.Is(err, generation.ErrEmptyCategory),
		errors.Is(err, generation.ErrEmptyReference),
		errors.Is(err, generation.ErrEmptyQuery),
		errors.Is(err, generation.ErrEmptyProgram):
		response.BadRequest(w, r, err.Error(), nil)
	default:
		response.BadGateway(w, r, "content generation failed")
	}
}

// GenerateSermon handles POST /v1/generate/sermon.
func (h *GenerationHandler) GenerateSermon(w http.ResponseWriter, r *http.Request) {
	var input models.SermonGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	sermon, err := h.generator.GenerateSermon(r.Context(), generation.SermonRequest{
		Topic:     input.Topic,
		Reference: input.Reference,
		Audience:  input.Audience,
		Tone:      input.Tone,
	})
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, sermon)
}

// SuggestThemes handles POST /v1/generate/themes.
func (h *GenerationHandler) SuggestThemes(w http.ResponseWriter, r *http.Request) {
	var input models.ThemeSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	themes, err := h.generator.SuggestThemes(r.Context(), input.Category)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, themes)
}

// GenerateDevotional handles POST /v1/generate/devotional.
func (h *GenerationHandler) GenerateDevotional(w http.ResponseWriter, r *http.Request) {
	var input models.DevotionalRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	devotional, err := h.generator.GenerateDevotional(r.Context(), input.Reference)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, devotional)
}

// GenerateServiceProgram handles POST /v1/generate/program.
func (h *GenerationHandler) GenerateServiceProgram(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	program, err := h.generator.GenerateServiceProgram(r.Context(), generation.ProgramRequest{
		ServiceType:    input.ServiceType,
		Theme:          input.Theme,
		Duration:       input.Duration,
		CustomSegments: input.CustomSegments,
	})
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, program)
}

// GetPassage handles POST /v1/generate/passage - Bible text retrieval.
func (h *GenerationHandler) GetPassage(w http.ResponseWriter, r *http.Request) {
	var input models.PassageRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	text, err := h.generator.GetPassage(r.Context(), input.Reference)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.TextResponse{Text: text})
}

// LookupTerm handles POST /v1/generate/dictionary - term definitions.
func (h *GenerationHandler) LookupTerm(w http.ResponseWriter, r *http.Request) {
	var input models.DictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	text, err := h.generator.LookupTerm(r.Context(), input.Query)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.TextResponse{Text: text})
}
