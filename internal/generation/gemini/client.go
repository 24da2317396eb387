// Package gemini implements the generation provider on the Gemini REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/generation"
	"github.com/paptec/pregador/internal/provider/resilience"
)

// Model names. The heavier model carries the creative work, the flash model
// serves plain text retrieval.
const (
	ComplexModel = "gemini-3-pro-preview"
	FastModel    = "gemini-2.5-flash"
)

// DefaultBaseURL is the Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Provider errors.
var (
	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("gemini returned no content")

	// ErrUnexpectedStatus is returned on a non-200 API response.
	ErrUnexpectedStatus = errors.New("gemini request failed")
)

// Config holds configuration for the Gemini client.
type Config struct {
	APIKey  string
	BaseURL string
	Logger  zerolog.Logger

	// Metrics records per-operation request durations when set.
	Metrics RequestRecorder

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// HTTPClient overrides the resilient client, for tests.
	HTTPClient httpDoer
}

// RequestRecorder receives timing for each upstream model call.
type RequestRecorder interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

type httpDoer interface {
	DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client calls the Gemini generateContent endpoint. It satisfies
// generation.Provider.
type Client struct {
	apiKey  string
	baseURL string
	http    httpDoer
	metrics RequestRecorder
	logger  zerolog.Logger
}

// NewClient creates a new Gemini client with circuit breaker and retry
// behavior from the resilience package.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	doer := cfg.HTTPClient
	if doer == nil {
		clientCfg := resilience.DefaultClientConfig("gemini")
		clientCfg.Timeout = 60 * time.Second // generation calls run long
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		doer = resilience.NewClient(clientCfg)
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// generateContent request and response shapes, trimmed to what is used.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
	Temperature      float64         `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate posts a prompt and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, op, model, prompt string, cfg *generationConfig) (string, error) {
	start := time.Now()
	text, err := c.doGenerate(ctx, model, prompt, cfg)
	if c.metrics != nil {
		c.metrics.RecordRequest("gemini", op, time.Since(start), err)
	}
	return text, err
}

func (c *Client) doGenerate(ctx context.Context, model, prompt string, cfg *generationConfig) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("model", model).
			Str("body", string(snippet)).
			Msg("gemini call failed")
		return "", fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// generateJSON posts a prompt with a response schema and unmarshals the
// structured answer into out.
func (c *Client) generateJSON(ctx context.Context, op, model, prompt string, schema json.RawMessage, temperature float64, out any) error {
	text, err := c.generate(ctx, op, model, prompt, &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      temperature,
	})
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(text), out)
}

// GenerateSermon produces a full preaching outline.
func (c *Client) GenerateSermon(ctx context.Context, req generation.SermonRequest) (*generation.Sermon, error) {
	var sermon generation.Sermon
	if err := c.generateJSON(ctx, "generate-sermon", ComplexModel, sermonPrompt(req), sermonSchema, 0.7, &sermon); err != nil {
		return nil, err
	}
	return &sermon, nil
}

// SuggestThemes produces preaching theme ideas for a category or feeling.
func (c *Client) SuggestThemes(ctx context.Context, category string) ([]generation.SuggestedTheme, error) {
	var themes []generation.SuggestedTheme
	if err := c.generateJSON(ctx, "suggest-themes", ComplexModel, themesPrompt(category), themesSchema, 0.8, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// GenerateDevotional produces a daily reading guide.
func (c *Client) GenerateDevotional(ctx context.Context, reference string) (*generation.Devotional, error) {
	var devotional generation.Devotional
	if err := c.generateJSON(ctx, "generate-devotional", ComplexModel, devotionalPrompt(reference), devotionalSchema, 0.8, &devotional); err != nil {
		return nil, err
	}
	return &devotional, nil
}

// GenerateServiceProgram produces a service liturgy.
func (c *Client) GenerateServiceProgram(ctx context.Context, req generation.ProgramRequest) (*generation.ServiceProgram, error) {
	var program generation.ServiceProgram
	if err := c.generateJSON(ctx, "generate-program", ComplexModel, programPrompt(req), programSchema, 0.7, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// GetPassage retrieves the text of a Bible reference.
func (c *Client) GetPassage(ctx context.Context, reference string) (string, error) {
	return c.generate(ctx, "get-passage", FastModel, passagePrompt(reference), nil)
}

// LookupTerm explains a biblical or theological term.
func (c *Client) LookupTerm(ctx context.Context, query string) (string, error) {
	return c.generate(ctx, "lookup-term", FastModel, dictionaryPrompt(query), nil)
}
