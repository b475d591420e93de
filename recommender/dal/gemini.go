// Package dal talks to the Gemini REST API.
package dal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/recommender/domain"
)

const (
	geminiBaseURL       = "https://generativelanguage.googleapis.com"
	generateContentPath = "/v1beta/models/{model}:generateContent"

	requestTimeout = 2 * time.Minute
)

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type GeminiDAL struct {
	client *resty.Client
	model  string
}

func NewGemini() *GeminiDAL {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(requestTimeout).
		SetHeader("x-goog-api-key", common.GeminiAPIKey)

	return &GeminiDAL{
		client: client,
		model:  common.GeminiModel,
	}
}

// GenerateContent submits the prompt and returns the model's text. Transient
// failures are retried once before the exchange is reported unavailable.
func (d *GeminiDAL) GenerateContent(ctx context.Context, prompt string) (string, error) {
	text, err := d.generate(ctx, prompt)
	if err == nil {
		return text, nil
	}

	if !transient(err) {
		return "", fmt.Errorf("%w: %v", domain.ErrRecommendationUnavailable, err)
	}

	text, retryErr := d.generate(ctx, prompt)
	if retryErr != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRecommendationUnavailable, retryErr)
	}

	return text, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gemini returned status %d: %s", e.code, e.body)
}

func (d *GeminiDAL) generate(ctx context.Context, prompt string) (string, error) {
	var response generateContentResponse

	resp, err := d.client.R().
		SetContext(ctx).
		SetPathParam("model", d.model).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&response).
		Post(generateContentPath)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &statusError{code: resp.StatusCode(), body: resp.String()}
	}

	if len(response.Candidates) == 0 {
		return "", errEmptyResponse
	}

	var texts []string
	for _, p := range response.Candidates[0].Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	if len(texts) == 0 {
		return "", errEmptyResponse
	}

	return strings.Join(texts, ""), nil
}

var errEmptyResponse = errors.New("gemini returned an empty response")

// transient reports whether a failure is worth one retry: transport errors,
// rate limiting and server-side statuses.
func transient(err error) bool {
	if errors.Is(err, errEmptyResponse) {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= 500
	}

	// Transport-level failure.
	return true
}
