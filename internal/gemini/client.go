// Package gemini is the extraction collaborator: it sends a bill PDF to the
// Gemini API and returns the raw tabular text the model produces. Everything
// downstream of the raw text lives in internal/tabular and internal/pipeline.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/dvloznov/bill2csv/internal/config"
)

// Extractor produces raw tabular text from PDF bytes. The interface exists so
// the pipeline can be driven by a mock in tests.
type Extractor interface {
	ExtractTable(ctx context.Context, pdfBytes []byte) (string, error)
}

// Client calls the Gemini API with the expense-table extraction prompt.
type Client struct {
	cfg         config.Config
	apiKey      string
	taxonomyDoc string
}

// NewClient creates an extraction client. taxonomyDoc is the category list
// injected into the prompt.
func NewClient(cfg config.Config, apiKey, taxonomyDoc string) *Client {
	return &Client{cfg: cfg, apiKey: apiKey, taxonomyDoc: taxonomyDoc}
}

// ExtractTable sends the PDF to the model and returns its raw text response.
// Transient API errors (429/5xx) are retried with exponential backoff and
// jitter up to the configured attempt limit.
func (c *Client) ExtractTable(ctx context.Context, pdfBytes []byte) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("ExtractTable: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(c.taxonomyDoc)},
				{
					InlineData: &genai.Blob{
						MIMEType: "application/pdf",
						Data:     pdfBytes,
					},
				},
			},
		},
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.cfg.Temperature),
		MaxOutputTokens: c.cfg.MaxOutputTokens,
		CandidateCount:  1,
	}

	var resp *genai.GenerateContentResponse
	delay := c.cfg.InitialRetryDelay
	for attempt := 0; ; attempt++ {
		resp, err = client.Models.GenerateContent(ctx, c.cfg.Model, contents, genCfg)
		if err == nil {
			break
		}
		if attempt >= c.cfg.MaxRetries || !retryable(err) {
			return "", fmt.Errorf("ExtractTable: generate content: %w", err)
		}

		// Jitter spreads retries out when several runs hit the same
		// quota window.
		wait := delay + time.Duration(rand.Int63n(int64(time.Second)))
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("ExtractTable: %w", ctx.Err())
		case <-time.After(wait):
		}

		delay *= time.Duration(c.cfg.RetryBackoff)
		if delay > c.cfg.MaxRetryDelay {
			delay = c.cfg.MaxRetryDelay
		}
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("ExtractTable: empty response from model")
	}
	return text, nil
}

// retryable reports whether the API error is a transient condition worth
// another attempt.
func retryable(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case 429, 500, 502, 503:
		return true
	}
	return false
}
