package narrative

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nexusfo/nexus"
	"google.golang.org/genai"
)

// model is the completion model for report generation; the flash tier is
// plenty for prose and keeps latency and cost down.
const model = "gemini-2.5-flash"

// maxOutputTokens bounds one report completion.
const maxOutputTokens = 4000

// EnvAPIKey is the environment variable carrying the Gemini credential.
const EnvAPIKey = "GEMINI_API_KEY"

// ErrNoCredential means the Gemini API key is absent from the environment.
// It is a configuration error raised before any network call.
var ErrNoCredential = errors.New("missing " + EnvAPIKey + " environment variable")

// Client wraps the Gemini client for single-shot report completions and the
// chat assistant.
type Client struct {
	genai *genai.Client
}

// NewClient initializes the Gemini client. It fails fast with
// ErrNoCredential when the API key is not configured.
func NewClient(ctx context.Context) (*Client, error) {
	if os.Getenv(EnvAPIKey) == "" {
		return nil, ErrNoCredential
	}
	c, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return &Client{genai: c}, nil
}

// GenerateReport runs the single-shot completion for a report narrative and
// parses the result. Any failure (transport, empty candidate, malformed
// JSON) is returned as an error; the caller substitutes Fallback. The call
// relies on the transport's own timeout, there is no extra deadline here.
func (c *Client) GenerateReport(ctx context.Context, snap nexus.Snapshot) (Bundle, error) {
	prompt, err := BuildPrompt(NewContext(snap, time.Now()))
	if err != nil {
		return Bundle{}, err
	}

	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens:  maxOutputTokens,
			ResponseMIMEType: "application/json",
		})
	if err != nil {
		return Bundle{}, fmt.Errorf("narrative completion failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return Bundle{}, &FormatError{Reason: "empty completion"}
	}
	return Parse(text)
}
