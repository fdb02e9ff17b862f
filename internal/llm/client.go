package llm

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

	"go.uber.org/zap"

	"github.com/nikita-tita/idea-intake/internal/canvas"
	"github.com/nikita-tita/idea-intake/internal/observability"
)

const (
	chatCompletionsPath = "/v1/chat/completions"

	temperature = 0.7
	maxTokens   = 1000
)

// ErrNoJSON is returned when the completion text contains no
// brace-delimited object at all.
var ErrNoJSON = errors.New("no JSON object in completion")

// Client talks to a chat-completion endpoint and turns a free-text idea
// into a LeanCanvasRecord.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL, apiKey, model string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Structure asks the model to fill the eight canvas sections. It never
// fails: any transport, status, extraction or parse problem is logged
// and collapsed to the deterministic fallback record, so the pipeline
// stays available when the model is unreachable. Callers cannot
// distinguish a low-quality answer from the fallback.
func (c *Client) Structure(ctx context.Context, title, description string) canvas.LeanCanvasRecord {
	rec, err := c.complete(ctx, title, description)
	if err != nil {
		c.log.Warn("llm structuring failed, using fallback",
			zap.String("model", c.model),
			zap.Error(err))
		observability.LLMFallbacks.Inc()
		return canvas.Fallback(title, description)
	}
	return rec
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	// Anthropic-style replies carry text in a content array instead.
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (r *chatResponse) text() string {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content
	}
	if len(r.Content) > 0 {
		return r.Content[0].Text
	}
	return ""
}

// complete is the fallible half of Structure: it returns the parsed
// record or the reason the model's answer could not be used.
func (c *Client) complete(ctx context.Context, title, description string) (canvas.LeanCanvasRecord, error) {
	var rec canvas.LeanCanvasRecord

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: buildPrompt(title, description)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return rec, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return rec, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	observability.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return rec, fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return rec, fmt.Errorf("llm returned status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return rec, fmt.Errorf("decode response: %w", err)
	}

	raw, err := extractJSON(out.text())
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return rec, fmt.Errorf("parse canvas JSON: %w", err)
	}
	return rec, nil
}

// extractJSON pulls the first brace-delimited object out of free text.
// The match is greedy: first '{' to last '}'. Models often wrap the
// object in prose or markdown fences.
func extractJSON(s string) (string, error) {
	i := strings.Index(s, "{")
	j := strings.LastIndex(s, "}")
	if i < 0 || j < i {
		return "", ErrNoJSON
	}
	return s[i : j+1], nil
}

func buildPrompt(title, description string) string {
	return fmt.Sprintf(`Structure the following product idea into a Lean Canvas.
Respond with only a JSON object containing exactly these string fields:
"problem", "customer_segments", "unique_value_proposition", "solution",
"channels", "revenue_streams", "cost_structure", "key_metrics".

Idea title: %s
Idea description: %s`, title, description)
}
