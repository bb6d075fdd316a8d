package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/yojana-mitra/backend/internal/metrics"
)

const (
	requestTimeout = 25 * time.Second
	maxBody        = 1 << 20
	maxErrorBody   = 64 << 10

	chatTemperature = 0.25
	chatMaxTokens   = 800
)

// ProviderError reports a failed upstream call. Status is zero when the
// request never produced an HTTP response (dial failure, timeout).
type ProviderError struct {
	Status int
	Detail string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Detail)
	}
	return "provider request failed: " + e.Detail
}

// Client calls one chat-completions provider over plain HTTP. The SDK
// types are reused for the request payload, but transport and decoding
// stay hand-rolled so the raw body reaches Normalize untouched.
type Client struct {
	provider Provider
	client   *http.Client
	log      *logrus.Entry
}

func NewClient(p Provider, log *logrus.Entry) *Client {
	return &Client{
		provider: p,
		client:   &http.Client{Timeout: requestTimeout},
		log:      log,
	}
}

func (c *Client) GetReply(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	b, err := json.Marshal(openai.ChatCompletionRequest{
		Model:       c.provider.Model,
		Messages:    msgs,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.provider.URL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.provider.Auth(c.provider.Key))

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ProviderLatency.WithLabelValues(c.provider.ID).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", &ProviderError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WithFields(logrus.Fields{
			"provider": c.provider.ID,
			"status":   resp.StatusCode,
		}).Warn("provider returned an error body")
		return "", &ProviderError{Status: resp.StatusCode, Detail: errorDetail(body)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", &ProviderError{Detail: "read response: " + err.Error()}
	}

	c.log.WithField("bytes", len(raw)).Debug("provider response received")
	return Normalize(raw), nil
}

// errorDetail pulls a human-readable cause out of a provider error
// body. {"error":{"message":...}}, {"error":"..."} and {"message":...}
// are all seen in the wild; anything else comes back as trimmed text.
func errorDetail(body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Error) > 0 {
			var obj struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(envelope.Error, &obj) == nil && obj.Message != "" {
				return obj.Message
			}
			var s string
			if json.Unmarshal(envelope.Error, &s) == nil && s != "" {
				return s
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		return "empty error body"
	}
	return clip(detail, maxRawEcho)
}
