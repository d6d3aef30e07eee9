package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// The fixed instruction sent with every image. The model is asked for JSON,
// but its reply is treated as free text and parsed defensively downstream.
const visionPrompt = `You are a nutrition assistant. Identify the primary food or dish in the provided image and give a short label (one or two words), a confidence percentage (0-100), and a single-line description of portion size (e.g., "1 medium bowl", "200 g", "1 slice"). Reply in JSON with keys: food_name, confidence, portion_desc.`

// ErrMissingVisionKey means no OPENAI_API_KEY was configured; the analyze
// request cannot proceed without it.
var ErrMissingVisionKey = errors.New("OPENAI_API_KEY is empty")

// VisionError is a non-success response from the vision provider.
type VisionError struct {
	StatusCode int
	Body       string
}

func (e *VisionError) Error() string {
	return fmt.Sprintf("vision API error %d: %s", e.StatusCode, e.Body)
}

type VisionService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewVisionService(apiKey, model, baseURL string) *VisionService {
	return &VisionService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Identify sends the image plus the instruction prompt in a single request
// and returns the provider's raw response body. One blocking round trip, no
// retry, no streaming.
func (s *VisionService) Identify(ctx context.Context, image []byte) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingVisionKey
	}

	body := map[string]any{
		"model": s.model,
		"input": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "input_text", "text": visionPrompt},
					map[string]any{"type": "input_image", "image_base64": base64.StdEncoding.EncodeToString(image)},
				},
			},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/responses", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &VisionError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// visionPart is one content part of a Responses-style output entry. The part
// shape is not guaranteed, so the raw bytes are kept for stringification when
// no textual field is present.
type visionPart struct {
	Text string
	raw  json.RawMessage
}

func (p *visionPart) UnmarshalJSON(b []byte) error {
	p.raw = append(p.raw[:0], b...)
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		p.Text = s
		return nil
	}
	var t struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(b, &t); err == nil {
		p.Text = t.Text
	}
	return nil
}

// ExtractVisionText locates the model-generated text inside a provider
// response of unknown shape. Ordered fallbacks, first match wins: the
// Responses-style output list, then the chat-style choices list, then the raw
// body itself. Always returns something parseable.
func ExtractVisionText(raw json.RawMessage) string {
	var env struct {
		Output []struct {
			Content []visionPart `json:"content"`
		} `json:"output"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Output) > 0 && len(env.Output[0].Content) > 0 {
			parts := make([]string, 0, len(env.Output[0].Content))
			for _, p := range env.Output[0].Content {
				if p.Text != "" {
					parts = append(parts, p.Text)
				} else {
					parts = append(parts, string(p.raw))
				}
			}
			return strings.Join(parts, " ")
		}
		if len(env.Choices) > 0 && env.Choices[0].Message.Content != "" {
			return env.Choices[0].Message.Content
		}
	}
	return string(raw)
}
