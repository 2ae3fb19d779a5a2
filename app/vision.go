// Package app delegates image description to the OpenAI vision API.
package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const visionPrompt = "Describe this image in detail, including objects, colors, mood, and any notable features."

const defaultVisionURL = "https://api.openai.com/v1/chat/completions"

type visionError struct {
	Status int
	Body   string
}

func (e visionError) Error() string {
	return fmt.Sprintf("vision backend %d: %s", e.Status, e.Body)
}

// VisionClient calls the OpenAI chat completions endpoint with an image
// payload and returns the generated description.
type VisionClient struct {
	APIKey    string
	Model     string
	MaxTokens int

	url   string
	httpc *http.Client
}

func NewVisionClient(apiKey, model string, maxTokens int) *VisionClient {
	return &VisionClient{
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
		url:       defaultVisionURL,
		httpc:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Describe encodes the image as a base64 data URL and asks the backend for a
// detailed description. The data URL always declares image/jpeg regardless
// of the uploaded type; the backend inspects the bytes itself.
func (v *VisionClient) Describe(ctx context.Context, image []byte) (string, error) {
	if v.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	b64 := base64.StdEncoding.EncodeToString(image)
	dataURL := "data:image/jpeg;base64," + b64

	body := map[string]any{
		"model": v.Model,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": visionPrompt},
					map[string]any{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
		"max_tokens": v.MaxTokens,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", v.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.APIKey)

	resp, err := v.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", visionError{Status: resp.StatusCode, Body: strings.TrimSpace(string(x))}
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw.Choices) == 0 {
		return "", fmt.Errorf("vision backend: empty response")
	}

	return strings.TrimSpace(raw.Choices[0].Message.Content), nil
}
