package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are an agricultural advisor helping farmers in Kerala. " +
	"Answer questions about crops, pests, diseases and farming practice in short, " +
	"practical language. Reply in Malayalam when the question is written in Malayalam, " +
	"otherwise reply in English."

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

// NewOpenAI returns a Client backed by an OpenAI-compatible chat-completions
// endpoint. The transport timeout bounds the whole relay call; there is no
// other timeout in the request path.
func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) Complete(ctx context.Context, question string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": question},
		},
		"temperature": 0.3,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai service returned %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("ai service returned no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("ai service returned an empty reply")
	}
	return content, nil
}
