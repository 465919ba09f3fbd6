package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"guidelight/internal/assistant/domain"
)

const groqChatURL = "https://api.groq.com/openai/v1/chat/completions"

// ChatCompleter turns a conversation into one assistant reply.
type ChatCompleter interface {
	Complete(ctx context.Context, turns []domain.ChatTurn) (string, error)
}

type groqClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGroqClient create an OpenAI-style chat completion client against
// the Groq API.
func NewGroqClient(apiKey, model string, timeout time.Duration) ChatCompleter {
	return &groqClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: groqChatURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *groqClient) Complete(ctx context.Context, turns []domain.ChatTurn) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("groq api key missing")
	}

	payload := map[string]interface{}{
		"model":       g.model,
		"messages":    turns,
		"temperature": 0.7,
		"max_tokens":  1000,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion bad status %d", resp.StatusCode)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
