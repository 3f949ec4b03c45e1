package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/campus-wellness-api/internal/models"
)

type AIService struct {
	client *openai.Client
}

// NewAIService creates an OpenAI backed service. An empty baseURL uses the
// public API endpoint.
func NewAIService(apiKey, baseURL string) *AIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
	}
}

// SupportiveMessage writes a short, kind reflection on a mood entry.
func (s *AIService) SupportiveMessage(ctx context.Context, entry models.MoodEntry) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are a warm campus wellness companion. A student logged this mood today.

Mood: %s
Intensity (1-10): %d
Main stress trigger: %s
Journal note: %s

Reply with two or three short sentences of encouragement and one small, concrete self-care idea.
Do not diagnose. If the note mentions self-harm, gently suggest contacting a counselor or local emergency services.`,
		entry.Mood.Label(), entry.Intensity, entry.Trigger.Label(), noteOrDash(entry.Note))

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
			MaxTokens:   200,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func noteOrDash(note string) string {
	if strings.TrimSpace(note) == "" {
		return "-"
	}
	return note
}
