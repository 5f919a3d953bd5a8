package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/VertingsXin/ai-mock-interview/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const critiqueSentenceLimit = 2

const critiquePromptTemplate = `You are an instructor evaluating a student's answer against a model answer.

Please provide ONLY the following, exactly in this format, and only in this format, nothing before or after:
[one or two concise sentences about errors, missing points, or misunderstandings]

User answer:
%s

Model answer:
%s

Your evaluation:
`

// CritiqueService produces a short natural-language critique of a user answer
// compared to the model answer. Implementations may call a remote model.
type CritiqueService interface {
	GenerateCritique(ctx context.Context, userAnswer, modelAnswer string) (string, error)
}

type geminiFeedbackService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

// NewGeminiFeedbackService builds the Gemini-backed critique generator. With no
// API key configured the service stays constructible but every call errors, and
// the feedback engine falls back to its deterministic critique.
func NewGeminiFeedbackService(cfg *config.Config) (CritiqueService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Critique generation will use fallback messages.")
		return &geminiFeedbackService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiFeedbackService{client: model, cfg: cfg}, nil
}

func (s *geminiFeedbackService) GenerateCritique(ctx context.Context, userAnswer, modelAnswer string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	prompt := fmt.Sprintf(critiquePromptTemplate, userAnswer, modelAnswer)
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during critique generation")
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if strings.TrimSpace(fullResponseText) == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}

	return clampSentences(fullResponseText, critiqueSentenceLimit), nil
}

// clampSentences keeps at most limit sentences of the raw completion. The
// summary view renders one line per attempt, so long critiques are cut down.
func clampSentences(text string, limit int) string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, limit)
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, trimmed)
		if len(sentences) == limit {
			break
		}
	}
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}
	return strings.Join(sentences, ". ") + "."
}
