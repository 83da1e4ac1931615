package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/application/ports"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador de LLMService sobre el SDK go-openai.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService construye el adaptador. Con apiKey vacío client queda nil y
// todas las llamadas devuelven ErrNotConfigured.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	s := &OpenAIService{model: model}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// NewOpenAIServiceWithConfig permite apuntar a un endpoint compatible (tests, proxies).
func NewOpenAIServiceWithConfig(cfg openai.ClientConfig, model string) *OpenAIService {
	return &OpenAIService{client: openai.NewClientWithConfig(cfg), model: model}
}

func (s *OpenAIService) EnhanceDescription(ctx context.Context, draft string) (string, error) {
	content, err := s.complete(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.4,
		MaxTokens:   256,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: enhanceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: enhanceUserPrompt(draft)},
		},
	})
	if err != nil {
		return "", err
	}
	text := cleanText(content)
	if text == "" {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}
	return text, nil
}

// AnalyzeBrand sin búsqueda web: el modelo responde con lo que conoce del dominio.
func (s *OpenAIService) AnalyzeBrand(ctx context.Context, websiteURL string) (*dto.BrandAnalysisDTO, error) {
	content, err := s.complete(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: brandPrompt(websiteURL)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	return parseBrandPayload(content)
}

func (s *OpenAIService) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada OpenAI fallida: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("AI: OpenAI sin opciones en la respuesta")
	}
	return resp.Choices[0].Message.Content, nil
}
