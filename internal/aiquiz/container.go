package aiquiz

import "context"

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, apiKey, model string) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return NewAIQuizContainerWithProvider(provider, model), nil
}

func NewAIQuizContainerWithProvider(provider Provider, model string) *AIQuizContainer {
	service := NewService(provider, model)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
