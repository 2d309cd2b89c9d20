package factory

import (
	"fmt"

	"beauty-assistant-be/pkg/llm"
	"beauty-assistant-be/pkg/llm/gemini"
)

func NewLLMProvider(providerType, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini", "":
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
