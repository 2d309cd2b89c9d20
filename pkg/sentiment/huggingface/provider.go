package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"beauty-assistant-be/pkg/sentiment"
)

// HuggingFaceProvider runs text classification through the HF inference API.
// The default model mirrors the transformers "sentiment-analysis" pipeline.
type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func NewHuggingFaceProvider(apiKey, model string) *HuggingFaceProvider {
	if model == "" {
		model = "distilbert-base-uncased-finetuned-sst-2-english"
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: "https://api-inference.huggingface.co/models",
		model:   model,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (p *HuggingFaceProvider) WithBaseURL(url string) *HuggingFaceProvider {
	p.baseURL = url
	return p
}

func (p *HuggingFaceProvider) Analyze(ctx context.Context, text string) (sentiment.Mood, error) {
	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return sentiment.Neutral(), fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return sentiment.Neutral(), fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return sentiment.Neutral(), fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		return sentiment.Neutral(), fmt.Errorf(
			"huggingface api error (status %d): %s", res.StatusCode, string(body),
		)
	}

	// The inference API answers [[{label, score}, ...]] ranked by score.
	var batches [][]classification
	if err := json.Unmarshal(body, &batches); err != nil {
		return sentiment.Neutral(), fmt.Errorf("failed to decode response: %w", err)
	}
	if len(batches) == 0 || len(batches[0]) == 0 {
		return sentiment.Neutral(), fmt.Errorf("empty classification from huggingface api")
	}

	top := batches[0][0]
	return sentiment.Mood{
		Label: normalizeLabel(top.Label),
		Score: top.Score,
	}, nil
}

// normalizeLabel folds model-specific labels onto the three moods the
// pipeline understands.
func normalizeLabel(label string) string {
	switch strings.ToUpper(label) {
	case "POSITIVE", "LABEL_1":
		return sentiment.LabelPositive
	case "NEGATIVE", "LABEL_0":
		return sentiment.LabelNegative
	default:
		return sentiment.LabelNeutral
	}
}
