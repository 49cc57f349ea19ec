package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

type inferenceResult struct {
	GeneratedText string `json:"generated_text"`
}

// InferenceProvider posts the utterance to a hosted text-generation
// endpoint. The endpoint may answer with a single object or an array of
// candidates; the first candidate wins.
type InferenceProvider struct {
	client *resty.Client
	url    string
}

func NewInferenceProvider(url, token string, timeout time.Duration) *InferenceProvider {
	client := resty.New().SetTimeout(timeout)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &InferenceProvider{client: client, url: url}
}

func (p *InferenceProvider) Name() string { return SourceInference }

func (p *InferenceProvider) Answer(ctx context.Context, message string, _ []Exchange) (Answer, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(inferenceRequest{
			Inputs:     message,
			Parameters: inferenceParameters{MaxLength: 100, Temperature: 0.7},
		}).
		Post(p.url)
	if err != nil {
		return Answer{}, fmt.Errorf("inference request: %w", err)
	}
	if resp.IsError() {
		return Answer{}, fmt.Errorf("inference endpoint returned %s", resp.Status())
	}

	text, err := decodeGenerated(resp.Body())
	if err != nil {
		return Answer{}, err
	}
	return Answer{Text: text, Source: SourceInference, Confidence: 0.6}, nil
}

func decodeGenerated(body []byte) (string, error) {
	var many []inferenceResult
	if err := json.Unmarshal(body, &many); err == nil && len(many) > 0 {
		return many[0].GeneratedText, nil
	}
	var one inferenceResult
	if err := json.Unmarshal(body, &one); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}
	if one.GeneratedText == "" {
		return "", fmt.Errorf("inference response had no generated text")
	}
	return one.GeneratedText, nil
}
