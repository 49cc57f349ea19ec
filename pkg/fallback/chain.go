package fallback

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/campus-connect/CampusTalk/pkg/config"
	"github.com/campus-connect/CampusTalk/pkg/logger"
)

// Chain tries providers in priority order, best first. A provider error
// only advances the chain; when every provider fails the fixed apology
// is returned with zero confidence.
type Chain struct {
	providers []Provider
	enabled   atomic.Bool
}

func NewChain(providers ...Provider) *Chain {
	c := &Chain{providers: providers}
	c.enabled.Store(true)
	return c
}

// NewChainFromConfig assembles the chain the serving layer uses: the
// OpenAI-compatible provider when an API key is configured, the hosted
// inference provider when an endpoint is configured, and the static
// provider as the terminal member. The chain starts disabled when the
// config says so.
func NewChainFromConfig(cfg *config.Config) *Chain {
	var providers []Provider
	if cfg.LLMApiKey != "" {
		providers = append(providers, NewOpenAIProvider(cfg.LLMApiKey, cfg.LLMBaseURL, cfg.LLMModel))
	}
	if cfg.InferenceURL != "" {
		providers = append(providers, NewInferenceProvider(cfg.InferenceURL, cfg.InferenceToken, cfg.InferenceTimeout))
	}
	providers = append(providers, NewStaticProvider())

	c := NewChain(providers...)
	c.SetEnabled(cfg.FallbackEnabled)
	return c
}

// Enabled reports whether Respond will consult providers.
func (c *Chain) Enabled() bool { return c.enabled.Load() }

// SetEnabled toggles the chain at runtime.
func (c *Chain) SetEnabled(enabled bool) { c.enabled.Store(enabled) }

// Respond returns the first provider answer, or the apology when the
// chain is exhausted. ok is false when the chain is disabled and the
// caller should fall back to its canned answer.
func (c *Chain) Respond(ctx context.Context, message string, history []Exchange) (Answer, bool) {
	if !c.Enabled() {
		return Answer{}, false
	}

	for _, p := range c.providers {
		answer, err := p.Answer(ctx, message, history)
		if err != nil {
			logger.Warn("fallback provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err))
			continue
		}
		return answer, true
	}

	return Answer{Text: Apology, Source: SourceNone, Confidence: 0}, true
}
