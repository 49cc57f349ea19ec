// Package fallback runs a prioritized chain of generative providers for
// utterances the FAQ corpus cannot answer. Every provider failure is
// isolated; the chain as a whole always produces an answer.
package fallback

import "context"

// Answer sources.
const (
	SourceOpenAI    = "openai"
	SourceInference = "inference"
	SourceLocal     = "local"
	SourceNone      = "none"
)

// Apology is returned when every provider in the chain fails.
const Apology = "I'm sorry, I'm having trouble connecting to my AI services. " +
	"Please try again later or contact the college directly."

// Exchange roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Exchange is one prior turn handed to a provider as context.
type Exchange struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Answer is a provider's reply.
type Answer struct {
	Text       string  `json:"response"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// Provider generates an answer for one message. Implementations must be
// safe for concurrent use.
type Provider interface {
	Name() string
	Answer(ctx context.Context, message string, history []Exchange) (Answer, error)
}
