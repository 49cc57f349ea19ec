package fallback

import (
	"context"
	"sync/atomic"
)

var staticResponses = []string{
	"I'm here to help with your college-related questions. Could you please specify what information you need?",
	"Thank you for your question. Let me provide you with accurate information about our college.",
	"I'd be happy to assist you. Please let me know if you need details about admissions, courses, or facilities.",
}

// StaticProvider rotates through canned assistant replies. It never
// fails, which makes it the chain's guaranteed terminal provider.
type StaticProvider struct {
	next atomic.Uint64
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Name() string { return SourceLocal }

func (p *StaticProvider) Answer(_ context.Context, _ string, _ []Exchange) (Answer, error) {
	i := (p.next.Add(1) - 1) % uint64(len(staticResponses))
	return Answer{
		Text:       staticResponses[i],
		Source:     SourceLocal,
		Confidence: 0.5,
	}, nil
}
