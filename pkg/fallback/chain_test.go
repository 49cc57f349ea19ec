package fallback

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name   string
	answer Answer
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Answer(context.Context, string, []Exchange) (Answer, error) {
	s.calls++
	if s.err != nil {
		return Answer{}, s.err
	}
	return s.answer, nil
}

func TestChainFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", answer: Answer{Text: "a", Source: "first", Confidence: 0.8}}
	second := &stubProvider{name: "second", answer: Answer{Text: "b", Source: "second", Confidence: 0.5}}
	chain := NewChain(first, second)

	answer, ok := chain.Respond(context.Background(), "hi", nil)

	require.True(t, ok)
	assert.Equal(t, "a", answer.Text)
	assert.Equal(t, 0, second.calls)
}

func TestChainAdvancesPastFailure(t *testing.T) {
	broken := &stubProvider{name: "broken", err: errors.New("down")}
	working := &stubProvider{name: "working", answer: Answer{Text: "ok", Source: "working", Confidence: 0.5}}
	chain := NewChain(broken, working)

	answer, ok := chain.Respond(context.Background(), "hi", nil)

	require.True(t, ok)
	assert.Equal(t, "ok", answer.Text)
	assert.Equal(t, 1, broken.calls)
}

func TestChainExhaustedReturnsApology(t *testing.T) {
	chain := NewChain(&stubProvider{name: "a", err: errors.New("down")})

	answer, ok := chain.Respond(context.Background(), "hi", nil)

	require.True(t, ok)
	assert.Equal(t, Apology, answer.Text)
	assert.Equal(t, SourceNone, answer.Source)
	assert.Equal(t, 0.0, answer.Confidence)
}

func TestChainDisabled(t *testing.T) {
	provider := &stubProvider{name: "a", answer: Answer{Text: "x"}}
	chain := NewChain(provider)
	chain.SetEnabled(false)

	_, ok := chain.Respond(context.Background(), "hi", nil)

	assert.False(t, ok)
	assert.Equal(t, 0, provider.calls)
}

func TestStaticProviderRotates(t *testing.T) {
	p := NewStaticProvider()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < len(staticResponses); i++ {
		answer, err := p.Answer(ctx, "anything", nil)
		require.NoError(t, err)
		assert.Equal(t, SourceLocal, answer.Source)
		assert.Equal(t, 0.5, answer.Confidence)
		seen[answer.Text] = true
	}
	assert.Len(t, seen, len(staticResponses))
}

func TestInferenceProviderObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generated_text": "from the model"}`))
	}))
	defer srv.Close()

	p := NewInferenceProvider(srv.URL, "secret", 2*time.Second)
	answer, err := p.Answer(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "from the model", answer.Text)
	assert.Equal(t, SourceInference, answer.Source)
	assert.Equal(t, 0.6, answer.Confidence)
}

func TestInferenceProviderArrayResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "first"}, {"generated_text": "second"}]`))
	}))
	defer srv.Close()

	p := NewInferenceProvider(srv.URL, "", time.Second)
	answer, err := p.Answer(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "first", answer.Text)
}

func TestInferenceProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewInferenceProvider(srv.URL, "", time.Second)
	_, err := p.Answer(context.Background(), "hello", nil)

	assert.Error(t, err)
}
