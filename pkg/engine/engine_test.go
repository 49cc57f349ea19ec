package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-connect/CampusTalk/pkg/corpus"
	"github.com/campus-connect/CampusTalk/pkg/fallback"
	"github.com/campus-connect/CampusTalk/pkg/nlp"
	"github.com/campus-connect/CampusTalk/pkg/persona"
)

type stubProvider struct {
	answer fallback.Answer
	err    error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Answer(context.Context, string, []fallback.Exchange) (fallback.Answer, error) {
	if s.err != nil {
		return fallback.Answer{}, s.err
	}
	return s.answer, nil
}

func testStore() *corpus.Store {
	return corpus.New(map[persona.Type][]corpus.Entry{
		persona.TypeStudent: {
			{Question: "What are the fees?", Answer: "Fees are 100k per year.", Category: "fees"},
			{Question: "How do I apply for admission?", Answer: "Apply online at saitm.edu.", Category: "admission"},
		},
	}, []corpus.Entry{
		{Question: "Where is the campus located?", Answer: "Gurugram, Haryana.", Category: "contact"},
	})
}

func disabledChain() *fallback.Chain {
	c := fallback.NewChain(fallback.NewStaticProvider())
	c.SetEnabled(false)
	return c
}

func newTestEngine(t *testing.T, chain *fallback.Chain) *Engine {
	t.Helper()
	e, err := New(testStore(), chain, Options{})
	require.NoError(t, err)
	return e
}

func TestRespondMatchesPersonaCorpus(t *testing.T) {
	e := newTestEngine(t, disabledChain())

	reply := e.Respond(context.Background(), "u1", persona.TypeStudent, "what are the fees")

	assert.Equal(t, SourceFAQ, reply.Source)
	assert.Equal(t, "Fees are 100k per year.", reply.Text)
	assert.Equal(t, "What are the fees?", reply.MatchedQuestion)
	assert.GreaterOrEqual(t, reply.MatchScore, corpus.AcceptThreshold)
	assert.Equal(t, nlp.IntentFees, reply.Intent.Primary.Intent)
	assert.Equal(t, "fees", reply.Topic)
	assert.NotEmpty(t, reply.ID)
}

func TestRespondFallsBackToGenericCorpus(t *testing.T) {
	e := newTestEngine(t, disabledChain())

	reply := e.Respond(context.Background(), "u1", persona.TypeStudent, "where is the campus located")

	assert.Equal(t, SourceGenericFAQ, reply.Source)
	assert.Equal(t, "Gurugram, Haryana.", reply.Text)
}

func TestRespondPersonaFallbackWhenChainDisabled(t *testing.T) {
	e := newTestEngine(t, disabledChain())

	reply := e.Respond(context.Background(), "u1", persona.TypeParent, "xyzzy plugh quux")

	assert.Equal(t, SourcePersonaFallback, reply.Source)
	assert.Equal(t, persona.Lookup(persona.TypeParent).FallbackTemplate, reply.Text)
	assert.Less(t, reply.MatchScore, corpus.AcceptThreshold)
}

func TestRespondUsesFallbackChain(t *testing.T) {
	chain := fallback.NewChain(&stubProvider{
		answer: fallback.Answer{Text: "generated answer", Source: "stub", Confidence: 0.8},
	})
	e := newTestEngine(t, chain)

	reply := e.Respond(context.Background(), "u1", persona.TypeVisitor, "xyzzy plugh quux")

	assert.Equal(t, "stub", reply.Source)
	assert.Equal(t, "generated answer", reply.Text)
}

func TestRespondFailedChainFallsBackToPersona(t *testing.T) {
	chain := fallback.NewChain(&stubProvider{err: errors.New("down")})
	e := newTestEngine(t, chain)

	reply := e.Respond(context.Background(), "u1", persona.TypeVisitor, "xyzzy plugh quux")

	// the chain's apology carries zero confidence, canned answer wins
	assert.Equal(t, SourcePersonaFallback, reply.Source)
	assert.Equal(t, persona.Lookup(persona.TypeVisitor).FallbackTemplate, reply.Text)
}

func TestRespondWelcomesReturningUser(t *testing.T) {
	e := newTestEngine(t, disabledChain())
	ctx := context.Background()

	e.Respond(ctx, "u1", persona.TypeStudent, "what are the fees")
	e.ClearHistory("u1")
	reply := e.Respond(ctx, "u1", persona.TypeStudent, "what are the fees")

	assert.True(t, strings.HasPrefix(reply.Text, "Welcome back! "), reply.Text)
}

func TestHistoryAndClear(t *testing.T) {
	e := newTestEngine(t, disabledChain())
	ctx := context.Background()

	e.Respond(ctx, "u1", persona.TypeStudent, "what are the fees")
	e.Respond(ctx, "u1", persona.TypeStudent, "how do i apply for admission")

	history := e.History("u1", 10)
	require.Len(t, history, 2)
	assert.Equal(t, "what are the fees", history[0].Message)

	e.ClearHistory("u1")
	assert.Empty(t, e.History("u1", 10))
	assert.Equal(t, 2, e.Profile("u1").TotalInteractions)
}

func TestAnalyticsSummaryTracksIntents(t *testing.T) {
	e := newTestEngine(t, disabledChain())
	ctx := context.Background()

	e.Respond(ctx, "u1", persona.TypeStudent, "what are the fees")
	e.Respond(ctx, "u2", persona.TypeStudent, "fee structure please")
	e.Respond(ctx, "u3", persona.TypeStudent, "hello")

	summary := e.AnalyticsSummary()

	assert.Equal(t, 3, summary.TotalAnalyses)
	require.NotEmpty(t, summary.TopIntents)
	assert.Equal(t, IntentCount{Intent: nlp.IntentFees, Count: 2}, summary.TopIntents[0])
}

func TestPredictUsesTrackedHistory(t *testing.T) {
	e := newTestEngine(t, disabledChain())
	ctx := context.Background()

	e.Respond(ctx, "u1", persona.TypeStudent, "what are the fees")

	bundle := e.Predict("u1", "tell me about the fee structure")

	assert.NotEqual(t, "new_user", bundle.BehaviorPattern.Pattern)
	assert.Equal(t, "Are there any scholarships available?", bundle.NextLikelyQuestions[0])
}

func TestSuggestionsNegativeMessage(t *testing.T) {
	e := newTestEngine(t, disabledChain())

	set := e.Suggestions("u1", "that is a terrible problem")

	require.NotEmpty(t, set.Suggestions)
	assert.Equal(t, nlp.SentimentNegative, set.Context.Sentiment)
	assert.Equal(t, nlp.IntentComplaint, set.Context.Intent)
	assert.Len(t, set.Suggestions, 5)
	assert.Equal(t, "I understand this might be frustrating. Let me help you find a solution.", set.Suggestions[0].Text)
	assert.Equal(t, CategoryEmpathy, set.Suggestions[0].Category)
	assert.Equal(t, 0.9, set.Suggestions[0].Confidence)
	assert.Equal(t, 0.5, set.Suggestions[4].Confidence)
}

func TestSuggestionsContinuityAfterHistory(t *testing.T) {
	e := newTestEngine(t, disabledChain())
	e.Respond(context.Background(), "u1", persona.TypeStudent, "what are the fees")

	set := e.Suggestions("u1", "zzz qqq")

	assert.Equal(t, 1, set.Context.ConversationLength)
	texts := make([]string, 0, len(set.Suggestions))
	for _, s := range set.Suggestions {
		texts = append(texts, s.Text)
	}
	assert.Contains(t, texts, "Would you like me to explain that in more detail?")
}

func TestSuggestionsDoNotRecordSentiment(t *testing.T) {
	e := newTestEngine(t, disabledChain())

	e.Suggestions("u1", "terrible awful")

	assert.Equal(t, 0, e.AnalyticsSummary().TotalAnalyses)
}
