// Package engine composes retrieval, classification, context tracking,
// analytics and the generative fallback chain behind one facade the
// serving layer talks to.
package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/campus-connect/CampusTalk/pkg/analytics"
	"github.com/campus-connect/CampusTalk/pkg/corpus"
	"github.com/campus-connect/CampusTalk/pkg/fallback"
	"github.com/campus-connect/CampusTalk/pkg/logger"
	"github.com/campus-connect/CampusTalk/pkg/nlp"
	"github.com/campus-connect/CampusTalk/pkg/persona"
	"github.com/campus-connect/CampusTalk/pkg/tracker"
)

// Reply sources. Fallback provider sources pass through unchanged.
const (
	SourceFAQ             = "faq"
	SourceGenericFAQ      = "generic_faq"
	SourcePersonaFallback = "persona_fallback"
)

const (
	defaultTrackedUsers = 1024
	defaultCacheTTL     = 5 * time.Minute
)

// Reply is the full outcome of one chat turn.
type Reply struct {
	ID              string              `json:"id"`
	Text            string              `json:"text"`
	Source          string              `json:"source"`
	MatchScore      float64             `json:"matchScore"`
	MatchedQuestion string              `json:"matchedQuestion,omitempty"`
	Category        string              `json:"category,omitempty"`
	Intent          nlp.IntentResult    `json:"intent"`
	Sentiment       nlp.SentimentResult `json:"sentiment"`
	Topic           string              `json:"topic"`
	Persona         persona.Type        `json:"persona"`
	Timestamp       time.Time           `json:"timestamp"`
}

// Options tune the engine; zero values fall back to defaults.
type Options struct {
	TrackedUsers int
	CacheTTL     time.Duration
}

// Engine is safe for concurrent use. The corpus and classifier tables
// are read-only; tracker, sentiment history and the intent counter
// guard their own state.
type Engine struct {
	store      *corpus.Store
	matcher    *corpus.Matcher
	intents    *nlp.IntentClassifier
	sentiment  *nlp.SentimentAnalyzer
	tracker    *tracker.Tracker
	predictor  *analytics.Predictor
	summarizer *analytics.Summarizer
	chain      *fallback.Chain
	cache      *gocache.Cache

	mu           sync.Mutex
	intentCounts map[string]int
}

type cachedMatch struct {
	Text        string
	Question    string
	Category    string
	Score       float64
	FromGeneric bool
}

func New(store *corpus.Store, chain *fallback.Chain, opts Options) (*Engine, error) {
	if opts.TrackedUsers <= 0 {
		opts.TrackedUsers = defaultTrackedUsers
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}

	trk, err := tracker.New(opts.TrackedUsers)
	if err != nil {
		return nil, err
	}

	intents := nlp.NewIntentClassifier()
	sentiment := nlp.NewSentimentAnalyzer()

	return &Engine{
		store:        store,
		matcher:      corpus.NewMatcher(),
		intents:      intents,
		sentiment:    sentiment,
		tracker:      trk,
		predictor:    analytics.NewPredictor(intents, sentiment),
		summarizer:   analytics.NewSummarizer(intents, sentiment),
		chain:        chain,
		cache:        gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
		intentCounts: map[string]int{},
	}, nil
}

// Respond drives one chat turn: retrieve from the persona corpus, fall
// back through the provider chain or the persona's canned answer, then
// track the turn and decorate the response with continuity prefixes.
func (e *Engine) Respond(ctx context.Context, userID string, personaType persona.Type, text string) Reply {
	p := persona.Lookup(personaType)

	intent := e.intents.Classify(text)
	sent := e.sentiment.Analyze(text)
	e.recordIntent(intent.Primary.Intent)
	e.tracker.UpdateProfile(userID, p.Type)

	match := e.retrieve(p.Type, text)

	var (
		answer string
		source string
		score  float64
	)
	switch {
	case match.Accepted():
		answer = match.Text
		score = match.Score
		source = SourceFAQ
		if match.FromGeneric {
			source = SourceGenericFAQ
		}
	default:
		if generated, ok := e.chain.Respond(ctx, text, e.chainHistory(userID)); ok && generated.Confidence > 0 {
			answer = generated.Text
			source = generated.Source
			score = match.Score
			logger.Debug("fallback answer used",
				zap.String("user", userID),
				zap.String("source", source))
		} else {
			answer = p.FallbackTemplate
			source = SourcePersonaFallback
			score = match.Score
		}
	}

	answer = e.tracker.AugmentResponse(userID, answer)

	turn := tracker.Turn{
		Message:   text,
		Response:  answer,
		Intent:    intent.Primary.Intent,
		Sentiment: sent.Label,
		Timestamp: time.Now(),
	}
	turn.Topic = tracker.DetectTopicIn(append(e.tracker.Context(userID, 2), turn))
	e.tracker.AddTurn(userID, turn)

	return Reply{
		ID:              uuid.NewString(),
		Text:            answer,
		Source:          source,
		MatchScore:      score,
		MatchedQuestion: match.Question,
		Category:        match.Category,
		Intent:          intent,
		Sentiment:       sent,
		Topic:           turn.Topic,
		Persona:         p.Type,
		Timestamp:       turn.Timestamp,
	}
}

// retrieve consults the short-TTL cache before running similarity over
// the persona corpus. Only accepted matches are cached; misses stay
// cheap and may be answered differently as the chain state changes.
func (e *Engine) retrieve(p persona.Type, text string) cachedMatch {
	key := string(p) + "|" + corpus.Normalize(text)
	if v, ok := e.cache.Get(key); ok {
		return v.(cachedMatch)
	}

	primary, generic := e.store.For(p)
	m := e.matcher.Retrieve(text, primary, generic)
	found := cachedMatch{
		Text:        m.Answer,
		Question:    m.Question,
		Category:    m.Category,
		Score:       m.Score,
		FromGeneric: m.FromGeneric,
	}
	if m.Accepted() {
		e.cache.SetDefault(key, found)
	}
	return found
}

func (c cachedMatch) Accepted() bool { return c.Score >= corpus.AcceptThreshold }

func (e *Engine) chainHistory(userID string) []fallback.Exchange {
	turns := e.tracker.Context(userID, 5)
	exchanges := make([]fallback.Exchange, 0, len(turns)*2)
	for _, t := range turns {
		exchanges = append(exchanges,
			fallback.Exchange{Role: fallback.RoleUser, Text: t.Message},
			fallback.Exchange{Role: fallback.RoleAssistant, Text: t.Response},
		)
	}
	return exchanges
}

// Predict runs the analytics forecasts for a user against the message
// they are about to send.
func (e *Engine) Predict(userID, message string) analytics.PredictionBundle {
	turns := e.tracker.Context(userID, tracker.TurnHistoryCap)
	history := make([]string, 0, len(turns))
	for _, t := range turns {
		history = append(history, t.Message)
	}
	return e.predictor.Predict(history, message)
}

// Summarize condenses a posted transcript.
func (e *Engine) Summarize(messages []analytics.Message) analytics.SummaryResult {
	return e.summarizer.Summarize(messages)
}

// History returns the user's tracked turns, oldest first.
func (e *Engine) History(userID string, n int) []tracker.Turn {
	return e.tracker.Context(userID, n)
}

// ClearHistory drops a user's turn log but keeps their profile.
func (e *Engine) ClearHistory(userID string) {
	e.tracker.ClearContext(userID)
}

// Profile returns the user's accumulated profile.
func (e *Engine) Profile(userID string) tracker.Profile {
	return e.tracker.Profile(userID)
}

// Stats aggregates tracker state.
func (e *Engine) Stats() tracker.Stats {
	return e.tracker.Stats()
}

// CorpusSize reports entries per persona corpus plus the generic set.
func (e *Engine) CorpusSize() map[string]int {
	return e.store.Size()
}

// IntentCount is one entry of the top-intent ranking.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// Summary is the rolling analytics overview.
type Summary struct {
	SentimentHistory []nlp.SentimentResult `json:"sentimentHistory"`
	TotalAnalyses    int                   `json:"totalAnalyses"`
	AverageSentiment string                `json:"averageSentiment"`
	TopIntents       []IntentCount         `json:"topIntents"`
	Timestamp        time.Time             `json:"timestamp"`
}

// AnalyticsSummary reports the last ten sentiment analyses, the overall
// trend and the most frequent intents.
func (e *Engine) AnalyticsSummary() Summary {
	return Summary{
		SentimentHistory: e.sentiment.History(10),
		TotalAnalyses:    e.sentiment.HistoryLen(),
		AverageSentiment: e.sentiment.AverageSentiment(),
		TopIntents:       e.TopIntents(5),
		Timestamp:        time.Now(),
	}
}

// TopIntents ranks observed primary intents by frequency, alphabetical
// on ties.
func (e *Engine) TopIntents(n int) []IntentCount {
	e.mu.Lock()
	counts := make([]IntentCount, 0, len(e.intentCounts))
	for intent, count := range e.intentCounts {
		counts = append(counts, IntentCount{Intent: intent, Count: count})
	}
	e.mu.Unlock()

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Intent < counts[j].Intent
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func (e *Engine) recordIntent(intent string) {
	e.mu.Lock()
	e.intentCounts[intent]++
	e.mu.Unlock()
}
