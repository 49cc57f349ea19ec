package nlp

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/campus-connect/CampusTalk/pkg/bounded"
)

// Sentiment labels and emotion tags. Both enumerations are closed.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

	EmotionCalm       = "calm"
	EmotionHappy      = "happy"
	EmotionExcited    = "excited"
	EmotionConcerned  = "concerned"
	EmotionFrustrated = "frustrated"
)

// SentimentHistoryCap bounds the rolling analysis history.
const SentimentHistoryCap = 50

// SentimentScores are the raw lexicon hit counts behind a result.
type SentimentScores struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SentimentResult is the outcome of one analysis.
type SentimentResult struct {
	Label      string          `json:"sentiment"`
	Confidence float64         `json:"confidence"`
	Emotion    string          `json:"emotion"`
	Scores     SentimentScores `json:"scores"`
	Timestamp  time.Time       `json:"timestamp"`
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"awesome", "perfect", "love", "like", "happy", "satisfied", "pleased",
	"thank", "thanks", "helpful", "useful", "clear", "easy", "simple",
	"quick", "fast",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "hate", "dislike", "angry",
	"frustrated", "confused", "difficult", "hard", "slow", "problem",
	"issue", "error", "wrong", "broken", "useless", "unhelpful",
	"complicated", "unclear",
}

var neutralWords = []string{
	"okay", "fine", "alright", "normal", "average", "standard", "regular",
}

// SentimentAnalyzer scores text against fixed word lists and keeps a
// bounded rolling history of results for trend reporting. Safe for
// concurrent use.
type SentimentAnalyzer struct {
	mu      sync.Mutex
	history *bounded.Ring[SentimentResult]
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		history: bounded.NewRing[SentimentResult](SentimentHistoryCap),
	}
}

// Analyze classifies the text and appends the result to the rolling
// history. Classification itself never depends on the history.
func (a *SentimentAnalyzer) Analyze(text string) SentimentResult {
	result := a.Score(text)

	a.mu.Lock()
	a.history.Append(result)
	a.mu.Unlock()

	return result
}

// Score classifies without recording; the analytics components use it to
// re-classify historical turns without polluting the live trend history.
// Tokenization is on whitespace and a token scores when it contains a
// lexicon entry.
func (a *SentimentAnalyzer) Score(text string) SentimentResult {
	tokens := strings.Fields(strings.ToLower(text))

	var scores SentimentScores
	for _, tok := range tokens {
		if containsAny(tok, positiveWords) {
			scores.Positive++
		}
		if containsAny(tok, negativeWords) {
			scores.Negative++
		}
		if containsAny(tok, neutralWords) {
			scores.Neutral++
		}
	}

	total := scores.Positive + scores.Negative + scores.Neutral
	result := SentimentResult{Scores: scores, Timestamp: time.Now()}

	switch {
	case total == 0:
		result.Label = SentimentNeutral
		result.Confidence = 0.5
		result.Emotion = EmotionCalm
	case scores.Positive > scores.Negative:
		result.Label = SentimentPositive
		result.Confidence = round2(math.Min(0.9, 0.6+float64(scores.Positive)/float64(total)*0.3))
		if scores.Positive > 2 {
			result.Emotion = EmotionExcited
		} else {
			result.Emotion = EmotionHappy
		}
	case scores.Negative > scores.Positive:
		result.Label = SentimentNegative
		result.Confidence = round2(math.Min(0.9, 0.6+float64(scores.Negative)/float64(total)*0.3))
		if scores.Negative > 2 {
			result.Emotion = EmotionFrustrated
		} else {
			result.Emotion = EmotionConcerned
		}
	default:
		result.Label = SentimentNeutral
		result.Confidence = 0.6
		result.Emotion = EmotionCalm
	}

	return result
}

// History returns up to n of the most recent results, oldest first.
func (a *SentimentAnalyzer) History(n int) []SentimentResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Last(n)
}

// HistoryLen reports how many analyses are currently retained.
func (a *SentimentAnalyzer) HistoryLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Len()
}

// AverageSentiment is the most frequent label across the retained
// history, neutral when the history is empty. Ties resolve in the fixed
// order positive, negative, neutral.
func (a *SentimentAnalyzer) AverageSentiment() string {
	a.mu.Lock()
	items := a.history.Items()
	a.mu.Unlock()

	if len(items) == 0 {
		return SentimentNeutral
	}
	counts := map[string]int{}
	for _, r := range items {
		counts[r.Label]++
	}
	return MajoritySentiment(counts)
}

// MajoritySentiment picks the label with the highest count; ties resolve
// in the fixed order positive, negative, neutral.
func MajoritySentiment(counts map[string]int) string {
	best := SentimentNeutral
	bestCount := -1
	for _, label := range []string{SentimentPositive, SentimentNegative, SentimentNeutral} {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

func containsAny(token string, lexicon []string) bool {
	for _, w := range lexicon {
		if strings.Contains(token, w) {
			return true
		}
	}
	return false
}
