package engine

import (
	"math"
	"strings"
	"time"

	"github.com/campus-connect/CampusTalk/pkg/nlp"
	"github.com/campus-connect/CampusTalk/pkg/tracker"
)

// Suggestion categories.
const (
	CategoryEmpathy       = "empathy"
	CategoryAssistance    = "assistance"
	CategoryInformational = "informational"
	CategoryCourtesy      = "courtesy"
	CategoryGeneral       = "general"
)

const maxSuggestions = 5

// Suggestion is one candidate reply the assistant could offer.
type Suggestion struct {
	ID         int     `json:"id"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// SuggestionContext records what the suggestions were derived from.
type SuggestionContext struct {
	Intent             string `json:"intent"`
	Sentiment          string `json:"sentiment"`
	ConversationLength int    `json:"conversationLength"`
}

// SuggestionSet is the ranked suggestion list for one utterance.
type SuggestionSet struct {
	Suggestions []Suggestion      `json:"suggestions"`
	Context     SuggestionContext `json:"context"`
	Timestamp   time.Time         `json:"timestamp"`
}

var intentSuggestions = map[string][]string{
	nlp.IntentGreeting: {
		"Hello! Welcome to SAITM. How can I assist you today?",
		"Hi there! I'm here to help you with any questions about SAITM.",
		"Good day! What information can I provide about our college?",
	},
	nlp.IntentAdmission: {
		"I'd be happy to help with admission information. What specific details would you like to know?",
		"For admissions, you can visit our website or contact the admission office. What's your area of interest?",
		"Let me guide you through our admission process. Which program are you interested in?",
	},
	nlp.IntentFees: {
		"I can provide information about our fee structure. Which program are you asking about?",
		"Our fees vary by program. Would you like details for a specific course?",
		"Fee information is available on our website. I can help you find the right details.",
	},
	nlp.IntentComplaint: {
		"I understand your concern. Let me help you resolve this issue.",
		"I'm sorry to hear about this problem. Can you provide more details so I can assist better?",
		"Thank you for bringing this to our attention. How can we help fix this?",
	},
	nlp.IntentAppreciation: {
		"Thank you for your kind words! Is there anything else I can help you with?",
		"I'm glad I could help! Feel free to ask if you have more questions.",
		"You're very welcome! Let me know if you need any other information.",
	},
}

var negativeSuggestions = []string{
	"I understand this might be frustrating. Let me help you find a solution.",
	"I'm sorry you're experiencing difficulties. How can I make this better for you?",
	"Thank you for your patience. Let me address your concerns right away.",
}

var positiveSuggestions = []string{
	"I'm glad to help! What other information can I provide?",
	"Great to hear! Is there anything else you'd like to know?",
	"Wonderful! How else can I assist you today?",
}

var followUpSuggestions = []string{
	"Would you like me to explain that in more detail?",
	"Do you have any follow-up questions about what I just mentioned?",
	"Is there a specific aspect you'd like to know more about?",
}

// Suggestions ranks candidate replies for the utterance: sentiment-keyed
// empathy lines first, then intent-keyed lines, then conversation
// continuity lines when the user already has tracked turns. Duplicates
// collapse and at most five survive, confidence decaying by rank.
func (e *Engine) Suggestions(userID, message string) SuggestionSet {
	intent := e.intents.Classify(message)
	sent := e.sentiment.Score(message)
	historyLen := len(e.tracker.Context(userID, tracker.TurnHistoryCap))

	var texts []string
	switch sent.Label {
	case nlp.SentimentNegative:
		texts = append(texts, negativeSuggestions...)
	case nlp.SentimentPositive:
		texts = append(texts, positiveSuggestions...)
	}
	texts = append(texts, intentSuggestions[intent.Primary.Intent]...)
	if historyLen > 0 {
		texts = append(texts, followUpSuggestions...)
	}

	seen := map[string]struct{}{}
	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, text := range texts {
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		i := len(suggestions)
		suggestions = append(suggestions, Suggestion{
			ID:         i + 1,
			Text:       text,
			Confidence: math.Round((0.9-float64(i)*0.1)*100) / 100,
			Category:   categorize(text),
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return SuggestionSet{
		Suggestions: suggestions,
		Context: SuggestionContext{
			Intent:             intent.Primary.Intent,
			Sentiment:          sent.Label,
			ConversationLength: historyLen,
		},
		Timestamp: time.Now(),
	}
}

func categorize(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "sorry") || strings.Contains(lowered, "understand"):
		return CategoryEmpathy
	case strings.Contains(lowered, "help") || strings.Contains(lowered, "assist"):
		return CategoryAssistance
	case strings.Contains(lowered, "information") || strings.Contains(lowered, "details"):
		return CategoryInformational
	case strings.Contains(lowered, "thank") || strings.Contains(lowered, "welcome"):
		return CategoryCourtesy
	default:
		return CategoryGeneral
	}
}
