package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/campus-connect/CampusTalk/pkg/nlp"
)

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one transcript entry handed to the summarizer.
type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

const maxSummaryKeywords = 5

// SummaryResult condenses a transcript into topics, tone and key points.
type SummaryResult struct {
	Summary      string    `json:"summary"`
	KeyPoints    []string  `json:"keyPoints"`
	Topics       []string  `json:"topics"`
	Keywords     []string  `json:"keywords"`
	Sentiment    string    `json:"sentiment"`
	MessageCount int       `json:"messageCount"`
	UserQueries  int       `json:"userQueries"`
	BotResponses int       `json:"botResponses"`
	Duration     int       `json:"duration"`
	Timestamp    time.Time `json:"timestamp"`
}

// Summarizer re-classifies user turns to produce a conversation summary.
// Like the predictor it uses the non-recording sentiment path.
type Summarizer struct {
	intents   *nlp.IntentClassifier
	sentiment *nlp.SentimentAnalyzer
}

func NewSummarizer(intents *nlp.IntentClassifier, sentiment *nlp.SentimentAnalyzer) *Summarizer {
	return &Summarizer{intents: intents, sentiment: sentiment}
}

// Summarize builds a SummaryResult over the transcript. Topics are the
// distinct recognized intents of user turns in order of first mention;
// the overall sentiment is the majority label across user turns and
// keywords are extracted from the pooled user text.
func (s *Summarizer) Summarize(messages []Message) SummaryResult {
	if len(messages) == 0 {
		return SummaryResult{
			Summary:   "No conversation to summarize.",
			KeyPoints: []string{},
			Topics:    []string{},
			Keywords:  []string{},
			Sentiment: nlp.SentimentNeutral,
			Duration:  0,
		}
	}

	topics := []string{}
	seen := map[string]struct{}{}
	counts := map[string]int{}
	userQueries, botResponses, negatives := 0, 0, 0
	var userText strings.Builder

	for _, msg := range messages {
		if msg.Sender == SenderBot {
			botResponses++
			continue
		}
		if msg.Sender != SenderUser {
			continue
		}
		userQueries++
		userText.WriteString(msg.Text)
		userText.WriteString(" ")

		intent := s.intents.Classify(msg.Text).Primary.Intent
		if intent != nlp.IntentUnknown {
			if _, ok := seen[intent]; !ok {
				seen[intent] = struct{}{}
				topics = append(topics, intent)
			}
		}

		label := s.sentiment.Score(msg.Text).Label
		counts[label]++
		if label == nlp.SentimentNegative {
			negatives++
		}
	}

	overall := nlp.SentimentNeutral
	if userQueries > 0 {
		overall = nlp.MajoritySentiment(counts)
	}

	duration := 0
	if len(messages) > 1 {
		elapsed := messages[len(messages)-1].Timestamp.Sub(messages[0].Timestamp)
		duration = int(math.Round(elapsed.Minutes()))
	}

	return SummaryResult{
		Summary:      summaryText(topics, userQueries, overall),
		KeyPoints:    keyPoints(topics, len(messages), negatives),
		Topics:       topics,
		Keywords:     nlp.ExtractKeywords(userText.String(), maxSummaryKeywords),
		Sentiment:    overall,
		MessageCount: len(messages),
		UserQueries:  userQueries,
		BotResponses: botResponses,
		Duration:     duration,
		Timestamp:    time.Now(),
	}
}

func summaryText(topics []string, queryCount int, sentiment string) string {
	topicText := "The user had a general conversation"
	if len(topics) > 0 {
		topicText = "The user inquired about " + strings.Join(topics, ", ")
	}

	sentimentText := "in a neutral manner"
	switch sentiment {
	case nlp.SentimentPositive:
		sentimentText = "with a positive tone"
	case nlp.SentimentNegative:
		sentimentText = "expressing some concerns"
	}

	return fmt.Sprintf("%s %s. Total of %d user queries were addressed.", topicText, sentimentText, queryCount)
}

func keyPoints(topics []string, messageCount, negatives int) []string {
	points := []string{}
	for _, topic := range topics {
		points = append(points, "Discussed "+strings.ReplaceAll(topic, "_", " "))
	}
	if messageCount > 5 {
		points = append(points, "Extended conversation with multiple exchanges")
	}
	if negatives > 0 {
		points = append(points, "User expressed concerns or frustrations")
	}
	if len(points) > 5 {
		points = points[:5]
	}
	return points
}
