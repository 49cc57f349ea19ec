package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/campus-connect/CampusTalk/pkg/nlp"
)

// Behavior patterns. new_user is returned for an empty history; the
// others are scored and the first maximum in declaration order wins.
const (
	PatternNewUser   = "new_user"
	PatternExplorer  = "explorer"
	PatternFocused   = "focused"
	PatternImpatient = "impatient"
	PatternThorough  = "thorough"
)

// Risk and satisfaction levels.
const (
	LevelHigh    = "high"
	LevelMedium  = "medium"
	LevelLow     = "low"
	LevelNeutral = "neutral"
	LevelUnknown = "unknown"
)

var escalationKeywords = []string{
	"manager", "supervisor", "complaint", "unsatisfied", "terrible", "awful",
}

// BehaviorScores are the raw per-pattern scores behind a profile.
type BehaviorScores struct {
	Explorer  float64 `json:"explorer"`
	Focused   float64 `json:"focused"`
	Impatient float64 `json:"impatient"`
	Thorough  float64 `json:"thorough"`
}

// BehaviorMetrics describe the history the scores were derived from.
type BehaviorMetrics struct {
	TopicDiversity   int     `json:"topicDiversity"`
	AvgMessageLength int     `json:"avgMessageLength"`
	NegativeRatio    float64 `json:"negativeRatio"`
}

// BehaviorProfile is the dominant interaction pattern for a user.
type BehaviorProfile struct {
	Pattern    string          `json:"pattern"`
	Confidence float64         `json:"confidence"`
	Scores     BehaviorScores  `json:"scores"`
	Metrics    BehaviorMetrics `json:"metrics"`
}

// SatisfactionFactors break a forecast down into its inputs.
type SatisfactionFactors struct {
	PositiveInteractions int `json:"positiveInteractions"`
	NegativeInteractions int `json:"negativeInteractions"`
	TotalInteractions    int `json:"totalInteractions"`
}

// SatisfactionForecast estimates how satisfied the user currently is.
type SatisfactionForecast struct {
	Level      string              `json:"level"`
	Score      int                 `json:"score"`
	Confidence float64             `json:"confidence"`
	Factors    SatisfactionFactors `json:"factors"`
}

// EscalationFactors explain an escalation score.
type EscalationFactors struct {
	CurrentSentiment      string `json:"currentSentiment"`
	HasEscalationKeywords bool   `json:"hasEscalationKeywords"`
	RecentNegativePattern bool   `json:"recentNegativePattern"`
}

// EscalationRisk estimates how likely the user is to demand a human.
type EscalationRisk struct {
	Level   string            `json:"level"`
	Score   int               `json:"score"`
	Factors EscalationFactors `json:"factors"`
}

// PredictionBundle is the full analytics output for one user and message.
type PredictionBundle struct {
	NextLikelyQuestions []string             `json:"nextLikelyQuestions"`
	UserSatisfaction    SatisfactionForecast `json:"userSatisfaction"`
	EscalationRisk      EscalationRisk       `json:"escalationRisk"`
	BehaviorPattern     BehaviorProfile      `json:"behaviorPattern"`
	Recommendations     []string             `json:"recommendations"`
	Timestamp           time.Time            `json:"timestamp"`
}

// Predictor derives behavior, satisfaction and escalation forecasts by
// re-classifying a user's message history. It never writes to the
// analyzer's trend history.
type Predictor struct {
	intents   *nlp.IntentClassifier
	sentiment *nlp.SentimentAnalyzer
}

func NewPredictor(intents *nlp.IntentClassifier, sentiment *nlp.SentimentAnalyzer) *Predictor {
	return &Predictor{intents: intents, sentiment: sentiment}
}

// Predict runs every forecast over the user's prior messages and the
// message currently being handled.
func (p *Predictor) Predict(history []string, currentMessage string) PredictionBundle {
	behavior := p.AnalyzeBehavior(history)
	current := p.intents.Classify(currentMessage)

	return PredictionBundle{
		NextLikelyQuestions: NextQuestions(current.Primary.Intent),
		UserSatisfaction:    p.PredictSatisfaction(history),
		EscalationRisk:      p.AssessEscalation(history, currentMessage),
		BehaviorPattern:     behavior,
		Recommendations:     Recommendations(behavior, current),
		Timestamp:           time.Now(),
	}
}

// AnalyzeBehavior scores the history against the four interaction
// patterns and returns the dominant one. An empty history is a new user.
func (p *Predictor) AnalyzeBehavior(history []string) BehaviorProfile {
	if len(history) == 0 {
		return BehaviorProfile{Pattern: PatternNewUser, Confidence: 0.9}
	}

	topics := map[string]struct{}{}
	totalLength := 0
	negatives := 0
	for _, msg := range history {
		intent := p.intents.Classify(msg)
		topics[intent.Primary.Intent] = struct{}{}
		totalLength += len(msg)
		if p.sentiment.Score(msg).Label == nlp.SentimentNegative {
			negatives++
		}
	}

	n := float64(len(history))
	avgLength := float64(totalLength) / n
	negativeRatio := float64(negatives) / n

	scores := BehaviorScores{
		Explorer: float64(len(topics)) / n,
	}
	scores.Focused = 1 - scores.Explorer
	scores.Impatient = negativeRatio
	if avgLength < 20 {
		scores.Impatient += 0.3
	}
	if avgLength > 50 {
		scores.Thorough += 0.4
	}
	if len(history) > 5 {
		scores.Thorough += 0.3
	}

	pattern, confidence := dominantPattern(scores)
	return BehaviorProfile{
		Pattern:    pattern,
		Confidence: round2(confidence),
		Scores:     scores,
		Metrics: BehaviorMetrics{
			TopicDiversity:   len(topics),
			AvgMessageLength: int(math.Round(avgLength)),
			NegativeRatio:    round2(negativeRatio),
		},
	}
}

// PredictSatisfaction maps the positive/negative balance of the history
// onto a 0..100 score. Confidence grows with history length up to 0.9.
func (p *Predictor) PredictSatisfaction(history []string) SatisfactionForecast {
	if len(history) == 0 {
		return SatisfactionForecast{Level: LevelUnknown, Confidence: 0.5, Score: 50}
	}

	positives, negatives := 0, 0
	for _, msg := range history {
		switch p.sentiment.Score(msg).Label {
		case nlp.SentimentPositive:
			positives++
		case nlp.SentimentNegative:
			negatives++
		}
	}

	total := len(history)
	score := (float64(positives-negatives)/float64(total) + 1) * 50
	level := LevelNeutral
	if score > 70 {
		level = LevelHigh
	} else if score < 30 {
		level = LevelLow
	}

	return SatisfactionForecast{
		Level:      level,
		Score:      int(math.Round(score)),
		Confidence: math.Min(0.9, float64(total)/10),
		Factors: SatisfactionFactors{
			PositiveInteractions: positives,
			NegativeInteractions: negatives,
			TotalInteractions:    total,
		},
	}
}

// AssessEscalation scores the risk that the conversation needs a human.
// The score is additive over the current message's sentiment and emotion,
// escalation keywords, and negative turns among the last three history
// entries, capped at 100.
func (p *Predictor) AssessEscalation(history []string, currentMessage string) EscalationRisk {
	score := 0

	current := p.sentiment.Score(currentMessage)
	if current.Label == nlp.SentimentNegative {
		score += 30
	}
	if current.Emotion == nlp.EmotionFrustrated {
		score += 20
	}

	lowered := strings.ToLower(currentMessage)
	hasKeyword := false
	for _, kw := range escalationKeywords {
		if strings.Contains(lowered, kw) {
			hasKeyword = true
			break
		}
	}
	if hasKeyword {
		score += 40
	}

	recentNegatives := 0
	if len(history) > 0 {
		recent := history
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		for _, msg := range recent {
			if p.sentiment.Score(msg).Label == nlp.SentimentNegative {
				recentNegatives++
			}
		}
		score += recentNegatives * 15
	}

	level := LevelLow
	if score > 60 {
		level = LevelHigh
	} else if score > 30 {
		level = LevelMedium
	}

	return EscalationRisk{
		Level: level,
		Score: min(100, score),
		Factors: EscalationFactors{
			CurrentSentiment:      current.Label,
			HasEscalationKeywords: hasKeyword,
			RecentNegativePattern: recentNegatives > 1,
		},
	}
}

var nextQuestionMap = map[string][]string{
	nlp.IntentAdmission: {
		"What are the eligibility criteria?",
		"When is the application deadline?",
		"What documents are required?",
		"How much are the application fees?",
	},
	nlp.IntentFees: {
		"Are there any scholarships available?",
		"Can I pay fees in installments?",
		"What are the hostel charges?",
		"Are there any additional fees?",
	},
	nlp.IntentCourses: {
		"What is the duration of the course?",
		"What are the career prospects?",
		"What subjects are covered?",
		"Are there any practical sessions?",
	},
	nlp.IntentFacilities: {
		"What are the library timings?",
		"Are there sports facilities?",
		"How is the hostel accommodation?",
		"What about transportation?",
	},
}

var genericNextQuestions = []string{
	"Can you provide more information?",
	"Where can I find additional details?",
	"Who should I contact for this?",
}

// NextQuestions returns the canned follow-up questions for an intent, or
// a generic set when the intent has no table entry.
func NextQuestions(intent string) []string {
	if qs, ok := nextQuestionMap[intent]; ok {
		return append([]string(nil), qs...)
	}
	return append([]string(nil), genericNextQuestions...)
}

// Recommendations suggests how the assistant should shape its replies
// given the user's behavior pattern and the current intent.
func Recommendations(behavior BehaviorProfile, current nlp.IntentResult) []string {
	var recs []string

	switch behavior.Pattern {
	case PatternExplorer:
		recs = append(recs,
			"Provide comprehensive overview with multiple topic options",
			"Use quick reply buttons for easy navigation")
	case PatternFocused:
		recs = append(recs,
			"Provide detailed information on the current topic",
			"Offer related subtopics for deeper exploration")
	case PatternImpatient:
		recs = append(recs,
			"Keep responses concise and direct",
			"Prioritize quick solutions and clear next steps")
	case PatternThorough:
		recs = append(recs,
			"Provide detailed explanations with examples",
			"Offer additional resources and documentation")
	}

	if current.Primary.Confidence > 0.8 {
		recs = append(recs, "High confidence in "+current.Primary.Intent+" intent - provide specific information")
	} else {
		recs = append(recs, "Intent unclear - ask clarifying questions")
	}

	return recs
}

func dominantPattern(s BehaviorScores) (string, float64) {
	pattern, best := PatternExplorer, s.Explorer
	for _, c := range []struct {
		name  string
		score float64
	}{
		{PatternFocused, s.Focused},
		{PatternImpatient, s.Impatient},
		{PatternThorough, s.Thorough},
	} {
		if c.score > best {
			pattern, best = c.name, c.score
		}
	}
	return pattern, best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
