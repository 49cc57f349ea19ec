package nlp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmptyIsNeutralCalm(t *testing.T) {
	a := NewSentimentAnalyzer()

	for _, text := range []string{"", "   ", "\t\n"} {
		got := a.Analyze(text)
		assert.Equal(t, SentimentNeutral, got.Label, "text %q", text)
		assert.Equal(t, 0.5, got.Confidence, "text %q", text)
		assert.Equal(t, EmotionCalm, got.Emotion, "text %q", text)
	}
}

func TestAnalyze_Positive(t *testing.T) {
	a := NewSentimentAnalyzer()

	got := a.Analyze("this is really helpful, thanks")
	assert.Equal(t, SentimentPositive, got.Label)
	assert.Equal(t, EmotionHappy, got.Emotion)
	assert.GreaterOrEqual(t, got.Confidence, 0.6)
	assert.LessOrEqual(t, got.Confidence, 0.9)
}

func TestAnalyze_StrongPositiveIsExcited(t *testing.T) {
	a := NewSentimentAnalyzer()

	got := a.Analyze("awesome great excellent wonderful")
	assert.Equal(t, SentimentPositive, got.Label)
	assert.Equal(t, EmotionExcited, got.Emotion)
}

func TestAnalyze_Negative(t *testing.T) {
	a := NewSentimentAnalyzer()

	got := a.Analyze("the portal is broken and slow")
	assert.Equal(t, SentimentNegative, got.Label)
	assert.Equal(t, EmotionConcerned, got.Emotion)
}

func TestAnalyze_StrongNegativeIsFrustrated(t *testing.T) {
	a := NewSentimentAnalyzer()

	got := a.Analyze("terrible awful broken useless")
	assert.Equal(t, SentimentNegative, got.Label)
	assert.Equal(t, EmotionFrustrated, got.Emotion)
}

func TestAnalyze_BalancedIsNeutral(t *testing.T) {
	a := NewSentimentAnalyzer()

	got := a.Analyze("good but slow")
	assert.Equal(t, SentimentNeutral, got.Label)
	assert.Equal(t, 0.6, got.Confidence)
	assert.Equal(t, EmotionCalm, got.Emotion)
}

func TestAnalyze_HistoryStaysBounded(t *testing.T) {
	a := NewSentimentAnalyzer()

	for i := 0; i < SentimentHistoryCap*3; i++ {
		a.Analyze(fmt.Sprintf("message number %d", i))
	}
	assert.Equal(t, SentimentHistoryCap, a.HistoryLen())
	assert.Len(t, a.History(SentimentHistoryCap*2), SentimentHistoryCap)
}

func TestAverageSentiment(t *testing.T) {
	a := NewSentimentAnalyzer()
	assert.Equal(t, SentimentNeutral, a.AverageSentiment())

	a.Analyze("great stuff, thanks")
	a.Analyze("really helpful and easy")
	a.Analyze("broken portal")
	assert.Equal(t, SentimentPositive, a.AverageSentiment())
}

func TestMajoritySentiment_TieOrder(t *testing.T) {
	assert.Equal(t, SentimentPositive, MajoritySentiment(map[string]int{
		SentimentPositive: 2, SentimentNegative: 2,
	}))
	assert.Equal(t, SentimentNegative, MajoritySentiment(map[string]int{
		SentimentNegative: 1, SentimentNeutral: 1,
	}))
}
