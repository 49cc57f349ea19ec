package corpus

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// AcceptThreshold is the minimum similarity for a match to count as an
// answer. Below it retrieval fails and the caller falls back to the
// persona's canned text.
const AcceptThreshold = 0.4

// Match is the outcome of fuzzy retrieval against one or more corpora.
type Match struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category string  `json:"category,omitempty"`
	Score    float64 `json:"score"`
	// FromGeneric is set when the generic corpus beat the persona corpus.
	FromGeneric bool `json:"fromGeneric,omitempty"`
}

// Accepted reports whether the match clears the accept threshold.
func (m Match) Accepted() bool { return m.Score >= AcceptThreshold }

// Matcher scores utterances against corpus questions with a bigram
// Sørensen–Dice similarity. Identical strings score 1.0, disjoint strings
// score 0. Stateless and safe for concurrent use.
type Matcher struct {
	metric *metrics.SorensenDice
}

func NewMatcher() *Matcher {
	return &Matcher{metric: metrics.NewSorensenDice()}
}

// Normalize lowercases and collapses runs of whitespace; both sides of
// every comparison go through it.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func (m *Matcher) similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return strutil.Similarity(a, b, m.metric)
}

// Best scores the utterance against every entry and returns the best one.
// An empty corpus yields a zero-score match, which never clears the
// threshold.
func (m *Matcher) Best(utterance string, entries []Entry) Match {
	norm := Normalize(utterance)
	best := Match{}
	for _, e := range entries {
		score := m.similarity(norm, Normalize(e.Question))
		if score > best.Score {
			best = Match{
				Question: e.Question,
				Answer:   e.Answer,
				Category: e.Category,
				Score:    score,
			}
		}
	}
	return best
}

// Retrieve applies the two-tier policy: the persona corpus is consulted
// first; only when its best score is below the threshold is the generic
// corpus tried, and the higher of the two wins with the persona corpus
// preferred on exact ties.
func (m *Matcher) Retrieve(utterance string, primary, generic []Entry) Match {
	best := m.Best(utterance, primary)
	if best.Score >= AcceptThreshold {
		return best
	}
	alt := m.Best(utterance, generic)
	if alt.Score > best.Score {
		alt.FromGeneric = true
		return alt
	}
	return best
}
