// Package nlp holds the deterministic text classifiers: keyword-pattern
// intent recognition, lexicon sentiment scoring and keyword extraction.
// Taxonomies are closed and expressed as data tables.
package nlp

import (
	"math"
	"sort"
	"strings"
)

// Intent labels. IntentUnknown is the default when nothing matches.
const (
	IntentGreeting     = "greeting"
	IntentAdmission    = "admission"
	IntentFees         = "fees"
	IntentCourses      = "courses"
	IntentFacilities   = "facilities"
	IntentPlacement    = "placement"
	IntentComplaint    = "complaint"
	IntentAppreciation = "appreciation"
	IntentGoodbye      = "goodbye"
	IntentUnknown      = "unknown"
)

// IntentPattern maps one intent to its keyword set and base weight.
type IntentPattern struct {
	Intent   string
	Keywords []string
	Weight   float64
}

// DefaultIntentPatterns is the fixed taxonomy in declaration order; the
// order doubles as the tie-break for equal confidences.
func DefaultIntentPatterns() []IntentPattern {
	return []IntentPattern{
		{IntentGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "greetings"}, 0.9},
		{IntentAdmission, []string{"admission", "apply", "application", "entrance", "eligibility", "requirements"}, 0.85},
		{IntentFees, []string{"fee", "cost", "price", "payment", "tuition", "scholarship", "financial"}, 0.85},
		{IntentCourses, []string{"course", "program", "degree", "curriculum", "subjects", "syllabus"}, 0.8},
		{IntentFacilities, []string{"library", "hostel", "canteen", "lab", "sports", "facilities", "infrastructure"}, 0.8},
		{IntentPlacement, []string{"placement", "job", "career", "internship", "companies", "recruitment"}, 0.8},
		{IntentComplaint, []string{"problem", "issue", "complaint", "not working", "error", "help", "support"}, 0.75},
		{IntentAppreciation, []string{"thank", "thanks", "appreciate", "good", "excellent", "great", "awesome"}, 0.8},
		{IntentGoodbye, []string{"bye", "goodbye", "see you", "farewell", "exit", "quit"}, 0.9},
	}
}

// IntentCandidate is one scored intent.
type IntentCandidate struct {
	Intent          string   `json:"intent"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

// IntentResult ranks every matching intent; Primary is the top candidate
// or the unknown default.
type IntentResult struct {
	Primary IntentCandidate   `json:"primaryIntent"`
	All     []IntentCandidate `json:"allIntents"`
}

// IntentClassifier scores text against a fixed pattern table. Stateless
// and safe for concurrent use.
type IntentClassifier struct {
	patterns []IntentPattern
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{patterns: DefaultIntentPatterns()}
}

// Classify counts case-insensitive keyword containment per pattern. The
// confidence for a matched pattern is min(0.95, weight * matched/total).
func (c *IntentClassifier) Classify(text string) IntentResult {
	clean := strings.ToLower(strings.TrimSpace(text))

	var all []IntentCandidate
	for _, p := range c.patterns {
		var matched []string
		for _, kw := range p.Keywords {
			if strings.Contains(clean, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}
		confidence := math.Min(0.95, p.Weight*float64(len(matched))/float64(len(p.Keywords)))
		all = append(all, IntentCandidate{
			Intent:          p.Intent,
			Confidence:      round2(confidence),
			MatchedKeywords: matched,
		})
	}

	// Stable sort keeps declaration order on ties.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Confidence > all[j].Confidence
	})

	if len(all) == 0 {
		return IntentResult{
			Primary: IntentCandidate{Intent: IntentUnknown, Confidence: 0.3, MatchedKeywords: []string{}},
			All:     []IntentCandidate{},
		}
	}
	return IntentResult{Primary: all[0], All: all}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
