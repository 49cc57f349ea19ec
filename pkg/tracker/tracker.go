// Package tracker keeps the bounded per-user conversation context: a
// fixed-capacity turn log and a small profile per user identifier. The
// user arena itself is LRU-bounded so a long-running deployment cannot
// grow without limit.
package tracker

import (
	"strings"
	"sync"
	"time"

	"github.com/campus-connect/CampusTalk/pkg/bounded"
	"github.com/campus-connect/CampusTalk/pkg/persona"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TurnHistoryCap bounds each user's turn log.
const TurnHistoryCap = 10

// IntentFollowUp tags a turn as a follow-up to the previous one; the next
// response then gets the continuity prefix.
const IntentFollowUp = "follow-up"

// Turn is one tracked exchange.
type Turn struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Intent    string    `json:"intent"`
	Sentiment string    `json:"sentiment"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
}

// Profile accumulates per-user facts across sessions.
type Profile struct {
	Persona           persona.Type `json:"persona"`
	TotalInteractions int          `json:"totalInteractions"`
	LastVisit         time.Time    `json:"lastVisit"`
}

type userState struct {
	turns   *bounded.Ring[Turn]
	profile Profile
}

// Tracker is safe for concurrent use; all state is guarded by one mutex
// since every operation is a short in-memory update.
type Tracker struct {
	mu    sync.Mutex
	users *lru.Cache[string, *userState]
}

// New creates a tracker retaining at most maxUsers identifiers; the least
// recently active user is evicted first.
func New(maxUsers int) (*Tracker, error) {
	cache, err := lru.New[string, *userState](maxUsers)
	if err != nil {
		return nil, err
	}
	return &Tracker{users: cache}, nil
}

func (t *Tracker) state(userID string) *userState {
	if s, ok := t.users.Get(userID); ok {
		return s
	}
	s := &userState{turns: bounded.NewRing[Turn](TurnHistoryCap)}
	t.users.Add(userID, s)
	return s
}

// AddTurn appends a turn to the user's log, evicting the oldest entry once
// the log is full.
func (t *Tracker) AddTurn(userID string, turn Turn) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state(userID).turns.Append(turn)
}

// Context returns the last n turns for the user, oldest first.
func (t *Tracker) Context(userID string, n int) []Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.users.Get(userID); ok {
		return s.turns.Last(n)
	}
	return nil
}

// Profile returns the stored profile, or a zero-interaction default.
func (t *Tracker) Profile(userID string) Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.users.Get(userID); ok {
		return s.profile
	}
	return Profile{Persona: persona.TypeVisitor}
}

// UpdateProfile merges the persona in and increments the interaction
// counter. The counter never decreases; only ClearContext resets state,
// and even that keeps the profile.
func (t *Tracker) UpdateProfile(userID string, p persona.Type) Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.state(userID)
	if p != "" {
		s.profile.Persona = p
	}
	s.profile.TotalInteractions++
	s.profile.LastVisit = time.Now()
	return s.profile
}

// ClearContext drops the user's turn log but keeps the profile so a
// returning user is still recognized.
func (t *Tracker) ClearContext(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.users.Get(userID); ok {
		s.turns.Reset()
	}
}

// topicKeywords is scanned in declaration order; the first topic with a
// keyword hit wins.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"admission", []string{"admission", "apply", "process", "eligibility", "criteria"}},
	{"fees", []string{"fee", "cost", "price", "payment", "structure"}},
	{"courses", []string{"course", "program", "specialization", "subject", "curriculum"}},
	{"placement", []string{"placement", "job", "company", "recruitment", "career"}},
	{"hostel", []string{"hostel", "accommodation", "room", "stay", "mess"}},
	{"facilities", []string{"facility", "library", "lab", "sports", "wifi", "gym"}},
	{"contact", []string{"contact", "phone", "email", "address", "reach"}},
}

// TopicGeneral is returned when no topic keyword appears.
const TopicGeneral = "general"

// DetectTopic scans the user's last three messages for topic keywords.
func (t *Tracker) DetectTopic(userID string) string {
	t.mu.Lock()
	var turns []Turn
	if s, ok := t.users.Get(userID); ok {
		turns = s.turns.Last(3)
	}
	t.mu.Unlock()
	return DetectTopicIn(turns)
}

// DetectTopicIn is the pure form used when the caller already holds the
// turns (for example the current message not yet tracked).
func DetectTopicIn(turns []Turn) string {
	var words []string
	for _, turn := range turns {
		words = append(words, strings.Fields(strings.ToLower(turn.Message))...)
	}
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			for _, w := range words {
				if strings.Contains(w, kw) {
					return tk.topic
				}
			}
		}
	}
	return TopicGeneral
}

// AugmentResponse decorates a candidate response with conversational
// continuity: a follow-up turn gets an "earlier" prefix, and a returning
// user opening a fresh session gets a welcome-back prefix.
func (t *Tracker) AugmentResponse(userID, candidate string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.users.Get(userID)
	if !ok {
		return candidate
	}

	if last := s.turns.Last(1); len(last) > 0 {
		if last[0].Intent == IntentFollowUp {
			return "As I mentioned earlier, " + candidate
		}
		return candidate
	}
	if s.profile.TotalInteractions > 1 {
		return "Welcome back! " + candidate
	}
	return candidate
}

// Stats aggregates tracked state for the analytics overview.
type Stats struct {
	TotalUsers        int            `json:"totalUsers"`
	TotalInteractions int            `json:"totalInteractions"`
	AveragePerUser    float64        `json:"averageInteractionsPerUser"`
	TopicDistribution map[string]int `json:"topicDistribution"`
}

func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := Stats{TopicDistribution: map[string]int{}}
	for _, key := range t.users.Keys() {
		s, ok := t.users.Peek(key)
		if !ok {
			continue
		}
		stats.TotalUsers++
		for _, turn := range s.turns.Items() {
			stats.TotalInteractions++
			topic := turn.Topic
			if topic == "" {
				topic = TopicGeneral
			}
			stats.TopicDistribution[topic]++
		}
	}
	if stats.TotalUsers > 0 {
		stats.AveragePerUser = float64(stats.TotalInteractions) / float64(stats.TotalUsers)
	}
	return stats
}
