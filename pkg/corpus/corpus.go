// Package corpus holds the persona-scoped FAQ sets and the fuzzy retrieval
// over them. A Store is built once from loaded entries and never mutated.
package corpus

import (
	"github.com/campus-connect/CampusTalk/pkg/persona"
)

// Entry is one question/answer pair inside a corpus.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// Store maps each persona to its corpus and keeps one generic fallback
// corpus shared by all personas. Read-only after New.
type Store struct {
	byPersona map[persona.Type][]Entry
	generic   []Entry
}

// New copies the supplied entries so later mutation by the loader cannot
// leak into the store.
func New(byPersona map[persona.Type][]Entry, generic []Entry) *Store {
	m := make(map[persona.Type][]Entry, len(byPersona))
	for t, entries := range byPersona {
		m[t] = append([]Entry(nil), entries...)
	}
	return &Store{
		byPersona: m,
		generic:   append([]Entry(nil), generic...),
	}
}

// For returns the persona's own corpus and the generic fallback corpus.
// A persona without a dedicated corpus gets an empty primary.
func (s *Store) For(t persona.Type) (primary, fallback []Entry) {
	return s.byPersona[t], s.generic
}

// Size reports the number of entries per persona plus the generic set,
// used by the status endpoint.
func (s *Store) Size() map[string]int {
	out := make(map[string]int, len(s.byPersona)+1)
	for t, entries := range s.byPersona {
		out[string(t)] = len(entries)
	}
	out["generic"] = len(s.generic)
	return out
}
