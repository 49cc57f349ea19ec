package corpus

import (
	"testing"

	"github.com/campus-connect/CampusTalk/pkg/persona"
	"github.com/stretchr/testify/assert"
)

func TestStore_For(t *testing.T) {
	store := New(map[persona.Type][]Entry{
		persona.TypeStudent: {{Question: "q1", Answer: "a1"}},
	}, []Entry{{Question: "g1", Answer: "ga1"}})

	primary, fallback := store.For(persona.TypeStudent)
	assert.Len(t, primary, 1)
	assert.Len(t, fallback, 1)

	// Persona without a dedicated corpus still gets the generic set.
	primary, fallback = store.For(persona.TypeParent)
	assert.Empty(t, primary)
	assert.Len(t, fallback, 1)
}

func TestStore_CopiesInput(t *testing.T) {
	src := []Entry{{Question: "q1", Answer: "a1"}}
	store := New(map[persona.Type][]Entry{persona.TypeVisitor: src}, nil)

	src[0].Answer = "mutated"
	primary, _ := store.For(persona.TypeVisitor)
	assert.Equal(t, "a1", primary[0].Answer)
}

func TestStore_Size(t *testing.T) {
	store := New(map[persona.Type][]Entry{
		persona.TypeStudent: {{Question: "q1"}, {Question: "q2"}},
	}, []Entry{{Question: "g1"}})

	size := store.Size()
	assert.Equal(t, 2, size["student"])
	assert.Equal(t, 1, size["generic"])
}
