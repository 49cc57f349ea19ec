package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-connect/CampusTalk/pkg/persona"
)

func TestCreateAndListFAQEntries(t *testing.T) {
	db := setupTestDB(t, &FAQEntry{})

	require.NoError(t, CreateFAQEntry(db, &FAQEntry{
		Persona: "student", Question: "What are the fees?", Answer: "100k", Category: "fees",
	}))
	require.NoError(t, CreateFAQEntry(db, &FAQEntry{
		Question: "Where is the campus?", Answer: "Gurugram", Category: "contact",
	}))

	all, err := ListFAQEntries(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	students, err := ListFAQEntries(db, "student")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "What are the fees?", students[0].Question)

	n, err := CountFAQEntries(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestLoadCorpus(t *testing.T) {
	db := setupTestDB(t, &FAQEntry{})

	rows := []FAQEntry{
		{Persona: "student", Question: "What are the fees?", Answer: "100k", Category: "fees"},
		{Persona: "parent", Question: "Is the campus safe?", Answer: "Yes.", Category: "facilities"},
		{Question: "Where is the campus?", Answer: "Gurugram", Category: "contact"},
		{Persona: "alien", Question: "Unknown persona lands in generic", Answer: "x", Category: "misc"},
	}
	for i := range rows {
		require.NoError(t, CreateFAQEntry(db, &rows[i]))
	}

	store, err := LoadCorpus(db)
	require.NoError(t, err)

	primary, generic := store.For(persona.TypeStudent)
	assert.Len(t, primary, 1)
	assert.Len(t, generic, 2)

	sizes := store.Size()
	assert.Equal(t, 1, sizes["student"])
	assert.Equal(t, 1, sizes["parent"])
	assert.Equal(t, 2, sizes["generic"])
}
