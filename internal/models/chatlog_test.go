package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListChatLogs(t *testing.T) {
	db := setupTestDB(t, &ChatLog{})

	for i := 0; i < 3; i++ {
		require.NoError(t, CreateChatLog(db, &ChatLog{
			UserID:    "u1",
			Persona:   "student",
			Message:   fmt.Sprintf("message %d", i),
			Response:  "answer",
			Intent:    "fees",
			Sentiment: "neutral",
			Source:    "faq",
		}))
	}
	require.NoError(t, CreateChatLog(db, &ChatLog{UserID: "u2", Message: "other user"}))

	logs, err := ListChatLogs(db, "u1", 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// newest first
	assert.Equal(t, "message 2", logs[0].Message)
	assert.Equal(t, "message 1", logs[1].Message)

	n, err := CountChatLogs(db)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestListChatLogsDefaultLimit(t *testing.T) {
	db := setupTestDB(t, &ChatLog{})

	require.NoError(t, CreateChatLog(db, &ChatLog{UserID: "u1", Message: "only one"}))

	logs, err := ListChatLogs(db, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
