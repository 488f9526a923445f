package ai

import (
	"testing"

	"dbchat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessagesOrder(t *testing.T) {
	history := []models.ConversationTurn{
		{Role: "user", Content: "how many students are there?"},
		{Role: "assistant", Content: "There are 120 students."},
	}
	messages := BuildMessages([]string{"Students", "Orders"}, history, "and how many orders?")

	require.Len(t, messages, 4)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "how many students are there?", messages[1].Content)
	assert.Equal(t, "assistant", messages[2].Role)
	assert.Equal(t, "user", messages[3].Role)
	assert.Equal(t, "and how many orders?", messages[3].Content)
}

func TestBuildMessagesSystemPrompt(t *testing.T) {
	messages := BuildMessages([]string{"Students", "Orders"}, nil, "hi")
	sys := messages[0].Content

	assert.Contains(t, sys, "Students")
	assert.Contains(t, sys, "Orders")
	for _, field := range []string{"needsQuery", "query", "explanation", "response"} {
		assert.Contains(t, sys, field)
	}
	assert.Contains(t, sys, "SELECT")
}

func TestBuildMessagesPassesHistoryThrough(t *testing.T) {
	// Shape validation of history is the caller's concern; odd roles are
	// forwarded untouched.
	history := []models.ConversationTurn{{Role: "narrator", Content: "x"}}
	messages := BuildMessages(nil, history, "q")
	require.Len(t, messages, 3)
	assert.Equal(t, "narrator", messages[1].Role)
}
