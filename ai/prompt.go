package ai

import (
	"fmt"
	"strings"

	"dbchat/models"
)

// BuildMessages assembles the model-facing message list: the instruction
// block, the full prior history in order, then the new user turn. Pure
// function; malformed history entries are passed through unchanged.
func BuildMessages(tables []string, history []models.ConversationTurn, message string) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: buildSystemPrompt(tables)})
	for _, turn := range history {
		messages = append(messages, Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, Message{Role: "user", Content: message})
	return messages
}

func buildSystemPrompt(tables []string) string {
	var b strings.Builder
	b.WriteString("You are a database assistant. You answer questions about the data in a SQL Server database.\n\n")
	b.WriteString("Available tables:\n")
	for _, table := range tables {
		b.WriteString(fmt.Sprintf("- %s\n", table))
	}
	b.WriteString("\nAlways respond with a single JSON object with exactly these fields:\n")
	b.WriteString("- \"needsQuery\" (boolean): whether answering requires running a query\n")
	b.WriteString("- \"query\" (string): the SQL query, only when needsQuery is true\n")
	b.WriteString("- \"explanation\" (string): a short explanation of what the query does\n")
	b.WriteString("- \"response\" (string): the natural-language answer for the user\n\n")
	b.WriteString("Hard constraint: you may only ever propose read-only SELECT queries. ")
	b.WriteString("Never propose INSERT, UPDATE, DELETE, DROP, ALTER, CREATE or any other statement that modifies the database.\n")
	b.WriteString("Return ONLY the JSON object, without markdown code blocks or additional text.")
	return b.String()
}
