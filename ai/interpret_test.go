package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretStructuredOutput(t *testing.T) {
	raw := `{"needsQuery":true,"query":"SELECT COUNT(*) FROM Orders","explanation":"counts orders","response":"here"}`
	intent := Interpret(raw)
	assert.True(t, intent.NeedsQuery)
	assert.Equal(t, "SELECT COUNT(*) FROM Orders", intent.Query)
	assert.Equal(t, "counts orders", intent.Explanation)
	assert.Equal(t, "here", intent.Response)
}

func TestInterpretFencedJSON(t *testing.T) {
	raw := "```json\n{\"needsQuery\":false,\"response\":\"no query needed\"}\n```"
	intent := Interpret(raw)
	assert.False(t, intent.NeedsQuery)
	assert.Equal(t, "no query needed", intent.Response)
}

func TestInterpretPlainTextFallback(t *testing.T) {
	intent := Interpret("I don't know")
	assert.False(t, intent.NeedsQuery)
	assert.Empty(t, intent.Query)
	assert.Empty(t, intent.Explanation)
	assert.Equal(t, "I don't know", intent.Response)
}

func TestInterpretNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		`{"needsQuery":true,"query":`, // truncated JSON
		`{"unrelated":"fields"}`,
		`null`,
		`42`,
		`"just a JSON string"`,
		`[1,2,3]`,
		"```\npartial fence",
	}
	for _, raw := range inputs {
		intent := Interpret(raw)
		// On anything that is not a structured object the raw text comes back
		// as the user-visible response.
		if raw != `{"unrelated":"fields"}` {
			assert.Equal(t, raw, intent.Response, "input %q", raw)
			assert.False(t, intent.NeedsQuery)
		}
	}
}

func TestInterpretObjectMissingFields(t *testing.T) {
	// A structured object missing fields is still taken verbatim; the guard
	// downstream rejects an empty query if one is requested.
	intent := Interpret(`{"needsQuery":true}`)
	assert.True(t, intent.NeedsQuery)
	assert.Empty(t, intent.Query)
}
