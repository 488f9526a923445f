package ai

import (
	"encoding/json"
	"strings"

	"dbchat/models"
)

// Interpret parses the model's raw output into a structured intent. The
// output format is a soft contract (prompt-requested, not enforced by the
// service), so a parse failure is expected rather than exceptional: the raw
// text becomes the user-visible answer. Interpret never fails.
func Interpret(rawText string) models.ModelIntent {
	cleaned := stripCodeFences(rawText)

	var intent models.ModelIntent
	if err := json.Unmarshal([]byte(cleaned), &intent); err == nil && looksStructured(cleaned) {
		return intent
	}

	return models.ModelIntent{
		NeedsQuery: false,
		Response:   rawText,
	}
}

// looksStructured guards against json.Unmarshal accepting bare JSON scalars
// like "null", which would otherwise produce an empty intent from plain text.
func looksStructured(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "{")
}

func stripCodeFences(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
