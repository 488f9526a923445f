package validation

import (
	"regexp"
	"strings"

	"dbchat/models"
)

// forbiddenKeywords are rejected anywhere in the statement, not just at the
// front. A crafted query can hide a write behind a valid SELECT prefix, so a
// leading-keyword check alone is not enough.
var forbiddenKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE",
	"TRUNCATE", "MERGE", "EXEC", "EXECUTE", "GRANT", "REVOKE",
}

var (
	lineCommentRe  = regexp.MustCompile(`--[^\n]*`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	wordRe         = regexp.MustCompile(`[A-Za-z_]+`)
)

// ValidateQuery decides whether a model-proposed query may be executed. The
// policy is read-only and single-statement: the query must start with SELECT,
// must not contain a second statement after a semicolon, and must not contain
// any write-capable keyword anywhere, comments stripped. Pure text check, no
// store access.
func ValidateQuery(candidate string) models.QueryVerdict {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return models.QueryVerdict{Allowed: false, Reason: "empty query"}
	}

	// Trailing semicolons are harmless; anything after an interior one is a
	// second statement.
	body := strings.TrimRight(trimmed, "; \t\r\n")
	if idx := strings.Index(body, ";"); idx >= 0 && strings.TrimSpace(body[idx+1:]) != "" {
		return models.QueryVerdict{Allowed: false, Reason: "multiple statements are not allowed"}
	}

	fields := strings.Fields(body)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "SELECT") {
		return models.QueryVerdict{Allowed: false, Reason: "only SELECT queries are allowed"}
	}

	stripped := stripComments(body)
	for _, word := range wordRe.FindAllString(stripped, -1) {
		upper := strings.ToUpper(word)
		for _, kw := range forbiddenKeywords {
			if upper == kw {
				return models.QueryVerdict{Allowed: false, Reason: "forbidden keyword: " + kw}
			}
		}
	}

	return models.QueryVerdict{Allowed: true}
}

// IsSelectStatement is the lightweight pre-check used by the diagnostic
// /api/query endpoint. It only looks at the first token; full vetting of
// model-proposed queries goes through ValidateQuery.
func IsSelectStatement(query string) bool {
	fields := strings.Fields(query)
	return len(fields) > 0 && strings.EqualFold(fields[0], "SELECT")
}

func stripComments(s string) string {
	s = blockCommentRe.ReplaceAllString(s, " ")
	return lineCommentRe.ReplaceAllString(s, " ")
}
