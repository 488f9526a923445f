package handlers

import (
	"fmt"
	"strings"
	"time"

	"dbchat/models"
)

// Compose merges the model's natural-language answer with the query rows, if
// any. With no result set the intent's response passes through unchanged and
// queryResult is null rather than an empty array.
func Compose(intent models.ModelIntent, resultSet *models.QueryResultSet) models.ChatResponse {
	response := intent.Response
	var queryResult []map[string]any

	if resultSet != nil {
		base := intent.Response
		if intent.Explanation != "" {
			base = intent.Explanation
		}
		response = strings.TrimSpace(base + "\n\n" + renderResultSet(resultSet))
		queryResult = resultSet.Rows
	}

	return models.ChatResponse{
		Response:    response,
		QueryResult: queryResult,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func renderResultSet(resultSet *models.QueryResultSet) string {
	if len(resultSet.Rows) == 0 {
		return "The query returned no rows."
	}

	var b strings.Builder
	b.WriteString(strings.Join(resultSet.Columns, " | "))
	for _, row := range resultSet.Rows {
		b.WriteString("\n")
		values := make([]string, len(resultSet.Columns))
		for i, col := range resultSet.Columns {
			if v := row[col]; v != nil {
				values[i] = fmt.Sprintf("%v", v)
			} else {
				values[i] = "NULL"
			}
		}
		b.WriteString(strings.Join(values, " | "))
	}
	return b.String()
}
