package handlers

import (
	"testing"
	"time"

	"dbchat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeWithoutResult(t *testing.T) {
	intent := models.ModelIntent{Response: "I don't know"}

	resp := Compose(intent, nil)
	assert.Equal(t, "I don't know", resp.Response)
	assert.Nil(t, resp.QueryResult)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	require.NoError(t, err)
}

func TestComposeWithResult(t *testing.T) {
	intent := models.ModelIntent{
		NeedsQuery:  true,
		Query:       "SELECT COUNT(*) FROM Orders",
		Explanation: "counts all orders",
		Response:    "here",
	}
	resultSet := &models.QueryResultSet{
		Columns: []string{"total"},
		Rows:    []map[string]any{{"total": int64(5)}},
	}

	resp := Compose(intent, resultSet)
	// Explanation wins over response when present, and the rendered rows follow.
	assert.Contains(t, resp.Response, "counts all orders")
	assert.Contains(t, resp.Response, "5")
	assert.Equal(t, resultSet.Rows, resp.QueryResult)
}

func TestComposePrefersResponseWhenNoExplanation(t *testing.T) {
	intent := models.ModelIntent{NeedsQuery: true, Response: "your orders"}
	resultSet := &models.QueryResultSet{
		Columns: []string{"id", "status"},
		Rows: []map[string]any{
			{"id": int64(1), "status": "shipped"},
			{"id": int64(2), "status": nil},
		},
	}

	resp := Compose(intent, resultSet)
	assert.Contains(t, resp.Response, "your orders")
	assert.Contains(t, resp.Response, "id | status")
	assert.Contains(t, resp.Response, "1 | shipped")
	assert.Contains(t, resp.Response, "2 | NULL")
}

func TestComposeEmptyResultSet(t *testing.T) {
	intent := models.ModelIntent{NeedsQuery: true, Response: "nothing found"}
	resultSet := &models.QueryResultSet{Columns: []string{"id"}, Rows: []map[string]any{}}

	resp := Compose(intent, resultSet)
	assert.Contains(t, resp.Response, "no rows")
	// Empty but present: the query ran.
	assert.NotNil(t, resp.QueryResult)
	assert.Len(t, resp.QueryResult, 0)
}
