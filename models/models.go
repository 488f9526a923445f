package models

// ConversationTurn is a single prior message in the conversation. The caller
// supplies the full ordered history on every request; nothing is persisted
// between requests.
type ConversationTurn struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string             `json:"message" binding:"required"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
}

// ModelIntent is the structured decision parsed from the model's raw output.
// It originates from a third-party service and must never be treated as safe
// SQL: Query has to pass the guard before execution.
type ModelIntent struct {
	NeedsQuery  bool   `json:"needsQuery"`
	Query       string `json:"query,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Response    string `json:"response"`
}

// QueryVerdict is the guard's decision on a candidate query.
type QueryVerdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// QueryResultSet holds the rows of an executed query. Columns preserves the
// select-list order; Rows maps column name to scalar value. An empty Rows
// slice means the query ran and matched nothing, which is distinct from no
// query having run at all (nil).
type QueryResultSet struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// ChatResponse is the per-request reply. QueryResult is null when no query
// was executed; an executed query that matched nothing yields an empty array
// instead, so the two cases stay distinguishable on the wire.
type ChatResponse struct {
	Response    string           `json:"response"`
	QueryResult []map[string]any `json:"queryResult"`
	Timestamp   string           `json:"timestamp"`
}

type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// ColumnInfo describes one column of a table, from the information schema.
type ColumnInfo struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Nullable bool   `json:"nullable"`
}

// QueryRecord is an audit entry for one guard decision and (when allowed)
// execution. It records what ran, not the conversation itself.
type QueryRecord struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	SQL        string `json:"sql,omitempty"`
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	RowCount   int    `json:"row_count"`
	DurationMs int64  `json:"duration_ms"`
	Timestamp  string `json:"timestamp"`
}
