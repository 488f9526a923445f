package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dbchat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHandlerExecutesSelect(t *testing.T) {
	store := &fakeStore{
		result: &models.QueryResultSet{
			Columns: []string{"id"},
			Rows:    []map[string]any{{"id": int64(1)}, {"id": int64(2)}},
		},
	}
	h := New(store, &fakeModel{}, nil, nil, 0)
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(`{"query":"SELECT id FROM Users"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func TestQueryHandlerRejectsNonSelect(t *testing.T) {
	store := &fakeStore{}
	h := New(store, &fakeModel{}, nil, nil, 0)
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(`{"query":"DELETE FROM Users"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, store.executed)
}

func TestTablesHandler(t *testing.T) {
	h := New(&fakeStore{tables: []string{"Orders", "Users"}}, &fakeModel{}, nil, nil, 0)
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Orders")
}

func TestSchemaHandlerUnknownTable(t *testing.T) {
	h := New(&fakeStore{}, &fakeModel{}, nil, nil, 0)
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/schema/Nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHistoryHandler(t *testing.T) {
	audit := &fakeAudit{records: []models.QueryRecord{{ID: "abc", Message: "q"}}}
	h := New(&fakeStore{}, &fakeModel{}, audit, nil, 0)
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "abc")
}
