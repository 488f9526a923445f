package handlers

import (
	"log"
	"net/http"

	"dbchat/models"
	"dbchat/validation"

	"github.com/gin-gonic/gin"
)

// QueryHandler executes a SQL query directly, for diagnostic and testing use.
// The pre-check here is deliberately the lightweight first-token test, not the
// full guard: this endpoint takes operator-supplied SQL, not model output.
// @Summary      Execute a SELECT query directly
// @Description  Diagnostic endpoint; runs the given query if its first token is SELECT and returns the rows
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest  true  "Query to execute"
// @Success      200      {array}   map[string]interface{}  "Row mappings"
// @Failure      400      {object}  map[string]string       "Invalid request or non-SELECT query"
// @Failure      500      {object}  map[string]string       "Query execution error"
// @Router       /api/query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !validation.IsSelectStatement(req.Query) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only SELECT queries are allowed"})
		return
	}

	result, err := h.store.ExecuteQuery(c.Request.Context(), req.Query)
	if err != nil {
		log.Printf("Error executing query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result.Rows)
}

// TablesHandler lists the readable base tables
// @Summary      List tables
// @Description  Get the names of the base tables visible to the gateway
// @Tags         Schema
// @Produce      json
// @Success      200  {object}  map[string][]string  "Table names"
// @Failure      500  {object}  map[string]string    "Store failure"
// @Router       /api/tables [get]
func (h *Handlers) TablesHandler(c *gin.Context) {
	tables, err := h.listTables(c.Request.Context())
	if err != nil {
		log.Printf("Error listing tables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

// SchemaHandler returns the columns of one table
// @Summary      Describe a table
// @Description  Get the column names and types of a single table; the lookup is parameterized
// @Tags         Schema
// @Produce      json
// @Param        table  path      string  true  "Table name"
// @Success      200    {object}  map[string]interface{}  "Column definitions"
// @Failure      404    {object}  map[string]string        "Unknown table"
// @Failure      500    {object}  map[string]string        "Store failure"
// @Router       /api/schema/{table} [get]
func (h *Handlers) SchemaHandler(c *gin.Context) {
	table := c.Param("table")

	columns, err := h.store.TableColumns(c.Request.Context(), table)
	if err != nil {
		log.Printf("Error looking up schema for %s: %v", table, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(columns) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found: " + table})
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": table, "columns": columns})
}

// HistoryHandler lists recent query-audit records
// @Summary      Query audit history
// @Description  Get the most recent guard decisions and executed queries
// @Tags         Audit
// @Produce      json
// @Success      200  {object}  map[string][]models.QueryRecord  "Audit records"
// @Failure      500  {object}  map[string]string                "Audit store failure"
// @Router       /api/history [get]
func (h *Handlers) HistoryHandler(c *gin.Context) {
	if h.audit == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Audit store is not configured"})
		return
	}

	records, err := h.audit.ListQueryRecords(h.historyLimit)
	if err != nil {
		log.Printf("Error listing query records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}
