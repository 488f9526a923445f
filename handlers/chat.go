package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"dbchat/ai"
	"dbchat/metrics"
	"dbchat/models"
	"dbchat/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler runs the full pipeline: schema context, prompt, model call,
// interpretation, guard, execution, composition
// @Summary      Answer a natural-language question about the database
// @Description  Sends the message plus conversation history to the model; if the model proposes a query it is vetted by the read-only guard and executed before the answer is composed
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      models.ChatRequest   true  "Chat request with message and optional conversation history"
// @Success      200      {object}  models.ChatResponse  "Composed answer"
// @Failure      400      {object}  map[string]string    "Invalid request or rejected query"
// @Failure      500      {object}  map[string]string    "Store failure"
// @Failure      502      {object}  map[string]string    "Model service failure"
// @Router       /api/chat [post]
func (h *Handlers) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}

	ctx := c.Request.Context()

	tables, err := h.listTables(ctx)
	if err != nil {
		log.Printf("Error listing tables: %v", err)
		metrics.ChatRequestsTotal.WithLabelValues("store_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	messages := ai.BuildMessages(tables, req.ConversationHistory, req.Message)

	modelStart := time.Now()
	rawText, err := h.model.Complete(ctx, messages)
	metrics.ModelCallDurationSeconds.Observe(time.Since(modelStart).Seconds())
	if err != nil {
		// The classified error is logged; the client gets a generic message so
		// upstream detail (and anything near the credential) stays out of responses.
		log.Printf("Error calling model service: %v", err)
		metrics.ChatRequestsTotal.WithLabelValues("model_error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach the model service"})
		return
	}

	intent := ai.Interpret(rawText)

	var resultSet *models.QueryResultSet
	if intent.NeedsQuery {
		record := models.QueryRecord{
			ID:        uuid.NewString(),
			Message:   req.Message,
			SQL:       intent.Query,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		verdict := validation.ValidateQuery(intent.Query)
		record.Allowed = verdict.Allowed
		record.Reason = verdict.Reason

		if !verdict.Allowed {
			log.Printf("Query rejected: %s (query: %q)", verdict.Reason, intent.Query)
			metrics.GuardDecisionsTotal.WithLabelValues("rejected").Inc()
			metrics.ChatRequestsTotal.WithLabelValues("rejected").Inc()
			h.recordAudit(record)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query rejected: " + verdict.Reason})
			return
		}
		metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()

		queryStart := time.Now()
		resultSet, err = h.store.ExecuteQuery(ctx, intent.Query)
		record.DurationMs = time.Since(queryStart).Milliseconds()
		metrics.QueryDurationSeconds.Observe(time.Since(queryStart).Seconds())
		if err != nil {
			log.Printf("Error executing query: %v", err)
			metrics.ChatRequestsTotal.WithLabelValues("query_error").Inc()
			h.recordAudit(record)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		record.RowCount = len(resultSet.Rows)
		h.recordAudit(record)
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, Compose(intent, resultSet))
}
