package handlers

import (
	"context"
	"log"
	"net/http"

	"dbchat/ai"
	"dbchat/cache"
	"dbchat/models"

	"github.com/gin-gonic/gin"
)

// @title           Database Chat Gateway API
// @version         1.0
// @description     Converts natural-language questions into vetted, read-only SQL queries, executes them against SQL Server and returns a composed answer.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

// SchemaStore is the read-only store surface the pipeline needs: schema
// context, parameterized column lookup and execution of vetted queries.
type SchemaStore interface {
	ListTables(ctx context.Context) ([]string, error)
	TableColumns(ctx context.Context, table string) ([]models.ColumnInfo, error)
	ExecuteQuery(ctx context.Context, query string) (*models.QueryResultSet, error)
	IsConnected() bool
}

// ModelClient sends a composed message list to the upstream language model.
type ModelClient interface {
	Complete(ctx context.Context, messages []ai.Message) (string, error)
}

// AuditStore records guard decisions and executed queries.
type AuditStore interface {
	StoreQueryRecord(record models.QueryRecord) error
	ListQueryRecords(limit int) ([]models.QueryRecord, error)
}

type Handlers struct {
	store        SchemaStore
	model        ModelClient
	audit        AuditStore
	cache        *cache.Cache
	historyLimit int
}

func New(store SchemaStore, model ModelClient, audit AuditStore, schemaCache *cache.Cache, historyLimit int) *Handlers {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &Handlers{
		store:        store,
		model:        model,
		audit:        audit,
		cache:        schemaCache,
		historyLimit: historyLimit,
	}
}

// listTables goes through the schema cache when one is configured; the table
// list only changes on migration, not per request.
func (h *Handlers) listTables(ctx context.Context) ([]string, error) {
	if h.cache != nil {
		if tables, found := h.cache.GetTables(); found {
			return tables, nil
		}
	}

	tables, err := h.store.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.SetTables(tables)
	}
	return tables, nil
}

func (h *Handlers) recordAudit(record models.QueryRecord) {
	if h.audit == nil {
		return
	}
	if err := h.audit.StoreQueryRecord(record); err != nil {
		log.Printf("Error storing query record: %v", err)
	}
}

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Check the health status of the gateway and its store connection
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":     "healthy",
		"sql_server": "not_connected",
	}

	if h.store != nil && h.store.IsConnected() {
		status["sql_server"] = "connected"
	}

	c.JSON(http.StatusOK, status)
}
