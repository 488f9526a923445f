package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"dbchat/config"
	"dbchat/models"

	_ "github.com/microsoft/go-mssqldb"
)

// SQLServerService owns the bounded connection pool. Each request borrows a
// connection per statement and releases it on every exit path; acquisition
// blocks when the pool is saturated.
type SQLServerService struct {
	db *sql.DB
}

func NewSQLServerService(cfg config.SQLServerConfig) (*SQLServerService, error) {
	if cfg.Server == "" || cfg.Database == "" {
		return nil, fmt.Errorf("SQL Server configuration is incomplete")
	}

	db, err := sql.Open("sqlserver", buildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQL Server connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		// Log a warning but do not fail service initialization.
		// This allows the application to start even if SQL Server is temporarily unavailable.
		log.Printf("Warning: failed to ping SQL Server during initialization: %v", err)
	}

	return &SQLServerService{db: db}, nil
}

// newWithDB is used by tests to inject a mocked database/sql handle.
func newWithDB(db *sql.DB) *SQLServerService {
	return &SQLServerService{db: db}
}

func buildConnectionString(cfg config.SQLServerConfig) string {
	connStr := fmt.Sprintf("server=%s;port=%s;database=%s",
		cfg.Server, cfg.Port, cfg.Database)

	if cfg.UserID != "" {
		connStr += fmt.Sprintf(";user id=%s;password=%s", cfg.UserID, cfg.Password)
	} else {
		connStr += ";trusted_connection=true"
	}

	if cfg.Encrypt {
		// Use TLS but skip CA verification so self-signed / internal certs work.
		// NOTE: For production, you should configure proper certificates instead.
		connStr += ";encrypt=true;TrustServerCertificate=true"
	} else {
		connStr += ";encrypt=false"
	}

	return connStr
}

func (s *SQLServerService) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ListTables returns the names of the readable base tables. Failures are
// wrapped and propagate to the caller; there is no local retry.
func (s *SQLServerService) ListTables(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("SQL Server connection is not initialized")
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	return tables, nil
}

// TableColumns looks up the column definitions of a single table. The table
// name is bound as a parameter, never interpolated into the statement.
func (s *SQLServerService) TableColumns(ctx context.Context, table string) ([]models.ColumnInfo, error) {
	if s.db == nil {
		return nil, fmt.Errorf("SQL Server connection is not initialized")
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_NAME = @p1 ORDER BY ORDINAL_POSITION",
		table)
	if err != nil {
		return nil, fmt.Errorf("failed to look up columns for %s: %w", table, err)
	}
	defer rows.Close()

	var columns []models.ColumnInfo
	for rows.Next() {
		var name, dataType, nullable string
		if err := rows.Scan(&name, &dataType, &nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		columns = append(columns, models.ColumnInfo{
			Name:     name,
			DataType: dataType,
			Nullable: nullable == "YES",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to look up columns for %s: %w", table, err)
	}

	return columns, nil
}

// ExecuteQuery runs exactly the approved query text, unmodified. The caller
// is responsible for having vetted it. Store errors are reported with their
// message and never retried.
func (s *SQLServerService) ExecuteQuery(ctx context.Context, query string) (*models.QueryResultSet, error) {
	if s.db == nil {
		return nil, fmt.Errorf("SQL Server connection is not initialized")
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}

	resultRows := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("query execution failed: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case nil:
				row[col] = nil
			case []byte:
				row[col] = string(v)
			default:
				row[col] = v
			}
		}
		resultRows = append(resultRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}

	return &models.QueryResultSet{Columns: columns, Rows: resultRows}, nil
}

func (s *SQLServerService) IsConnected() bool {
	if s.db == nil {
		return false
	}
	return s.db.Ping() == nil
}
