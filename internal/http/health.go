package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database"
)

// TableCounter is the part of a gateway the health check needs.
type TableCounter interface {
	Count(ctx context.Context) (int64, error)
}

// CatalogHealth reports the database connection and the size of each table.
type CatalogHealth struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Catalog map[string]int64  `json:"catalog"`
}

type HealthController struct {
	db      *database.Database
	tables  map[string]TableCounter
	version string
}

// NewHealthController checks db and counts every table, keyed by the name
// reported in the response.
func NewHealthController(db *database.Database, version string, tables map[string]TableCounter) *HealthController {
	return &HealthController{db: db, tables: tables, version: version}
}

func catalogTables(cfg RouterConfig) map[string]TableCounter {
	tables := make(map[string]TableCounter, 3)
	if cfg.Books != nil {
		tables["books"] = cfg.Books
	}
	if cfg.Authors != nil {
		tables["authors"] = cfg.Authors
	}
	if cfg.Publishers != nil {
		tables["publishers"] = cfg.Publishers
	}
	return tables
}

// Status answers 503 when the database or any table count fails.
func (h *HealthController) Status(c *gin.Context) {
	ctx := c.Request.Context()
	report := CatalogHealth{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  make(map[string]string, len(h.tables)+1),
		Catalog: make(map[string]int64, len(h.tables)),
	}

	switch {
	case h.db == nil:
		report.Checks["database"] = "not configured"
	case h.db.Ping(ctx) != nil:
		report.Checks["database"] = "unreachable"
		report.Status = "unhealthy"
	default:
		report.Checks["database"] = "ok"
	}

	for name, table := range h.tables {
		n, err := table.Count(ctx)
		if err != nil {
			report.Checks[name] = "count failed: " + err.Error()
			report.Status = "unhealthy"
			continue
		}
		report.Catalog[name] = n
		report.Checks[name] = strconv.FormatInt(n, 10) + " rows"
	}

	code := http.StatusOK
	if report.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.IndentedJSON(code, report)
}
