package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/documentterm/docrank/internal/errors"
	"github.com/documentterm/docrank/internal/metrics"
	"github.com/documentterm/docrank/services"
)

// API holds dependencies for API handlers: the searcher and the optional
// metrics collectors.
type API struct {
	searcher services.Searcher
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(searcher services.Searcher, m *metrics.Metrics) *API {
	return &API{
		searcher: searcher,
		metrics:  m,
		logger:   slog.Default().With("component", "api"),
	}
}

// SetupRoutes defines all the API routes for the ranking service.
func SetupRoutes(router *gin.Engine, searcher services.Searcher, m *metrics.Metrics) {
	apiHandler := NewAPI(searcher, m)

	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware(m))

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/search", apiHandler.SearchHandler)

	if m != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SearchHandler ranks the corpus against the query in the "q" parameter.
// Response body: services.SearchResult
func (api *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		SendValidationError(c, "Query parameter 'q' is required")
		return
	}

	start := time.Now()
	result, err := api.searcher.Search(query)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyQuery) {
			api.observeSearch("empty_query", start, 0)
			SendValidationError(c, "Query contains no searchable terms")
			return
		}
		api.observeSearch("error", start, 0)
		api.logger.Error("search failed", "query", query, "error", err)
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Failed to rank documents: "+err.Error())
		return
	}

	api.observeSearch("ok", start, len(result.Groups))
	c.JSON(http.StatusOK, result)
}

func (api *API) observeSearch(outcome string, start time.Time, groups int) {
	if api.metrics == nil {
		return
	}
	api.metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	api.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if outcome == "ok" {
		api.metrics.SearchGroupCount.Observe(float64(groups))
	}
}
