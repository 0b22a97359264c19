package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Peter6188/tb-visualization-dashboard-V2/geo"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

// AtlasContext is the read-only state every computation runs against. It
// is built once at startup and passed explicitly instead of living in
// package globals, so handlers and tests see all of their inputs.
type AtlasContext struct {
	Dataset    *store.Dataset
	Engine     store.Filterer
	Boundaries *geo.Boundaries
}

// Server serves the dashboard page and the figure API.
type Server struct {
	router    *gin.Engine
	server    *http.Server
	atlas     *AtlasContext
	traceMode bool
}

// NewServer wires routes over an atlas context. traceMode enables request
// dumping.
func NewServer(atlas *AtlasContext, traceMode bool) *Server {
	s := &Server{
		atlas:     atlas,
		traceMode: traceMode,
	}

	if !traceMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestID)
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)
	r.GET("/", s.dashboardPage)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/meta", s.meta)
		v1.GET("/summary", s.summary)
		v1.GET("/table", s.dataTable)
		v1.GET("/table.xlsx", s.dataTableXLSX)

		charts := v1.Group("/charts")
		{
			charts.GET("/choropleth", s.choropleth)
			charts.GET("/trend", s.trend)
			charts.GET("/trend.png", s.trendPNG)
			charts.GET("/regions", s.regionDistribution)
			charts.GET("/region-bars", s.regionBars)
			charts.GET("/box", s.regionBox)
			charts.GET("/comparison", s.comparison)
			charts.GET("/yoy", s.yearOverYear)
		}
	}

	s.router = r
	return s
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
