// Package server exposes the analysis pipeline over HTTP with gin.
//
// Routes:
//
//	POST /v1/analyze?method=prim   body: {"name": "...", "records": [...]}
//	GET  /healthz
//	GET  /metrics                  when a metrics registry is configured
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
	"github.com/katalvlaran/simforest/internal/config"
	"github.com/katalvlaran/simforest/internal/logger"
	"github.com/katalvlaran/simforest/internal/metrics"
	"github.com/katalvlaran/simforest/prim_kruskal"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// Server holds one Analyzer per strategy so a request can pick its method.
type Server struct {
	cfg       config.ServerConfig
	method    prim_kruskal.Method
	analyzers map[prim_kruskal.Method]*analysis.Analyzer
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	Name    string        `json:"name"`
	Records []core.Record `json:"records"`
}

// New builds a Server whose default strategy is method. m may be nil.
func New(cfg config.ServerConfig, method prim_kruskal.Method, m *metrics.Metrics) (*Server, error) {
	if _, err := prim_kruskal.New(prim_kruskal.WithMethod(method)); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:       cfg,
		method:    method,
		analyzers: make(map[prim_kruskal.Method]*analysis.Analyzer, 2),
		metrics:   m,
		log:       logger.WithComponent("server"),
	}
	for _, meth := range []prim_kruskal.Method{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		a, err := analysis.New(
			analysis.WithMethod(meth),
			analysis.WithMetrics(m),
			analysis.WithLogger(logger.WithComponent("analysis")),
		)
		if err != nil {
			return nil, err
		}
		s.analyzers[meth] = a
	}

	return s, nil
}

// Router returns the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())

	r.GET("/healthz", s.Health)
	r.POST("/v1/analyze", s.Analyze)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr, "method", s.method)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Duration)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return <-errCh
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Analyze runs the pipeline over the posted records and returns the report.
func (s *Server) Analyze(c *gin.Context) {
	method := s.method
	if q := c.Query("method"); q != "" {
		m, err := prim_kruskal.ParseMethod(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method = m
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if s.cfg.MaxRecords > 0 && len(req.Records) > s.cfg.MaxRecords {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("too many records: %d > %d", len(req.Records), s.cfg.MaxRecords),
		})
		return
	}
	if req.Name == "" {
		req.Name = "request"
	}

	ctx := c.Request.Context()
	rep, err := s.analyzers[method].Analyze(ctx, req.Name, req.Records)
	if err != nil {
		var perr *core.ParseError
		switch {
		case errors.As(err, &perr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  err.Error(),
				"input":  perr.Input,
				"reason": perr.Reason,
			})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			logger.FromContext(ctx).Error("analyze failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, rep)
}

// requestID reuses an inbound X-Request-ID or mints one, and stores it on the
// request context where logger.FromContext and the analyzer pick it up.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			ctx, id = logger.WithRunID(ctx)
		} else {
			ctx = logger.ContextWithRunID(ctx, id)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
