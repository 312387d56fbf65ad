// SPDX-License-Identifier: MIT

// Package server is the HTTP adapter of lvtour.
//
// Endpoints:
//
//	POST /v1/roundtrip - compute the round-trip cost of a network
//	GET  /v1/health    - liveness probe
//	GET  /metrics      - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/roundtrip \
//	  -H "Content-Type: application/json" \
//	  -d '{"pointCount": "3", "routeCount": "4", "routeDetails": "1,2,4\n2,1,4\n1,3,9\n3,1,9"}'
//	{"totalCost":26}
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvtour/apsp"
	"github.com/katalvlaran/lvtour/config"
	"github.com/katalvlaran/lvtour/ctxlog"
	"github.com/katalvlaran/lvtour/network"
	"github.com/katalvlaran/lvtour/roundtrip"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Server wires the roundtrip pipeline to gin.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	validate *validator.Validate
	engine   *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestContext())
	s.RegisterRoutes(s.engine.Group("/v1"))
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// RegisterRoutes registers the /v1 endpoints on rg.
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/roundtrip", s.HandleSolve)
	rg.GET("/health", s.HandleHealth)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// HTTPServer returns an *http.Server configured from cfg.Server.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
	}
}

// requestContext assigns a request id, caps the request body at
// cfg.Limits.MaxBodyBytes and stores a request-scoped logger in the request
// context.
func (s *Server) requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Limits.MaxBodyBytes)
		}

		logger := s.logger.With("request_id", id, "path", c.FullPath())
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))
		c.Next()
	}
}

// HandleHealth handles GET /v1/health.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// HandleSolve handles POST /v1/roundtrip.
//
// Response:
//
//	200 OK: {"totalCost": n}
//	400 Bad Request: input kinds (counts, empty or malformed routes, bad body)
//	413 Request Entity Too Large: body above limits.max_body_bytes
//	422 Unprocessable Entity: UnreachablePoint
//	500 Internal Server Error: ProcessingError
//	503 Service Unavailable: calculation aborted (client went away, shutdown)
func (s *Server) HandleSolve(c *gin.Context) {
	ctx := c.Request.Context()
	logger := ctxlog.FromContext(ctx).With("handler", "HandleSolve")
	start := time.Now()

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Request body too large", "limit", tooLarge.Limit)
			s.fail(c, start, http.StatusRequestEntityTooLarge, roundtrip.Failure{
				ErrorKind: roundtrip.MalformedEdgeError,
				Message:   fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		logger.Warn("Invalid request body", "error", err)
		s.fail(c, start, http.StatusBadRequest, roundtrip.Failure{
			ErrorKind: roundtrip.ProcessingError,
			Message:   "invalid request body: " + err.Error(),
		})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		logger.Warn("Request validation failed", "error", err)
		s.fail(c, start, http.StatusBadRequest, roundtrip.Failure{
			ErrorKind: roundtrip.MalformedEdgeError,
			Message:   "edge lines or route details exceed size limits",
		})
		return
	}

	lines := append(append([]string(nil), req.EdgeLines...), network.SplitLines(req.RouteDetails)...)
	problem, err := roundtrip.Parse(roundtrip.Input{
		PointCount: string(req.PointCount),
		RouteCount: string(req.RouteCount),
		EdgeLines:  lines,
	})
	if err != nil {
		f := roundtrip.NewFailure(err)
		logger.Info("Rejected request", "kind", f.ErrorKind, "message", f.Message)
		s.fail(c, start, StatusFor(f.ErrorKind, err), f)
		return
	}
	solvePoints.Observe(float64(problem.Points))

	res, err := roundtrip.Solve(ctx, problem, s.solveOptions()...)
	if err != nil {
		f := roundtrip.NewFailure(err)
		logger.Info("Calculation failed", "kind", f.ErrorKind, "message", f.Message)
		s.fail(c, start, StatusFor(f.ErrorKind, err), f)
		return
	}

	solveTotal.WithLabelValues(resultOK).Inc()
	solveDuration.Observe(time.Since(start).Seconds())
	logger.Info("Round trip computed", "points", problem.Points, "total", res.TotalCost)
	c.JSON(http.StatusOK, res)
}

func (s *Server) solveOptions() []roundtrip.Option {
	opts := []roundtrip.Option{
		roundtrip.WithOrigin(s.cfg.Solver.Origin),
		roundtrip.WithLimits(s.cfg.Limits.MaxPoints, s.cfg.Limits.MaxLines),
	}
	if s.cfg.Solver.StrictRouteCount {
		opts = append(opts, roundtrip.WithStrictRouteCount())
	}

	return opts
}

func (s *Server) fail(c *gin.Context, start time.Time, status int, f roundtrip.Failure) {
	solveTotal.WithLabelValues(f.ErrorKind.String()).Inc()
	solveDuration.Observe(time.Since(start).Seconds())
	c.JSON(status, f)
}

// StatusFor maps a failure kind to an HTTP status. err refines
// ProcessingError: an aborted calculation is 503, not 500.
func StatusFor(kind roundtrip.Kind, err error) int {
	switch kind {
	case roundtrip.InvalidPointCount, roundtrip.InvalidRouteCount,
		roundtrip.EmptyRouteDetails, roundtrip.MalformedEdgeError:
		return http.StatusBadRequest
	case roundtrip.UnreachablePoint:
		return http.StatusUnprocessableEntity
	}
	if isAbort(err) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func isAbort(err error) bool {
	return errors.Is(err, apsp.ErrAborted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
