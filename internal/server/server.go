// Package server exposes the calculator over HTTP. The service is stateless:
// every request drives its own Calculator, so there are no sessions.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/keycalc/internal/calculator"
	"github.com/agbru/keycalc/internal/logging"
)

const tracerName = "github.com/agbru/keycalc/internal/server"

// EvaluateRequest is the body of POST /api/evaluate. Exactly one of
// Expression and Keys should be set; Expression wins when both are.
type EvaluateRequest struct {
	Expression string   `json:"expression,omitempty"`
	Keys       []string `json:"keys,omitempty"`
}

// errorResponse is the body of 4xx and 5xx answers.
type errorResponse struct {
	Message string `json:"message"`
}

// Server is the HTTP front end.
type Server struct {
	addr            string
	httpServer      *http.Server
	metrics         *Metrics
	logger          logging.Logger
	security        SecurityConfig
	tracer          trace.Tracer
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithTracer sets the tracer used for evaluation spans. The default comes
// from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Server) { s.tracer = t }
}

// NewServer creates a server listening on addr (":8080" form).
func NewServer(addr string, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		metrics:         NewMetrics(),
		logger:          logging.NopLogger{},
		security:        DefaultSecurityConfig(),
		tracer:          otel.Tracer(tracerName),
		shutdownTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/evaluate", s.wrap(s.handleEvaluate))
	mux.HandleFunc("/health", s.wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	return mux
}

func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(h))
}

// metricsMiddleware counts requests and tracks the in-flight gauge.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.ObserveRequest(r.URL.Path, r.Method)
		next(w, r)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// handleEvaluate runs one expression through a fresh calculator.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.security.MaxBodyBytes)
	var req EvaluateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.logger.Debug("rejected evaluate request", logging.Err(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON body"})
		return
	}

	keys := req.Keys
	if req.Expression != "" {
		keys = calculator.SplitKeys(req.Expression)
	}
	if len(keys) > s.security.MaxExpressionLength {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: fmt.Sprintf("expression longer than %d keys", s.security.MaxExpressionLength),
		})
		return
	}

	_, span := s.tracer.Start(r.Context(), "calculator.evaluate")
	defer span.End()
	span.SetAttributes(attribute.Int("calc.keys", len(keys)))

	c := calculator.New()
	if err := c.AppendAll(keys); err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	outcome := c.Evaluate()
	label := "value"
	if outcome.Err {
		label = "error"
		span.RecordError(c.LastError())
	}
	span.SetAttributes(attribute.String("calc.outcome", label))
	s.metrics.ObserveEvaluation(label)
	s.logger.Debug("expression evaluated",
		logging.String("expression", c.Expression()),
		logging.String("outcome", label))

	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("metrics endpoint rejected method", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
