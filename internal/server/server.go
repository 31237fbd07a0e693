// Package server exposes the solve engine over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/solvelab/eqsolve/internal/solver"
	"github.com/solvelab/eqsolve/solve"
)

// Server wraps an engine with the HTTP boundary.
type Server struct {
	engine *solve.Engine
	logger *zap.Logger
}

// New creates a Server. The logger may be nil.
func New(engine *solve.Engine, logger *zap.Logger) *Server {
	return &Server{engine: engine, logger: logger}
}

// SolveRequest is the body of a POST /solve call.
type SolveRequest struct {
	Equation  string `json:"equation"`
	TimeoutMs int    `json:"timeoutMs,omitempty"`
}

// SolveResponse is the success body of a POST /solve call.
type SolveResponse struct {
	Solutions []string     `json:"solutions"`
	Tree      *solver.Tree `json:"tree"`
	Depth     int          `json:"depth"`
	TimedOut  bool         `json:"timedOut"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.handleSolve)
	return mux
}

// ListenAndServe runs the server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	if s.logger != nil {
		s.logger.Info("Listening", zap.String("addr", addr))
	}
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Equation) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing equation"})
		return
	}

	start := time.Now()
	result, err := s.engine.SolveText(req.Equation, time.Duration(req.TimeoutMs)*time.Millisecond)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Solve failed",
				zap.String("equation", req.Equation),
				zap.Error(err))
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if s.logger != nil {
		s.logger.Info("Solved",
			zap.String("equation", req.Equation),
			zap.Int("solutions", len(result.Solutions)),
			zap.Bool("timedOut", result.TimedOut),
			zap.Duration("elapsed", time.Since(start)))
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Solutions: result.SolutionStrings(),
		Tree:      result.Tree,
		Depth:     result.Depth,
		TimedOut:  result.TimedOut,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
