package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/elevroute/route"
	"github.com/katalvlaran/elevroute/search"
)

// maxRequestBytes caps the POST /v1/route body.
const maxRequestBytes = 1 << 20

// RouteRequest is the body of POST /v1/route. Nil fields take the server defaults.
type RouteRequest struct {
	Start         string   `json:"start"`
	End           string   `json:"end"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
	Objective     string   `json:"objective,omitempty"`
	Algorithm     string   `json:"algorithm,omitempty"`
	MaxDepth      *int     `json:"max_depth,omitempty"`
	BaselineGuard *bool    `json:"baseline_guard,omitempty"`
}

// RouteResponse is the success body of POST /v1/route.
type RouteResponse struct {
	Path      []string     `json:"path"`
	Length    float64      `json:"length"`
	Gain      float64      `json:"gain"`
	MaxLength float64      `json:"max_length"`
	Algorithm string       `json:"algorithm"`
	Objective string       `json:"objective"`
	Stats     search.Stats `json:"stats"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large", Code: "body_too_large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "invalid_json_body"})
		return
	}

	algo, obj, tol, opts, err := s.resolve(req)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	opts = append(opts, route.WithContext(ctx))

	res, err := route.FindRoute(s.graph, req.Start, req.End, tol, obj, algo, opts...)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RouteResponse{
		Path:      res.Path,
		Length:    res.Length,
		Gain:      res.Gain,
		MaxLength: res.MaxLength,
		Algorithm: algo.Name(),
		Objective: obj.String(),
		Stats:     res.Stats,
	})
}

// resolve merges req over the server defaults.
func (s *Server) resolve(req RouteRequest) (route.Algorithm, search.Objective, float64, []route.Option, error) {
	name := req.Algorithm
	if name == "" {
		name = s.defaults.Algorithm
	}
	algo, err := route.Lookup(name)
	if err != nil {
		return nil, search.None, 0, nil, err
	}

	objName := req.Objective
	if objName == "" {
		objName = s.defaults.Objective
	}
	obj, err := search.ParseObjective(objName)
	if err != nil {
		return nil, search.None, 0, nil, err
	}

	tol := s.defaults.Tolerance
	if req.Tolerance != nil {
		tol = *req.Tolerance
	}

	depth := s.defaults.MaxDepth
	if req.MaxDepth != nil {
		depth = *req.MaxDepth
	}
	opts := []route.Option{route.WithMaxDepth(depth)}

	guard := s.defaults.BaselineGuard
	if req.BaselineGuard != nil {
		guard = *req.BaselineGuard
	}
	if guard {
		opts = append(opts, route.WithBaselineGuard())
	}
	if s.recorder != nil {
		opts = append(opts, route.WithRecorder(s.recorder))
	}

	return algo, obj, tol, opts, nil
}

// statusOf maps the search error taxonomy onto HTTP.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, search.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, search.ErrBudgetInfeasible):
		return http.StatusUnprocessableEntity, "budget_infeasible"
	case errors.Is(err, search.ErrNoRoute):
		return http.StatusNotFound, "no_route"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "canceled"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("server: search failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("server: write response", "error", err)
	}
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		slog.Info("server: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", time.Since(start),
		)
	})
}

func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("server: panic recovered", "error", fmt.Sprint(rec), "path", r.URL.Path)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "internal_error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
