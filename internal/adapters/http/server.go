package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/insist"
	"github.com/aretw0/insist/internal/config"
	"github.com/aretw0/insist/pkg/remover"
	"github.com/aretw0/insist/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 4 << 20

// ArgsRequest is the body of POST /args.
type ArgsRequest struct {
	Types  []string `json:"types" mapstructure:"types"`
	Values []any    `json:"values" mapstructure:"values"`
}

// ArgsResponse is returned by POST /args.
type ArgsResponse struct {
	Result []any  `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server exposes a Checker and a Remover over HTTP.
type Server struct {
	Checker *insist.Checker
	Remover *remover.Remover
	Logger  *slog.Logger
}

// NewHandler creates the HTTP handler. When gatherer is not nil its metrics
// are served on /metrics.
func NewHandler(server *Server, gatherer prometheus.Gatherer) http.Handler {
	if server.Logger == nil {
		server.Logger = slog.Default()
	}
	r := chi.NewRouter()

	r.Get("/health", server.Health)
	r.Post("/args", server.Args)
	r.Post("/strip", server.Strip)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": insist.Version})
}

// Args handles POST /args: it parses the type expressions, shifts the values
// and returns the result, or 422 with the diagnostic.
func (s *Server) Args(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ArgsResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	var req ArgsRequest
	if err := config.Decode(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ArgsResponse{Error: err.Error()})
		return
	}

	sig := make(types.Signature, len(req.Types))
	for i, expr := range req.Types {
		t, err := types.Parse(expr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ArgsResponse{Error: "type " + expr + ": " + err.Error()})
			return
		}
		sig[i] = t
	}
	values := req.Values
	if values == nil {
		values = []any{}
	}

	result, err := s.Checker.Args(values, sig...)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, insist.ErrInvalidDeclaration) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, ArgsResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ArgsResponse{Result: result})
}

// Strip handles POST /strip: the body is JavaScript source, the response is
// the source without assertion statements.
func (s *Server) Strip(w http.ResponseWriter, r *http.Request) {
	src, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	out, err := s.Remover.Remove(r.Context(), src)
	if err != nil {
		s.Logger.Error("strip failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	w.Write(out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
