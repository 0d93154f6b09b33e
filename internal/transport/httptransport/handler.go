package httptransport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/transport/solvedto"
)

const RequestIDHeader = "X-Request-ID"

type Handler struct {
	svc     app.SolveService
	logger  *slog.Logger
	maxBody int64
}

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithMaxBodyBytes caps request bodies; larger ones get 413.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

func NewHandler(svc app.SolveService, opts ...Option) *Handler {
	h := &Handler{
		svc:     svc,
		logger:  slog.New(slog.DiscardHandler),
		maxBody: 1 << 20,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("POST /solve/{family}/{variant}", h.Solve)
	mux.HandleFunc("POST /solve/{family}", h.Solve)
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, solvedto.Alive())
}

func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	family, variant := r.PathValue("family"), r.PathValue("variant")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, solvedto.ErrorResponse{Error: "body too large", Details: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, solvedto.ErrorResponse{Error: "invalid body", Details: err.Error()})
		return
	}

	res, err := h.svc.Solve(r.Context(), family, variant, body)
	if err != nil {
		status, payload := solvedto.FromError(err)
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "solve failed",
				slog.String("family", family),
				slog.String("variant", variant),
				slog.String("request_id", w.Header().Get(RequestIDHeader)),
				slog.String("error", err.Error()),
			)
		}
		writeJSON(w, status, payload)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Middleware assigns a request id, answers CORS preflights and logs each
// request once it completes.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		hdr := w.Header()
		hdr.Set("Access-Control-Allow-Origin", "*")
		hdr.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		hdr.Set("Access-Control-Allow-Headers", "*")
		hdr.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.logger.InfoContext(r.Context(), "http_request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
