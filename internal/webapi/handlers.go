package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/spboyer/mixlab/internal/artifacts"
	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/prediction"
	"github.com/spboyer/mixlab/internal/reporting"
)

// Version is set at build time or defaults to dev.
var Version = "0.1.0-dev"

const maxBodyBytes = 64 << 10

// Backend is the prediction service behind the API.
// *prediction.Service implements it.
type Backend interface {
	Ready() error
	Ratio(in mix.MixInputs) mix.RatioEvaluation
	Predict(in mix.MixInputs) (*prediction.Result, error)
	Features() []string
}

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	backend Backend
	form    mix.FormSpec
	store   PredictionStore
	newID   func() string
	now     func() time.Time
}

// NewHandlers creates Handlers serving the given form. A nil store keeps
// DefaultHistorySize predictions in memory.
func NewHandlers(backend Backend, form mix.FormSpec, store PredictionStore) *Handlers {
	if store == nil {
		store = NewMemoryStore(DefaultHistorySize)
	}
	return &Handlers{
		backend: backend,
		form:    form,
		store:   store,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// HandleHealth reports the server version and whether a model is loaded.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:      "ok",
		Version:     Version,
		ModelLoaded: true,
	}
	if err := h.backend.Ready(); err != nil {
		resp.Status = "degraded"
		resp.ModelLoaded = false
		resp.ModelError = err.Error()
		resp.ErrorKind = errorKind(err)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleForm returns the form definition for the page.
func (h *Handlers) HandleForm(w http.ResponseWriter, _ *http.Request) {
	notes, err := reporting.InterpretationHTML()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	features := h.backend.Features()
	if features == nil {
		features = []string{}
	}
	writeJSON(w, http.StatusOK, FormResponse{
		FormSpec:           h.form,
		Features:           features,
		InterpretationHTML: notes,
	})
}

// HandleRatio evaluates the water/binder ratio. It works without a model.
func (h *Handlers) HandleRatio(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.backend.Ratio(in))
}

// HandlePredict runs one prediction.
func (h *Handlers) HandlePredict(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInputs(w, r)
	if !ok {
		return
	}

	id := h.newID()
	res, err := h.backend.Predict(in)
	if err != nil {
		slog.Warn("prediction failed", "requestId", id, "error", err)
		writePredictError(w, err)
		return
	}

	resp := PredictResponse{
		RequestID:   id,
		Strength:    res.Strength,
		Tier:        res.Tier,
		TierLabel:   res.Tier.Label(),
		TierColor:   res.Tier.Color(),
		Explanation: res.Explanation,
		Ratio:       res.Ratio,
	}
	if resp.Explanation == nil {
		resp.Explanation = []reporting.FeatureImportance{}
	}
	h.store.Add(PredictionRecord{PredictResponse: resp, Inputs: in, Timestamp: h.now().UTC()})

	slog.Info("prediction served", "requestId", id, "tier", res.Tier.String(), "strength", res.Strength)
	writeJSON(w, http.StatusOK, resp)
}

// HandlePredictions lists recent predictions, newest first.
func (h *Handlers) HandlePredictions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// HandlePredictionDetail returns one recent prediction by request ID.
func (h *Handlers) HandlePredictionDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "prediction id is required")
		return
	}

	rec, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrPredictionNotFound) {
			writeError(w, http.StatusNotFound, "prediction not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/form", h.HandleForm)
	mux.HandleFunc("POST /api/ratio", h.HandleRatio)
	mux.HandleFunc("POST /api/predict", h.HandlePredict)
	mux.HandleFunc("GET /api/predictions", h.HandlePredictions)
	mux.HandleFunc("GET /api/predictions/{id}", h.HandlePredictionDetail)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// decodeInputs reads a MixInputs body. The aggregate constants always
// replace whatever the client sent.
func decodeInputs(w http.ResponseWriter, r *http.Request) (mix.MixInputs, bool) {
	var in mix.MixInputs
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return in, false
	}
	return in.WithHiddenDefaults(), true
}

func writePredictError(w http.ResponseWriter, err error) {
	var verr *mix.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  err.Error(),
			Code:   http.StatusUnprocessableEntity,
			Fields: verr.Fields,
		})
	case errors.Is(err, prediction.ErrModelUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusServiceUnavailable,
			Kind:  errorKind(err),
		})
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func errorKind(err error) string {
	var lerr *artifacts.LoadError
	if errors.As(err, &lerr) {
		return string(lerr.Kind)
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
