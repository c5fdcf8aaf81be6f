package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/bin-packer/internal/packer"
	"github.com/eugenenazirov/bin-packer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires packer and storage dependencies into HTTP handlers.
type Handler struct {
	packer  packer.Packer
	storage storage.Storage

	clock func() time.Time

	mu               sync.RWMutex
	profileUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(p packer.Packer, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:  p,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.profileUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	_ = r
	profile, err := h.storage.GetProfile()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := profileResponse{
		BinCapacity: profile.BinCapacity,
		Strategy:    string(profile.Strategy),
		UpdatedAt:   h.currentProfileUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	profile := storage.Profile{
		BinCapacity: req.BinCapacity,
		Strategy:    packer.Strategy(req.Strategy),
	}
	if err := h.storage.SetProfile(profile); err != nil {
		if errors.Is(err, storage.ErrInvalidCapacity) || errors.Is(err, storage.ErrUnknownStrategy) {
			writeError(w, http.StatusBadRequest, "Invalid profile", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markProfileUpdated()

	resp := profileResponse{
		BinCapacity: profile.BinCapacity,
		Strategy:    string(profile.Strategy),
		UpdatedAt:   h.currentProfileUpdatedAt(),
		Message:     "Packing profile updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleStrategies(w http.ResponseWriter, r *http.Request) {
	_ = r
	strategies := packer.Strategies()
	names := make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		names = append(names, string(strategy))
	}
	writeJSON(w, http.StatusOK, strategiesResponse{Strategies: names})
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	profile, err := h.storage.GetProfile()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	capacity := profile.BinCapacity
	if req.BinCapacity != 0 {
		capacity = req.BinCapacity
	}
	strategy := profile.Strategy
	if req.Strategy != "" {
		strategy = packer.Strategy(req.Strategy)
	}

	start := time.Now()
	result, packErr := h.packer.PackItems(req.Items, capacity, strategy)
	elapsed := time.Since(start)

	if packErr != nil {
		switch {
		case errors.Is(packErr, packer.ErrInvalidCapacity),
			errors.Is(packErr, packer.ErrInvalidSizes),
			errors.Is(packErr, packer.ErrUnknownStrategy):
			writeError(w, http.StatusBadRequest, "Invalid request", packErr.Error())
		case errors.Is(packErr, packer.ErrItemTooLarge):
			suggestion := fmt.Sprintf("Raise the bin capacity above %d or split the oversized item", capacity)
			writeError(w, http.StatusUnprocessableEntity, "Cannot pack items", packErr.Error(), suggestion)
		default:
			writeInternalError(w, packErr)
		}
		return
	}

	bins := make([]binResponse, 0, len(result.Bins))
	for _, b := range result.Bins {
		bins = append(bins, binResponse{
			Items:     b.Items,
			Used:      b.Used,
			Available: b.Available,
		})
	}

	resp := packResponse{
		Strategy:          string(strategy),
		BinCapacity:       capacity,
		Bins:              bins,
		BinCount:          result.BinCount,
		TotalItems:        result.TotalItems,
		TotalSize:         result.TotalSize,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentProfileUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.profileUpdatedAt
}

func (h *Handler) markProfileUpdated() {
	h.mu.Lock()
	h.profileUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type profileRequest struct {
	BinCapacity int    `json:"binCapacity"`
	Strategy    string `json:"strategy"`
}

type packRequest struct {
	Items       []int  `json:"items"`
	Strategy    string `json:"strategy,omitempty"`
	BinCapacity int    `json:"binCapacity,omitempty"`
}

type binResponse struct {
	Items     []int `json:"items"`
	Used      int   `json:"used"`
	Available int   `json:"available"`
}

type packResponse struct {
	Strategy          string        `json:"strategy"`
	BinCapacity       int           `json:"binCapacity"`
	Bins              []binResponse `json:"bins"`
	BinCount          int           `json:"binCount"`
	TotalItems        int           `json:"totalItems"`
	TotalSize         int           `json:"totalSize"`
	CalculationTimeMs int64         `json:"calculationTimeMs"`
}

type profileResponse struct {
	BinCapacity int       `json:"binCapacity"`
	Strategy    string    `json:"strategy"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Message     string    `json:"message,omitempty"`
}

type strategiesResponse struct {
	Strategies []string `json:"strategies"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
