package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/avelsher/armory/internal/armory"
	"github.com/avelsher/armory/internal/catalog"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const (
	solverNameGreedy     = "greedy"
	solverNameExhaustive = "exhaustive"
)

// Handler wires solver and catalog dependencies into HTTP handlers.
type Handler struct {
	greedy     armory.Solver
	exhaustive armory.Solver
	storage    catalog.Storage

	// exhaustiveLimit caps the collection handed to the exhaustive solver;
	// it is an operational guard tighter than the solver's own hard bound.
	exhaustiveLimit int

	clock func() time.Time

	mu               sync.RWMutex
	catalogUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithExhaustiveLimit caps how many items an exhaustive optimize request
// may hand to the solver.
func WithExhaustiveLimit(limit int) HandlerOption {
	return func(h *Handler) {
		if limit > 0 {
			h.exhaustiveLimit = limit
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(greedy, exhaustive armory.Solver, store catalog.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		greedy:          greedy,
		exhaustive:      exhaustive,
		storage:         store,
		exhaustiveLimit: armory.MaxExhaustiveItems,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.catalogUpdatedAt = h.clock()
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

func (h *Handler) handleGetArmory(w http.ResponseWriter, r *http.Request) {
	_ = r
	items, err := h.storage.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	totalCost, totalDefense := armory.Sum(items)
	resp := armoryResponse{
		Items:        toItemPayloads(items),
		TotalCost:    totalCost,
		TotalDefense: totalDefense,
		UpdatedAt:    h.currentCatalogUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutArmory(w http.ResponseWriter, r *http.Request) {
	var req armoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid catalog", "items must contain at least one entry")
		return
	}

	items := make(armory.Items, 0, len(req.Items))
	for i, payload := range req.Items {
		item, err := armory.NewItem(payload.Description, payload.Cost, payload.Defense)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid catalog", fmt.Sprintf("item %d: %v", i, err))
			return
		}
		items = append(items, item)
	}

	if err := h.storage.Replace(items); err != nil {
		if errors.Is(err, catalog.ErrEmptyCatalog) {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCatalogUpdated()

	totalCost, totalDefense := armory.Sum(items)
	resp := armoryResponse{
		Items:        toItemPayloads(items),
		TotalCost:    totalCost,
		TotalDefense: totalDefense,
		UpdatedAt:    h.currentCatalogUpdatedAt(),
		Message:      "Catalog updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	solverName := req.Solver
	if solverName == "" {
		solverName = solverNameGreedy
	}

	var solver armory.Solver
	switch solverName {
	case solverNameGreedy:
		solver = h.greedy
	case solverNameExhaustive:
		solver = h.exhaustive
	default:
		writeError(w, http.StatusBadRequest, "Invalid request",
			fmt.Sprintf("unknown solver %q, want %q or %q", req.Solver, solverNameGreedy, solverNameExhaustive))
		return
	}

	items, err := h.storage.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	if req.Filter != nil {
		items = armory.Filter(items, req.Filter.MinDefense, req.Filter.MaxDefense, req.Filter.Limit)
	}

	if solverName == solverNameExhaustive && len(items) > h.exhaustiveLimit {
		suggestion := fmt.Sprintf("Apply a filter with limit <= %d or use the greedy solver", h.exhaustiveLimit)
		writeError(w, http.StatusUnprocessableEntity, "Too many items for exhaustive search",
			fmt.Sprintf("%d items exceed the configured limit of %d", len(items), h.exhaustiveLimit), suggestion)
		return
	}

	start := time.Now()
	selected, solveErr := solver.Select(items, req.Budget)
	elapsed := time.Since(start)

	if solveErr != nil {
		if errors.Is(solveErr, armory.ErrTooManyItems) {
			suggestion := fmt.Sprintf("Apply a filter with limit <= %d or use the greedy solver", armory.MaxExhaustiveItems)
			writeError(w, http.StatusUnprocessableEntity, "Too many items for exhaustive search", solveErr.Error(), suggestion)
			return
		}
		writeInternalError(w, solveErr)
		return
	}

	totalCost, totalDefense := armory.Sum(selected)
	resp := optimizeResponse{
		Solver:            solverName,
		Budget:            req.Budget,
		Items:             toItemPayloads(selected),
		TotalCost:         totalCost,
		TotalDefense:      totalDefense,
		ItemsConsidered:   len(items),
		ItemsSelected:     len(selected),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentCatalogUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalogUpdatedAt
}

func (h *Handler) markCatalogUpdated() {
	h.mu.Lock()
	h.catalogUpdatedAt = h.clock()
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

func toItemPayloads(items armory.Items) []itemPayload {
	out := make([]itemPayload, 0, len(items))
	for _, item := range items {
		out = append(out, itemPayload{
			Description: item.Description(),
			Cost:        item.Cost(),
			Defense:     item.Defense(),
		})
	}
	return out
}

type itemPayload struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Defense     float64 `json:"defense"`
}

type armoryRequest struct {
	Items []itemPayload `json:"items"`
}

type armoryResponse struct {
	Items        []itemPayload `json:"items"`
	TotalCost    float64       `json:"totalCost"`
	TotalDefense float64       `json:"totalDefense"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Message      string        `json:"message,omitempty"`
}

type filterSpec struct {
	MinDefense float64 `json:"minDefense"`
	MaxDefense float64 `json:"maxDefense"`
	Limit      int     `json:"limit"`
}

type optimizeRequest struct {
	Budget float64     `json:"budget"`
	Solver string      `json:"solver"`
	Filter *filterSpec `json:"filter,omitempty"`
}

type optimizeResponse struct {
	Solver            string        `json:"solver"`
	Budget            float64       `json:"budget"`
	Items             []itemPayload `json:"items"`
	TotalCost         float64       `json:"totalCost"`
	TotalDefense      float64       `json:"totalDefense"`
	ItemsConsidered   int           `json:"itemsConsidered"`
	ItemsSelected     int           `json:"itemsSelected"`
	CalculationTimeMs int64         `json:"calculationTimeMs"`
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
