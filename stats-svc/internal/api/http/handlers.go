package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"feastly/logger"
	"feastly/stats-svc/internal/domain"
	"feastly/stats-svc/internal/service"
)

type Handler struct {
	Stats service.StatsInterface
	Log   *logger.Logger
}

func NewHandler(svc service.StatsInterface, log *logger.Logger) *Handler {
	return &Handler{Stats: svc, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/stats/today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/stats", h.getRestaurantStats).Methods("GET")
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			writeMessage(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	top, err := h.Stats.TopToday(r.Context(), limit)
	if err != nil {
		h.fail(w, r, "stats_top_today", err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.RestaurantStats(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.fail(w, r, "stats_restaurant", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeMessage(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "))
		return
	}
	h.Log.Error(r.Context(), action, "request failed", err, slog.String("path", r.URL.Path))
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}
