package http

import (
	"net/http"
	"strconv"

	"github.com/gatherly/rsvp-backend-go/internal/config"
	"github.com/gatherly/rsvp-backend-go/internal/domain/metrics"
	"github.com/gatherly/rsvp-backend-go/internal/handler/http/response"
)

const maxWindowDays = 90

type MetricsHandler interface {
	Hero(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
}

type metricsHandlerImpl struct {
	metricsService metrics.MetricsService
	cfg            config.MetricsConfig
}

func NewMetricsHandler(metricsService metrics.MetricsService, cfg config.MetricsConfig) MetricsHandler {
	return &metricsHandlerImpl{
		metricsService: metricsService,
		cfg:            cfg,
	}
}

// Hero implements MetricsHandler - headline engagement block
func (h *metricsHandlerImpl) Hero(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := h.windowDays(r, h.cfg.HeroWindowDays)
	if !ok {
		response.BadRequest(w, "window_days must be a positive integer", nil)
		return
	}

	result, err := h.metricsService.ComputeHero(r.Context(), windowDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Daily implements MetricsHandler - per-day breakdown tables
func (h *metricsHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := h.windowDays(r, h.cfg.DailyWindowDays)
	if !ok {
		response.BadRequest(w, "window_days must be a positive integer", nil)
		return
	}

	result, err := h.metricsService.ComputeDailyTables(r.Context(), windowDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *metricsHandlerImpl) windowDays(r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("window_days")
	if raw == "" {
		return fallback, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 || days > maxWindowDays {
		return 0, false
	}
	return days, true
}
