package app

import (
	"context"
	"fmt"
	"sync"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/service"
)

// DashboardHandler owns the cached dashboard and its reload lifecycle.
// Any upstream mutation marks the cache dirty; a background loop
// rebuilds the whole dashboard and swaps it in atomically. Reloads have
// no partial-result contract - on failure the previous dashboard stays
// in place.
type DashboardHandler struct {
	DashboardService service.DashboardService

	mu      sync.RWMutex
	current *domain.Dashboard

	// buffered to one pending reload: triggers arriving while a reload
	// is already queued coalesce into it
	dirty chan struct{}
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		DashboardService: dashboardService,
		dirty:            make(chan struct{}, 1),
	}
}

// MarkDirty schedules a reload. Safe to call from any goroutine; calls
// while a reload is already pending are absorbed.
func (h *DashboardHandler) MarkDirty() {
	select {
	case h.dirty <- struct{}{}:
	default:
	}
}

// Current returns the most recently completed dashboard, or nil when no
// reload has succeeded yet.
func (h *DashboardHandler) Current() *domain.Dashboard {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload rebuilds the dashboard synchronously and swaps it in.
func (h *DashboardHandler) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	dashboard, err := h.DashboardService.BuildDashboard()
	if err != nil {
		return fmt.Errorf("failed to reload dashboard: %w", err)
	}

	h.mu.Lock()
	h.current = dashboard
	h.mu.Unlock()

	log.Infof("dashboard reloaded: %d snapshots in history, total value %s %s",
		len(dashboard.History), dashboard.TotalValue.StringFixed(2), dashboard.DisplayCurrency)
	return nil
}

// Run performs an initial reload, then serves dirty triggers until the
// context is cancelled. A failed reload is logged and the loop keeps
// going - the stale dashboard remains visible.
func (h *DashboardHandler) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := h.Reload(ctx); err != nil {
		log.Warnf("initial dashboard reload failed: %s", err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.dirty:
			if err := h.Reload(ctx); err != nil {
				log.Warnf("dashboard reload failed, keeping previous: %s", err.Error())
			}
		}
	}
}
