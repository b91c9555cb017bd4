package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeDashboardService struct {
	build func() (*domain.Dashboard, error)
}

func (f fakeDashboardService) BuildDashboard() (*domain.Dashboard, error) {
	return f.build()
}

func (f fakeDashboardService) CompositeSnapshot(snapshotID uuid.UUID) ([]domain.CompositeAssetValue, error) {
	return nil, nil
}

func Test_DashboardHandler(t *testing.T) {
	t.Run("reload swaps the cached dashboard", func(t *testing.T) {
		want := &domain.Dashboard{DisplayCurrency: "USD"}
		h := NewDashboardHandler(fakeDashboardService{
			build: func() (*domain.Dashboard, error) { return want, nil },
		})

		require.Nil(t, h.Current())
		require.NoError(t, h.Reload(context.Background()))
		require.Same(t, want, h.Current())
	})

	t.Run("failed reload keeps the previous dashboard", func(t *testing.T) {
		old := &domain.Dashboard{DisplayCurrency: "USD"}
		fail := false
		h := NewDashboardHandler(fakeDashboardService{
			build: func() (*domain.Dashboard, error) {
				if fail {
					return nil, fmt.Errorf("db unavailable")
				}
				return old, nil
			},
		})

		require.NoError(t, h.Reload(context.Background()))
		fail = true
		require.Error(t, h.Reload(context.Background()))
		require.Same(t, old, h.Current())
	})

	t.Run("triggers coalesce while a reload is pending", func(t *testing.T) {
		h := NewDashboardHandler(fakeDashboardService{
			build: func() (*domain.Dashboard, error) { return &domain.Dashboard{}, nil },
		})

		h.MarkDirty()
		h.MarkDirty()
		h.MarkDirty()
		require.Len(t, h.dirty, 1)
	})

	t.Run("run serves triggers until cancelled", func(t *testing.T) {
		reloaded := make(chan struct{}, 10)
		h := NewDashboardHandler(fakeDashboardService{
			build: func() (*domain.Dashboard, error) {
				reloaded <- struct{}{}
				return &domain.Dashboard{}, nil
			},
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- h.Run(ctx)
		}()

		// initial reload
		<-reloaded

		h.MarkDirty()
		select {
		case <-reloaded:
		case <-time.After(time.Second):
			t.Fatal("expected a reload after MarkDirty")
		}

		cancel()
		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("expected run loop to exit on cancel")
		}
	})
}
