package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeFetcher struct {
	ratesByDate map[string]map[string]decimal.Decimal
	calls       []string
}

func (f *fakeFetcher) GetRatesOnDay(ctx context.Context, date time.Time, base string) (map[string]decimal.Decimal, error) {
	key := date.Format(time.DateOnly)
	f.calls = append(f.calls, key)
	if rates, ok := f.ratesByDate[key]; ok {
		return rates, nil
	}
	return nil, fmt.Errorf("no rates found for %s", key)
}

func Test_EnsureRates(t *testing.T) {
	usd := map[string]decimal.Decimal{"USD": decimal.NewFromFloat(1.25)}

	t.Run("attaches rates to snapshots missing them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshots := mock_repository.NewMockSnapshotRepository(ctrl)
		rates := mock_repository.NewMockExchangeRateRepository(ctrl)
		settings := mock_repository.NewMockSettingsRepository(ctrl)

		s1 := domain.Snapshot{SnapshotID: uuid.New(), Date: util.NewDate(2025, 1, 1)}
		s2 := domain.Snapshot{SnapshotID: uuid.New(), Date: util.NewDate(2025, 2, 3)}

		snapshots.EXPECT().List().Return([]domain.Snapshot{s1, s2}, nil)
		// s1 already has a table
		rates.EXPECT().List().Return([]domain.ExchangeRate{{SnapshotID: s1.SnapshotID}}, nil)
		settings.EXPECT().GetDisplayCurrency().Return("EUR", nil)

		var stored domain.ExchangeRate
		rates.EXPECT().Add(gomock.Any()).DoAndReturn(func(r domain.ExchangeRate) error {
			stored = r
			return nil
		})

		fetcher := &fakeFetcher{ratesByDate: map[string]map[string]decimal.Decimal{
			"2025-02-03": usd,
		}}

		svc := NewRatesService(snapshots, rates, settings, fetcher)
		attached, err := svc.EnsureRates(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, attached)

		require.Equal(t, s2.SnapshotID, stored.SnapshotID)
		require.Equal(t, "EUR", stored.Base)
		require.False(t, stored.Fallback)
		require.True(t, stored.Rates["USD"].Equal(decimal.NewFromFloat(1.25)))
	})

	t.Run("walks back to a prior day and flags fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshots := mock_repository.NewMockSnapshotRepository(ctrl)
		rates := mock_repository.NewMockExchangeRateRepository(ctrl)
		settings := mock_repository.NewMockSettingsRepository(ctrl)

		// a Sunday; rates published Friday
		s1 := domain.Snapshot{SnapshotID: uuid.New(), Date: util.NewDate(2025, 2, 2)}

		snapshots.EXPECT().List().Return([]domain.Snapshot{s1}, nil)
		rates.EXPECT().List().Return(nil, nil)
		settings.EXPECT().GetDisplayCurrency().Return("EUR", nil)

		var stored domain.ExchangeRate
		rates.EXPECT().Add(gomock.Any()).DoAndReturn(func(r domain.ExchangeRate) error {
			stored = r
			return nil
		})

		fetcher := &fakeFetcher{ratesByDate: map[string]map[string]decimal.Decimal{
			"2025-01-31": usd,
		}}

		svc := NewRatesService(snapshots, rates, settings, fetcher)
		attached, err := svc.EnsureRates(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, attached)
		require.True(t, stored.Fallback)
		require.Equal(t, []string{"2025-02-02", "2025-02-01", "2025-01-31"}, fetcher.calls)
	})

	t.Run("fetch failure skips the snapshot without failing the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshots := mock_repository.NewMockSnapshotRepository(ctrl)
		rates := mock_repository.NewMockExchangeRateRepository(ctrl)
		settings := mock_repository.NewMockSettingsRepository(ctrl)

		s1 := domain.Snapshot{SnapshotID: uuid.New(), Date: util.NewDate(2025, 2, 2)}

		snapshots.EXPECT().List().Return([]domain.Snapshot{s1}, nil)
		rates.EXPECT().List().Return(nil, nil)
		settings.EXPECT().GetDisplayCurrency().Return("EUR", nil)

		fetcher := &fakeFetcher{}

		svc := NewRatesService(snapshots, rates, settings, fetcher)
		attached, err := svc.EnsureRates(context.Background())
		require.NoError(t, err)
		require.Zero(t, attached)
	})
}
