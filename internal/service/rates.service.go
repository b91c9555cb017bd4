package service

import (
	"context"
	"fmt"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// how many prior days to try when the exact snapshot date has no
// published rates (weekends, bank holidays)
const maxRateLookbackDays = 7

// RatesFetcher is the network collaborator that resolves a rate table
// for one day.
type RatesFetcher interface {
	GetRatesOnDay(ctx context.Context, date time.Time, base string) (map[string]decimal.Decimal, error)
}

// RatesService attaches rate tables to snapshots that are missing one.
// Fetch failures are not fatal: a snapshot left without rates simply
// renders unconverted.
type RatesService interface {
	// EnsureRates fetches and stores a rate table for every snapshot
	// that lacks one, returning how many were attached.
	EnsureRates(ctx context.Context) (int, error)
}

func NewRatesService(
	snapshotRepository repository.SnapshotRepository,
	exchangeRateRepository repository.ExchangeRateRepository,
	settingsRepository repository.SettingsRepository,
	fetcher RatesFetcher,
) RatesService {
	return ratesServiceHandler{
		SnapshotRepository:     snapshotRepository,
		ExchangeRateRepository: exchangeRateRepository,
		SettingsRepository:     settingsRepository,
		Fetcher:                fetcher,
	}
}

type ratesServiceHandler struct {
	SnapshotRepository     repository.SnapshotRepository
	ExchangeRateRepository repository.ExchangeRateRepository
	SettingsRepository     repository.SettingsRepository
	Fetcher                RatesFetcher
}

func (h ratesServiceHandler) EnsureRates(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	snapshots, err := h.SnapshotRepository.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list snapshots: %w", err)
	}
	existing, err := h.ExchangeRateRepository.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	base, err := h.SettingsRepository.GetDisplayCurrency()
	if err != nil {
		return 0, fmt.Errorf("failed to get display currency: %w", err)
	}

	hasRates := map[uuid.UUID]bool{}
	for _, r := range existing {
		hasRates[r.SnapshotID] = true
	}

	attached := 0
	for _, s := range snapshots {
		if hasRates[s.SnapshotID] {
			continue
		}

		rates, fallback, err := h.fetchWithLookback(ctx, s.Date, base)
		if err != nil {
			log.Warnf("no rates available for %s, leaving snapshot unconverted: %s",
				s.Date.Format(time.DateOnly), err.Error())
			continue
		}

		err = h.ExchangeRateRepository.Add(domain.ExchangeRate{
			ExchangeRateID: uuid.New(),
			SnapshotID:     s.SnapshotID,
			Base:           base,
			FetchedAt:      time.Now().UTC(),
			Fallback:       fallback,
			Rates:          rates,
		})
		if err != nil {
			return attached, fmt.Errorf("failed to store rates for snapshot %s: %w", s.SnapshotID, err)
		}
		attached++
	}

	return attached, nil
}

// fetchWithLookback walks backwards from the snapshot date until a day
// with published rates is found. The fallback flag records that the
// table is not from the snapshot's own date.
func (h ratesServiceHandler) fetchWithLookback(ctx context.Context, date time.Time, base string) (map[string]decimal.Decimal, bool, error) {
	var lastErr error
	for offset := 0; offset <= maxRateLookbackDays; offset++ {
		rates, err := h.Fetcher.GetRatesOnDay(ctx, date.AddDate(0, 0, -offset), base)
		if err == nil {
			return rates, offset > 0, nil
		}
		lastErr = err
	}
	return nil, false, lastErr
}
