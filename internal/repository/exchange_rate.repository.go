package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type ExchangeRateRepository interface {
	// List returns every stored rate table. Snapshots without one are
	// simply absent - conversion degrades for them.
	List() ([]domain.ExchangeRate, error)
	// Add upserts the rate table for a snapshot. At most one table per
	// snapshot exists.
	Add(rate domain.ExchangeRate) error
}

func NewExchangeRateRepository(db *sql.DB) ExchangeRateRepository {
	return exchangeRateRepositoryHandler{Db: db}
}

type exchangeRateRepositoryHandler struct {
	Db *sql.DB
}

func (h exchangeRateRepositoryHandler) List() ([]domain.ExchangeRate, error) {
	query := ExchangeRate.
		SELECT(ExchangeRate.AllColumns)

	result := []model.ExchangeRate{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	out := []domain.ExchangeRate{}
	for _, r := range result {
		rates := map[string]decimal.Decimal{}
		if err := json.Unmarshal([]byte(r.Rates), &rates); err != nil {
			return nil, fmt.Errorf("failed to parse rates for snapshot %s: %w", r.SnapshotID, err)
		}
		out = append(out, domain.ExchangeRate{
			ExchangeRateID: r.ExchangeRateID,
			SnapshotID:     r.SnapshotID,
			Base:           r.Base,
			FetchedAt:      r.FetchedAt,
			Fallback:       r.Fallback,
			Rates:          rates,
		})
	}

	return out, nil
}

func (h exchangeRateRepositoryHandler) Add(rate domain.ExchangeRate) error {
	ratesJson, err := json.Marshal(rate.Rates)
	if err != nil {
		return fmt.Errorf("failed to serialize rates: %w", err)
	}

	query := ExchangeRate.
		INSERT(ExchangeRate.AllColumns).
		MODEL(model.ExchangeRate{
			ExchangeRateID: rate.ExchangeRateID,
			SnapshotID:     rate.SnapshotID,
			Base:           rate.Base,
			FetchedAt:      rate.FetchedAt,
			Fallback:       rate.Fallback,
			Rates:          string(ratesJson),
		}).
		ON_CONFLICT(ExchangeRate.SnapshotID).
		DO_UPDATE(
			SET(
				ExchangeRate.Base.SET(ExchangeRate.EXCLUDED.Base),
				ExchangeRate.FetchedAt.SET(ExchangeRate.EXCLUDED.FetchedAt),
				ExchangeRate.Fallback.SET(ExchangeRate.EXCLUDED.Fallback),
				ExchangeRate.Rates.SET(ExchangeRate.EXCLUDED.Rates),
			),
		)

	_, err = query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add exchange rate for snapshot %s: %w", rate.SnapshotID, err)
	}

	return nil
}
