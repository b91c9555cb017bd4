package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is a single calendar-day record of portfolio state. Date is
// stored at midnight UTC; the storage layer guarantees at most one
// snapshot per calendar day.
type Snapshot struct {
	SnapshotID uuid.UUID
	Date       time.Time
	CreatedAt  time.Time
}

// SnapshotAssetValue is the market value of one asset recorded directly
// against one snapshot. Unique per (snapshot, asset) pair.
type SnapshotAssetValue struct {
	SnapshotAssetValueID uuid.UUID
	SnapshotID           uuid.UUID
	AssetID              uuid.UUID
	Value                decimal.Decimal
}

// CashFlowOperation is a deposit (positive) or withdrawal (negative)
// recorded against a snapshot, in its own currency.
type CashFlowOperation struct {
	CashFlowOperationID uuid.UUID
	SnapshotID          uuid.UUID
	Description         string
	Amount              decimal.Decimal
	Currency            string
}

// ExchangeRate holds the rate table fetched for one snapshot date. Rates
// maps currency code to its rate relative to Base. Lazily attached - a
// snapshot that never needed cross-currency conversion has none.
type ExchangeRate struct {
	ExchangeRateID uuid.UUID
	SnapshotID     uuid.UUID
	Base           string
	FetchedAt      time.Time
	Fallback       bool
	Rates          map[string]decimal.Decimal
}
