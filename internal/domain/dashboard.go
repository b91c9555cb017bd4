package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodMetrics holds the resolved lookback pair and the returns computed
// over it. Nil pointers mean the metric is undefined for the pair and
// should be hidden, not rendered as zero.
type PeriodMetrics struct {
	Period          Period
	BeginSnapshotID uuid.UUID
	BeginDate       time.Time
	EndDate         time.Time
	GrowthRate      *decimal.Decimal
	ModifiedDietz   *decimal.Decimal
}

// HistoryEntry is one point of the chained valuation/return series used
// for charting. PeriodReturn is the Modified Dietz return between the
// previous snapshot and this one.
type HistoryEntry struct {
	SnapshotID    uuid.UUID
	Date          time.Time
	TotalValue    decimal.Decimal
	NetCashFlow   decimal.Decimal
	PeriodReturn  *decimal.Decimal
	CumulativeTWR decimal.Decimal
}

// CategorySlice is the converted value and allocation share of one
// category at the latest snapshot. A nil CategoryID is the uncategorized
// bucket.
type CategorySlice struct {
	CategoryID        *uuid.UUID
	Name              string
	Value             decimal.Decimal
	AllocationPercent decimal.Decimal
}

// RiskMetrics summarizes dispersion of the per-period return series.
type RiskMetrics struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	SharpeRatio      float64
}

// Dashboard is the fully derived, cached view over the whole snapshot
// history. It is rebuilt from scratch on every reload and swapped
// atomically - there is no partial-result contract.
type Dashboard struct {
	DisplayCurrency string
	LatestDate      time.Time
	TotalValue      decimal.Decimal
	CAGR            *decimal.Decimal
	Periods         []PeriodMetrics
	History         []HistoryEntry
	Allocation      []CategorySlice
	Platforms       []string
	Risk            *RiskMetrics
	GeneratedAt     time.Time
}
