package service

import (
	"fmt"
	"sort"
	"time"

	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService derives the full dashboard view from the snapshot
// history. Every reload recomputes everything from scratch - composite
// and converted totals are built once per snapshot into an in-memory
// cache, then all period metrics, series and slices read from that
// cache rather than re-deriving per access.
type DashboardService interface {
	BuildDashboard() (*domain.Dashboard, error)
	// CompositeSnapshot resolves the carry-forward view of one snapshot.
	CompositeSnapshot(snapshotID uuid.UUID) ([]domain.CompositeAssetValue, error)
}

func NewDashboardService(
	snapshotRepository repository.SnapshotRepository,
	assetRepository repository.AssetRepository,
	snapshotValueRepository repository.SnapshotValueRepository,
	cashFlowRepository repository.CashFlowRepository,
	exchangeRateRepository repository.ExchangeRateRepository,
	categoryRepository repository.CategoryRepository,
	settingsRepository repository.SettingsRepository,
) DashboardService {
	return dashboardServiceHandler{
		SnapshotRepository:      snapshotRepository,
		AssetRepository:         assetRepository,
		SnapshotValueRepository: snapshotValueRepository,
		CashFlowRepository:      cashFlowRepository,
		ExchangeRateRepository:  exchangeRateRepository,
		CategoryRepository:      categoryRepository,
		SettingsRepository:      settingsRepository,
	}
}

type dashboardServiceHandler struct {
	SnapshotRepository      repository.SnapshotRepository
	AssetRepository         repository.AssetRepository
	SnapshotValueRepository repository.SnapshotValueRepository
	CashFlowRepository      repository.CashFlowRepository
	ExchangeRateRepository  repository.ExchangeRateRepository
	CategoryRepository      repository.CategoryRepository
	SettingsRepository      repository.SettingsRepository
}

// snapshotFacts is the per-snapshot cache entry: converted composite
// total, converted net cash flow, and the category breakdown of the
// composite view.
type snapshotFacts struct {
	total     decimal.Decimal
	netFlow   decimal.Decimal
	breakdown map[uuid.UUID]decimal.Decimal
	composite []domain.CompositeAssetValue
}

type historyInputs struct {
	snapshots       []domain.Snapshot
	assets          []domain.Asset
	assetsByID      map[uuid.UUID]domain.Asset
	values          []domain.SnapshotAssetValue
	flowsBySnapshot map[uuid.UUID][]domain.CashFlowOperation
	ratesBySnapshot map[uuid.UUID]*domain.ExchangeRate
	categories      []domain.Category
	displayCurrency string
}

func (h dashboardServiceHandler) loadHistory() (*historyInputs, error) {
	snapshots, err := h.SnapshotRepository.List()
	if err != nil {
		return nil, err
	}
	assets, err := h.AssetRepository.List()
	if err != nil {
		return nil, err
	}
	values, err := h.SnapshotValueRepository.List()
	if err != nil {
		return nil, err
	}
	flows, err := h.CashFlowRepository.List()
	if err != nil {
		return nil, err
	}
	rates, err := h.ExchangeRateRepository.List()
	if err != nil {
		return nil, err
	}
	categories, err := h.CategoryRepository.List()
	if err != nil {
		return nil, err
	}
	displayCurrency, err := h.SettingsRepository.GetDisplayCurrency()
	if err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.Before(snapshots[j].Date)
	})

	assetsByID := map[uuid.UUID]domain.Asset{}
	for _, a := range assets {
		assetsByID[a.AssetID] = a
	}
	flowsBySnapshot := map[uuid.UUID][]domain.CashFlowOperation{}
	for _, f := range flows {
		flowsBySnapshot[f.SnapshotID] = append(flowsBySnapshot[f.SnapshotID], f)
	}
	ratesBySnapshot := map[uuid.UUID]*domain.ExchangeRate{}
	for i := range rates {
		ratesBySnapshot[rates[i].SnapshotID] = &rates[i]
	}

	return &historyInputs{
		snapshots:       snapshots,
		assets:          assets,
		assetsByID:      assetsByID,
		values:          values,
		flowsBySnapshot: flowsBySnapshot,
		ratesBySnapshot: ratesBySnapshot,
		categories:      categories,
		displayCurrency: displayCurrency,
	}, nil
}

func (h dashboardServiceHandler) buildFacts(in *historyInputs) map[uuid.UUID]snapshotFacts {
	facts := map[uuid.UUID]snapshotFacts{}
	for _, s := range in.snapshots {
		composite := CompositeValues(CompositeInput{
			Target:     s,
			Snapshots:  in.snapshots,
			Values:     in.values,
			AssetsByID: in.assetsByID,
		})
		rates := in.ratesBySnapshot[s.SnapshotID]
		facts[s.SnapshotID] = snapshotFacts{
			total:     ConvertedTotal(composite, in.displayCurrency, rates),
			netFlow:   NetCashFlow(in.flowsBySnapshot[s.SnapshotID], in.displayCurrency, rates),
			breakdown: CategoryBreakdown(composite, in.displayCurrency, rates),
			composite: composite,
		}
	}
	return facts
}

func (h dashboardServiceHandler) BuildDashboard() (*domain.Dashboard, error) {
	in, err := h.loadHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard inputs: %w", err)
	}

	dashboard := &domain.Dashboard{
		DisplayCurrency: in.displayCurrency,
		Periods:         []domain.PeriodMetrics{},
		History:         []domain.HistoryEntry{},
		Allocation:      []domain.CategorySlice{},
		Platforms:       domain.Platforms(in.assets),
		GeneratedAt:     time.Now().UTC(),
	}
	if len(in.snapshots) == 0 {
		return dashboard, nil
	}

	facts := h.buildFacts(in)
	latest := in.snapshots[len(in.snapshots)-1]
	latestFacts := facts[latest.SnapshotID]

	dashboard.LatestDate = latest.Date
	dashboard.TotalValue = latestFacts.total
	dashboard.History = buildHistory(in.snapshots, facts)
	dashboard.Allocation = CategorySlices(latestFacts.breakdown, in.categories, latestFacts.total)

	for _, period := range domain.AllPeriods {
		metrics, ok := resolvePeriod(period, in.snapshots, facts)
		if !ok {
			continue
		}
		dashboard.Periods = append(dashboard.Periods, metrics)
	}

	earliest := in.snapshots[0]
	years := float64(util.DaysBetween(earliest.Date, latest.Date)) / 365.25
	dashboard.CAGR = calculator.CAGR(facts[earliest.SnapshotID].total, latestFacts.total, years)

	series := []calculator.SeriesPoint{}
	for _, s := range in.snapshots {
		series = append(series, calculator.SeriesPoint{
			Date:       s.Date,
			TotalValue: facts[s.SnapshotID].total,
		})
	}
	// the risk panel is best-effort: too few points is not a dashboard
	// failure, the panel just stays hidden
	if metrics, err := calculator.CalculateSeriesMetrics(series); err == nil {
		dashboard.Risk = &domain.RiskMetrics{
			AnnualizedStdev:  metrics.AnnualizedStdev,
			AnnualizedReturn: metrics.AnnualizedReturn,
			SharpeRatio:      metrics.SharpeRatio,
		}
	}

	return dashboard, nil
}

// resolvePeriod maps a lookback horizon to a concrete begin snapshot and
// computes the returns over (begin, latest). The begin snapshot is the
// one closest to the target date by absolute day distance, the latest
// snapshot excluded; ties go to the earlier snapshot. Returns false when
// the history has no candidate (fewer than two snapshots).
func resolvePeriod(period domain.Period, snapshots []domain.Snapshot, facts map[uuid.UUID]snapshotFacts) (domain.PeriodMetrics, bool) {
	latest := snapshots[len(snapshots)-1]
	candidates := snapshots[:len(snapshots)-1]
	if len(candidates) == 0 {
		return domain.PeriodMetrics{}, false
	}

	target := util.MonthsBefore(latest.Date, period.Months())
	begin := candidates[0]
	bestDistance := util.AbsDayDistance(begin.Date, target)
	for _, s := range candidates[1:] {
		distance := util.AbsDayDistance(s.Date, target)
		// candidates walk in ascending date order, so a strictly
		// smaller distance keeps the earlier snapshot on ties
		if distance < bestDistance {
			begin = s
			bestDistance = distance
		}
	}

	beginFacts := facts[begin.SnapshotID]
	endFacts := facts[latest.SnapshotID]

	metrics := domain.PeriodMetrics{
		Period:          period,
		BeginSnapshotID: begin.SnapshotID,
		BeginDate:       begin.Date,
		EndDate:         latest.Date,
		GrowthRate:      calculator.GrowthRate(beginFacts.total, endFacts.total),
	}

	totalDays := util.DaysBetween(begin.Date, latest.Date)
	flows := []calculator.PeriodCashFlow{}
	for _, s := range snapshots {
		if !s.Date.After(begin.Date) || s.Date.After(latest.Date) {
			continue
		}
		flows = append(flows, calculator.PeriodCashFlow{
			Amount:         facts[s.SnapshotID].netFlow,
			DaysSinceStart: util.DaysBetween(begin.Date, s.Date),
		})
	}
	metrics.ModifiedDietz = calculator.ModifiedDietz(beginFacts.total, endFacts.total, totalDays, flows)

	return metrics, true
}

// buildHistory produces the charting series: one entry per snapshot in
// ascending order, with the Modified Dietz return between each adjacent
// pair and the cumulative chained return up to that point. Adjacent
// pairs have no snapshot strictly between them, so only the end
// snapshot of each pair contributes a cash flow.
func buildHistory(snapshots []domain.Snapshot, facts map[uuid.UUID]snapshotFacts) []domain.HistoryEntry {
	out := []domain.HistoryEntry{}
	chained := []*decimal.Decimal{}
	for i, s := range snapshots {
		f := facts[s.SnapshotID]
		entry := domain.HistoryEntry{
			SnapshotID:  s.SnapshotID,
			Date:        s.Date,
			TotalValue:  f.total,
			NetCashFlow: f.netFlow,
		}
		if i > 0 {
			prev := snapshots[i-1]
			days := util.DaysBetween(prev.Date, s.Date)
			entry.PeriodReturn = calculator.ModifiedDietz(
				facts[prev.SnapshotID].total,
				f.total,
				days,
				[]calculator.PeriodCashFlow{{Amount: f.netFlow, DaysSinceStart: days}},
			)
			chained = append(chained, entry.PeriodReturn)
		}
		entry.CumulativeTWR = calculator.CumulativeTWR(chained)
		out = append(out, entry)
	}
	return out
}

func (h dashboardServiceHandler) CompositeSnapshot(snapshotID uuid.UUID) ([]domain.CompositeAssetValue, error) {
	in, err := h.loadHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot history: %w", err)
	}

	var target *domain.Snapshot
	for i := range in.snapshots {
		if in.snapshots[i].SnapshotID == snapshotID {
			target = &in.snapshots[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("snapshot %s not found", snapshotID)
	}

	return CompositeValues(CompositeInput{
		Target:     *target,
		Snapshots:  in.snapshots,
		Values:     in.values,
		AssetsByID: in.assetsByID,
	}), nil
}
