package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type SeriesPoint struct {
	Date       time.Time
	TotalValue decimal.Decimal
}

type SeriesMetricsResult struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	SharpeRatio      float64
}

// entries are expected roughly once a month
const periodsPerYear = 12

// CalculateSeriesMetrics derives dispersion metrics from the total-value
// series. Unlike the return formulas above this is a best-effort risk
// panel, so it reports errors instead of a nullable contract.
func CalculateSeriesMetrics(series []SeriesPoint) (*SeriesMetricsResult, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("cannot calculate series metrics on < 2 points")
	}

	returns := []float64{}
	lastValue := series[0].TotalValue
	for _, p := range series[1:] {
		if lastValue.LessThanOrEqual(decimal.Zero) {
			lastValue = p.TotalValue
			continue
		}
		returns = append(returns, p.TotalValue.Sub(lastValue).Div(lastValue).InexactFloat64())
		lastValue = p.TotalValue
	}
	if len(returns) < 2 {
		return nil, fmt.Errorf("not enough usable returns in series")
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}

	annualizedStdev := stdev * math.Sqrt(periodsPerYear)

	startValue := series[0].TotalValue.InexactFloat64()
	endValue := series[len(series)-1].TotalValue.InexactFloat64()
	numHours := series[len(series)-1].Date.Sub(series[0].Date).Hours()
	numYears := numHours / (365 * 24)
	if startValue <= 0 || numYears <= 0 {
		return nil, fmt.Errorf("cannot annualize return over degenerate series")
	}
	annualizedReturn := math.Pow(endValue/startValue, 1/numYears) - 1

	sharpeRatio := 0.0
	if stdev > 0 {
		sharpeRatio = annualizedReturn / stdev
	}

	return &SeriesMetricsResult{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		SharpeRatio:      sharpeRatio,
	}, nil
}
