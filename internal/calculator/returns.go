package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Pure return/growth formulas. Every function takes already-converted
// decimal inputs and returns nil when the result is undefined, never an
// error - callers hide the metric instead of rendering a garbage value.

// PeriodCashFlow is an intermediate cash flow inside a measurement
// period, tagged with its day offset from the period start.
type PeriodCashFlow struct {
	Amount         decimal.Decimal
	DaysSinceStart int
}

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// GrowthRate returns (end - begin) / begin, or nil when begin <= 0.
func GrowthRate(begin, end decimal.Decimal) *decimal.Decimal {
	if begin.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	out := end.Sub(begin).Div(begin)
	return &out
}

// ModifiedDietz returns the cash-flow-weighted approximation of the
// period return:
//
//	(EMV - BMV - sumCF) / (BMV + sum(w_i * CF_i))
//
// where w_i = (totalDays - daysSinceStart_i) / totalDays. Returns nil
// when BMV <= 0, totalDays <= 0, or the denominator is non-positive.
func ModifiedDietz(bmv, emv decimal.Decimal, totalDays int, flows []PeriodCashFlow) *decimal.Decimal {
	if bmv.LessThanOrEqual(decimal.Zero) || totalDays <= 0 {
		return nil
	}

	days := decimal.NewFromInt(int64(totalDays))
	flowSum := decimal.Zero
	weightedFlowSum := decimal.Zero
	for _, f := range flows {
		weight := days.Sub(decimal.NewFromInt(int64(f.DaysSinceStart))).Div(days)
		flowSum = flowSum.Add(f.Amount)
		weightedFlowSum = weightedFlowSum.Add(f.Amount.Mul(weight))
	}

	denominator := bmv.Add(weightedFlowSum)
	if denominator.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	out := emv.Sub(bmv).Sub(flowSum).Div(denominator)
	return &out
}

// CumulativeTWR geometrically chains per-period returns:
// prod(1 + r_i) - 1. A nil period return chains as the identity (0) -
// the per-period functions still report nil, this is the display-series
// null policy.
func CumulativeTWR(periodReturns []*decimal.Decimal) decimal.Decimal {
	product := one
	for _, r := range periodReturns {
		if r == nil {
			continue
		}
		product = product.Mul(one.Add(*r))
	}
	return product.Sub(one)
}

// CAGR returns (end / begin)^(1/years) - 1, computed through float64
// exponentiation. Nil when begin <= 0, end <= 0, or years <= 0.
func CAGR(begin, end decimal.Decimal, years float64) *decimal.Decimal {
	if begin.LessThanOrEqual(decimal.Zero) || end.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return nil
	}
	ratio := end.Div(begin).InexactFloat64()
	out := decimal.NewFromFloat(math.Pow(ratio, 1/years) - 1)
	return &out
}

// AllocationPercent returns categoryValue / totalValue * 100. An empty
// portfolio has no allocation to report, so the result is 0 rather than
// undefined - the field must never be absent.
func AllocationPercent(categoryValue, totalValue decimal.Decimal) decimal.Decimal {
	if totalValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return categoryValue.Div(totalValue).Mul(hundred)
}
