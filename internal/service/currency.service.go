package service

import (
	"strings"

	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency conversion never fails: any missing or unusable rate data
// degrades to returning the input unchanged, so a dashboard render is
// never interrupted by conversion problems.

// Convert converts value from one currency code to another using the
// snapshot-scoped rate table. Rates are stored relative to the table's
// base currency; cross rates route through the base.
func Convert(value decimal.Decimal, from, to string, rates *domain.ExchangeRate) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(from), strings.TrimSpace(to)) {
		return value
	}
	if rates == nil {
		return value
	}

	base := strings.TrimSpace(rates.Base)
	if strings.EqualFold(from, base) {
		toRate, ok := lookupRate(rates, to)
		if !ok {
			return value
		}
		return value.Mul(toRate)
	}

	if strings.EqualFold(to, base) {
		fromRate, ok := lookupRate(rates, from)
		if !ok || fromRate.LessThanOrEqual(decimal.Zero) {
			return value
		}
		return value.Div(fromRate)
	}

	fromRate, fromOk := lookupRate(rates, from)
	toRate, toOk := lookupRate(rates, to)
	if !fromOk || !toOk || fromRate.LessThanOrEqual(decimal.Zero) {
		return value
	}
	return value.Div(fromRate).Mul(toRate)
}

// CanConvert mirrors the Convert rules without performing arithmetic,
// for gating display of converted figures.
func CanConvert(from, to string, rates *domain.ExchangeRate) bool {
	if strings.EqualFold(strings.TrimSpace(from), strings.TrimSpace(to)) {
		return true
	}
	if rates == nil {
		return false
	}

	base := strings.TrimSpace(rates.Base)
	if strings.EqualFold(from, base) {
		_, ok := lookupRate(rates, to)
		return ok
	}
	if strings.EqualFold(to, base) {
		fromRate, ok := lookupRate(rates, from)
		return ok && fromRate.GreaterThan(decimal.Zero)
	}

	fromRate, fromOk := lookupRate(rates, from)
	_, toOk := lookupRate(rates, to)
	return fromOk && toOk && fromRate.GreaterThan(decimal.Zero)
}

func lookupRate(rates *domain.ExchangeRate, code string) (decimal.Decimal, bool) {
	code = strings.TrimSpace(code)
	if r, ok := rates.Rates[strings.ToUpper(code)]; ok {
		return r, true
	}
	// rate tables are keyed uppercase by convention, but imported data
	// is not guaranteed to be
	for k, r := range rates.Rates {
		if strings.EqualFold(k, code) {
			return r, true
		}
	}
	return decimal.Zero, false
}

// itemCurrency falls back to the display currency for items that carry
// no currency of their own.
func itemCurrency(currency, displayCurrency string) string {
	if strings.TrimSpace(currency) == "" {
		return displayCurrency
	}
	return currency
}

// ConvertedTotal converts every composite value into the display
// currency using its asset's own currency, then sums.
func ConvertedTotal(values []domain.CompositeAssetValue, displayCurrency string, rates *domain.ExchangeRate) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		from := itemCurrency(v.Asset.Currency, displayCurrency)
		total = total.Add(Convert(v.Value, from, displayCurrency, rates))
	}
	return total
}

// NetCashFlow sums the snapshot's cash operations converted into the
// display currency. Inflows are positive, outflows negative.
func NetCashFlow(ops []domain.CashFlowOperation, displayCurrency string, rates *domain.ExchangeRate) decimal.Decimal {
	total := decimal.Zero
	for _, op := range ops {
		from := itemCurrency(op.Currency, displayCurrency)
		total = total.Add(Convert(op.Amount, from, displayCurrency, rates))
	}
	return total
}

// CategoryBreakdown converts composite values into the display currency
// and buckets them by the asset's category as assigned now. Assets
// without a category land under uuid.Nil.
func CategoryBreakdown(values []domain.CompositeAssetValue, displayCurrency string, rates *domain.ExchangeRate) map[uuid.UUID]decimal.Decimal {
	out := map[uuid.UUID]decimal.Decimal{}
	for _, v := range values {
		from := itemCurrency(v.Asset.Currency, displayCurrency)
		converted := Convert(v.Value, from, displayCurrency, rates)

		key := uuid.Nil
		if v.Asset.CategoryID != nil {
			key = *v.Asset.CategoryID
		}
		out[key] = out[key].Add(converted)
	}
	return out
}

// CategorySlices turns a breakdown into ordered display slices with
// allocation percentages. Categories keep their configured display
// order; the uncategorized bucket goes last.
func CategorySlices(breakdown map[uuid.UUID]decimal.Decimal, categories []domain.Category, totalValue decimal.Decimal) []domain.CategorySlice {
	out := []domain.CategorySlice{}
	for _, c := range categories {
		value, ok := breakdown[c.CategoryID]
		if !ok {
			continue
		}
		id := c.CategoryID
		out = append(out, domain.CategorySlice{
			CategoryID:        &id,
			Name:              c.Name,
			Value:             value,
			AllocationPercent: calculator.AllocationPercent(value, totalValue),
		})
	}
	if uncategorized, ok := breakdown[uuid.Nil]; ok {
		out = append(out, domain.CategorySlice{
			Name:              "Uncategorized",
			Value:             uncategorized,
			AllocationPercent: calculator.AllocationPercent(uncategorized, totalValue),
		})
	}
	return out
}
