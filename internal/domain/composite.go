package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompositeAssetValue is the carry-forward-resolved value of one asset at
// a target snapshot. SourceDate is set when the value was inherited from
// an earlier snapshot rather than entered directly.
type CompositeAssetValue struct {
	Asset          Asset
	Value          decimal.Decimal
	CarriedForward bool
	SourceDate     *time.Time
}

// CompositeTotal sums composite market values without any currency
// conversion - conversion is layered on by callers.
func CompositeTotal(values []CompositeAssetValue) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.Value)
	}
	return total
}
