package service

import (
	"fmt"
	"sort"

	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// adjustments below one unit of the portfolio's currency are noise
var minAdjustment = decimal.NewFromInt(1)

// CategoryValue is one category's converted current value plus its
// configured target, if any.
type CategoryValue struct {
	Name          string
	CurrentValue  decimal.Decimal
	TargetPercent *decimal.Decimal
}

// CalculateAdjustments proposes buy/sell adjustments that bring each
// targeted category to its target percentage. Categories without a
// target are excluded (the caller reports them separately). The result
// is sorted by descending adjustment magnitude; ties keep encounter
// order.
func CalculateAdjustments(categories []CategoryValue, totalValue decimal.Decimal) []domain.RebalanceAction {
	out := []domain.RebalanceAction{}
	if totalValue.LessThanOrEqual(decimal.Zero) {
		return out
	}

	for _, c := range categories {
		if c.TargetPercent == nil {
			continue
		}

		targetValue := totalValue.Mul(*c.TargetPercent).Div(decimal.NewFromInt(100))
		adjustment := targetValue.Sub(c.CurrentValue)

		action := domain.RebalanceActionType_NoAction
		if adjustment.Abs().GreaterThanOrEqual(minAdjustment) {
			if adjustment.GreaterThan(decimal.Zero) {
				action = domain.RebalanceActionType_Buy
			} else {
				action = domain.RebalanceActionType_Sell
			}
		}

		out = append(out, domain.RebalanceAction{
			CategoryName:   c.Name,
			CurrentValue:   c.CurrentValue,
			CurrentPercent: calculator.AllocationPercent(c.CurrentValue, totalValue),
			TargetPercent:  *c.TargetPercent,
			TargetValue:    targetValue,
			Adjustment:     adjustment,
			Action:         action,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Adjustment.Abs().GreaterThan(out[j].Adjustment.Abs())
	})

	return out
}

// SummarizeMoves greedily pairs the largest sell against the largest buy,
// each pairing consuming the lesser of the two remaining capacities,
// until one side is exhausted. Pairings below the materiality threshold
// are skipped.
func SummarizeMoves(actions []domain.RebalanceAction) []domain.RebalanceMove {
	sells := []domain.RebalanceAction{}
	buys := []domain.RebalanceAction{}
	// actions are already sorted by magnitude, so both sides stay sorted
	for _, a := range actions {
		switch a.Action {
		case domain.RebalanceActionType_Sell:
			sells = append(sells, a)
		case domain.RebalanceActionType_Buy:
			buys = append(buys, a)
		}
	}

	moves := []domain.RebalanceMove{}
	i, j := 0, 0
	sellRemaining := decimal.Zero
	buyRemaining := decimal.Zero
	if i < len(sells) {
		sellRemaining = sells[i].Adjustment.Abs()
	}
	if j < len(buys) {
		buyRemaining = buys[j].Adjustment.Abs()
	}

	for i < len(sells) && j < len(buys) {
		amount := decimal.Min(sellRemaining, buyRemaining)
		if amount.GreaterThanOrEqual(minAdjustment) {
			moves = append(moves, domain.RebalanceMove{
				FromCategory: sells[i].CategoryName,
				ToCategory:   buys[j].CategoryName,
				Amount:       amount,
			})
		}

		sellRemaining = sellRemaining.Sub(amount)
		buyRemaining = buyRemaining.Sub(amount)
		if sellRemaining.LessThan(minAdjustment) {
			i++
			if i < len(sells) {
				sellRemaining = sells[i].Adjustment.Abs()
			}
		}
		if buyRemaining.LessThan(minAdjustment) {
			j++
			if j < len(buys) {
				buyRemaining = buys[j].Adjustment.Abs()
			}
		}
	}

	return moves
}

// FormatMove renders a move as a human-readable suggestion, using the
// display currency's symbol and fraction rules.
func FormatMove(m domain.RebalanceMove, currencyCode string) string {
	return fmt.Sprintf("Move %s from %s to %s", formatAmount(m.Amount, currencyCode), m.FromCategory, m.ToCategory)
}

func formatAmount(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), currencyCode)
	}
	minorUnits := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minorUnits, currencyCode).Display()
}
