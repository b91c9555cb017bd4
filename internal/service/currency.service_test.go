package service

import (
	"testing"

	"portfoliotracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func eurTable() *domain.ExchangeRate {
	return &domain.ExchangeRate{
		Base: "EUR",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(1.25),
			"GBP": decimal.NewFromFloat(0.8),
		},
	}
}

func Test_Convert(t *testing.T) {
	t.Run("same currency needs no table", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(100), "usd", "USD", nil)
		require.True(t, out.Equal(decimal.NewFromInt(100)))
	})

	t.Run("nil table degrades to identity", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(100), "EUR", "USD", nil)
		require.True(t, out.Equal(decimal.NewFromInt(100)))
	})

	t.Run("from base multiplies", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(100), "EUR", "USD", eurTable())
		require.True(t, out.Equal(decimal.NewFromInt(125)), out.String())
	})

	t.Run("to base divides", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(125), "USD", "EUR", eurTable())
		require.True(t, out.Equal(decimal.NewFromInt(100)), out.String())
	})

	t.Run("cross rate routes through base", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(125), "USD", "GBP", eurTable())
		// 125 / 1.25 * 0.8 = 80
		require.True(t, out.Equal(decimal.NewFromInt(80)), out.String())
	})

	t.Run("missing rate degrades to identity", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(100), "EUR", "JPY", eurTable())
		require.True(t, out.Equal(decimal.NewFromInt(100)))
	})

	t.Run("non-positive rate guards division", func(t *testing.T) {
		table := &domain.ExchangeRate{
			Base:  "EUR",
			Rates: map[string]decimal.Decimal{"USD": decimal.Zero},
		}
		out := Convert(decimal.NewFromInt(100), "USD", "EUR", table)
		require.True(t, out.Equal(decimal.NewFromInt(100)))
	})

	t.Run("round trip within tolerance", func(t *testing.T) {
		table := eurTable()
		there := Convert(decimal.NewFromFloat(123.45), "EUR", "GBP", table)
		back := Convert(there, "GBP", "EUR", table)
		diff := back.Sub(decimal.NewFromFloat(123.45)).Abs()
		require.True(t, diff.LessThan(decimal.NewFromFloat(0.0001)), diff.String())
	})

	t.Run("rate lookup is case insensitive", func(t *testing.T) {
		table := &domain.ExchangeRate{
			Base:  "EUR",
			Rates: map[string]decimal.Decimal{"usd": decimal.NewFromFloat(1.25)},
		}
		out := Convert(decimal.NewFromInt(100), "EUR", "USD", table)
		require.True(t, out.Equal(decimal.NewFromInt(125)), out.String())
	})
}

func Test_CanConvert(t *testing.T) {
	t.Run("mirrors convert rules", func(t *testing.T) {
		require.True(t, CanConvert("USD", "usd", nil))
		require.False(t, CanConvert("EUR", "USD", nil))
		require.True(t, CanConvert("EUR", "USD", eurTable()))
		require.True(t, CanConvert("USD", "GBP", eurTable()))
		require.False(t, CanConvert("EUR", "JPY", eurTable()))
	})
}

func Test_ConvertedTotal(t *testing.T) {
	t.Run("sums per-item conversions with display fallback", func(t *testing.T) {
		values := []domain.CompositeAssetValue{
			{Asset: domain.Asset{Name: "fund", Currency: "USD"}, Value: decimal.NewFromInt(125)},
			// empty currency means "already in display currency"
			{Asset: domain.Asset{Name: "cash"}, Value: decimal.NewFromInt(50)},
		}
		out := ConvertedTotal(values, "EUR", eurTable())
		require.True(t, out.Equal(decimal.NewFromInt(150)), out.String())
	})
}

func Test_NetCashFlow(t *testing.T) {
	t.Run("signed flows net out", func(t *testing.T) {
		ops := []domain.CashFlowOperation{
			{Description: "deposit", Amount: decimal.NewFromInt(125), Currency: "USD"},
			{Description: "withdrawal", Amount: decimal.NewFromInt(-40), Currency: "EUR"},
		}
		out := NetCashFlow(ops, "EUR", eurTable())
		require.True(t, out.Equal(decimal.NewFromInt(60)), out.String())
	})
}

func Test_CategoryBreakdown(t *testing.T) {
	t.Run("buckets by current category, uncategorized under nil", func(t *testing.T) {
		equities := uuid.New()
		values := []domain.CompositeAssetValue{
			{Asset: domain.Asset{Name: "etf", CategoryID: &equities}, Value: decimal.NewFromInt(700)},
			{Asset: domain.Asset{Name: "etf2", CategoryID: &equities}, Value: decimal.NewFromInt(100)},
			{Asset: domain.Asset{Name: "misc"}, Value: decimal.NewFromInt(200)},
		}

		out := CategoryBreakdown(values, "EUR", nil)
		require.True(t, out[equities].Equal(decimal.NewFromInt(800)))
		require.True(t, out[uuid.Nil].Equal(decimal.NewFromInt(200)))

		slices := CategorySlices(out, []domain.Category{
			{CategoryID: equities, Name: "Equities", DisplayOrder: 0},
		}, decimal.NewFromInt(1000))
		require.Len(t, slices, 2)
		require.Equal(t, "Equities", slices[0].Name)
		require.True(t, slices[0].AllocationPercent.Equal(decimal.NewFromInt(80)))
		require.Equal(t, "Uncategorized", slices[1].Name)
		require.True(t, slices[1].AllocationPercent.Equal(decimal.NewFromInt(20)))
	})
}
