package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_GrowthRate(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out := GrowthRate(decimal.NewFromInt(100), decimal.NewFromInt(150))
		require.NotNil(t, out)
		require.True(t, out.Equal(decimal.NewFromFloat(0.5)), out.String())
	})

	t.Run("flat period is zero, not nil", func(t *testing.T) {
		out := GrowthRate(decimal.NewFromInt(100), decimal.NewFromInt(100))
		require.NotNil(t, out)
		require.True(t, out.IsZero())
	})

	t.Run("undefined for zero begin", func(t *testing.T) {
		require.Nil(t, GrowthRate(decimal.Zero, decimal.NewFromInt(150)))
	})

	t.Run("undefined for negative begin", func(t *testing.T) {
		require.Nil(t, GrowthRate(decimal.NewFromInt(-5), decimal.NewFromInt(150)))
	})
}

func Test_ModifiedDietz(t *testing.T) {
	t.Run("no flows equals growth rate", func(t *testing.T) {
		out := ModifiedDietz(decimal.NewFromInt(100), decimal.NewFromInt(110), 30, nil)
		require.NotNil(t, out)
		require.True(t, out.Equal(decimal.NewFromFloat(0.1)), out.String())
	})

	t.Run("flat cash-flow-free period is zero", func(t *testing.T) {
		out := ModifiedDietz(decimal.NewFromInt(100), decimal.NewFromInt(100), 365, []PeriodCashFlow{})
		require.NotNil(t, out)
		require.True(t, out.IsZero())
	})

	t.Run("mid-period inflow is half weighted", func(t *testing.T) {
		// BMV 100, EMV 210, 100 deposited exactly halfway.
		// numerator = 210 - 100 - 100 = 10
		// denominator = 100 + 0.5*100 = 150
		out := ModifiedDietz(
			decimal.NewFromInt(100),
			decimal.NewFromInt(210),
			100,
			[]PeriodCashFlow{{Amount: decimal.NewFromInt(100), DaysSinceStart: 50}},
		)
		require.NotNil(t, out)
		require.True(t, out.Equal(decimal.NewFromInt(10).Div(decimal.NewFromInt(150))), out.String())
	})

	t.Run("flow on period end carries zero weight", func(t *testing.T) {
		out := ModifiedDietz(
			decimal.NewFromInt(100),
			decimal.NewFromInt(150),
			10,
			[]PeriodCashFlow{{Amount: decimal.NewFromInt(50), DaysSinceStart: 10}},
		)
		require.NotNil(t, out)
		// numerator = 150 - 100 - 50 = 0, denominator = 100 + 0*50
		require.True(t, out.IsZero())
	})

	t.Run("undefined for non-positive BMV", func(t *testing.T) {
		require.Nil(t, ModifiedDietz(decimal.Zero, decimal.NewFromInt(10), 30, nil))
	})

	t.Run("undefined for non-positive total days", func(t *testing.T) {
		require.Nil(t, ModifiedDietz(decimal.NewFromInt(100), decimal.NewFromInt(110), 0, nil))
	})

	t.Run("undefined for non-positive denominator", func(t *testing.T) {
		// withdrawal at period start wipes out the weighted base
		out := ModifiedDietz(
			decimal.NewFromInt(100),
			decimal.NewFromInt(10),
			10,
			[]PeriodCashFlow{{Amount: decimal.NewFromInt(-100), DaysSinceStart: 0}},
		)
		require.Nil(t, out)
	})
}

func Test_CumulativeTWR(t *testing.T) {
	t.Run("chains two periods geometrically", func(t *testing.T) {
		r1 := decimal.NewFromFloat(0.1)
		r2 := decimal.NewFromFloat(0.2)
		out := CumulativeTWR([]*decimal.Decimal{&r1, &r2})
		// (1.1)*(1.2) - 1 = 0.32
		require.True(t, out.Equal(decimal.NewFromFloat(0.32)), out.String())
	})

	t.Run("negative period returns chain", func(t *testing.T) {
		r1 := decimal.NewFromFloat(-0.5)
		r2 := decimal.NewFromFloat(1.0)
		out := CumulativeTWR([]*decimal.Decimal{&r1, &r2})
		require.True(t, out.IsZero(), out.String())
	})

	t.Run("nil period return chains as identity", func(t *testing.T) {
		r1 := decimal.NewFromFloat(0.25)
		out := CumulativeTWR([]*decimal.Decimal{&r1, nil, nil})
		require.True(t, out.Equal(decimal.NewFromFloat(0.25)), out.String())
	})

	t.Run("empty series is zero", func(t *testing.T) {
		require.True(t, CumulativeTWR(nil).IsZero())
	})
}

func Test_CAGR(t *testing.T) {
	t.Run("doubling over two years", func(t *testing.T) {
		out := CAGR(decimal.NewFromInt(100), decimal.NewFromInt(400), 2)
		require.NotNil(t, out)
		require.InDelta(t, 1.0, out.InexactFloat64(), 1e-9)
	})

	t.Run("fractional years", func(t *testing.T) {
		out := CAGR(decimal.NewFromInt(100), decimal.NewFromInt(110), 0.5)
		require.NotNil(t, out)
		require.InDelta(t, 0.21, out.InexactFloat64(), 1e-9)
	})

	t.Run("undefined inputs", func(t *testing.T) {
		require.Nil(t, CAGR(decimal.Zero, decimal.NewFromInt(10), 1))
		require.Nil(t, CAGR(decimal.NewFromInt(10), decimal.Zero, 1))
		require.Nil(t, CAGR(decimal.NewFromInt(10), decimal.NewFromInt(20), 0))
	})
}

func Test_AllocationPercent(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out := AllocationPercent(decimal.NewFromInt(250), decimal.NewFromInt(1000))
		require.True(t, out.Equal(decimal.NewFromInt(25)), out.String())
	})

	t.Run("empty portfolio reports zero, not nil", func(t *testing.T) {
		out := AllocationPercent(decimal.NewFromInt(250), decimal.Zero)
		require.True(t, out.IsZero())
	})
}
