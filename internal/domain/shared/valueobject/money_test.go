package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(1650), UGX)
		require.NoError(t, err)
		assert.Equal(t, UGX, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(1650)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("72000.50", UGX)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(72000.50)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", UGX)
		assert.Error(t, err)
	})
}

func TestNewMoneyUGX(t *testing.T) {
	m := NewMoneyUGX(decimal.NewFromInt(50000))
	assert.Equal(t, UGX, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(50000)))
}

func TestNewMoneyUGXFromInt(t *testing.T) {
	m := NewMoneyUGXFromInt(1650)
	assert.Equal(t, UGX, m.Currency())
	assert.Equal(t, int64(1650), m.Amount().IntPart())
}

func TestZero(t *testing.T) {
	m := Zero(USD)
	assert.True(t, m.IsZero())
	assert.Equal(t, USD, m.Currency())
}

func TestZeroUGX(t *testing.T) {
	m := ZeroUGX()
	assert.True(t, m.IsZero())
	assert.Equal(t, UGX, m.Currency())
}

func TestMoneyIsPositiveNegativeZero(t *testing.T) {
	positive := NewMoneyUGXFromInt(100)
	negative := NewMoneyUGXFromInt(-100)
	zero := ZeroUGX()

	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())
	assert.False(t, positive.IsZero())

	assert.False(t, negative.IsPositive())
	assert.True(t, negative.IsNegative())
	assert.False(t, negative.IsZero())

	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
	assert.True(t, zero.IsZero())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		m1 := NewMoneyUGXFromInt(100000)
		m2 := NewMoneyUGXFromInt(65000)
		result, err := m1.Add(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(165000)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromInt(100, UGX)
		m2, _ := NewMoneyFromInt(50, USD)
		_, err := m1.Add(m2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "different currencies")
	})
}

func TestMoneyMustAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		m1 := NewMoneyUGXFromInt(10)
		m2 := NewMoneyUGXFromInt(20)
		result := m1.MustAdd(m2)
		assert.Equal(t, int64(30), result.Amount().IntPart())
	})

	t.Run("panics for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromInt(10, UGX)
		m2, _ := NewMoneyFromInt(10, USD)
		assert.Panics(t, func() { m1.MustAdd(m2) })
	})
}

func TestMoneySubtract(t *testing.T) {
	t.Run("subtracts same currency", func(t *testing.T) {
		m1 := NewMoneyUGXFromInt(165000)
		m2 := NewMoneyUGXFromInt(40000)
		result, err := m1.Subtract(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(125000)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromInt(100, UGX)
		m2, _ := NewMoneyFromInt(50, USD)
		_, err := m1.Subtract(m2)
		assert.Error(t, err)
	})
}

func TestMoneyMultiply(t *testing.T) {
	m := NewMoneyUGXFromInt(1650)
	result := m.MultiplyByInt(100)
	assert.True(t, result.Amount().Equal(decimal.NewFromInt(165000)))
}

func TestMoneyDivide(t *testing.T) {
	t.Run("divides by non-zero", func(t *testing.T) {
		m := NewMoneyUGXFromInt(100)
		result, err := m.Divide(decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(25)))
	})

	t.Run("fails dividing by zero", func(t *testing.T) {
		m := NewMoneyUGXFromInt(100)
		_, err := m.Divide(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMoneyHalve(t *testing.T) {
	m := NewMoneyUGXFromInt(130000)
	half := m.Halve()
	assert.True(t, half.Amount().Equal(decimal.NewFromInt(65000)))
	assert.Equal(t, UGX, half.Currency())
}

func TestMoneyFloorZero(t *testing.T) {
	t.Run("positive amount unchanged", func(t *testing.T) {
		m := NewMoneyUGXFromInt(500)
		assert.True(t, m.FloorZero().Equals(m))
	})

	t.Run("negative amount floored to zero", func(t *testing.T) {
		m := NewMoneyUGXFromInt(-500)
		assert.True(t, m.FloorZero().IsZero())
		assert.Equal(t, UGX, m.FloorZero().Currency())
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.True(t, ZeroUGX().FloorZero().IsZero())
	})
}

func TestMoneyNegateAbs(t *testing.T) {
	m := NewMoneyUGXFromInt(100)
	neg := m.Negate()
	assert.True(t, neg.IsNegative())
	assert.True(t, neg.Abs().Equals(m))
}

func TestMoneyRound(t *testing.T) {
	m, _ := NewMoneyUGXFromString("123.456")
	rounded := m.Round(2)
	assert.Equal(t, "123.46", rounded.StringFixed(2))
}

func TestMoneyComparisons(t *testing.T) {
	small := NewMoneyUGXFromInt(100)
	large := NewMoneyUGXFromInt(200)
	other, _ := NewMoneyFromInt(100, USD)

	t.Run("less than", func(t *testing.T) {
		lt, err := small.LessThan(large)
		require.NoError(t, err)
		assert.True(t, lt)
	})

	t.Run("greater than or equal", func(t *testing.T) {
		gte, err := large.GreaterThanOrEqual(small)
		require.NoError(t, err)
		assert.True(t, gte)

		gte, err = small.GreaterThanOrEqual(small)
		require.NoError(t, err)
		assert.True(t, gte)
	})

	t.Run("comparison across currencies fails", func(t *testing.T) {
		_, err := small.LessThan(other)
		assert.Error(t, err)
		_, err = small.GreaterThan(other)
		assert.Error(t, err)
		_, err = small.LessThanOrEqual(other)
		assert.Error(t, err)
	})

	t.Run("equals", func(t *testing.T) {
		assert.True(t, small.Equals(NewMoneyUGXFromInt(100)))
		assert.False(t, small.Equals(large))
		assert.False(t, small.Equals(other))
	})
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyUGXFromInt(1650)
	assert.Equal(t, "1650.00 UGX", m.String())
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		m := NewMoneyUGXFromInt(72000)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"72000","currency":"UGX"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var m Money
		err := json.Unmarshal([]byte(`{"amount":"1650","currency":"UGX"}`), &m)
		require.NoError(t, err)
		assert.Equal(t, UGX, m.Currency())
		assert.Equal(t, int64(1650), m.Amount().IntPart())
	})

	t.Run("unmarshal invalid amount", func(t *testing.T) {
		var m Money
		err := json.Unmarshal([]byte(`{"amount":"abc","currency":"UGX"}`), &m)
		assert.Error(t, err)
	})
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string", func(t *testing.T) {
		var m Money
		err := m.Scan("1650.00")
		require.NoError(t, err)
		assert.Equal(t, int64(1650), m.Amount().IntPart())
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans bytes", func(t *testing.T) {
		var m Money
		err := m.Scan([]byte("250"))
		require.NoError(t, err)
		assert.Equal(t, int64(250), m.Amount().IntPart())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		err := m.Scan(nil)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		err := m.Scan(42)
		assert.Error(t, err)
	})
}

func TestMoneyValue(t *testing.T) {
	m := NewMoneyUGXFromInt(1650)
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "1650", v)
}
