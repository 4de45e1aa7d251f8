package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		a, err := ParseAmount("100.00")
		require.NoError(t, err)
		assert.Equal(t, "100.00", a.String())
	})

	t.Run("Success - integer string", func(t *testing.T) {
		a, err := ParseAmount("42")
		require.NoError(t, err)
		assert.Equal(t, "42.00", a.String())
	})

	t.Run("Negative value", func(t *testing.T) {
		_, err := ParseAmount("-1.00")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Too many decimal places", func(t *testing.T) {
		_, err := ParseAmount("1.005")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := ParseAmount("abc")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestFromMinorUnits(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		a, err := FromMinorUnits(12345)
		require.NoError(t, err)
		assert.Equal(t, "123.45", a.String())
		assert.Equal(t, int64(12345), a.MinorUnits())
	})

	t.Run("Negative units", func(t *testing.T) {
		_, err := FromMinorUnits(-1)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestAmount_Arithmetic(t *testing.T) {
	t.Run("Add and Sub", func(t *testing.T) {
		a := MustParseAmount("10.50")
		b := MustParseAmount("0.75")

		assert.Equal(t, "11.25", a.Add(b).String())
		assert.Equal(t, "9.75", a.Sub(b).String())
	})

	t.Run("Sub below zero", func(t *testing.T) {
		a := MustParseAmount("1.00")
		b := MustParseAmount("2.00")

		diff := a.Sub(b)
		assert.True(t, diff.IsNegative())
	})

	t.Run("MulInt", func(t *testing.T) {
		a := MustParseAmount("19.99")
		assert.Equal(t, "59.97", a.MulInt(3).String())
	})

	t.Run("Equal ignores scale", func(t *testing.T) {
		assert.True(t, MustParseAmount("100").Equal(MustParseAmount("100.00")))
	})
}

func TestAmount_Round(t *testing.T) {
	t.Run("Round half even - down", func(t *testing.T) {
		// 10% от 0.25 = 0.025 → банковское округление к четному: 0.02
		p := MustParsePercent("10")
		got := p.Of(MustParseAmount("0.25")).Round()
		assert.Equal(t, "0.02", got.String())
	})

	t.Run("Round half even - up", func(t *testing.T) {
		// 10% от 0.35 = 0.035 → 0.04
		p := MustParsePercent("10")
		got := p.Of(MustParseAmount("0.35")).Round()
		assert.Equal(t, "0.04", got.String())
	})

	t.Run("Exact value unchanged", func(t *testing.T) {
		a := MustParseAmount("7.00")
		assert.True(t, a.Equal(a.Round()))
	})
}

func TestParsePercent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		p, err := ParsePercent("12.5")
		require.NoError(t, err)
		assert.Equal(t, "12.5", p.String())
	})

	t.Run("Boundaries", func(t *testing.T) {
		_, err := ParsePercent("0")
		assert.NoError(t, err)
		_, err = ParsePercent("100")
		assert.NoError(t, err)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := ParsePercent("-5")
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})

	t.Run("Above 100", func(t *testing.T) {
		_, err := ParsePercent("100.01")
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})
}

func TestPercent_Of(t *testing.T) {
	t.Run("Whole percent", func(t *testing.T) {
		p := MustParsePercent("10")
		got := p.Of(MustParseAmount("100.00"))
		assert.True(t, got.Equal(MustParseAmount("10.00")))
	})

	t.Run("Keeps internal precision until Round", func(t *testing.T) {
		// 70% от 10.01 = 7.007 — внутренняя точность сохраняется,
		// округление происходит только явным Round
		p := MustParsePercent("70")
		raw := p.Of(MustParseAmount("10.01"))
		assert.Equal(t, "7.01", raw.Round().String())
	})

	t.Run("Zero percent", func(t *testing.T) {
		p := MustParsePercent("0")
		assert.True(t, p.Of(MustParseAmount("55.55")).IsZero())
	})
}

func TestAmount_JSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		data, err := json.Marshal(MustParseAmount("99.90"))
		require.NoError(t, err)
		assert.JSONEq(t, `"99.9"`, string(data))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(`"15.50"`), &a))
		assert.True(t, a.Equal(MustParseAmount("15.50")))
	})

	t.Run("Unmarshal negative", func(t *testing.T) {
		var a Amount
		err := json.Unmarshal([]byte(`"-1"`), &a)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}
