package extract

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/rules"
)

func TestPreProcess(t *testing.T) {
	t.Run("nil block trims", func(t *testing.T) {
		assert.Equal(t, "ABC123", PreProcess("  ABC123 ", nil))
	})

	t.Run("fixed order", func(t *testing.T) {
		pre := &rules.PreProcessing{
			RemoveSpecialChars: true,
			ToUppercase:        true,
			RemoveSpaces:       true,
			RemoveWhitespace:   true,
		}
		assert.Equal(t, "INV AB12", PreProcess("  inv  a*b12 ", pre))
	})
}

func TestPostProcessCurrency(t *testing.T) {
	v, ok := PostProcess("$1,234.50", constants.DataTypeCurrency, nil)
	require.True(t, ok)
	a, isAmount := v.(Amount)
	require.True(t, isAmount)
	assert.True(t, a.Equal(decimal.RequireFromString("1234.50")))
	assert.Equal(t, "1234.50", a.String())
}

func TestCurrencyMarshalsAsNumber(t *testing.T) {
	v, ok := PostProcess("$1,234.50", constants.DataTypeCurrency, nil)
	require.True(t, ok)

	raw, err := json.Marshal(Record{"total": v})
	require.NoError(t, err)
	// A bare number with the cents kept, not a quoted string.
	assert.Equal(t, `{"total":1234.50}`, string(raw))
}

func TestCurrencyMarshalRoundTrip(t *testing.T) {
	v, ok := PostProcess("$99.9", constants.DataTypeCurrency, nil)
	require.True(t, ok)

	raw, err := json.Marshal(Record{"total": v})
	require.NoError(t, err)
	assert.Equal(t, `{"total":99.90}`, string(raw))

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.InDelta(t, 99.90, decoded["total"], 0.001)
}

func TestPostProcessCurrencyUnparseable(t *testing.T) {
	v, ok := PostProcess("n/a", constants.DataTypeCurrency, nil)
	assert.False(t, ok)
	assert.Equal(t, "n/a", v)
}

func TestPostProcessDate(t *testing.T) {
	t.Run("default layouts", func(t *testing.T) {
		v, ok := PostProcess("15/01/2024", constants.DataTypeDate, nil)
		require.True(t, ok)
		assert.Equal(t, "2024-01-15", v)
	})

	t.Run("explicit layouts", func(t *testing.T) {
		post := &rules.PostProcessing{InputFormat: "January 2, 2006", FormatDate: "02 Jan 2006"}
		v, ok := PostProcess("March 5, 2024", constants.DataTypeDate, post)
		require.True(t, ok)
		assert.Equal(t, "05 Mar 2024", v)
	})

	t.Run("unparseable keeps text", func(t *testing.T) {
		v, ok := PostProcess("sometime", constants.DataTypeDate, nil)
		assert.False(t, ok)
		assert.Equal(t, "sometime", v)
	})
}

func TestPostProcessNumber(t *testing.T) {
	two := 2
	v, ok := PostProcess("12.346 kg", constants.DataTypeNumber, &rules.PostProcessing{RoundDecimals: &two})
	require.True(t, ok)
	assert.Equal(t, 12.35, v)
}

func TestValidateField(t *testing.T) {
	t.Run("regex matches whole value", func(t *testing.T) {
		v := &rules.Validation{Regex: `[A-Z]{2}\d+`}
		assert.NoError(t, ValidateField("AB123", v))
		assert.Error(t, ValidateField("xAB123", v))
	})

	t.Run("range", func(t *testing.T) {
		min, max := 1.0, 100.0
		v := &rules.Validation{MinValue: &min, MaxValue: &max}
		assert.NoError(t, ValidateField("$50.00", v))
		assert.Error(t, ValidateField("$150.00", v))
		assert.Error(t, ValidateField("0.5", v))
	})
}
