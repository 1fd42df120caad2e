package payhere

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	ok := map[string]string{
		"1000.00": "1000",
		"1000":    "1000",
		" 12.5 ":  "12.5",
		"0.01":    "0.01",
	}
	for in, want := range ok {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		require.True(t, decimal.RequireFromString(want).Equal(got), in)
	}

	for _, in := range []string{"", "-1.00", "+1", "1e3", "1,000.00", "10.001", "abc", ".5", "1."} {
		_, err := ParseAmount(in)
		require.Error(t, err, in)
	}
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "1000.00", FormatAmount(decimal.NewFromInt(1000)))
	require.Equal(t, "0.50", FormatAmount(decimal.RequireFromString("0.5")))
	require.Equal(t, "999.99", FormatAmount(decimal.RequireFromString("999.99")))
}

func TestIsMinorUnitSafe(t *testing.T) {
	require.True(t, IsMinorUnitSafe(decimal.RequireFromString("1000.00")))
	require.True(t, IsMinorUnitSafe(decimal.RequireFromString("0.01")))
	require.False(t, IsMinorUnitSafe(decimal.Zero))
	require.False(t, IsMinorUnitSafe(decimal.RequireFromString("-5")))
	require.False(t, IsMinorUnitSafe(decimal.RequireFromString("1.005")))
}
