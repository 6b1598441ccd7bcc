package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestInvoiceAmountSerializesAsNumber(t *testing.T) {
	invoice := Invoice{
		Amount:   decimal.RequireFromString("1250.50"),
		Currency: "TND",
	}

	out, err := json.Marshal(invoice)
	require.NoError(t, err)
	require.Contains(t, string(out), `"amount":1250.5`)
	require.NotContains(t, string(out), `"amount":"`)
}

func TestInvoiceAmountRoundTripExact(t *testing.T) {
	for _, raw := range []string{"0.01", "19.99", "99999999.99"} {
		amount := decimal.RequireFromString(raw)
		out, err := json.Marshal(amount)
		require.NoError(t, err)

		var back decimal.Decimal
		require.NoError(t, json.Unmarshal(out, &back))
		require.True(t, amount.Equal(back), "amount %s", raw)
	}
}
