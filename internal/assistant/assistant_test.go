package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplyKeywordRouting(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"How do I file my VAT return?", taxResponse},
		{"what are the current tax deadlines", taxResponse},
		{"I want to register a new company", incorporationResponse},
		{"help with business incorporation", incorporationResponse},
		{"my invoice is overdue", invoicingResponse},
		{"billing and payment terms", invoicingResponse},
		{"monthly bookkeeping requirements", financialResponse},
		{"financial statement preparation", financialResponse},
		{"hello there", defaultResponse},
		{"", defaultResponse},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Reply(tc.query), "query: %q", tc.query)
	}
}

func TestReplyCaseInsensitive(t *testing.T) {
	require.Equal(t, taxResponse, Reply("TAX QUESTION"))
	require.Equal(t, incorporationResponse, Reply("Company Setup"))
}

func TestReplyFirstRuleWins(t *testing.T) {
	// "tax" outranks "invoice" when both appear
	require.Equal(t, taxResponse, Reply("tax treatment of an invoice"))
	// "company" outranks "payment"
	require.Equal(t, incorporationResponse, Reply("company payment policy"))
}

func TestReplyDeterministic(t *testing.T) {
	query := "random unrelated question"
	first := Reply(query)
	for range 5 {
		require.Equal(t, first, Reply(query))
	}
}
