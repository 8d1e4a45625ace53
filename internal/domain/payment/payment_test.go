package payment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/market-checkout/internal/domain"
)

func TestSettle(t *testing.T) {
	amount := decimal.RequireFromString("22.5")

	tests := []struct {
		method           Method
		wantKind         Kind
		wantConfirmation string
	}{
		{method: Card{}, wantKind: KindCard, wantConfirmation: "22.5 paid by credit card."},
		{method: Cash{}, wantKind: KindCash, wantConfirmation: "22.5 paid in cash."},
		{method: Transfer{}, wantKind: KindTransfer, wantConfirmation: "22.5 paid by bank transfer."},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantKind), func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.method.Kind())

			r, err := tt.method.Settle(amount)
			require.NoError(t, err)
			require.NotNil(t, r)

			assert.NotEqual(t, uuid.Nil, r.ID)
			assert.Equal(t, tt.wantKind, r.Method)
			assert.True(t, amount.Equal(r.Amount))
			assert.Equal(t, tt.wantConfirmation, r.Confirmation)
		})
	}
}

func TestSettle_ZeroAmount(t *testing.T) {
	r, err := Cash{}.Settle(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, r.Amount.IsZero())
}

func TestSettle_NegativeAmount(t *testing.T) {
	for _, m := range []Method{Card{}, Cash{}, Transfer{}} {
		t.Run(string(m.Kind()), func(t *testing.T) {
			r, err := m.Settle(decimal.NewFromInt(-5))
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Nil(t, r)
		})
	}
}

func TestSettle_UniqueReceipts(t *testing.T) {
	a, err := Card{}.Settle(decimal.NewFromInt(1))
	require.NoError(t, err)
	b, err := Card{}.Settle(decimal.NewFromInt(1))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestForKind(t *testing.T) {
	for _, k := range []Kind{KindCard, KindCash, KindTransfer} {
		m, err := ForKind(k)
		require.NoError(t, err)
		assert.Equal(t, k, m.Kind())
	}

	_, err := ForKind("cheque")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Transfer ")
	require.NoError(t, err)
	assert.Equal(t, KindTransfer, k)

	_, err = ParseKind("crypto")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
