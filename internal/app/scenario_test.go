package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/market-checkout/internal/domain"
	"github.com/xenking/market-checkout/internal/domain/customer"
	"github.com/xenking/market-checkout/internal/domain/order"
	"github.com/xenking/market-checkout/internal/domain/payment"
)

func defaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		OrderID:  1,
		Status:   "Confirmed",
		Payment:  "card",
		Products: []string{"1:Elma:10", "2:Armut:15"},
		Discount: DiscountConfig{Type: "percentage", Value: "10"},
		Customer: CustomerConfig{Kind: "individual", ID: 1, FullName: "Ayşe Yılmaz", NationalID: "12345678901"},
	}
}

func TestBuildScenario_Defaults(t *testing.T) {
	sc, err := BuildScenario(defaultScenarioConfig())
	require.NoError(t, err)

	require.Len(t, sc.Products, 2)
	assert.Equal(t, int64(1), sc.Products[0].ID())
	assert.Equal(t, "Elma", sc.Products[0].Name())
	assert.True(t, decimal.NewFromInt(10).Equal(sc.Products[0].Price()))
	assert.Equal(t, "Armut", sc.Products[1].Name())

	require.NotNil(t, sc.Customer)
	assert.Equal(t, customer.KindIndividual, sc.Customer.Kind())

	require.NotNil(t, sc.Discount)
	assert.True(t, decimal.RequireFromString("22.5").Equal(sc.Discount.Apply(decimal.NewFromInt(25))))

	assert.Equal(t, payment.KindCard, sc.Payment.Kind())
	assert.Equal(t, int64(1), sc.OrderID)
	assert.Equal(t, order.StatusConfirmed, sc.Status)
}

func TestBuildScenario_Optional(t *testing.T) {
	cfg := defaultScenarioConfig()
	cfg.Customer.Kind = ""
	cfg.Discount.Type = ""
	cfg.Payment = "transfer"

	sc, err := BuildScenario(cfg)
	require.NoError(t, err)

	assert.Nil(t, sc.Customer)
	assert.Nil(t, sc.Discount)
	assert.Equal(t, payment.KindTransfer, sc.Payment.Kind())
}

func TestBuildScenario_Corporate(t *testing.T) {
	cfg := defaultScenarioConfig()
	cfg.Customer = CustomerConfig{Kind: "corporate", ID: 9, FullName: "Mehmet Kaya", CompanyName: "Kaya Gıda"}

	sc, err := BuildScenario(cfg)
	require.NoError(t, err)

	corp, ok := sc.Customer.(*customer.Corporate)
	require.True(t, ok)
	assert.Equal(t, "Kaya Gıda", corp.CompanyName())
}

func TestBuildScenario_Errors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *ScenarioConfig)
		wantErrText string
	}{
		{
			name:        "malformed product",
			mutate:      func(cfg *ScenarioConfig) { cfg.Products = []string{"1-Elma-10"} },
			wantErrText: "expected id:name:price",
		},
		{
			name:        "bad product id",
			mutate:      func(cfg *ScenarioConfig) { cfg.Products = []string{"x:Elma:10"} },
			wantErrText: "invalid argument id",
		},
		{
			name:        "bad price",
			mutate:      func(cfg *ScenarioConfig) { cfg.Products = []string{"1:Elma:ten"} },
			wantErrText: "invalid argument price",
		},
		{
			name:        "negative price",
			mutate:      func(cfg *ScenarioConfig) { cfg.Products = []string{"1:Elma:-10"} },
			wantErrText: "must not be negative",
		},
		{
			name:        "duplicate product id",
			mutate:      func(cfg *ScenarioConfig) { cfg.Products = []string{"1:Elma:10", "1:Armut:15"} },
			wantErrText: "duplicate product id 1",
		},
		{
			name:        "percentage out of range",
			mutate:      func(cfg *ScenarioConfig) { cfg.Discount.Value = "150" },
			wantErrText: "build discount",
		},
		{
			name:        "negative fixed discount",
			mutate:      func(cfg *ScenarioConfig) { cfg.Discount = DiscountConfig{Type: "fixed", Value: "-1"} },
			wantErrText: "build discount",
		},
		{
			name:        "unknown payment",
			mutate:      func(cfg *ScenarioConfig) { cfg.Payment = "cheque" },
			wantErrText: "build payment",
		},
		{
			name:        "customer without name",
			mutate:      func(cfg *ScenarioConfig) { cfg.Customer.FullName = "" },
			wantErrText: "build customer",
		},
		{
			name:        "unknown customer kind",
			mutate:      func(cfg *ScenarioConfig) { cfg.Customer.Kind = "vip" },
			wantErrText: "build customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultScenarioConfig()
			tt.mutate(&cfg)

			_, err := BuildScenario(cfg)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantErrText)
		})
	}
}

func TestParseProduct_NameWithColon(t *testing.T) {
	p, err := parseProduct("3: Kahve: Türk :42.5")
	require.NoError(t, err)

	assert.Equal(t, int64(3), p.ID())
	assert.Equal(t, "Kahve: Türk", p.Name())
	assert.True(t, decimal.RequireFromString("42.5").Equal(p.Price()))
}
