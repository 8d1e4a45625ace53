// Package discount implements the pricing strategies a checkout can apply to
// a cart total.
package discount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/market-checkout/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Type enumerates the supported discount strategies.
type Type string

const (
	// TypePercentage reduces the amount by a percentage of itself.
	TypePercentage Type = "percentage"
	// TypeFixed subtracts a fixed monetary amount.
	TypeFixed Type = "fixed"
)

// Policy maps an amount to its discounted amount. Apply must be a pure
// function of its input.
type Policy interface {
	Apply(amount decimal.Decimal) decimal.Decimal
	Describe() string
}

var (
	_ Policy = Percentage{}
	_ Policy = Fixed{}
)

// Percentage takes a percentage off the amount.
type Percentage struct {
	percent decimal.Decimal
}

// NewPercentage creates a Percentage policy. percent must be within [0, 100].
func NewPercentage(percent decimal.Decimal) (Percentage, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Percentage{}, domain.InvalidArgument("percent", fmt.Sprintf("must be within [0, 100], got %s", percent))
	}
	return Percentage{percent: percent}, nil
}

// Percent returns the configured percentage.
func (p Percentage) Percent() decimal.Decimal { return p.percent }

// Apply returns amount - amount*percent/100. The result is not rounded.
func (p Percentage) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(p.percent).Div(hundred))
}

// Describe implements Policy.
func (p Percentage) Describe() string {
	return p.percent.String() + "% off"
}

// Fixed subtracts a constant amount. The result may become negative; callers
// decide whether that is acceptable.
type Fixed struct {
	amount decimal.Decimal
}

// NewFixed creates a Fixed policy. amount must not be negative.
func NewFixed(amount decimal.Decimal) (Fixed, error) {
	if amount.IsNegative() {
		return Fixed{}, domain.InvalidArgument("amount", fmt.Sprintf("must not be negative, got %s", amount))
	}
	return Fixed{amount: amount}, nil
}

// Amount returns the amount subtracted by the policy.
func (f Fixed) Amount() decimal.Decimal { return f.amount }

// Apply returns amount - fixed amount, without clamping at zero.
func (f Fixed) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(f.amount)
}

// Describe implements Policy.
func (f Fixed) Describe() string {
	return f.amount.String() + " off"
}

// Rule is the declarative form of a Policy, as found in configuration.
type Rule struct {
	Type  Type
	Value decimal.Decimal
}

// FromRule builds the Policy described by rule.
func FromRule(rule Rule) (Policy, error) {
	switch Type(strings.ToLower(string(rule.Type))) {
	case TypePercentage:
		p, err := NewPercentage(rule.Value)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeFixed:
		f, err := NewFixed(rule.Value)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, domain.InvalidArgument("type", fmt.Sprintf("unsupported discount type %q", rule.Type))
	}
}
