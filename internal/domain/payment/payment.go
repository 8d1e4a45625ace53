// Package payment implements the ways a checkout amount can be settled.
//
// Settling is an acknowledgement only: no payment processor is contacted and
// no ledger is kept. Each settlement produces a Receipt.
package payment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/market-checkout/internal/domain"
)

// Kind enumerates the payment methods.
type Kind string

const (
	KindCard     Kind = "card"
	KindCash     Kind = "cash"
	KindTransfer Kind = "transfer"
)

// ParseKind parses a case-insensitive payment kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCard, KindCash, KindTransfer:
		return k, nil
	default:
		return "", domain.InvalidArgument("kind", fmt.Sprintf("unknown payment method %q", s))
	}
}

// Receipt acknowledges a settled amount.
type Receipt struct {
	ID           uuid.UUID
	Method       Kind
	Amount       decimal.Decimal
	Confirmation string
}

// Method settles an amount.
type Method interface {
	Kind() Kind
	Settle(amount decimal.Decimal) (*Receipt, error)
}

var (
	_ Method = Card{}
	_ Method = Cash{}
	_ Method = Transfer{}
)

// Card settles by credit card.
type Card struct{}

// Kind implements Method.
func (Card) Kind() Kind { return KindCard }

// Settle implements Method.
func (Card) Settle(amount decimal.Decimal) (*Receipt, error) {
	return settle(KindCard, amount, "%s paid by credit card.")
}

// Cash settles in cash.
type Cash struct{}

// Kind implements Method.
func (Cash) Kind() Kind { return KindCash }

// Settle implements Method.
func (Cash) Settle(amount decimal.Decimal) (*Receipt, error) {
	return settle(KindCash, amount, "%s paid in cash.")
}

// Transfer settles by bank transfer.
type Transfer struct{}

// Kind implements Method.
func (Transfer) Kind() Kind { return KindTransfer }

// Settle implements Method.
func (Transfer) Settle(amount decimal.Decimal) (*Receipt, error) {
	return settle(KindTransfer, amount, "%s paid by bank transfer.")
}

// ForKind returns the Method for k.
func ForKind(k Kind) (Method, error) {
	switch k {
	case KindCard:
		return Card{}, nil
	case KindCash:
		return Cash{}, nil
	case KindTransfer:
		return Transfer{}, nil
	default:
		return nil, domain.InvalidArgument("kind", fmt.Sprintf("unknown payment method %q", k))
	}
}

func settle(k Kind, amount decimal.Decimal, format string) (*Receipt, error) {
	if amount.IsNegative() {
		return nil, domain.InvalidArgument("amount", fmt.Sprintf("must not be negative, got %s", amount))
	}
	return &Receipt{
		ID:           uuid.New(),
		Method:       k,
		Amount:       amount,
		Confirmation: fmt.Sprintf(format, amount),
	}, nil
}
