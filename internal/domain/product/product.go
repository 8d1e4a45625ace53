package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/market-checkout/internal/domain"
	"github.com/xenking/market-checkout/internal/domain/money"
)

// Product represents a catalog item available for purchase. It is immutable
// once constructed.
type Product struct {
	id    int64
	name  string
	price decimal.Decimal
}

// New creates a Product, rejecting a blank name or a negative price.
func New(id int64, name string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.InvalidArgument("name", "must not be empty")
	}
	if price.IsNegative() {
		return nil, domain.InvalidArgument("price", fmt.Sprintf("must not be negative, got %s", price))
	}
	return &Product{id: id, name: name, price: price}, nil
}

// ID returns the product identifier.
func (p *Product) ID() int64 { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Describe renders the product as "Product ID: 1, Name: Elma, Price: 10 TL".
func (p *Product) Describe(cur money.Currency) string {
	return fmt.Sprintf("Product ID: %d, Name: %s, Price: %s", p.id, p.name, cur.Format(p.price))
}
