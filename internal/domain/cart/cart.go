// Package cart implements the shopping cart aggregate.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/market-checkout/internal/domain"
	"github.com/xenking/market-checkout/internal/domain/product"
	"github.com/xenking/market-checkout/internal/notify"
)

// Cart holds products in insertion order. It is not safe for concurrent use.
type Cart struct {
	items []*product.Product
	sink  notify.Sink
}

// New creates an empty cart reporting to sink. A nil sink discards events.
func New(sink notify.Sink) *Cart {
	if sink == nil {
		sink = notify.Nop{}
	}
	return &Cart{sink: sink}
}

// AddItem appends p and emits a cart.item_added event.
func (c *Cart) AddItem(p *product.Product) error {
	if p == nil {
		return domain.InvalidArgument("product", "must not be nil")
	}
	c.items = append(c.items, p)
	c.sink.Notify(notify.Event{
		Kind:    notify.KindItemAdded,
		Message: p.Name() + " added to cart.",
	}.WithAmount(p.Price()))
	return nil
}

// Items returns the products in insertion order.
func (c *Cart) Items() []*product.Product {
	out := make([]*product.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Total returns the sum of all item prices, zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.items {
		sum = sum.Add(p.Price())
	}
	return sum
}
