package order

import (
	"github.com/xenking/market-checkout/internal/domain"
	"github.com/xenking/market-checkout/internal/domain/cart"
	"github.com/xenking/market-checkout/internal/notify"
)

// Status is a free-form label describing the lifecycle stage of an order.
type Status string

// Lifecycle labels. Any other label is accepted as well.
const (
	StatusPreparing Status = "Preparing"
	StatusConfirmed Status = "Confirmed"
	StatusDelivered Status = "Delivered"
)

// Known reports whether s is one of the lifecycle constants.
func (s Status) Known() bool {
	switch s {
	case StatusPreparing, StatusConfirmed, StatusDelivered:
		return true
	default:
		return false
	}
}

// Order owns a cart and tracks its status. It is not safe for concurrent use.
type Order struct {
	id     int64
	cart   *cart.Cart
	status Status
	sink   notify.Sink
}

// New creates an order for c in the Preparing status.
func New(id int64, c *cart.Cart, sink notify.Sink) (*Order, error) {
	if c == nil {
		return nil, domain.InvalidArgument("cart", "must not be nil")
	}
	if sink == nil {
		sink = notify.Nop{}
	}
	return &Order{
		id:     id,
		cart:   c,
		status: StatusPreparing,
		sink:   sink,
	}, nil
}

// ID returns the order identifier.
func (o *Order) ID() int64 { return o.id }

// Cart returns the cart owned by the order.
func (o *Order) Cart() *cart.Cart { return o.cart }

// Status returns the current status.
func (o *Order) Status() Status { return o.status }

// UpdateStatus overwrites the status and emits an order.status_updated event.
// Transitions are not validated: any status may follow any other.
func (o *Order) UpdateStatus(s Status) {
	o.status = s
	o.sink.Notify(notify.Event{
		Kind:    notify.KindStatusUpdated,
		Message: "Order status updated: " + string(s),
	})
}
