// Package notify provides the output sinks the checkout domain reports to.
//
// Domain types never write to a console directly. Instead they emit Events to
// a Sink injected at construction time, so the same flow can print plain text,
// JSON lines or structured log records, or be recorded in tests.
package notify

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Kind classifies an Event.
type Kind string

const (
	KindProduct       Kind = "product"
	KindCustomer      Kind = "customer"
	KindItemAdded     Kind = "cart.item_added"
	KindCartTotal     Kind = "cart.total"
	KindDiscounted    Kind = "cart.discounted_total"
	KindPayment       Kind = "payment.settled"
	KindStatusUpdated Kind = "order.status_updated"
	KindError         Kind = "error"
)

// Event is a single human-readable notification. Amount is set for events
// that carry a monetary value.
type Event struct {
	Kind    Kind
	Message string
	Amount  decimal.NullDecimal
}

// WithAmount returns a copy of e carrying the given amount.
func (e Event) WithAmount(d decimal.Decimal) Event {
	e.Amount = decimal.NewNullDecimal(d)
	return e
}

// Sink receives events. Implementations are not required to be safe for
// concurrent use.
type Sink interface {
	Notify(e Event)
}

// Format selects a Sink implementation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatLog  Format = "log"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatLog:
		return f, nil
	default:
		return "", errors.Errorf("unsupported output format: %q", s)
	}
}

// Nop discards every event.
type Nop struct{}

// Notify implements Sink.
func (Nop) Notify(Event) {}

// Multi fans an event out to every sink in order.
type Multi []Sink

// Notify implements Sink.
func (m Multi) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}
