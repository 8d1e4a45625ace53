// Package checkout runs the checkout sequence: fill a cart, apply a discount,
// settle the payment and create an order.
package checkout

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/market-checkout/internal/domain/cart"
	"github.com/xenking/market-checkout/internal/domain/customer"
	"github.com/xenking/market-checkout/internal/domain/discount"
	"github.com/xenking/market-checkout/internal/domain/order"
	"github.com/xenking/market-checkout/internal/domain/payment"
	"github.com/xenking/market-checkout/internal/domain/product"
)

// ErrNoPaymentMethod is returned when a scenario has no payment method.
var ErrNoPaymentMethod = errors.New("payment method required")

// Step names a stage of the checkout sequence.
type Step string

const (
	StepDescribeProducts Step = "describe products"
	StepFillCart         Step = "fill cart"
	StepSettlePayment    Step = "settle payment"
	StepCreateOrder      Step = "create order"
)

// StepError reports the step at which the sequence was aborted.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Scenario holds the input of a checkout run.
type Scenario struct {
	// Customer is described before checkout when set.
	Customer customer.Customer
	Products []*product.Product
	// Discount is skipped when nil.
	Discount discount.Policy
	Payment  payment.Method
	OrderID  int64
	// Status is applied to the new order; an empty status leaves it Preparing.
	Status order.Status
}

// Result holds the output of a successful checkout run.
type Result struct {
	Cart       *cart.Cart
	Total      decimal.Decimal
	Discounted decimal.Decimal
	Receipt    *payment.Receipt
	Order      *order.Order
}
