package checkout

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/market-checkout/internal/domain"
	"github.com/xenking/market-checkout/internal/domain/cart"
	"github.com/xenking/market-checkout/internal/domain/money"
	"github.com/xenking/market-checkout/internal/domain/order"
	"github.com/xenking/market-checkout/internal/notify"
)

const instrumentationName = "github.com/xenking/market-checkout/internal/domain/checkout"

// Service runs checkout scenarios, reporting every step to a sink.
type Service struct {
	sink     notify.Sink
	currency money.Currency

	tracer   trace.Tracer
	runs     metric.Int64Counter
	failures metric.Int64Counter
	amount   metric.Float64Counter
}

// NewService creates a checkout Service.
func NewService(
	sink notify.Sink,
	currency money.Currency,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) (*Service, error) {
	if sink == nil {
		sink = notify.Nop{}
	}
	meter := mp.Meter(instrumentationName)

	runs, err := meter.Int64Counter("market.checkout.runs",
		metric.WithDescription("Number of checkout runs started"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create runs counter")
	}
	failures, err := meter.Int64Counter("market.checkout.failures",
		metric.WithDescription("Number of checkout runs aborted by an error"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create failures counter")
	}
	amount, err := meter.Float64Counter("market.checkout.amount",
		metric.WithDescription("Settled checkout amount"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create amount counter")
	}

	return &Service{
		sink:     sink,
		currency: currency,
		tracer:   tp.Tracer(instrumentationName),
		runs:     runs,
		failures: failures,
		amount:   amount,
	}, nil
}

// Run executes the checkout sequence for sc. The first failing step aborts
// the run and is returned as a *StepError; steps already done are not undone.
func (s *Service) Run(ctx context.Context, sc Scenario) (_ *Result, rerr error) {
	ctx, span := s.tracer.Start(ctx, "checkout.Run",
		trace.WithAttributes(
			attribute.Int64("order.id", sc.OrderID),
			attribute.Int("cart.items", len(sc.Products)),
		),
	)
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
			s.failures.Add(ctx, 1)
		}
		span.End()
	}()
	s.runs.Add(ctx, 1)

	lg := zctx.From(ctx)

	if sc.Customer != nil {
		s.sink.Notify(notify.Event{Kind: notify.KindCustomer, Message: sc.Customer.Describe()})
	}

	for _, p := range sc.Products {
		if p == nil {
			return nil, &StepError{Step: StepDescribeProducts, Err: domain.InvalidArgument("product", "must not be nil")}
		}
		s.sink.Notify(notify.Event{Kind: notify.KindProduct, Message: p.Describe(s.currency)}.WithAmount(p.Price()))
	}

	// Fill cart.
	c := cart.New(s.sink)
	for _, p := range sc.Products {
		if err := c.AddItem(p); err != nil {
			return nil, &StepError{Step: StepFillCart, Err: err}
		}
	}
	total := c.Total()
	s.sink.Notify(notify.Event{
		Kind:    notify.KindCartTotal,
		Message: "Cart total: " + s.currency.Format(total),
	}.WithAmount(total))

	// Apply discount. A negative result is passed on as is and rejected by
	// the payment step.
	discounted := total
	if sc.Discount != nil {
		discounted = sc.Discount.Apply(total)
		lg.Debug("Discount applied",
			zap.String("policy", sc.Discount.Describe()),
			zap.Stringer("total", total),
			zap.Stringer("discounted", discounted),
		)
		s.sink.Notify(notify.Event{
			Kind:    notify.KindDiscounted,
			Message: "Discounted total: " + s.currency.Format(discounted),
		}.WithAmount(discounted))
	}

	// Settle payment.
	if sc.Payment == nil {
		return nil, &StepError{Step: StepSettlePayment, Err: ErrNoPaymentMethod}
	}
	receipt, err := sc.Payment.Settle(discounted)
	if err != nil {
		return nil, &StepError{Step: StepSettlePayment, Err: err}
	}
	s.sink.Notify(notify.Event{Kind: notify.KindPayment, Message: receipt.Confirmation}.WithAmount(receipt.Amount))
	s.amount.Add(ctx, receipt.Amount.InexactFloat64(),
		metric.WithAttributes(attribute.String("payment.method", string(receipt.Method))),
	)
	lg.Debug("Payment settled",
		zap.Stringer("receipt_id", receipt.ID),
		zap.String("method", string(receipt.Method)),
	)

	// Create order.
	o, err := order.New(sc.OrderID, c, s.sink)
	if err != nil {
		return nil, &StepError{Step: StepCreateOrder, Err: err}
	}
	if sc.Status != "" {
		o.UpdateStatus(sc.Status)
	}
	span.SetAttributes(attribute.String("order.status", string(o.Status())))

	return &Result{
		Cart:       c,
		Total:      total,
		Discounted: discounted,
		Receipt:    receipt,
		Order:      o,
	}, nil
}
