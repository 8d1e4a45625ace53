package app

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/market-checkout/internal/domain/checkout"
	"github.com/xenking/market-checkout/internal/notify"
)

// Run wires the sink and checkout service and performs the configured
// checkout. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return run(ctx, lg, os.Stdout, m.TracerProvider(), m.MeterProvider(), cfg)
}

func run(
	ctx context.Context,
	lg *zap.Logger,
	out io.Writer,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	cfg *Config,
) error {
	lg.Info("Initializing",
		zap.String("currency", cfg.Currency),
		zap.String("output", cfg.Output.Format),
	)

	sink, err := newSink(cfg.Output, out, lg)
	if err != nil {
		return errors.Wrap(err, "create sink")
	}

	svc, err := checkout.NewService(sink, cfg.currency(), tp, mp)
	if err != nil {
		return errors.Wrap(err, "create checkout service")
	}

	res, err := runCheckout(ctx, svc, cfg.Scenario)
	if err != nil {
		// Every failure ends up here and is reported once.
		sink.Notify(notify.Event{Kind: notify.KindError, Message: "Error: " + err.Error()})
		lg.Error("Checkout failed", zap.Error(err))
		if cfg.StrictExit {
			return err
		}
		return nil
	}

	lg.Info("Checkout completed",
		zap.Int64("order_id", res.Order.ID()),
		zap.String("status", string(res.Order.Status())),
		zap.Stringer("total", res.Total),
		zap.Stringer("paid", res.Receipt.Amount),
		zap.Stringer("receipt_id", res.Receipt.ID),
	)
	return nil
}

func runCheckout(ctx context.Context, svc *checkout.Service, cfg ScenarioConfig) (res *checkout.Result, err error) {
	err = guard(ctx, func() error {
		sc, err := BuildScenario(cfg)
		if err != nil {
			return err
		}
		res, err = svc.Run(ctx, sc)
		return err
	})
	return res, err
}

// guard runs f and converts a panic into an error, logging it with a stack
// trace.
func guard(ctx context.Context, f func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			zctx.From(ctx).Error("Panic recovered",
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			err = errors.Errorf("panic: %v", rec)
		}
	}()
	return f()
}

// newSink returns the sink for the configured format. The log format reuses
// the application logger.
func newSink(cfg OutputConfig, out io.Writer, lg *zap.Logger) (notify.Sink, error) {
	format, err := notify.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	switch format {
	case notify.FormatJSON:
		return notify.NewJSON(out), nil
	case notify.FormatLog:
		return notify.NewLogger(lg.Named("checkout")), nil
	default:
		return notify.NewWriter(out), nil
	}
}
