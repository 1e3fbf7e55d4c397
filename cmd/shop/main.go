package main

import (
	"context"
	"os"

	"github.com/Yashkatiyar24/E-commerce-app/internal/cart"
	"github.com/Yashkatiyar24/E-commerce-app/internal/catalog"
	"github.com/Yashkatiyar24/E-commerce-app/internal/checkout"
	"github.com/Yashkatiyar24/E-commerce-app/internal/orders"
	"github.com/Yashkatiyar24/E-commerce-app/internal/storage"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/config"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/enums"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/logger"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "shop"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "shop",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)
	persistenceMetrics := metrics.NewPersistenceMetrics(registry)

	store := cart.NewStore()
	recorder := orders.NewRecorder()

	if cfg.Storage.Enabled {
		conn, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			logg.Error(context.Background(), "failed to open local storage", err)
			os.Exit(1)
		}
		defer func() {
			if err := storage.Close(conn); err != nil {
				logg.Error(context.Background(), "error closing local storage", err)
			}
		}()

		adapter, err := storage.New(conn, logg, storage.Options{
			QueueSize:    cfg.Storage.QueueSize,
			WriteRetries: cfg.Storage.WriteRetries,
			WriteBackoff: cfg.Storage.WriteBackoff,
			Metrics:      persistenceMetrics,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to build persistence adapter", err)
			os.Exit(1)
		}
		defer func() {
			if err := adapter.Close(); err != nil {
				logg.Error(context.Background(), "error closing persistence adapter", err)
			}
		}()

		hydrateCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.HydrateWithin)
		if err := adapter.Hydrate(hydrateCtx, store, recorder); err != nil {
			logg.Warn(context.Background(), "hydration completed with issues: "+err.Error())
		}
		cancel()

		if err := adapter.Attach(store, recorder); err != nil {
			logg.Error(context.Background(), "failed to attach persistence adapter", err)
			os.Exit(1)
		}
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"storage": cfg.Storage.Enabled,
	})
	logg.Info(ctx, "starting shop engine")

	cat := catalog.Default()
	logg.Info(logg.WithField(ctx, "products", len(cat.Products())), "catalog loaded")

	machine, err := checkout.NewMachine(store, recorder, checkout.Options{
		CardDetails:     cfg.Checkout.CardDetails,
		AddressSnapshot: cfg.Checkout.AddressSnapshot,
	}, checkoutMetrics)
	if err != nil {
		logg.Error(ctx, "failed to build checkout machine", err)
		os.Exit(1)
	}

	if err := runDemo(ctx, logg, cat, store, recorder, machine, cfg.Checkout.CardDetails); err != nil {
		logg.Error(ctx, "demo checkout failed", err)
		os.Exit(1)
	}

	dumpMetrics(ctx, logg, registry)
}

// runDemo walks one scripted shopper through the full flow: browse, fill the
// cart, clear validation on each step and place the order.
func runDemo(ctx context.Context, logg *logger.Logger, cat *catalog.Catalog, store *cart.Store, recorder *orders.Recorder, machine *checkout.Machine, cardDetails bool) error {
	if headphones, ok := cat.ByID("p1"); ok {
		store.AddItem(headphones, 2)
	}
	if mug, ok := cat.ByID("p5"); ok {
		store.AddItem(mug, 1)
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"count": store.Count(),
		"total": store.Total().String(),
	}), "cart filled")

	if !checkout.CanEnter(store, recorder) {
		logg.Warn(ctx, "checkout not reachable, skipping demo flow")
		return nil
	}

	machine.Set(checkout.FieldName, "Alex Johnson")
	machine.Set(checkout.FieldEmail, "alex@example.com")
	machine.Set(checkout.FieldPhone, "9876543210")
	if !machine.Advance() {
		logg.Warn(logg.WithStep(ctx, machine.Step().String()), "identity step rejected")
		return nil
	}

	machine.Set(checkout.FieldLine, "221B Baker Street")
	machine.Set(checkout.FieldCity, "Mumbai")
	machine.Set(checkout.FieldState, "MH")
	machine.Set(checkout.FieldPincode, "400001")
	if !machine.Advance() {
		logg.Warn(logg.WithStep(ctx, machine.Step().String()), "shipping step rejected")
		return nil
	}

	if cardDetails {
		machine.Set(checkout.FieldPayment, enums.PaymentMethodCard.String())
		machine.Set(checkout.FieldCardNumber, "4111111111111111")
		machine.Set(checkout.FieldExpiry, "08/27")
		machine.Set(checkout.FieldCVV, "123")
		machine.Set(checkout.FieldCardName, "Alex Johnson")
		machine.Set(checkout.FieldBilling, "221B Baker Street, Mumbai")
	} else {
		machine.Set(checkout.FieldPayment, enums.PaymentMethodUPI.String())
	}

	summary, err := machine.Submit()
	if err != nil {
		return err
	}

	orderCtx := logg.WithOrderID(ctx, summary.ID)
	logg.Info(logg.WithFields(orderCtx, map[string]any{
		"items": len(summary.Items),
		"total": summary.Total.String(),
	}), "order placed")

	// Confirmation viewed; the shopper moves on.
	recorder.Reset()
	logg.Info(orderCtx, "order confirmation dismissed")
	return nil
}

func dumpMetrics(ctx context.Context, logg *logger.Logger, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		logg.Error(ctx, "failed to gather metrics", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := map[string]any{"metric": family.GetName()}
			for _, label := range metric.GetLabel() {
				fields[label.GetName()] = label.GetValue()
			}
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				fields["value"] = metric.GetCounter().GetValue()
			case dto.MetricType_HISTOGRAM:
				fields["count"] = metric.GetHistogram().GetSampleCount()
				fields["sum"] = metric.GetHistogram().GetSampleSum()
			default:
				continue
			}
			logg.Info(logg.WithFields(ctx, fields), "metric sample")
		}
	}
}
