package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	serviceNamespace = "moviemate"

	catalogBackendKey = attribute.Key("moviemate.catalog.backend")
	tmdbEnabledKey    = attribute.Key("moviemate.provider.tmdb.enabled")
	omdbEnabledKey    = attribute.Key("moviemate.provider.omdb.enabled")
	rateLimitKey      = attribute.Key("moviemate.rate_limit.enabled")
)

const metricExportInterval = 15 * time.Second

// telemetryResource describes this process to the collector: which catalog
// backend serves the movies and which external movie providers are
// configured. OTEL_RESOURCE_ATTRIBUTES can add to it.
func telemetryResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceNamespace(serviceNamespace),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(cfg.Env),
			catalogBackendKey.String(cfg.CatalogBackend),
			tmdbEnabledKey.Bool(cfg.TMDB.APIKey != ""),
			omdbEnabledKey.Bool(cfg.OMDb.APIKey != ""),
			rateLimitKey.Bool(cfg.RateLimit.Enabled),
		),
	)
}

type telemetryProviders struct {
	tracer *trace.TracerProvider
	meter  *metric.MeterProvider
	logger *log.LoggerProvider
}

func newTelemetryProviders(ctx context.Context, endpoint string, res *resource.Resource) (*telemetryProviders, error) {
	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel metric exporter: %w", err)
	}

	logExporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel log exporter: %w", err)
	}

	return &telemetryProviders{
		tracer: trace.NewTracerProvider(
			trace.WithSampler(trace.AlwaysSample()),
			trace.WithResource(res),
			trace.WithBatcher(traceExporter),
		),
		meter: metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(metricExportInterval))),
		),
		logger: log.NewLoggerProvider(
			log.WithResource(res),
			log.WithProcessor(log.NewBatchProcessor(logExporter)),
		),
	}, nil
}

func (p *telemetryProviders) shutdown(ctx context.Context) error {
	return errors.Join(
		p.tracer.Shutdown(ctx),
		p.meter.Shutdown(ctx),
		p.logger.Shutdown(ctx),
	)
}

// InitTelemetry exports traces, metrics and logs to the configured collector
// and returns a shutdown function. Without a collector URL it does nothing.
func (app *Application) InitTelemetry() (func(context.Context), error) {
	if app.config.OtelCollectorUrl == "" {
		app.logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := telemetryResource(ctx, app.config)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	providers, err := newTelemetryProviders(ctx, app.config.OtelCollectorUrl, res)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(providers.tracer)
	otel.SetMeterProvider(providers.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	global.SetLoggerProvider(providers.logger)

	// records keep going to stdout and are also exported to the collector
	app.logger = slog.New(NewMultiHandler(
		app.logger.Handler(),
		otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(providers.logger)),
	)).With("catalog_backend", app.config.CatalogBackend)

	app.logger.Info("telemetry enabled", "collector", app.config.OtelCollectorUrl)

	return func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := providers.shutdown(shutdownCtx)
		if err != nil {
			app.logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}, nil
}

// MultiHandler is a slog.Handler that dispatches log records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler that forwards records to the provided handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{
		handlers: handlers,
	}
}

// Enabled reports whether any of the underlying handlers are enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle dispatches the record to all underlying handlers.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		// one failing sink must not drop the record for the others
		_ = handler.Handle(ctx, record.Clone())
	}
	return nil
}

// WithAttrs creates a new MultiHandler with the provided attributes added to each sub-handler.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: newHandlers}
}

// WithGroup creates a new MultiHandler with the provided group name added to each sub-handler.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: newHandlers}
}
