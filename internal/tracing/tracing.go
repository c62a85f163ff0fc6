package tracing

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

// Init configures an OTLP HTTP exporter when an endpoint is configured.
// Without one, tracing stays a no-op and the returned shutdown does nothing.
func Init(ctx context.Context, logger *zap.SugaredLogger, cfg config.TracingConfig, environment string) (func(context.Context) error, error) {
	if cfg.OTLP_ENDPOINT == "" {
		logger.Info("Tracing disabled: OTEL_EXPORTER_OTLP_ENDPOINT not set")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.OTLP_ENDPOINT), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	logger.Infof("Tracing initialized with endpoint: %s", cfg.OTLP_ENDPOINT)

	return tp.Shutdown, nil
}
