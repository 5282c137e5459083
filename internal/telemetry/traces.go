package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("chatgateway")
)

// untracedPaths are polled by orchestrators and readiness checks and are not traced.
var untracedPaths = map[string]struct{}{
	"/healthz": {},
}

// SpanNameFormatter names spans after the matched route pattern, or method and path
// when the request did not go through a pattern-based mux.
func SpanNameFormatter(_ string, r *http.Request) string {
	return routeOf(r)
}

func routeOf(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start a new span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// RecordErrorAndStatus records err in the span and returns true when err is not nil.
// A canceled context only adds an event: the caller went away, the gateway did not fail.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "OK")
		return false
	case errors.Is(err, context.Canceled):
		span.AddEvent("canceled")
		return true
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true
	}
}

// Middleware returns an HTTP middleware that instruments every request except health checks.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithFilter(traced),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
	)
}

func traced(r *http.Request) bool {
	_, skip := untracedPaths[r.URL.Path]
	return !skip
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")

	return strings.ReplaceAll(parts[len(parts)-1], ".", "::")
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithResource(res),
	)
	return provider, exporter, nil
}
