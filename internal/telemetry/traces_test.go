package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/notes/123", nil)
	req.Pattern = "GET /api/notes/{id}"
	assert.Equal(t, "GET /api/notes/{id}", SpanNameFormatter("", req))

	req.Pattern = ""
	assert.Equal(t, "GET /api/notes/123", SpanNameFormatter("", req))
}

func TestRecordErrorAndStatus(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedResult bool
		expectedCode   codes.Code
		expectedMsg    string
		expectedError  string
		expectedEvent  string
	}{
		"no-error": {
			expectedCode: codes.Ok,
			expectedMsg:  "OK",
		},
		"error": {
			err:            errors.New("backend unreachable"),
			expectedResult: true,
			expectedCode:   codes.Error,
			expectedMsg:    "backend unreachable",
			expectedError:  "backend unreachable",
		},
		"client-canceled": {
			err:            fmt.Errorf("relay: %w", context.Canceled),
			expectedResult: true,
			expectedCode:   codes.Unset,
			expectedEvent:  "canceled",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			span := &mockSpan{}
			assert.Equal(t, tt.expectedResult, RecordErrorAndStatus(span, tt.err))
			assert.Equal(t, tt.expectedCode, span.statusCode)
			assert.Equal(t, tt.expectedMsg, span.statusMsg)
			assert.Equal(t, tt.expectedError, span.lastError)
			assert.Equal(t, tt.expectedEvent, span.lastEvent)
		})
	}
}

func TestStart(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	tracer = tp.Tracer("test-tracer")

	_, span := Start(t.Context())
	span.End()

	spans := exporter.GetSpans()
	assert.Equal(t, 1, len(spans))
	assert.Equal(t, "telemetry::TestStart", spans[0].Name)
}

func TestTraced(t *testing.T) {
	assert.False(t, traced(httptest.NewRequest(http.MethodGet, "/healthz", nil)))
	assert.True(t, traced(httptest.NewRequest(http.MethodPost, "/api/chat", nil)))
}

func TestWithHttpMetricAttributes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.Pattern = "POST /api/chat"

	attrs := WithHttpMetricAttributes(req)
	assert.Len(t, attrs, 2)
	assert.Equal(t, "POST /api/chat", attrs[0].Value.AsString())
	assert.True(t, attrs[1].Value.AsBool())

	attrs = WithHttpMetricAttributes(httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	assert.False(t, attrs[1].Value.AsBool())
}

type mockSpan struct {
	trace.Span
	lastError  string
	lastEvent  string
	statusCode codes.Code
	statusMsg  string
}

func (m *mockSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}

func (m *mockSpan) AddEvent(name string, _ ...trace.EventOption) {
	m.lastEvent = name
}

func (m *mockSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}
