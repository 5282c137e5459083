package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("usecases")
	BackendResolutions metric.Int64Counter
	ToolInvocations    metric.Int64Counter
	ChatTurns          metric.Int64Counter
	NoteEvents         metric.Int64Counter
	OutboxRelays       metric.Int64Counter
)

func init() {
	var err error
	BackendResolutions, err = meter.Int64Counter(
		"gateway_backend_resolutions_total",
		metric.WithDescription("Backend endpoint selections by kind"),
	)
	if err != nil {
		panic(err)
	}

	ToolInvocations, err = meter.Int64Counter(
		"gateway_tool_invocations_total",
		metric.WithDescription("Tool invocations by tool and result status"),
	)
	if err != nil {
		panic(err)
	}

	ChatTurns, err = meter.Int64Counter(
		"gateway_chat_turns_total",
		metric.WithDescription("Chat turns by final outcome"),
	)
	if err != nil {
		panic(err)
	}

	NoteEvents, err = meter.Int64Counter(
		"gateway_note_events_total",
		metric.WithDescription("Note lifecycle events consumed from the broker by type"),
	)
	if err != nil {
		panic(err)
	}

	OutboxRelays, err = meter.Int64Counter(
		"gateway_outbox_relays_total",
		metric.WithDescription("Outbox events handled by the relay by result"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordBackendResolution records which endpoint kind served a turn.
func RecordBackendResolution(ctx context.Context, kind domain.BackendKind) {
	BackendResolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
	))
}

// RecordToolInvocation records the outcome of a tool call.
func RecordToolInvocation(ctx context.Context, tool string, status domain.ToolResultStatus) {
	ToolInvocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("status", string(status)),
	))
}

// RecordChatTurn records how a chat turn ended, e.g. "tool", "generation" or an error category.
func RecordChatTurn(ctx context.Context, outcome string) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordNoteEvent records a consumed note lifecycle event.
func RecordNoteEvent(ctx context.Context, eventType domain.EventType) {
	NoteEvents.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", string(eventType)),
	))
}

// RecordOutboxRelay records the outcome of relaying one outbox event.
func RecordOutboxRelay(ctx context.Context, result string) {
	OutboxRelays.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}
