package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultOutboxMaxRetries = 5

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository stores note events until the message relay publishes them.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates an OutboxRepository running on br, a *sql.DB or *sql.Tx.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateNoteEvent stores a note event to be relayed to the Notes topic.
func (op OutboxRepository) CreateNoteEvent(ctx context.Context, event domain.NoteEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal note event: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			string(domain.OutboxEntityType_Note),
			event.NoteID,
			string(domain.OutboxTopic_Notes),
			string(event.Type),
			payload,
			0,
			defaultOutboxMaxRetries,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents locks and returns up to limit pending events, oldest first.
// Rows locked by another relay are skipped, so concurrent relays never publish the same event.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select(outboxEventFields...).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("query pending outbox events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("outbox.fetched", len(events)))
	return events, nil
}

// UpdateEvent records a failed publish attempt. Events that used up their retries
// are stored with the FAILED status and are no longer fetched.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("outbox.event_id", eventID.String()),
		attribute.String("outbox.status", string(status)),
	))
	defer span.End()

	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("update outbox event %s: %w", eventID, err)
	}
	return nil
}

// DeleteEvent removes a published event.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("outbox.event_id", eventID.String()),
	))
	defer span.End()

	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("delete outbox event %s: %w", eventID, err)
	}
	return nil
}
