package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ListNotesParams holds the parameters for listing notes.
type ListNotesParams struct {
	Query *string
	Since *string
}

// ListNotesOptions defines a function type for specifying options when listing notes.
type ListNotesOptions func(*ListNotesParams)

// WithSearchQuery filters notes whose title or content contain query.
func WithSearchQuery(query string) ListNotesOptions {
	return func(params *ListNotesParams) {
		params.Query = &query
	}
}

// WithSince filters notes created on or after a free-form date such as "today" or "2026-01-15".
func WithSince(since string) ListNotesOptions {
	return func(params *ListNotesParams) {
		params.Since = &since
	}
}

// ListNotes defines the interface for the ListNotes use case.
type ListNotes interface {
	Query(ctx context.Context, ownerID uuid.UUID, limit int, opts ...ListNotesOptions) ([]domain.Note, error)
}

// ListNotesImpl is the implementation of the ListNotes use case.
type ListNotesImpl struct {
	noteRepo     domain.NoteRepository
	timeProvider domain.CurrentTimeProvider
}

// NewListNotesImpl creates a new instance of ListNotesImpl.
func NewListNotesImpl(noteRepo domain.NoteRepository, timeProvider domain.CurrentTimeProvider) ListNotesImpl {
	return ListNotesImpl{
		noteRepo:     noteRepo,
		timeProvider: timeProvider,
	}
}

// Query returns the owner's newest notes. A non-positive limit selects the
// default and larger limits are capped.
func (ln ListNotesImpl) Query(ctx context.Context, ownerID uuid.UUID, limit int, opts ...ListNotesOptions) ([]domain.Note, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	params := ListNotesParams{}
	for _, opt := range opts {
		opt(&params)
	}

	var queryOpts []domain.ListNotesOption
	if params.Query != nil && strings.TrimSpace(*params.Query) != "" {
		queryOpts = append(queryOpts, domain.WithNoteQuery(*params.Query))
	}
	if params.Since != nil && strings.TrimSpace(*params.Since) != "" {
		now := ln.timeProvider.Now()
		since, ok := domain.ParseSince(*params.Since, now, now.Location())
		if !ok {
			err := domain.NewValidationErr(fmt.Sprintf("could not understand the date %q", *params.Since))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		queryOpts = append(queryOpts, domain.WithNotesSince(since))
	}

	notes, err := ln.noteRepo.ListNotes(spanCtx, ownerID, clampNotesLimit(limit), queryOpts...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return notes, nil
}

func clampNotesLimit(limit int) int {
	switch {
	case limit <= 0:
		return domain.DefaultNotesLimit
	case limit > domain.MaxNotesLimit:
		return domain.MaxNotesLimit
	}
	return limit
}

// InitListNotes initializes the ListNotes use case and registers it in the dependency container.
type InitListNotes struct {
	NoteRepo     domain.NoteRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ListNotes use case in the dependency container.
func (i InitListNotes) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListNotes](NewListNotesImpl(i.NoteRepo, i.TimeProvider))
	return ctx, nil
}
