package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider that reports
// wall-clock time in the gateway's configured time zone.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a provider for the given location. A nil location means UTC.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time in the provider's location.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(ts.loc)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
// Relative note filters such as "yesterday" are resolved in TimeZone.
type InitCurrentTimeProvider struct {
	TimeZone string `config:"TIME_ZONE" default:"Europe/Berlin"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.TimeZone)
	if err != nil {
		return ctx, fmt.Errorf("invalid time zone %q: %w", its.TimeZone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
