package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		timeZone  string
		expectErr bool
	}{
		"berlin": {
			timeZone: "Europe/Berlin",
		},
		"utc": {
			timeZone: "UTC",
		},
		"unknown-zone": {
			timeZone:  "Mars/Olympus_Mons",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := &InitCurrentTimeProvider{TimeZone: tt.timeZone}

			_, err := i.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			p, err := depend.Resolve[domain.CurrentTimeProvider]()
			assert.NoError(t, err)
			assert.Equal(t, tt.timeZone, p.Now().Location().String())
		})
	}
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	p := NewCurrentTimeProvider(nil)
	now := p.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())

	assert.Equal(t, time.UTC, CurrentTimeProvider{}.Now().Location())
}
