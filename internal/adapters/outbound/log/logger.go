package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Every component logs through the same instance, prefixing its messages with its own name.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"chatgateway "`
	// Clock is "utc" or "local".
	Clock  string `config:"LOG_CLOCK" default:"utc"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(il.Prefix, il.Clock != "local"))
	return ctx, nil
}

// NewLogger creates the gateway logger writing to stdout.
func NewLogger(prefix string, utc bool) *log.Logger {
	flags := log.LstdFlags | log.Lmsgprefix
	if utc {
		flags |= log.LUTC
	}
	return log.New(os.Stdout, prefix, flags)
}
