package blizzard

import (
	"context"
	"errors"
	"io"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidLegs is returned when a trip has fewer than one leg.
var ErrInvalidLegs = errors.New("blizzard: legs must be at least 1")

// Option configures a Plan via functional arguments.
type Option func(*Options)

// Options holds the parameters of Plan.
type Options struct {
	// Ctx cancels cache construction and the search.
	Ctx context.Context

	// Logger receives debug records about the cache and each leg.
	// The library never logs errors; they are returned.
	Logger log.FieldLogger
}

// DefaultOptions returns Options with a background context and a logger
// that discards everything.
func DefaultOptions() Options {
	silent := log.New()
	silent.Out = io.Discard
	return Options{
		Ctx:    context.Background(),
		Logger: silent,
	}
}

// WithContext lets ctx cancel cache construction and every leg search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l log.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
