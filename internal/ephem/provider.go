// Package ephem provides ephemeris data for celestial body positions.
//
// The package does not compute ephemerides itself; it defines the seam
// through which a chart obtains positions, plus simple providers backed
// by precomputed data.
package ephem

import (
	"fmt"
	"time"

	"github.com/ilbagatto/go-astrologer/internal/astro"
)

// Provider defines the interface for ephemeris data sources.
//
// Implementations must be safe for concurrent use: a chart may request
// positions for several bodies and moments from multiple goroutines.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns the apparent ecliptic position of a body at a
	// given moment. Callers derive daily motion themselves by requesting
	// the position one day later.
	Position(body astro.Body, t time.Time) (astro.EclipticPosition, error)

	// Available returns true if this provider can supply data for the body.
	Available(body astro.Body) bool
}

// ErrUnknownBody reports a position request the provider cannot serve.
type ErrUnknownBody struct {
	Body     astro.Body
	Provider string
}

func (e *ErrUnknownBody) Error() string {
	return fmt.Sprintf("provider %q has no data for %s", e.Provider, e.Body)
}
