package ephem

import (
	"time"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// StaticRecord is a fixed position with an optional daily motion.
type StaticRecord struct {
	Position astro.EclipticPosition
	Motion   float64 // degrees/day, signed
}

// Static serves positions from an in-memory table, anchored at an epoch.
// It is the simplest Provider implementation and the one used in tests.
type Static struct {
	name      string
	epoch     time.Time
	positions map[astro.Body]StaticRecord
}

// NewStatic builds a static provider. A zero epoch disables motion
// extrapolation: every request returns the recorded position as is.
func NewStatic(name string, epoch time.Time, positions map[astro.Body]StaticRecord) *Static {
	table := make(map[astro.Body]StaticRecord, len(positions))
	for body, rec := range positions {
		table[body] = rec
	}
	return &Static{name: name, epoch: epoch, positions: table}
}

// Name returns the provider name for display/logging.
func (s *Static) Name() string { return s.name }

// Available returns true if the table carries a record for the body.
func (s *Static) Available(body astro.Body) bool {
	_, ok := s.positions[body]
	return ok
}

// Position returns the recorded position, advanced by the daily motion
// when an epoch is set.
func (s *Static) Position(body astro.Body, t time.Time) (astro.EclipticPosition, error) {
	rec, ok := s.positions[body]
	if !ok {
		return astro.EclipticPosition{}, &ErrUnknownBody{Body: body, Provider: s.name}
	}
	pos := rec.Position
	if !s.epoch.IsZero() {
		days := t.Sub(s.epoch).Hours() / 24
		pos.Lambda = mathutil.ReduceDeg(pos.Lambda + rec.Motion*days)
	}
	return pos, nil
}
