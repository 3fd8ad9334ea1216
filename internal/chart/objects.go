package chart

import "github.com/ilbagatto/go-astrologer/internal/astro"

// Object is a celestial body placed in a chart. Instances are built by
// the chart and read-only afterwards.
type Object struct {
	Body        astro.Body
	Position    astro.EclipticPosition
	DailyMotion float64 // degrees/day, signed; negative when retrograde
	House       int     // house index 0-11, assigned once cusps are known
}

// Retrograde reports whether the body moves backwards through the zodiac.
func (o Object) Retrograde() bool {
	return o.DailyMotion < 0
}
