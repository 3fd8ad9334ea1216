// Package chart implements astrological chart calculation: sensitive
// points, house cusps under nine systems, aspect detection with pluggable
// orb policies, stellium partitioning, and the Radix chart that ties them
// together.
//
// Point and cusp math works in radians; chart-facing results are degrees.
package chart

import (
	"math"

	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// SensitivePoints holds the computed chart angles, in degrees.
type SensitivePoints struct {
	Ascendant float64
	Midheaven float64
	Vertex    float64
	EastPoint float64
}

// Midheaven computes the Medium Coeli, the intersection of the meridian
// and the ecliptic. ramc and eps in radians; result in [0, 2π).
func Midheaven(ramc, eps float64) float64 {
	x := math.Atan2(math.Tan(ramc), math.Cos(eps))
	if x < 0 {
		x += math.Pi
	}
	if math.Sin(ramc) < 0 {
		x += math.Pi
	}
	return mathutil.ReduceRad(x)
}

// Ascendant computes the point of the zodiac rising on the eastern
// horizon. ramc, eps and the geographic latitude theta in radians,
// latitude positive northwards; result in [0, 2π).
func Ascendant(ramc, eps, theta float64) float64 {
	return mathutil.ReduceRad(math.Atan2(
		math.Cos(ramc),
		-math.Sin(ramc)*math.Cos(eps)-math.Tan(theta)*math.Sin(eps),
	))
}

// Vertex computes the westernmost intersection of the ecliptic with the
// prime vertical. Arguments as for Ascendant; result in [0, 2π).
func Vertex(ramc, eps, theta float64) float64 {
	return Ascendant(ramc+math.Pi, eps, math.Pi/2-theta)
}

// EastPoint computes the equatorial ascendant, the degree rising over the
// eastern horizon at the equator. ramc and eps in radians; result in
// [0, 2π).
func EastPoint(ramc, eps float64) float64 {
	return mathutil.ReduceRad(math.Atan2(
		math.Cos(ramc),
		-math.Sin(ramc)*math.Cos(eps),
	))
}
