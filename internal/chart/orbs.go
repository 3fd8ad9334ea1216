package chart

import (
	"math"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// OrbsMethod decides whether two chart objects are in aspect. There are
// several schools of orb calculation; each implementation encodes one.
//
// Implementations hold only fixed configuration and are safe to share
// across concurrent evaluations.
type OrbsMethod interface {
	// Name returns the method name for display/logging.
	Name() string

	// IsAspect checks whether source and target form the given aspect.
	// arc is the angular distance between the two longitudes in degrees;
	// pass a negative value to have it computed. Passing a precomputed
	// arc lets callers test all fifteen aspects against one measurement.
	IsAspect(source, target Object, asp Aspect, arc float64) (AspectInfo, bool)
}

// arcOrCompute resolves the optional precomputed arc.
func arcOrCompute(source, target Object, arc float64) float64 {
	if arc < 0 {
		return mathutil.ShortestArcDeg(source.Position.Lambda, target.Position.Lambda)
	}
	return arc
}

// Dariot implements the classic orb method of Claude Dariot (1533-1594),
// who introduced moieties (per-body half-orbs): the orb between two
// bodies is the mean of their moieties, regardless of the aspect's
// nature. This was the standard for European Renaissance astrologers.
type Dariot struct{}

// moieties in arc-degrees, by body.
var moieties = map[astro.Body]float64{
	astro.Moon:    12.0,
	astro.Sun:     15.0,
	astro.Mercury: 7.0,
	astro.Venus:   7.0,
	astro.Mars:    8.0,
	astro.Jupiter: 9.0,
	astro.Saturn:  9.0,
	astro.Uranus:  6.0,
	astro.Neptune: 6.0,
	astro.Pluto:   5.0,
}

const defaultMoiety = 4.0

// Moiety returns the half-orb for a body, falling back to the default
// for bodies without a traditional value (the Lunar Node among them).
func Moiety(body astro.Body) float64 {
	if m, ok := moieties[body]; ok {
		return m
	}
	return defaultMoiety
}

// Name returns the method name.
func (Dariot) Name() string { return "Classic (Claude Dariot)" }

// Orb returns the orb between two bodies: the mean of their moieties,
// in arc-degrees.
func (Dariot) Orb(a, b astro.Body) float64 {
	return (Moiety(a) + Moiety(b)) / 2
}

// checkAspect applies the tolerance test shared by the moiety-based
// methods.
func checkAspect(asp Aspect, orb, arc float64) (AspectInfo, bool) {
	delta := math.Abs(arc - asp.Value())
	if delta <= orb {
		return AspectInfo{Aspect: asp, Arc: arc, Delta: delta}, true
	}
	return AspectInfo{}, false
}

// IsAspect implements OrbsMethod.
func (d Dariot) IsAspect(source, target Object, asp Aspect, arc float64) (AspectInfo, bool) {
	arc = arcOrCompute(source, target, arc)
	return checkAspect(asp, d.Orb(source.Body, target.Body), arc)
}

// DeVore implements orb calculation based on the nature of the aspects,
// with literal arc windows from the "Encyclopaedia of Astrology" by
// Nicholas deVore.
type DeVore struct{}

// deVoreRanges holds the [min, max] arc window per aspect. The windows
// are not all centered on the exact value; the Conjunction lower bound is
// negative on purpose, absorbing near-0°/360° wraparound slack under a
// non-circular comparison.
var deVoreRanges = [numAspects][2]float64{
	Conjunction:    {-10.0, 6.0},
	Vigintile:      {17.5, 18.5},
	Quindecile:     {23.5, 24.5},
	Semisextile:    {28.0, 31.0},
	Decile:         {35.5, 36.5},
	Sextile:        {56, 63},
	Semisquare:     {42.0, 49.0},
	Quintile:       {71.5, 72.5},
	Square:         {84.0, 96.0},
	Tridecile:      {107.5, 108.5},
	Trine:          {113.0, 125.0},
	Sesquiquadrate: {132.0, 137.0},
	Biquintile:     {143.5, 144.5},
	Quincunx:       {148.0, 151.0},
	Opposition:     {174, 186},
}

// Name returns the method name.
func (DeVore) Name() string { return "By Aspect (Nicholas deVore)" }

// IsAspect implements OrbsMethod.
func (DeVore) IsAspect(source, target Object, asp Aspect, arc float64) (AspectInfo, bool) {
	arc = arcOrCompute(source, target, arc)
	r := deVoreRanges[asp]
	if r[0] <= arc && arc <= r[1] {
		return AspectInfo{Aspect: asp, Arc: arc, Delta: math.Abs(arc - asp.Value())}, true
	}
	return AspectInfo{}, false
}

// ClassicWithAspectRatio combines the Dariot orb with coefficients for
// the lesser aspect classes: the classic orb is scaled by 0.6 for minor
// aspects and 0.5 for Kepler aspects before the tolerance test.
type ClassicWithAspectRatio struct {
	MinorCoeff  float64
	KeplerCoeff float64

	classic Dariot
}

// NewClassicWithAspectRatio returns the combined method with the
// traditional coefficients.
func NewClassicWithAspectRatio() ClassicWithAspectRatio {
	return ClassicWithAspectRatio{MinorCoeff: 0.6, KeplerCoeff: 0.5}
}

// Name returns the method name.
func (ClassicWithAspectRatio) Name() string { return "Classic with regard to Aspect type" }

// IsAspect implements OrbsMethod.
func (c ClassicWithAspectRatio) IsAspect(source, target Object, asp Aspect, arc float64) (AspectInfo, bool) {
	arc = arcOrCompute(source, target, arc)
	orb := c.classic.Orb(source.Body, target.Body)
	switch asp.Flag() {
	case Minor:
		orb *= c.MinorCoeff
	case Kepler:
		orb *= c.KeplerCoeff
	}
	return checkAspect(asp, orb, arc)
}

// FindClosestAspect finds the tightest aspect between two objects among
// the aspect kinds whose classification intersects flags. The arc is
// computed once and shared across all candidate aspects. A nil method
// defaults to ClassicWithAspectRatio; zero flags default to Major.
// The second return is false when no candidate matches.
func FindClosestAspect(source, target Object, method OrbsMethod, flags AspectFlag) (AspectInfo, bool) {
	if method == nil {
		method = NewClassicWithAspectRatio()
	}
	if flags == 0 {
		flags = Major
	}

	var closest AspectInfo
	found := false

	arc := mathutil.ShortestArcDeg(source.Position.Lambda, target.Position.Lambda)
	for asp := Conjunction; asp < numAspects; asp++ {
		if asp.Flag()&flags == 0 {
			continue
		}
		info, ok := method.IsAspect(source, target, asp, arc)
		if !ok {
			continue
		}
		// strict comparison: on equal deltas the earlier aspect wins
		if !found || closest.Delta > info.Delta {
			closest = info
			found = true
		}
	}
	return closest, found
}
