package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// HouseSystem identifies a method of dividing the ecliptic into houses.
type HouseSystem int

const (
	Placidus HouseSystem = iota
	Koch
	Regiomontanus
	Campanus
	Topocentric
	Morinus
	EqualSignCusp
	EqualAsc
	EqualMC
)

var houseSystemNames = [...]string{
	"Placidus",
	"Koch",
	"Regio-Montanus",
	"Campanus",
	"Topocentric",
	"Morinus",
	"Equal (Sign-Cusp)",
	"Equal from Asc",
	"Equal from MC",
}

// String returns the traditional system title.
func (h HouseSystem) String() string {
	if h < Placidus || h > EqualMC {
		return "unknown"
	}
	return houseSystemNames[h]
}

// ParseHouseSystem resolves a system title to its identifier.
func ParseHouseSystem(s string) (HouseSystem, bool) {
	for i, name := range houseSystemNames {
		if name == s {
			return HouseSystem(i), true
		}
	}
	return 0, false
}

// IsQuadrant reports whether the system divides each quadrant between the
// horizon and the meridian, which requires a geographic latitude.
func (h HouseSystem) IsQuadrant() bool {
	switch h {
	case Placidus, Koch, Regiomontanus, Campanus, Topocentric:
		return true
	}
	return false
}

var (
	// ErrPolarLatitude reports a quadrant system invoked at a latitude
	// where quadrant division is undefined: |theta| > 90° - |eps|.
	ErrPolarLatitude = errors.New("quadrant system fails at high latitudes")

	// ErrNotQuadrant reports a non-quadrant system passed to the
	// quadrant dispatcher. This is a programmer error, not a condition a
	// user triggers through normal input.
	ErrNotQuadrant = errors.New("not a quadrant house system")

	// ErrNoConvergence reports that the Placidus fixed-point iteration
	// failed to settle within the iteration cap.
	ErrNoConvergence = errors.New("placidus iteration did not converge")
)

const (
	halfSecond = 0.5 / 3600 // half arcsecond, degrees

	r30  = math.Pi / 6
	r60  = math.Pi / 3
	r90  = math.Pi / 2
	r120 = 2 * math.Pi / 3
	r150 = 5 * math.Pi / 6

	placidusDelta   = 1e-4 // convergence threshold, radians
	placidusMaxIter = 100
)

// placidusArgs drive the per-house iteration: 0-based house tag, divisor
// of the arccosine term, and the seed offset from RAMC.
var placidusArgs = [4]struct {
	house int
	f     float64
	x0    float64
}{
	{10, 3.0, r30},
	{11, 1.5, r60},
	{1, 1.5, r120},
	{2, 3.0, r150},
}

// topocentricArgs pair each RAMC offset with the latitude adjustment
// factor of the pseudo-pole.
var topocentricArgs = [4]struct {
	x float64
	n float64
}{
	{-r60, 1.0},
	{-r30, 2.0},
	{r30, 2.0},
	{r60, 1.0},
}

// PlacidusCusps calculates the base cusps (houses 11, 12, 2, 3, in that
// order) using the Placidus method. All arguments in radians, latitude
// positive northwards; results in radians.
//
// Each cusp solves an implicit equation by fixed-point iteration. The
// iteration normally converges in a handful of steps; if it has not
// settled after placidusMaxIter rounds, ErrNoConvergence is returned.
func PlacidusCusps(ramc, eps, theta float64) ([4]float64, error) {
	var base [4]float64

	tt := math.Tan(theta) * math.Tan(eps)
	csEps := math.Cos(eps)

	for i, arg := range placidusArgs {
		k, r := 1.0, ramc+math.Pi
		if arg.house == 10 || arg.house == 11 {
			k, r = -1.0, ramc
		}

		lastX := arg.x0 + ramc
		converged := false
		for iter := 0; iter < placidusMaxIter; iter++ {
			x := r - k*math.Acos(k*math.Sin(lastX)*tt)/arg.f
			if mathutil.ShortestArcRad(x, lastX) < placidusDelta {
				converged = true
				break
			}
			lastX = x
		}
		if !converged {
			return base, fmt.Errorf("house %d: %w", arg.house+1, ErrNoConvergence)
		}

		base[i] = mathutil.ReduceRad(math.Atan2(math.Sin(lastX), csEps*math.Cos(lastX)))
	}
	return base, nil
}

// KochCusps calculates the base cusps (houses 11, 12, 2, 3) using the
// Koch method. The standard ±30°/±60° offsets from RAMC are perturbed by
// thirds of a latitude- and Midheaven-dependent correction. All arguments
// in radians; results in radians.
func KochCusps(ramc, eps, theta, mc float64) [4]float64 {
	k := math.Asin(math.Tan(theta) * math.Tan(math.Asin(math.Sin(mc)*math.Sin(eps))))
	k1 := k / 3
	k2 := k1 * 2

	offsets := [4]float64{-r60 - k2, -r30 - k1, r30 + k1, r60 + k2}

	var base [4]float64
	for i, x := range offsets {
		base[i] = Ascendant(ramc+x, eps, theta)
	}
	return base
}

// RegiomontanusCusps calculates the base cusps (houses 11, 12, 2, 3)
// using the Regiomontanus method. All arguments in radians; results in
// radians.
func RegiomontanusCusps(ramc, eps, theta float64) [4]float64 {
	tnTheta := math.Tan(theta)

	var base [4]float64
	for i, h := range [4]float64{r30, r60, r120, r150} {
		rh := ramc + h
		r := math.Atan2(math.Sin(h)*tnTheta, math.Cos(rh))
		base[i] = mathutil.ReduceRad(math.Atan2(math.Cos(r)*math.Tan(rh), math.Cos(r+eps)))
	}
	return base
}

// CampanusCusps calculates the base cusps (houses 11, 12, 2, 3) using the
// Campanus method. All arguments in radians; results in radians.
func CampanusCusps(ramc, eps, theta float64) [4]float64 {
	rm90 := ramc + r90
	snThe := math.Sin(theta)
	csThe := math.Cos(theta)

	var base [4]float64
	for i, h := range [4]float64{r30, r60, r120, r150} {
		snH := math.Sin(h)
		d := rm90 - math.Atan2(math.Cos(h), snH*csThe)
		c := math.Atan2(math.Tan(math.Asin(snThe*snH)), math.Cos(d))
		base[i] = mathutil.ReduceRad(math.Atan2(math.Tan(d)*math.Cos(c), math.Cos(c+eps)))
	}
	return base
}

// TopocentricCusps calculates the base cusps (houses 11, 12, 2, 3) using
// the Topocentric method: the Ascendant formula evaluated at offset RAMCs
// with an adjusted pseudo-latitude. All arguments in radians; results in
// radians.
func TopocentricCusps(ramc, eps, theta float64) [4]float64 {
	tnThe := math.Tan(theta)

	var base [4]float64
	for i, arg := range topocentricArgs {
		base[i] = Ascendant(ramc+arg.x, eps, math.Atan2(arg.n*tnThe, 3))
	}
	return base
}

// QuadrantCusps calculates all 12 cusps under a quadrant-based system.
// ramc, eps, theta, asc and mc in radians; pass NaN for asc or mc to have
// them computed. Returns cusp longitudes 1-12 in arc-degrees.
//
// The four base angles map to houses 11, 12, 2 and 3; the remaining
// houses follow by point symmetry: house 1 is the Ascendant, house 10 the
// Midheaven, and houses 4-9 sit opposite their counterparts.
func QuadrantCusps(system HouseSystem, ramc, eps, theta, asc, mc float64) ([12]float64, error) {
	var cusps [12]float64

	if math.Abs(theta) > r90-math.Abs(eps) {
		return cusps, ErrPolarLatitude
	}

	if math.IsNaN(mc) {
		mc = Midheaven(ramc, eps)
	}
	if math.IsNaN(asc) {
		asc = Ascendant(ramc, eps, theta)
	}

	var base [4]float64
	var err error
	switch system {
	case Placidus:
		base, err = PlacidusCusps(ramc, eps, theta)
	case Koch:
		base = KochCusps(ramc, eps, theta, mc)
	case Regiomontanus:
		base = RegiomontanusCusps(ramc, eps, theta)
	case Campanus:
		base = CampanusCusps(ramc, eps, theta)
	case Topocentric:
		base = TopocentricCusps(ramc, eps, theta)
	default:
		return cusps, fmt.Errorf("%s: %w", system, ErrNotQuadrant)
	}
	if err != nil {
		return cusps, err
	}

	rad := [12]float64{
		asc,
		base[2],
		base[3],
		mathutil.ReduceRad(mc + math.Pi),
		mathutil.ReduceRad(base[0] + math.Pi),
		mathutil.ReduceRad(base[1] + math.Pi),
		mathutil.ReduceRad(asc + math.Pi),
		mathutil.ReduceRad(base[2] + math.Pi),
		mathutil.ReduceRad(base[3] + math.Pi),
		mc,
		base[0],
		base[1],
	}
	for i, x := range rad {
		cusps[i] = mathutil.Rad2Deg(x)
	}
	return cusps, nil
}

// MorinusCusps calculates all 12 cusps under the Morinus system, which
// needs no geographic latitude. ramc and eps in radians; returns cusp
// longitudes 1-12 in arc-degrees.
func MorinusCusps(ramc, eps float64) [12]float64 {
	csEps := math.Cos(eps)

	var cusps [12]float64
	for i := 0; i < 12; i++ {
		r := ramc + r60 + r30*float64(i+1)
		y := math.Sin(r) * csEps
		x := math.Cos(r)
		cusps[i] = mathutil.ReduceDeg(mathutil.Rad2Deg(math.Atan2(y, x)))
	}
	return cusps
}

// equalCusps is the base routine for the equal systems: 12 cusps spaced
// 30° apart, with cusp startN anchored at startX radians.
func equalCusps(startN int, startX float64) [12]float64 {
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		n := (startN + i) % 12
		cusps[n] = mathutil.Rad2Deg(mathutil.ReduceRad(startX + r30*float64(i)))
	}
	return cusps
}

// SignCuspCusps calculates cusps under the Sign-Cusp system: fixed
// zodiacal sign boundaries. Returns cusp longitudes 1-12 in arc-degrees.
func SignCuspCusps() [12]float64 {
	return equalCusps(0, 0)
}

// EqualAscCusps calculates cusps under the Equal from Ascendant system.
// asc in radians; returns cusp longitudes 1-12 in arc-degrees.
func EqualAscCusps(asc float64) [12]float64 {
	return equalCusps(0, asc)
}

// EqualMCCusps calculates cusps under the Equal from Midheaven system,
// with house 10 anchored to the Midheaven. mc in radians; returns cusp
// longitudes 1-12 in arc-degrees.
func EqualMCCusps(mc float64) [12]float64 {
	return equalCusps(9, mc)
}

// Cusps dispatches to the requested house system. ramc, eps, theta, asc
// and mc in radians (pass NaN for asc/mc to have the quadrant path
// compute them). Returns cusp longitudes 1-12 in arc-degrees.
func Cusps(system HouseSystem, ramc, eps, theta, asc, mc float64) ([12]float64, error) {
	switch {
	case system.IsQuadrant():
		return QuadrantCusps(system, ramc, eps, theta, asc, mc)
	case system == Morinus:
		return MorinusCusps(ramc, eps), nil
	case system == EqualSignCusp:
		return SignCuspCusps(), nil
	case system == EqualAsc:
		if math.IsNaN(asc) {
			asc = Ascendant(ramc, eps, theta)
		}
		return EqualAscCusps(asc), nil
	case system == EqualMC:
		if math.IsNaN(mc) {
			mc = Midheaven(ramc, eps)
		}
		return EqualMCCusps(mc), nil
	}
	return [12]float64{}, fmt.Errorf("unsupported house system %d", system)
}

// InHouse finds which house contains a given point. x is a longitude in
// arc-degrees, cusps are the 12 cusp longitudes in arc-degrees. A half
// arcsecond is added before the test to absorb rounding on exact cusp
// hits. Returns 0 if no interval matches, which cannot happen for a valid
// cusp set.
func InHouse(x float64, cusps [12]float64) int {
	r := mathutil.ReduceDeg(x + halfSecond)
	for i := 0; i < 12; i++ {
		a := cusps[i]
		b := cusps[(i+1)%12]
		if (a <= r && r < b) || (a > b && (r >= a || r < b)) {
			return i
		}
	}
	return 0
}
