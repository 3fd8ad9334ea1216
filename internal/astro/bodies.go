package astro

// Body identifies a celestial body that can occupy a chart.
type Body int

// The fixed body set, in traditional chart order.
const (
	Moon Body = iota
	Sun
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	LunarNode

	numBodies
)

// bodyNames holds display titles indexed by Body.
var bodyNames = [...]string{
	Moon:      "Moon",
	Sun:       "Sun",
	Mercury:   "Mercury",
	Venus:     "Venus",
	Mars:      "Mars",
	Jupiter:   "Jupiter",
	Saturn:    "Saturn",
	Uranus:    "Uranus",
	Neptune:   "Neptune",
	Pluto:     "Pluto",
	LunarNode: "Lunar Node",
}

// String returns the body title.
func (b Body) String() string {
	if b < 0 || b >= numBodies {
		return "unknown"
	}
	return bodyNames[b]
}

// Bodies returns the full body set in chart order.
func Bodies() []Body {
	all := make([]Body, numBodies)
	for i := range all {
		all[i] = Body(i)
	}
	return all
}

// ParseBody resolves a body title to its identifier.
func ParseBody(s string) (Body, bool) {
	for i, name := range bodyNames {
		if name == s {
			return Body(i), true
		}
	}
	return 0, false
}

// EclipticPosition holds ecliptic coordinates of a body, in degrees.
// Beta may be zero for bodies without latitude (Sun, Lunar Node).
// Delta is the distance in astronomical units, optional.
type EclipticPosition struct {
	Lambda float64 // ecliptic longitude, degrees [0, 360)
	Beta   float64 // ecliptic latitude, degrees
	Delta  float64 // distance, AU
}
