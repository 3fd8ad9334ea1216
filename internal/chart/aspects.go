package chart

// Influence is the qualitative effect traditionally assigned to an aspect.
type Influence int

const (
	Neutral Influence = iota
	Negative
	Positive
)

func (i Influence) String() string {
	switch i {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Neutral"
	}
}

// AspectFlag is a bitset classifying aspects. Membership tests are
// bitwise, so a filter can combine classes: Major | Minor.
type AspectFlag uint8

const (
	Major AspectFlag = 1 << iota
	Minor
	Kepler
)

// AllAspects matches every classification.
const AllAspects = Major | Minor | Kepler

func (f AspectFlag) String() string {
	switch f {
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	case Kepler:
		return "Kepler"
	}
	s := ""
	for _, part := range [...]AspectFlag{Major, Minor, Kepler} {
		if f&part != 0 {
			if s != "" {
				s += "|"
			}
			s += part.String()
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Aspect identifies one of the fifteen named angular separations.
type Aspect int

// Aspects in traditional enumeration order. The order is significant:
// FindClosestAspect breaks delta ties in favor of the earlier entry.
const (
	Conjunction Aspect = iota
	Vigintile
	Quindecile
	Semisextile
	Decile
	Sextile
	Semisquare
	Quintile
	Square
	Tridecile
	Trine
	Sesquiquadrate
	Biquintile
	Quincunx
	Opposition

	numAspects
)

// aspectData carries the invariant constants attached to each aspect.
type aspectData struct {
	title     string
	brief     string
	value     float64 // exact separation, degrees
	influence Influence
	flag      AspectFlag
}

// The astrological constant set. Values and tags are invariant.
var aspectTable = [numAspects]aspectData{
	Conjunction:    {"Conjunction", "cnj", 0, Neutral, Major},
	Vigintile:      {"Vigintile", "vgt", 18, Neutral, Kepler},
	Quindecile:     {"Quindecile", "qdc", 24, Neutral, Kepler},
	Semisextile:    {"Semisextile", "ssx", 30, Positive, Minor},
	Decile:         {"Decile", "dcl", 36, Neutral, Kepler},
	Sextile:        {"Sextile", "sxt", 60, Positive, Major},
	Semisquare:     {"Semisquare", "ssq", 45, Negative, Minor},
	Quintile:       {"Quintile", "qui", 72, Neutral, Kepler},
	Square:         {"Square", "sqr", 90, Negative, Major},
	Tridecile:      {"Tridecile", "tdc", 108, Positive, Minor},
	Trine:          {"Trine", "tri", 120, Positive, Major},
	Sesquiquadrate: {"Sesquiquadrate", "sqq", 135, Negative, Minor},
	Biquintile:     {"Biquintile", "bqu", 144, Neutral, Kepler},
	Quincunx:       {"Quincunx", "qcx", 150, Negative, Minor},
	Opposition:     {"Opposition", "opp", 180, Negative, Major},
}

// String returns the aspect title.
func (a Aspect) String() string {
	if a < Conjunction || a >= numAspects {
		return "unknown"
	}
	return aspectTable[a].title
}

// Brief returns the three-letter aspect code.
func (a Aspect) Brief() string { return aspectTable[a].brief }

// Value returns the exact separation of the aspect in degrees.
func (a Aspect) Value() float64 { return aspectTable[a].value }

// Influence returns the qualitative influence of the aspect.
func (a Aspect) Influence() Influence { return aspectTable[a].influence }

// Flag returns the classification of the aspect.
func (a Aspect) Flag() AspectFlag { return aspectTable[a].flag }

// Aspects returns all aspects in enumeration order.
func Aspects() []Aspect {
	all := make([]Aspect, numAspects)
	for i := range all {
		all[i] = Aspect(i)
	}
	return all
}

// AspectInfo describes a detected aspect between two bodies.
type AspectInfo struct {
	Aspect Aspect  // which aspect
	Arc    float64 // angular distance between the bodies, degrees [0, 180]
	Delta  float64 // |arc - exact value|, degrees
}
