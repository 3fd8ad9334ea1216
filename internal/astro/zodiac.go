package astro

import (
	"fmt"
	"math"

	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// Triplicity is the elemental grouping of zodiac signs.
type Triplicity int

const (
	Fire Triplicity = iota
	Earth
	Air
	Water
)

func (t Triplicity) String() string {
	return [...]string{"Fire", "Earth", "Air", "Water"}[t]
}

// Quadruplicity is the modal grouping of zodiac signs.
type Quadruplicity int

const (
	Cardinal Quadruplicity = iota
	Fixed
	Mutable
)

func (q Quadruplicity) String() string {
	return [...]string{"Cardinal", "Fixed", "Mutable"}[q]
}

// Sign is a zodiac sign, 30 degrees of the ecliptic.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricornus
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricornus", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "unknown"
	}
	return signNames[s]
}

// Triplicity returns the elemental group of the sign.
func (s Sign) Triplicity() Triplicity {
	return Triplicity(int(s) % 4)
}

// Quadruplicity returns the modal group of the sign.
func (s Sign) Quadruplicity() Quadruplicity {
	return Quadruplicity(int(s) % 3)
}

// SignOf returns the zodiac sign containing a longitude in degrees.
func SignOf(lambda float64) Sign {
	return Sign(int(mathutil.ReduceDeg(lambda)/30) % 12)
}

// FormatLambda renders a longitude as degrees and minutes within its sign,
// e.g. "14°19' Aquarius".
func FormatLambda(lambda float64) string {
	l := mathutil.ReduceDeg(lambda)
	inSign := math.Mod(l, 30)
	deg := int(inSign)
	min := int(math.Round((inSign - float64(deg)) * 60))
	if min == 60 {
		deg++
		min = 0
	}
	return fmt.Sprintf("%d°%02d' %s", deg, min, SignOf(l))
}
