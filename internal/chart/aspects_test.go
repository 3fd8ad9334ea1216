package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilbagatto/go-astrologer/internal/astro"
)

func TestAspectConstants(t *testing.T) {
	tests := []struct {
		aspect    Aspect
		title     string
		brief     string
		value     float64
		influence Influence
		flag      AspectFlag
	}{
		{Conjunction, "Conjunction", "cnj", 0, Neutral, Major},
		{Sextile, "Sextile", "sxt", 60, Positive, Major},
		{Square, "Square", "sqr", 90, Negative, Major},
		{Trine, "Trine", "tri", 120, Positive, Major},
		{Opposition, "Opposition", "opp", 180, Negative, Major},
		{Semisextile, "Semisextile", "ssx", 30, Positive, Minor},
		{Sesquiquadrate, "Sesquiquadrate", "sqq", 135, Negative, Minor},
		{Quincunx, "Quincunx", "qcx", 150, Negative, Minor},
		{Vigintile, "Vigintile", "vgt", 18, Neutral, Kepler},
		{Quintile, "Quintile", "qui", 72, Neutral, Kepler},
		{Biquintile, "Biquintile", "bqu", 144, Neutral, Kepler},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.aspect.String())
			assert.Equal(t, tt.brief, tt.aspect.Brief())
			assert.Equal(t, tt.value, tt.aspect.Value())
			assert.Equal(t, tt.influence, tt.aspect.Influence())
			assert.Equal(t, tt.flag, tt.aspect.Flag())
		})
	}
}

func TestAspectsEnumeration(t *testing.T) {
	all := Aspects()
	require.Len(t, all, 15)
	assert.Equal(t, Conjunction, all[0])
	assert.Equal(t, Opposition, all[len(all)-1])

	for _, asp := range all {
		assert.NotEmpty(t, asp.String())
		assert.Len(t, asp.Brief(), 3)
	}
}

func TestAspectFlagString(t *testing.T) {
	assert.Equal(t, "Major", Major.String())
	assert.Equal(t, "Major|Minor", (Major | Minor).String())
	assert.Equal(t, "Major|Minor|Kepler", AllAspects.String())
	assert.Equal(t, "none", AspectFlag(0).String())
}

func TestFindClosestAspect(t *testing.T) {
	moon := object(astro.Moon, 310.0)
	sun := object(astro.Sun, 312.0)

	info, ok := FindClosestAspect(moon, sun, nil, 0)
	require.True(t, ok)
	assert.Equal(t, Conjunction, info.Aspect)
	assert.InDelta(t, 2.0, info.Arc, 1e-9)
	assert.InDelta(t, 2.0, info.Delta, 1e-9)
}

func TestFindClosestAspectNone(t *testing.T) {
	// arc 15 is too wide for a Conjunction and too narrow for a Sextile
	// under the default major-only filter
	moon := object(astro.Moon, 310.0)
	mercury := object(astro.Mercury, 295.0)

	_, ok := FindClosestAspect(moon, mercury, nil, 0)
	assert.False(t, ok)
}

func TestFindClosestAspectFilter(t *testing.T) {
	// arc 31: Semisextile (minor, delta 1) beats any major candidate,
	// but only when the filter admits minors
	a := object(astro.Venus, 100.0)
	b := object(astro.Mars, 131.0)

	_, ok := FindClosestAspect(a, b, Dariot{}, Major)
	assert.False(t, ok)

	info, ok := FindClosestAspect(a, b, Dariot{}, Major|Minor)
	require.True(t, ok)
	assert.Equal(t, Semisextile, info.Aspect)
	assert.InDelta(t, 1.0, info.Delta, 1e-9)
}

func TestFindClosestAspectRespectsFilter(t *testing.T) {
	longitudes := []float64{0, 17, 29, 44, 61, 73, 89.5, 107, 121, 136, 143, 151, 179}
	filters := []AspectFlag{Major, Minor, Kepler, Major | Minor, AllAspects}

	source := object(astro.Sun, 0)
	for _, f := range filters {
		for _, lambda := range longitudes {
			info, ok := FindClosestAspect(source, object(astro.Moon, lambda), Dariot{}, f)
			if ok {
				assert.NotZero(t, info.Aspect.Flag()&f,
					"flags %s lambda %v returned %s", f, lambda, info.Aspect)
			}
		}
	}
}

func TestFindClosestAspectTieBreak(t *testing.T) {
	// arc 27 sits exactly between Quindecile (24, Kepler) and
	// Semisextile (30, Minor); enumeration order wins the tie
	a := object(astro.Sun, 0)
	b := object(astro.Moon, 27.0)

	info, ok := FindClosestAspect(a, b, Dariot{}, AllAspects)
	require.True(t, ok)
	assert.Equal(t, Quindecile, info.Aspect)
	assert.InDelta(t, 3.0, info.Delta, 1e-9)
}
