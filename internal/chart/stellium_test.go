package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

func stelliumFixture() []Object {
	return []Object{
		object(astro.Moon, 310.2111),
		object(astro.Sun, 312.4308),
		object(astro.Mercury, 297.0784),
		object(astro.Venus, 295.2094),
		object(astro.Mars, 177.9662),
		object(astro.Jupiter, 46.9290),
		object(astro.Saturn, 334.602),
		object(astro.Uranus, 164.032),
		object(astro.Neptune, 229.9224),
		object(astro.Pluto, 165.8254),
	}
}

func groupBodies(groups [][]Object) [][]astro.Body {
	out := make([][]astro.Body, len(groups))
	for i, g := range groups {
		for _, obj := range g {
			out[i] = append(out[i], obj.Body)
		}
	}
	return out
}

func TestStelliumsDefaultGap(t *testing.T) {
	groups := Stelliums(stelliumFixture(), 10)
	require.Len(t, groups, 7)

	assert.Equal(t, [][]astro.Body{
		{astro.Jupiter},
		{astro.Uranus, astro.Pluto},
		{astro.Mars},
		{astro.Neptune},
		{astro.Venus, astro.Mercury},
		{astro.Moon, astro.Sun},
		{astro.Saturn},
	}, groupBodies(groups))
}

func TestStelliumsLargeGap(t *testing.T) {
	groups := Stelliums(stelliumFixture(), 15)
	require.Len(t, groups, 5)

	assert.Equal(t, [][]astro.Body{
		{astro.Jupiter},
		{astro.Uranus, astro.Pluto, astro.Mars},
		{astro.Neptune},
		{astro.Venus, astro.Mercury, astro.Moon, astro.Sun},
		{astro.Saturn},
	}, groupBodies(groups))
}

func TestStelliumsZeroGap(t *testing.T) {
	objects := stelliumFixture()
	groups := Stelliums(objects, 0)
	require.Len(t, groups, len(objects))

	for _, g := range groups {
		assert.Len(t, g, 1)
	}
}

// The Saturn/Jupiter pair straddles 0° Aries and must land in one group.
func TestStelliumsAroundZero(t *testing.T) {
	objects := []Object{
		object(astro.Moon, 310.2111),
		object(astro.Sun, 312.4308),
		object(astro.Mercury, 297.0784),
		object(astro.Venus, 295.2094),
		object(astro.Mars, 177.9662),
		object(astro.Jupiter, 6.0),
		object(astro.Saturn, 358.0),
		object(astro.Uranus, 164.032),
		object(astro.Neptune, 229.9224),
		object(astro.Pluto, 165.8254),
	}

	groups := Stelliums(objects, 10)
	require.Len(t, groups, 6)
	assert.Equal(t, []astro.Body{astro.Saturn, astro.Jupiter}, groupBodies(groups)[0])
}

func TestStelliumsSingleGroup(t *testing.T) {
	// a gap wider than any possible arc collapses everything
	groups := Stelliums(stelliumFixture(), 400)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 10)
}

func TestStelliumsEmpty(t *testing.T) {
	assert.Nil(t, Stelliums(nil, 10))
	assert.Nil(t, Stelliums([]Object{}, 10))
}

func TestStelliumsSingleObject(t *testing.T) {
	for _, gap := range []float64{0, 10, 400} {
		groups := Stelliums([]Object{object(astro.Sun, 100.0)}, gap)
		require.Len(t, groups, 1, "gap %v", gap)
		require.Len(t, groups[0], 1, "gap %v", gap)
		assert.Equal(t, astro.Sun, groups[0][0].Body)
	}
}

func TestStelliumsCoverEveryObject(t *testing.T) {
	for _, gap := range []float64{0, 5, 10, 15, 30} {
		objects := stelliumFixture()
		groups := Stelliums(objects, gap)

		seen := map[astro.Body]int{}
		for _, g := range groups {
			for _, obj := range g {
				seen[obj.Body]++
			}
		}
		require.Len(t, seen, len(objects), "gap %v", gap)
		for body, n := range seen {
			assert.Equal(t, 1, n, "gap %v body %s", gap, body)
		}
	}
}

func TestStelliumsNeighborsWithinGap(t *testing.T) {
	groups := Stelliums(stelliumFixture(), 12)
	for _, g := range groups {
		for i := 1; i < len(g); i++ {
			arc := mathutil.ShortestArcDeg(
				g[i-1].Position.Lambda, g[i].Position.Lambda)
			assert.LessOrEqual(t, arc, 12.0)
		}
	}
}
