package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// Fixture: 1965-02-01, Moscow region (lat 55.75N).
var (
	pointsRAMC  = mathutil.Deg2Rad(345.5553345833333)
	pointsEps   = mathutil.Deg2Rad(23.44425561111111)
	pointsTheta = mathutil.Deg2Rad(55.75)
)

func TestMidheaven(t *testing.T) {
	got := mathutil.Rad2Deg(Midheaven(pointsRAMC, pointsEps))
	assert.InDelta(t, 344.3172222222222, got, 1e-3)
}

func TestAscendant(t *testing.T) {
	got := mathutil.Rad2Deg(Ascendant(pointsRAMC, pointsEps, pointsTheta))
	assert.InDelta(t, 110.15722222222222, got, 1e-4)
}

func TestVertex(t *testing.T) {
	got := mathutil.Rad2Deg(Vertex(pointsRAMC, pointsEps, pointsTheta))
	assert.InDelta(t, 242.70361111111112, got, 1e-4)
}

func TestEastPoint(t *testing.T) {
	got := mathutil.Rad2Deg(EastPoint(pointsRAMC, pointsEps))
	assert.InDelta(t, 76.70363, got, 1e-4)
}

func TestPointsReduced(t *testing.T) {
	// Every point lands in [0, 2π) for arbitrary meridians.
	for ramc := 0.0; ramc < 6.3; ramc += 0.7 {
		for _, f := range []float64{
			Midheaven(ramc, pointsEps),
			Ascendant(ramc, pointsEps, pointsTheta),
			Vertex(ramc, pointsEps, pointsTheta),
			EastPoint(ramc, pointsEps),
		} {
			assert.GreaterOrEqual(t, f, 0.0)
			assert.Less(t, f, 6.2831853072)
		}
	}
}
