package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceDeg(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{361, 1},
		{-1, 359},
		{720.5, 0.5},
		{-725, 355},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ReduceDeg(tt.in), 1e-10, "ReduceDeg(%v)", tt.in)
	}
}

func TestReduceRad(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ReduceRad(tt.in), 1e-10, "ReduceRad(%v)", tt.in)
	}
}

func TestShortestArcDeg(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{10, 270, 100},
		{350, 20, 30},
		{310, 312, 2},
		{0, 180, 180},
		{0, 0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ShortestArcDeg(tt.a, tt.b), 1e-10, "ShortestArcDeg(%v, %v)", tt.a, tt.b)
		// symmetric by definition
		assert.InDelta(t, tt.want, ShortestArcDeg(tt.b, tt.a), 1e-10)
	}
}

func TestShortestArcRad(t *testing.T) {
	got := ShortestArcRad(0.1, 2*math.Pi-0.1)
	assert.InDelta(t, 0.2, got, 1e-10)
}

func TestDiffAngle(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{10, 30, 20},
		{30, 10, -20},
		{358, 6, 8},
		{6, 358, -8},
		{0, 180, 180},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, DiffAngle(tt.a, tt.b), 1e-10, "DiffAngle(%v, %v)", tt.a, tt.b)
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for deg := -360.0; deg <= 360; deg += 45 {
		assert.InDelta(t, deg, Rad2Deg(Deg2Rad(deg)), 1e-12)
	}
}
