// Package mathutil provides angle arithmetic on the circle.
package mathutil

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ReduceDeg normalizes an angle to the [0, 360) degree range.
func ReduceDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ReduceRad normalizes an angle to the [0, 2π) radian range.
func ReduceRad(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// ShortestArcDeg returns the shortest angular distance between two
// longitudes, in the [0, 180] degree range.
func ShortestArcDeg(a, b float64) float64 {
	d := math.Abs(ReduceDeg(a) - ReduceDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ShortestArcRad returns the shortest angular distance between two
// angles, in the [0, π] radian range.
func ShortestArcRad(a, b float64) float64 {
	d := math.Abs(ReduceRad(a) - ReduceRad(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// DiffAngle returns the signed difference b - a in the (-180, 180] degree
// range: the forward arc from a to b, negative when the short way from a
// to b runs backwards.
func DiffAngle(a, b float64) float64 {
	var x float64
	if b < a {
		x = b + 360 - a
	} else {
		x = b - a
	}
	if x > 180 {
		x -= 360
	}
	return x
}
