package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignOf(t *testing.T) {
	tests := []struct {
		lambda float64
		want   Sign
	}{
		{0, Aries},
		{29.999, Aries},
		{30, Taurus},
		{123.45, Leo},
		{310.2, Aquarius},
		{359.999, Pisces},
		{360, Aries},
		{-10, Pisces},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SignOf(tt.lambda), "SignOf(%v)", tt.lambda)
	}
}

func TestSignAttributes(t *testing.T) {
	tests := []struct {
		sign Sign
		trip Triplicity
		quad Quadruplicity
	}{
		{Aries, Fire, Cardinal},
		{Taurus, Earth, Fixed},
		{Gemini, Air, Mutable},
		{Cancer, Water, Cardinal},
		{Leo, Fire, Fixed},
		{Virgo, Earth, Mutable},
		{Libra, Air, Cardinal},
		{Scorpio, Water, Fixed},
		{Sagittarius, Fire, Mutable},
		{Capricornus, Earth, Cardinal},
		{Aquarius, Air, Fixed},
		{Pisces, Water, Mutable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.trip, tt.sign.Triplicity(), "%s triplicity", tt.sign)
		assert.Equal(t, tt.quad, tt.sign.Quadruplicity(), "%s quadruplicity", tt.sign)
	}
}

func TestFormatLambda(t *testing.T) {
	tests := []struct {
		lambda float64
		want   string
	}{
		{0, "0°00' Aries"},
		{44.5, "14°30' Taurus"},
		{310.2111, "10°13' Aquarius"},
		{29.9999, "30°00' Aries"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLambda(tt.lambda), "FormatLambda(%v)", tt.lambda)
	}
}

func TestParseBody(t *testing.T) {
	for _, body := range Bodies() {
		got, ok := ParseBody(body.String())
		assert.True(t, ok)
		assert.Equal(t, body, got)
	}

	_, ok := ParseBody("Vulcan")
	assert.False(t, ok)
}
