// Package ramp builds linearly interpolated color palettes for display layers.
package ramp

import (
	"image/color"

	"mad-ant/pkg/core"
)

// Lerp returns n colors packed as 0xRRGGBB, interpolated channel by channel
// from a (index 0) to b (index n-1). Each channel is the interpolated value
// rounded down, so falling channels round toward b. A single color request
// yields [a].
func Lerp(a, b uint32, n int) ([]uint32, error) {
	if n < 1 {
		return nil, &core.DegenerateColorCountError{N: n}
	}
	out := make([]uint32, n)
	if n == 1 {
		out[0] = a & 0xFFFFFF
		return out, nil
	}
	ar, ag, ab := channels(a)
	br, bg, bb := channels(b)
	span := int64(n - 1)
	for i := range out {
		k := int64(i)
		r := mix(ar, br, k, span)
		g := mix(ag, bg, k, span)
		bl := mix(ab, bb, k, span)
		out[i] = uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
	}
	return out, nil
}

// RGB unpacks a 0xRRGGBB value into an opaque color.
func RGB(c uint32) color.RGBA {
	r, g, b := channels(c)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// Palette is Lerp converted to image/color values.
func Palette(a, b uint32, n int) ([]color.RGBA, error) {
	packed, err := Lerp(a, b, n)
	if err != nil {
		return nil, err
	}
	out := make([]color.RGBA, len(packed))
	for i, c := range packed {
		out[i] = RGB(c)
	}
	return out, nil
}

// mix is floor(a + (b-a)*k/span); both terms are non-negative.
func mix(a, b, k, span int64) int64 {
	return (a*(span-k) + b*k) / span
}

func channels(c uint32) (r, g, b int64) {
	return int64(c>>16) & 0xFF, int64(c>>8) & 0xFF, int64(c) & 0xFF
}
