package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Color is r, g, b, a on a 0-1 scale.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}

	// Default is the mid-gray used by windows and unstyled widgets.
	Default = Color{0.4, 0.4, 0.4, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

// RGB drops the alpha channel.
func (c Color) RGB() [3]float32 { return [3]float32{c[0], c[1], c[2]} }

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	for i, v := range c {
		c[i] = math32.Min(1, math32.Max(0, v))
	}
	return c
}

// FromRGBA8 builds a Color from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// RGBA8 returns the channels as 8-bit values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	c = c.Clamp()
	to8 := func(v float32) uint8 { return uint8(v*255 + 0.5) }
	return to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the '#' is optional).
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
	}
	return FromRGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func (c Color) String() string {
	r, g, b, a := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}
