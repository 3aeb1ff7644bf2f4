package extractor

import (
	"fmt"
	"math"

	"github.com/kataras/hermes/pkg/design"
)

// ToColor converts a host color with 0-1 float channels into a Color.
// A missing alpha channel means fully opaque. The hex string is lowercase and carries
// an alpha pair only when the color is not fully opaque.
//
// Channels are expected in [0,1]; values outside that range are not clamped and
// produce unspecified hex output.
func ToColor(c design.RGB) Color {
	a := 1.0
	if c.A != nil {
		a = *c.A
	}

	return Color{
		R:   c.R,
		G:   c.G,
		B:   c.B,
		A:   a,
		Hex: rgbaToHex(c.R, c.G, c.B, a),
	}
}

func rgbaToHex(r, g, b, a float64) string {
	hex := "#" + channelToHex(r) + channelToHex(g) + channelToHex(b)
	if a != 1 {
		hex += channelToHex(a)
	}
	return hex
}

func channelToHex(v float64) string {
	return fmt.Sprintf("%02x", int(math.Round(v*255)))
}
