package phosphene

import "github.com/lucasb-eyer/go-colorful"

// HueColor returns the hex string of an HSL color. Hue is in degrees and may
// be any value; it is wrapped into [0,360). Saturation and lightness are 0..1.
func HueColor(hue, saturation, lightness float64) string {
	hue = wrapDegrees(hue)
	return colorful.Hsl(hue, saturation, lightness).Clamped().Hex()
}

// ShiftHue rotates the hue of a hex color by the given degrees, keeping
// saturation and lightness. Unparseable colors are returned unchanged rather
// than failing the frame.
func ShiftHue(hex string, degrees float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(wrapDegrees(h+degrees), s, l).Clamped().Hex()
}

func wrapDegrees(deg float64) float64 {
	deg -= 360 * float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
