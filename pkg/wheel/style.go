package wheel

import "image/color"

// Button tints. Blue marks the host's live choice, grey the others;
// the lighter variant marks the choice under the pointer.
var (
	ColorCurrent            = color.RGBA{R: 153, G: 204, B: 255, A: 255} // (0.6, 0.8, 1)
	ColorCurrentHighlighted = color.RGBA{R: 179, G: 230, B: 255, A: 255} // (0.7, 0.9, 1)
	ColorOther              = color.RGBA{R: 179, G: 179, B: 179, A: 255}
	ColorOtherHighlighted   = color.RGBA{R: 217, G: 217, B: 217, A: 255}
	ColorRadiusRing         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorDeadZoneRing       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorDeadZoneFill       = color.RGBA{R: 204, G: 51, B: 51, A: 128}
	ColorPreviewBackground  = color.RGBA{R: 51, G: 51, B: 51, A: 255}
)

// ButtonColor picks the background tint for a wheel button
func ButtonColor(current, highlighted bool) color.RGBA {
	switch {
	case current && highlighted:
		return ColorCurrentHighlighted
	case current:
		return ColorCurrent
	case highlighted:
		return ColorOtherHighlighted
	default:
		return ColorOther
	}
}
