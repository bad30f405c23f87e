package palette

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Luminance returns the CIE Lab lightness of a color in the range 0 to 100.
// Fully transparent colors report as 0 so they sort first.
func Luminance(c color.Color) float64 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := cf.Lab()
	return l * 100
}

// SortByLuminance orders a palette darkest first. Used for imported
// palettes where the quantizer ordering is arbitrary; generated palettes
// keep their insertion order.
func SortByLuminance(p color.Palette) {
	sort.SliceStable(p, func(i, j int) bool {
		return Luminance(p[i]) < Luminance(p[j])
	})
}
