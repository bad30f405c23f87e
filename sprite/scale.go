package sprite

import "image"

// Scale returns src enlarged by an integer factor using nearest-neighbor
// sampling, preserving hard pixel edges. A factor below 1 is treated as 1.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))

	for y := 0; y < dst.Rect.Max.Y; y++ {
		for x := 0; x < dst.Rect.Max.X; x++ {
			dst.Set(x, y, src.At(b.Min.X+x/factor, b.Min.Y+y/factor))
		}
	}

	return dst
}
