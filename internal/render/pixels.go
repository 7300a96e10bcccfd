package render

import "image/color"

// fillPaletteRGBA converts a w*h buffer of color indexes into RGBA pixels,
// drawing each index as a px*px block. Indexes past the palette clamp to the
// last entry. When the palette is empty the buffer is cleared to transparent
// black.
func fillPaletteRGBA(buf []byte, cells []int, w, h, px int, palette []color.RGBA) {
	if px < 1 {
		px = 1
	}
	stride := w * px * 4
	if len(palette) == 0 {
		for i := range buf[:stride*h*px] {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := cells[y*w+x]
			if idx > last {
				idx = last
			}
			if idx < 0 {
				idx = 0
			}
			col := palette[idx]
			for dy := 0; dy < px; dy++ {
				row := (y*px+dy)*stride + x*px*4
				for dx := 0; dx < px; dx++ {
					base := row + dx*4
					buf[base+0] = col.R
					buf[base+1] = col.G
					buf[base+2] = col.B
					buf[base+3] = col.A
				}
			}
		}
	}
}
