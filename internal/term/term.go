// Package term prints a canvas window to a terminal using ANSI 256 colors.
package term

import (
	"bufio"
	"image/color"
	"io"

	"github.com/logrusorgru/aurora"

	"mad-ant/internal/render"
	"mad-ant/pkg/core"
)

const plainGlyphs = " .:-=+*#%@"

// Renderer draws each cell as two terminal columns.
type Renderer struct {
	au     aurora.Aurora
	colors bool
}

// New returns a renderer. With colors disabled cells are drawn with ASCII
// shading characters instead.
func New(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors), colors: colors}
}

// Render writes the window with lower-left corner min. When marker is not nil
// the cell it points at is highlighted.
func (r *Renderer) Render(w io.Writer, c *render.Canvas, min core.Point, cols, rows int, marker *core.Point) error {
	idx := make([]int, cols*rows)
	c.Sample(idx, min, cols, rows)
	palette := c.Palette()

	bw := bufio.NewWriter(w)
	for row := 0; row < rows; row++ {
		y := min.Y + int64(rows-1-row)
		for col := 0; col < cols; col++ {
			p := core.Point{X: min.X + int64(col), Y: y}
			if marker != nil && *marker == p {
				bw.WriteString(r.au.Red("<>").Bold().String())
				continue
			}
			bw.WriteString(r.cell(idx[row*cols+col], palette))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (r *Renderer) cell(i int, palette []color.RGBA) string {
	if !r.colors {
		g := plainGlyphs[0]
		if n := len(palette); n > 1 {
			g = plainGlyphs[i*(len(plainGlyphs)-1)/(n-1)]
		}
		return string([]byte{g, g})
	}
	if i >= len(palette) {
		i = len(palette) - 1
	}
	return r.au.Index(xterm256(palette[i]), "██").String()
}

// Swatch renders a palette as a row of colored blocks, one per color.
func (r *Renderer) Swatch(palette []color.RGBA) string {
	var out []byte
	for i := range palette {
		out = append(out, r.cell(i, palette)...)
	}
	return string(out)
}

// xterm256 maps a color onto the 6x6x6 cube of the 256-color palette.
func xterm256(c color.RGBA) uint8 {
	q := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}
