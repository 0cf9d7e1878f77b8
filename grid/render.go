package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

// Render draws the board with cfg placed on it. Walls are '#', the reference
// piece is a cyan 'C' and every other piece a yellow 'H'. Column and row
// numbers are printed along the top and left edges.
func (g *Grid) Render(w io.Writer, cfg Configuration) error {
	_, err := io.WriteString(w, g.RenderString(cfg))
	return err
}

func (g *Grid) RenderString(cfg Configuration) string {
	pieces := make(map[Position]int, len(cfg))
	for i := len(cfg) - 1; i >= 0; i-- {
		pieces[cfg[i]] = i
	}

	var b strings.Builder
	b.WriteString("  ")
	for x := 0; x < g.Width; x++ {
		b.WriteString(label(x))
	}
	b.WriteString("\n")

	for y := 0; y < g.Height; y++ {
		b.WriteString(label(y))
		for x := 0; x < g.Width; x++ {
			p := Position{X: x, Y: y}
			piece, occupied := pieces[p]
			switch {
			case !g.IsWalkable(p):
				b.WriteString("# ")
			case occupied && piece == 0:
				b.WriteString(color.Cyan.Sprint("C "))
			case occupied:
				b.WriteString(color.Yellow.Sprint("H "))
			default:
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func label(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) < 2 {
		s += " "
	}
	return s
}
