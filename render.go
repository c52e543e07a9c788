package pascal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	oddCell  = "█"
	evenCell = " "
)

var (
	topColor    = colorful.Color{R: 0.98, G: 0.82, B: 0.25}
	bottomColor = colorful.Color{R: 0.55, G: 0.15, B: 0.65}
)

// Render draws every row of the triangle covered by g, odd coefficients as
// filled cells. When colored is set each row is tinted with a 24-bit ANSI
// color running from the apex to the base.
func (g *Gasket) Render(w io.Writer, colored bool) error {
	bw := bufio.NewWriter(w)
	cells := make([]string, 0, g.rows)
	for n := 0; n < g.rows; n++ {
		cells = cells[:0]
		for k := 0; k <= n; k++ {
			if g.Odd(n, k) {
				cells = append(cells, oddCell)
			} else {
				cells = append(cells, evenCell)
			}
		}
		line := strings.Repeat(" ", g.rows-1-n) + strings.Join(cells, " ")
		line = strings.TrimRight(line, " ")

		if colored {
			r, gr, b := rowColor(n, g.rows).RGB255()
			line = fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, gr, b, line)
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func rowColor(n, rows int) colorful.Color {
	if rows < 2 {
		return topColor
	}
	t := float64(n) / float64(rows-1)
	return topColor.BlendLab(bottomColor, t).Clamped()
}
