package parser

import (
	"io"
	"log/slog"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// drawBox puts medium borders on the perimeter of [r1..r2] x [c1..c2].
func drawBox(g *Grid, r1, c1, r2, c2 int) {
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			var b Border
			if r == r1 {
				b.Top = BorderMedium
			}
			if r == r2 {
				b.Bottom = BorderMedium
			}
			if c == c1 {
				b.Left = BorderMedium
			}
			if c == c2 {
				b.Right = BorderMedium
			}
			if b != (Border{}) {
				g.SetBorder(r, c, b)
			}
		}
	}
}

func scanParams() TableDetectionParams {
	return TableDetectionParams{StartRow: 1, Logger: quietLogger()}
}
