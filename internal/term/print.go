package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/session"
)

// Print writes the view as a colored board followed by a status line. With
// useColor unset the output is plain text.
func Print(w io.Writer, v session.View, useColor bool) error {
	light := color.New(color.BgHiYellow, color.FgBlack)
	dark := color.New(color.BgYellow, color.FgBlack)
	focus := color.New(color.BgMagenta, color.FgHiWhite, color.Bold)
	held := color.New(color.BgHiWhite, color.FgBlack, color.ReverseVideo)
	label := color.New(color.FgHiBlack)
	for _, c := range []*color.Color{light, dark, focus, held, label} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var sb strings.Builder
	for r := board.NumRanks - 1; r >= 0; r-- {
		sb.WriteString(label.Sprintf("%d ", r+1))
		for f := 0; f < board.NumFiles; f++ {
			sv := v.At(board.NewSquare(f, r))
			cell := " . "
			if sv.HasPiece() {
				cell = " " + sv.Piece.String() + " "
			}
			if !useColor && sv.Focused {
				cell = "[" + cell[1:2] + "]"
			}
			switch {
			case sv.Held:
				sb.WriteString(held.Sprint(cell))
			case sv.Focused:
				sb.WriteString(focus.Sprint(cell))
			case sv.Light():
				sb.WriteString(light.Sprint(cell))
			default:
				sb.WriteString(dark.Sprint(cell))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(label.Sprint("   A  B  C  D  E  F  G  H"))
	sb.WriteByte('\n')

	status := "Cursor " + v.Cursor.String()
	if v.Holding {
		status += ", holding " + v.HeldPiece.Name() + " from " + v.HeldFrom.String()
	}
	if v.LastMove != nil {
		status += ", last " + v.LastMove.String()
	}
	sb.WriteString(status)
	sb.WriteByte('\n')

	_, err := fmt.Fprint(w, sb.String())
	return err
}
