// Package output prints games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game header, the optional diagram, the move list and
// the optional final FEN to w.
func OutputGame(g *game.Game, cfg *config.Config, w io.Writer) {
	fmt.Fprintf(w, "[Game %q]\n", g.ID())

	if cfg.Output.ShowBoard {
		RenderBoard(w, g.Board(), cfg.Output.Coordinates)
	}

	ow := NewOutputWriter(w, cfg.Output.MaxLineLength)
	outputMoves(g.History(), cfg, ow)
	if ending, ok := g.Ending(); ok {
		ow.Write("{" + ending.String() + "}")
	}
	ow.NewLine()

	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	}
	fmt.Fprintln(w)
}

// outputMoves writes numbered moves; a list starting with the second
// player opens with "N...".
func outputMoves(moves []chess.Move, cfg *config.Config, ow *OutputWriter) {
	number := 1
	for i, m := range moves {
		switch {
		case m.Player == chess.PlayerOne:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(formatMove(m, cfg.Output.KeepChecks))
		if m.Player == chess.PlayerTwo {
			number++
		}
	}
}

// formatMove returns the move text with an optional check suffix.
func formatMove(m chess.Move, keepChecks bool) string {
	text := m.Text()
	if !keepChecks {
		return text
	}
	switch m.Type {
	case chess.Check:
		text += "+"
	case chess.Checkmate:
		text += "#"
	}
	return text
}

// RenderBoard draws the board top rank first, one character per square:
// FEN letters for pieces and '.' for empty squares.
func RenderBoard(w io.Writer, b *engine.Board, coordinates bool) {
	labelWidth := len(fmt.Sprint(b.Height()))

	for y := b.Height() - 1; y >= 0; y-- {
		squares := make([]string, b.Width())
		for x := range squares {
			squares[x] = "."
			if p := b.Piece(chess.V(x, y)); p != nil {
				squares[x] = pieceSymbol(p)
			}
		}
		if coordinates {
			fmt.Fprintf(w, "%*d ", labelWidth, y+chess.RankBase)
		}
		fmt.Fprintln(w, strings.Join(squares, " "))
	}

	if coordinates {
		files := make([]string, b.Width())
		for x := range files {
			files[x] = string(rune(chess.ColBase + x))
		}
		fmt.Fprintf(w, "%*s %s\n", labelWidth, "", strings.Join(files, " "))
	}
}

func pieceSymbol(p *engine.Piece) string {
	letter := string(p.Model().Letter())
	if p.Player() == chess.PlayerTwo {
		return strings.ToLower(letter)
	}
	return letter
}
