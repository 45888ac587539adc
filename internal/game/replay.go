package game

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PlayMoves applies whitespace-separated moves in coordinate notation,
// e.g. "e2e4 e7e5 g1f3". Move numbers such as "1." are skipped. It stops
// at the first move that cannot be parsed or is rejected.
func (g *Game) PlayMoves(moves string) error {
	for _, text := range strings.Fields(moves) {
		if strings.HasSuffix(text, ".") {
			continue
		}
		origin, destination, promotion, err := chess.ParseCoordinateMove(text)
		if err != nil {
			return errors.Wrapf(err, "move %q", text)
		}
		if _, err := g.MovePiece(origin, destination, promotion); err != nil {
			return errors.Wrapf(err, "move %q", text)
		}
	}
	return nil
}
