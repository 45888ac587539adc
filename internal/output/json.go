package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID       string     `json:"id"`
	Moves    []JSONMove `json:"moves,omitempty"`
	PlyCount int        `json:"plyCount"`
	ToMove   string     `json:"toMove"`
	InCheck  bool       `json:"inCheck,omitempty"`
	Ending   string     `json:"ending,omitempty"`
	FinalFEN string     `json:"finalFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Type       string `json:"type"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	history := g.History()
	jg := &JSONGame{
		ID:       g.ID(),
		Moves:    convertMoveList(history, cfg),
		PlyCount: len(history),
		ToMove:   colorName(g.Turn()),
		InCheck:  g.InCheck(),
	}
	if ending, ok := g.Ending(); ok {
		jg.Ending = ending.String()
	}
	if cfg.Output.ShowFEN {
		jg.FinalFEN = g.FEN()
	}
	return jg
}

func convertMoveList(moves []chess.Move, cfg *config.Config) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	number := 1
	for _, m := range moves {
		result = append(result, convertSingleMove(m, number, cfg))
		if m.Player == chess.PlayerTwo {
			number++
		}
	}
	return result
}

func convertSingleMove(m chess.Move, number int, cfg *config.Config) JSONMove {
	jm := JSONMove{
		MoveNumber: number,
		Color:      colorName(m.Player),
		Text:       formatMove(m, cfg.Output.KeepChecks),
		UCI:        chess.CoordinateText(m.Origin, m.Destination, m.Promotion),
		From:       chess.SquareName(m.Origin),
		To:         chess.SquareName(m.Destination),
		Piece:      modelName(m.Piece),
		Type:       m.Type.String(),
	}
	if m.IsCapture() {
		jm.Captured = modelName(m.Captured)
	}
	if m.IsPromotion() {
		jm.Promotion = modelName(m.Promotion)
	}
	return jm
}

func colorName(p chess.Player) string {
	return strings.ToLower(p.String())
}

func modelName(m chess.Model) string {
	return strings.ToLower(m.String())
}

// OutputGamesJSON writes games as one indented JSON document.
func OutputGamesJSON(games []*game.Game, cfg *config.Config, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(games))}
	for _, g := range games {
		out.Games = append(out.Games, GameToJSON(g, cfg))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
