package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func testConfig() *config.Config {
	return config.NewConfigBuilder().
		ShowBoard(false).
		WithLog(&bytes.Buffer{}).
		Build()
}

func playedGame(t *testing.T, cfg *config.Config, moves string) *game.Game {
	t.Helper()
	g, err := game.New(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.PlayMoves(moves))
	return g
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e2-e4", "e7-e5", "2.", "g1-f3"} {
		ow.Write(s)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "1. e2-e4\ne7-e5 2.\ng1-f3\n")
}

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&buf, engine.NewInitialBoard(), true)

	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
	}, "\n") + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBoard_NoCoordinates(t *testing.T) {
	b, err := engine.NewBoardFromFEN("k9/10/10/10/10/10/10/10/10/9K w - -")
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	RenderBoard(&buf, b, false)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 10)
	testutil.AssertEqual(t, lines[0], "k . . . . . . . . .")
	testutil.AssertEqual(t, lines[9], ". . . . . . . . . K")
}

func TestOutputGame(t *testing.T) {
	tests := []struct {
		name  string
		cfg   func(*config.Config)
		moves string
		want  string
	}{
		{
			name:  "opening",
			moves: "e2e4 e7e5 g1f3",
			want:  "1. e2-e4 e7-e5 2. Ng1-f3\n",
		},
		{
			name:  "mate with ending",
			moves: "f2f3 e7e5 g2g4 d8h4",
			want:  "1. f2-f3 e7-e5 2. g2-g4 Qd8-h4# {checkmate}\n",
		},
		{
			name:  "checks dropped",
			cfg:   func(c *config.Config) { c.Output.KeepChecks = false },
			moves: "f2f3 e7e5 g2g4 d8h4",
			want:  "1. f2-f3 e7-e5 2. g2-g4 Qd8-h4 {checkmate}\n",
		},
		{
			name: "second player first",
			cfg: func(c *config.Config) {
				c.Board.FEN = "4k3/8/8/8/8/8/8/4K3 b - -"
			},
			moves: "e8d8 e1d1",
			want:  "1... Ke8-d8 2. Ke1-d1\n",
		},
		{
			name: "final FEN",
			cfg: func(c *config.Config) {
				c.Output.ShowFEN = true
			},
			moves: "e2e4",
			want:  "1. e2-e4\nFEN: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			g := playedGame(t, cfg, tt.moves)

			var buf bytes.Buffer
			OutputGame(g, cfg, &buf)

			want := "[Game \"" + g.ID() + "\"]\n" + tt.want + "\n"
			testutil.AssertEqual(t, buf.String(), want)
		})
	}
}

func TestOutputGame_WithBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Output.ShowBoard = true
	g := playedGame(t, cfg, "")

	var buf bytes.Buffer
	OutputGame(g, cfg, &buf)

	out := buf.String()
	testutil.AssertTrue(t, strings.Contains(out, "1 R N B Q K B N R\n"), out)
	testutil.AssertTrue(t, strings.HasSuffix(out, "  a b c d e f g h\n\n"), out)
}

func TestGameToJSON(t *testing.T) {
	cfg := testConfig()
	cfg.Output.ShowFEN = true
	g := playedGame(t, cfg, "e2e4 d7d5 e4d5")

	jg := GameToJSON(g, cfg)
	testutil.AssertEqual(t, jg.ID, g.ID())
	testutil.AssertEqual(t, jg.PlyCount, 3)
	testutil.AssertEqual(t, jg.ToMove, "black")
	testutil.AssertFalse(t, jg.InCheck)
	testutil.AssertEqual(t, jg.Ending, "")
	testutil.AssertEqual(t, jg.FinalFEN, g.FEN())

	testutil.AssertEqual(t, jg.Moves[2], JSONMove{
		MoveNumber: 2,
		Color:      "white",
		Text:       "e4xd5",
		UCI:        "e4d5",
		From:       "e4",
		To:         "d5",
		Piece:      "pawn",
		Captured:   "pawn",
		Type:       "capture",
	})
}

func TestGameToJSON_Promotion(t *testing.T) {
	cfg := testConfig()
	cfg.Board.FEN = "4k3/P7/8/8/8/8/8/4K3 w - -"
	g := playedGame(t, cfg, "a7a8q")

	jg := GameToJSON(g, cfg)
	testutil.AssertEqual(t, jg.Moves[0].Promotion, "queen")
	testutil.AssertEqual(t, jg.Moves[0].UCI, "a7a8q")
	testutil.AssertEqual(t, jg.Moves[0].Text, "a7-a8=Q+")
	testutil.AssertTrue(t, jg.InCheck)
}

func TestJSONWriter_Batch(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	w := NewGameWriter(&buf, cfg)
	if _, ok := w.(*TextWriter); !ok {
		t.Fatalf("NewGameWriter() = %T, want *TextWriter", w)
	}

	cfg.Output.JSONFormat = true
	w = NewGameWriter(&buf, cfg)
	testutil.AssertNoError(t, w.WriteGame(playedGame(t, cfg, "e2e4")))
	testutil.AssertNoError(t, w.WriteGame(playedGame(t, cfg, "d2d4 d7d5")))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer buffers until Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Games), 2)
	testutil.AssertEqual(t, out.Games[1].PlyCount, 2)
	testutil.AssertEqual(t, out.Games[1].Moves[1].Color, "black")
}

func TestJSONWriter_Single(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf, cfg)

	testutil.AssertNoError(t, w.WriteGame(playedGame(t, cfg, "e2e4")))
	testutil.AssertTrue(t, buf.Len() > 0, "single writer writes immediately")

	var jg JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &jg))
	testutil.AssertEqual(t, jg.Moves[0].UCI, "e2e4")
	testutil.AssertNoError(t, w.Close())
}

func TestTextWriter(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	w := NewTextWriter(&buf, cfg)

	testutil.AssertNoError(t, w.WriteGame(playedGame(t, cfg, "e2e4")))
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertTrue(t, strings.Contains(buf.String(), "1. e2-e4\n"), buf.String())
}
