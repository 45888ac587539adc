package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkRecomputeThreats(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.RecomputeThreats()
			}
		})
	}
}

func BenchmarkHasSafeMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.HasSafeMoves(chess.PlayerOne)
			}
		})
	}
}

func BenchmarkMove(b *testing.B) {
	e2, e4 := chess.V(4, 1), chess.V(4, 3)
	for i := 0; i < b.N; i++ {
		board := NewInitialBoard()
		_, _ = board.Move(e2, e4)
	}
}

func BenchmarkDetect(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Complex"])
	pending := Pending{
		Piece:       board.Piece(chess.V(4, 0)),
		Origin:      chess.V(4, 0),
		HasOrigin:   true,
		Destination: chess.V(3, 0),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Detect(board, pending)
	}
}
