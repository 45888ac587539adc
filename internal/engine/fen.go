package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from the placement, side-to-move and
// castling fields of a FEN string. The board takes its height from the
// number of ranks and its width from the first rank. Kings and corner rooks
// without a castling right are marked as moved. Remaining fields are ignored.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	ranks := strings.Split(parts[0], "/")
	width, err := rankWidth(ranks[0])
	if err != nil {
		return nil, err
	}
	if width < 1 || width > chess.MaxFiles {
		return nil, fmt.Errorf("board width %d: %w", width, errors.ErrInvalidFEN)
	}

	board := NewBoard(width, len(ranks))
	if err := parsePiecePositions(board, ranks); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	parseCastlingRights(board, parts)

	board.RecomputeThreats()
	return board, nil
}

// rankWidth counts the files described by one rank of the placement field.
func rankWidth(rank string) (int, error) {
	width := 0
	run := 0
	for _, c := range rank {
		if c >= '0' && c <= '9' {
			run = run*10 + int(c-'0')
			if run > chess.MaxFiles {
				return 0, fmt.Errorf("rank %q: empty run over %d files: %w", rank, chess.MaxFiles, errors.ErrInvalidFEN)
			}
			continue
		}
		width += run + 1
		run = 0
	}
	width += run
	if width == 0 {
		return 0, fmt.Errorf("empty rank %q: %w", rank, errors.ErrInvalidFEN)
	}
	return width, nil
}

// parsePiecePositions parses the piece placement field, top rank first.
func parsePiecePositions(board *Board, ranks []string) error {
	for i, rank := range ranks {
		y := board.height - 1 - i
		if w, err := rankWidth(rank); err != nil || w != board.width {
			return fmt.Errorf("rank %d has %d files, want %d: %w", y+1, w, board.width, errors.ErrInvalidFEN)
		}

		x := 0
		run := 0
		for _, c := range rank {
			if c >= '0' && c <= '9' {
				run = run*10 + int(c-'0')
				continue
			}
			x += run
			run = 0

			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			model := chess.ParseModel(byte(c))
			if model == chess.NoModel {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			player := chess.PlayerOne
			if unicode.IsLower(c) {
				player = chess.PlayerTwo
			}
			p := NewPiece(model, player, chess.V(x, y))
			board.squares[p.pos] = occupant{piece: p, movement: NewMovement(p, board)}
			x++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.moveNumber = int(chess.PlayerOne)
	case "b":
		board.moveNumber = int(chess.PlayerTwo)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks kings and corner rooks as moved unless the
// castling field grants them a right. A missing field grants every right.
func parseCastlingRights(board *Board, parts []string) {
	if len(parts) < 3 {
		return
	}

	rights := map[rune]bool{}
	for _, c := range parts[2] {
		rights[c] = true
	}

	type corner struct {
		right  rune
		player chess.Player
		side   chess.MoveType
	}
	corners := []corner{
		{'K', chess.PlayerOne, chess.KingSideCastling},
		{'Q', chess.PlayerOne, chess.QueenSideCastling},
		{'k', chess.PlayerTwo, chess.KingSideCastling},
		{'q', chess.PlayerTwo, chess.QueenSideCastling},
	}

	kingRight := [chess.NumPlayers]bool{}
	for _, c := range corners {
		rank := 0
		if c.player == chess.PlayerTwo {
			rank = board.height - 1
		}
		sq := castlingCorner(board.width, c.side, rank)
		if rights[c.right] {
			kingRight[c.player] = true
			continue
		}
		if rook := board.Piece(sq); isRookOf(rook, c.player) {
			rook.moved = true
		}
	}

	for _, p := range board.Pieces() {
		if p.model == chess.King && !kingRight[p.player] {
			p.moved = true
		}
	}
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from unmoved kings and corner rooks; en passant is never available and
// the halfmove clock is always 0.
func BoardToFEN(board *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.Turn() == chess.PlayerOne {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	fmt.Fprintf(&sb, " - 0 %d", board.moveNumber/chess.NumPlayers+1)

	return sb.String()
}

// pieceLetter returns the FEN letter: uppercase for the first player.
func pieceLetter(p *Piece) byte {
	letter := p.model.Letter()
	if p.player == chess.PlayerTwo {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *Board) {
	for y := board.height - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < board.width; x++ {
			p := board.Piece(chess.V(x, y))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceLetter(p))
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *Board) {
	hasCastling := false
	for _, player := range []chess.Player{chess.PlayerOne, chess.PlayerTwo} {
		king := board.King(player)
		if king == nil || king.moved {
			continue
		}
		for _, side := range []chess.MoveType{chess.KingSideCastling, chess.QueenSideCastling} {
			rook := board.Piece(castlingCorner(board.width, side, king.pos.Y))
			if !isRookOf(rook, player) || rook.moved {
				continue
			}
			letter := byte('K')
			if side == chess.QueenSideCastling {
				letter = 'Q'
			}
			if player == chess.PlayerTwo {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
