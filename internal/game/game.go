// Package game runs a two-player game on top of the rules engine: it
// enforces turn order and legal moves, records every applied move and
// serializes access to the board.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// backRank is the standard first-rank layout from the a-file.
var backRank = []chess.Model{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// Game is one game between two players. All methods are safe for
// concurrent use; each move is applied, recomputed and classified while
// the game is locked. Listeners run with the game locked and must not call
// back into it.
type Game struct {
	id string

	mu        sync.Mutex
	cfg       *config.Config
	board     *engine.Board
	history   []chess.Move
	listeners []engine.Listener
}

// New validates cfg and creates a game with its initial layout.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		id:  uuid.New().String(),
		cfg: cfg,
	}
	if err := g.Initialize(); err != nil {
		return nil, err
	}
	return g, nil
}

// Initialize discards the current position and history and sets up the
// configured starting position. Subscribed listeners are kept.
func (g *Game) Initialize() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	board, err := newBoard(g.cfg.Board)
	if err != nil {
		return err
	}
	for _, l := range g.listeners {
		board.Subscribe(l)
	}
	g.board = board
	g.history = nil

	g.logf(2, "game %s: %s setup on %dx%d board", g.id, setupName(g.cfg.Board), board.Width(), board.Height())
	return nil
}

func newBoard(cfg *config.BoardConfig) (*engine.Board, error) {
	if cfg.FEN != "" {
		return engine.NewBoardFromFEN(cfg.FEN)
	}

	b := engine.NewBoard(cfg.Width, cfg.Height)
	top := cfg.Height - 1
	switch cfg.Setup {
	case config.SetupStandard:
		for x, model := range backRank {
			b.AddPiece(engine.NewPiece(model, chess.PlayerOne, chess.V(x, 0)))
			b.AddPiece(engine.NewPiece(model, chess.PlayerTwo, chess.V(x, top)))
		}
		placePawns(b, cfg.Width, top)
	case config.SetupPawns:
		placePawns(b, cfg.Width, top)
	case config.SetupEmpty:
	default:
		return nil, fmt.Errorf("unknown setup %v: %w", cfg.Setup, errors.ErrInvalidConfig)
	}
	return b, nil
}

// placePawns fills the second rank of each player with pawns.
func placePawns(b *engine.Board, width, top int) {
	for x := 0; x < width; x++ {
		b.AddPiece(engine.NewPiece(chess.Pawn, chess.PlayerOne, chess.V(x, 1)))
		b.AddPiece(engine.NewPiece(chess.Pawn, chess.PlayerTwo, chess.V(x, top-1)))
	}
}

func setupName(cfg *config.BoardConfig) string {
	if cfg.FEN != "" {
		return "FEN"
	}
	return cfg.Setup.String()
}

// MovePiece moves the piece on origin to destination for the player to move.
// A pawn reaching its last rank is promoted to promotion right away; with
// chess.NoModel the promotion stays pending until Promote is called.
// Errors are returned as *errors.MoveError and leave the game unchanged.
func (g *Game) MovePiece(origin, destination chess.Vector, promotion chess.Model) (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fail := func(piece *engine.Piece, err error) (chess.Move, error) {
		me := &errors.MoveError{
			Err:         err,
			Ply:         len(g.history) + 1,
			Origin:      chess.SquareName(origin),
			Destination: chess.SquareName(destination),
		}
		if piece != nil {
			me.Piece = piece.String()
		}
		return chess.Move{}, me
	}

	if g.board.PendingPromotion() != nil {
		return fail(nil, errors.ErrPromotionPending)
	}
	piece := g.board.Piece(origin)
	if piece == nil {
		return fail(nil, errors.ErrNoPiece)
	}
	mover := g.board.Turn()
	model := piece.Model()
	if piece.Player() != mover {
		return fail(piece, errors.ErrNotYourTurn)
	}
	if promotion != chess.NoModel {
		if !promotion.CanPromoteTo() || piece.Model() != chess.Pawn ||
			destination.Y != g.board.PromotionRank(mover) {
			return fail(piece, errors.ErrInvalidPromotion)
		}
	}
	if !contains(g.board.Movement(origin).LegalMoves(), destination) {
		return fail(piece, errors.ErrIllegalMove)
	}
	if g.cfg.Rules.RejectSelfCheck {
		check, err := g.board.LeavesKingInCheck(origin, destination)
		if err != nil {
			return fail(piece, err)
		}
		if check {
			return fail(piece, errors.ErrSelfCheck)
		}
	}

	captured, err := g.board.Move(origin, destination)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCastling) {
			g.logf(1, "game %s: rejected castling %s: %v", g.id, piece, err)
		}
		return fail(piece, err)
	}
	if promotion != chess.NoModel {
		if err := g.board.Promote(promotion); err != nil {
			return fail(piece, err)
		}
	}
	g.board.AdvanceTurn()

	pending := engine.Pending{
		Piece:       piece,
		Captured:    captured,
		Origin:      origin,
		HasOrigin:   true,
		Destination: destination,
	}
	moveType, err := engine.Detect(g.board, pending)
	if err != nil {
		return fail(piece, err)
	}
	if moveType == chess.Normal && promotion != chess.NoModel {
		moveType = chess.Promotion
	}

	record := chess.Move{
		Player:      mover,
		Piece:       model,
		Origin:      origin,
		Destination: destination,
		Promotion:   promotion,
		Type:        moveType,
	}
	if captured != nil {
		record.Captured = captured.Model()
	}
	g.history = append(g.history, record)

	g.logf(2, "game %s: %d. %s %s", g.id, len(g.history), mover, record)
	return record, nil
}

// Promote resolves a pending promotion and fills it into the last move
// record, which is reclassified for the promoted piece.
func (g *Game) Promote(model chess.Model) (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	pawn := g.board.PendingPromotion()
	if err := g.board.Promote(model); err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: len(g.history)}
	}

	last := &g.history[len(g.history)-1]
	last.Promotion = model

	moveType, err := engine.Detect(g.board, engine.Pending{
		Piece:       pawn,
		Origin:      last.Origin,
		HasOrigin:   true,
		Destination: last.Destination,
	})
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: len(g.history), Piece: pawn.String()}
	}
	switch {
	case last.IsCapture():
	case moveType == chess.Normal:
		last.Type = chess.Promotion
	default:
		last.Type = moveType
	}

	g.logf(2, "game %s: %s promoted to %s", g.id, chess.SquareName(last.Destination), model)
	return *last, nil
}

// ID returns the unique identifier generated for this game.
func (g *Game) ID() string {
	return g.id
}

// Board returns the game's board. Callers must not move pieces on it.
func (g *Game) Board() *engine.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Turn returns the player to move.
func (g *Game) Turn() chess.Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Turn()
}

// PieceAt returns the piece on sq, or nil.
func (g *Game) PieceAt(sq chess.Vector) *engine.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Piece(sq)
}

// LegalMoves returns the destinations MovePiece accepts for the piece on sq,
// ignoring turn order.
func (g *Game) LegalMoves(sq chess.Vector) []chess.Vector {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cfg.Rules.RejectSelfCheck {
		return g.board.SafeMoves(sq)
	}
	m := g.board.Movement(sq)
	if m == nil {
		return nil
	}
	return m.LegalMoves()
}

// InCheck reports whether the player to move is in check.
func (g *Game) InCheck() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.IsKingInCheck(g.board.Turn())
}

// Ending returns the type of the final move if the game has ended by
// checkmate or stalemate.
func (g *Game) Ending() (chess.MoveType, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.history) == 0 {
		return chess.Normal, false
	}
	t := g.history[len(g.history)-1].Type
	return t, t.IsEnding()
}

// History returns a copy of the applied moves in order.
func (g *Game) History() []chess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]chess.Move(nil), g.history...)
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.BoardToFEN(g.board)
}

// Subscribe registers l for every position change, including those on
// boards created by later calls to Initialize.
func (g *Game) Subscribe(l engine.Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
	g.board.Subscribe(l)
}

// logf writes a diagnostic line when the configured verbosity reaches level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity < level || g.cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(g.cfg.LogFile, format+"\n", args...)
}

func contains(squares []chess.Vector, sq chess.Vector) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
