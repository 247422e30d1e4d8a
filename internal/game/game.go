// Package game records a single game as the chain of positions produced by
// the rules engine. A Game is safe for concurrent use.
package game

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Status describes whether the game is still being played.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// PlayedMove is one accepted ply.
type PlayedMove struct {
	Ply  int         // 1-based
	Move engine.Move // The executed move
	Text string      // Move text with check suffix, e.g. "Qh4#"
}

// Game holds the positions of one game from its start to the current ply.
type Game struct {
	ID uuid.UUID

	mu        sync.Mutex
	positions []*engine.Position
	moves     []PlayedMove
	promotion chess.Kind
}

// Option configures a Game.
type Option func(*Game)

// WithID sets the game identifier instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// WithPromotion sets the piece that Play, and PlayText for text naming no
// piece, promote to. Invalid choices are
// ignored and the queen is kept.
func WithPromotion(kind chess.Kind) Option {
	return func(g *Game) {
		if kind.IsPromotionChoice() {
			g.promotion = kind
		}
	}
}

// New starts a game from the standard position.
func New(opts ...Option) *Game {
	return NewFromPosition(engine.NewStandardPosition(), opts...)
}

// NewFromPosition starts a game from pos.
func NewFromPosition(pos *engine.Position, opts ...Option) *Game {
	g := &Game{
		ID:        uuid.New(),
		positions: []*engine.Position{pos},
		promotion: chess.Queen,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromFEN starts a game from a FEN string.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewFromPosition(pos, opts...), nil
}

// Play submits the move between two squares, promoting to the game's
// promotion piece where applicable.
func (g *Game) Play(from, to chess.Square) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := engine.CreateMoveWithPromotion(g.current(), from, to, g.promotion)
	if m.IsNull() {
		return g.moveError(errors.ErrIllegalMove, from.String()+to.String())
	}
	return g.play(m)
}

// PlayMove submits m. The game only advances when the move is Done.
func (g *Game) PlayMove(m engine.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.play(m)
}

// PlayText parses text against the current position and plays it.
func (g *Game) PlayText(text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := engine.ParseMove(g.current(), text)
	if err != nil {
		return g.moveError(err, text)
	}
	if m.IsPromotion() && !namesPromotion(text) {
		m = m.WithPromotion(g.promotion)
	}
	return g.play(m)
}

// namesPromotion reports whether move text ends in a piece letter, as in
// "b8=N" or "b7b8n". Text for a move that is not a castle always ends in a
// rank digit otherwise.
func namesPromotion(text string) bool {
	text = strings.TrimRight(text, "+#!?")
	if text == "" {
		return false
	}
	last := text[len(text)-1]
	return last < '0' || last > '9'
}

func (g *Game) play(m engine.Move) error {
	tr := g.current().CurrentPlayer().MakeMove(m)
	switch tr.Status {
	case engine.Done:
	case engine.LeavesPlayerInCheck:
		return g.moveError(errors.ErrLeavesKingInCheck, m.Coordinates())
	default:
		return g.moveError(errors.ErrIllegalMove, m.Coordinates())
	}

	g.moves = append(g.moves, PlayedMove{
		Ply:  len(g.moves) + 1,
		Move: tr.Move,
		Text: engine.Notate(tr.Move),
	})
	g.positions = append(g.positions, tr.To)
	return nil
}

func (g *Game) moveError(err error, text string) error {
	return &errors.GameError{
		Err:      err,
		GameID:   g.ID.String(),
		PlyNum:   len(g.moves) + 1,
		MoveText: text,
	}
}

func (g *Game) current() *engine.Position {
	return g.positions[len(g.positions)-1]
}

// Current returns the latest position.
func (g *Game) Current() *engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current()
}

// Start returns the position the game started from.
func (g *Game) Start() *engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.positions[0]
}

// Positions returns every position from the start to the current one.
func (g *Game) Positions() []*engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*engine.Position(nil), g.positions...)
}

// Moves returns the accepted moves in order.
func (g *Game) Moves() []PlayedMove {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]PlayedMove(nil), g.moves...)
}

// Plies returns the number of accepted moves.
func (g *Game) Plies() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.moves)
}

// Status reports whether the side to move is mated, stalemated or still playing.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return statusOf(g.current())
}

func statusOf(pos *engine.Position) Status {
	player := pos.CurrentPlayer()
	switch {
	case player.IsInCheckmate():
		return Checkmate
	case player.IsInStalemate():
		return Stalemate
	default:
		return Ongoing
	}
}

// Result returns the result token: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	pos := g.Current()
	switch statusOf(pos) {
	case Checkmate:
		return chess.Select(pos.SideToMove(), "0-1", "1-0")
	case Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// InsufficientMaterial reports whether neither side has mating material left.
// The game is not ended by it.
func (g *Game) InsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.Current())
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.FEN(g.Current())
}
