// Package engine implements the chess rules: move generation per piece,
// move execution into new immutable positions, and the player legality layer
// (check, checkmate, stalemate, castling).
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Position is an immutable snapshot of the board. Every accepted move yields
// a new Position; none of its fields change after Build.
type Position struct {
	tiles        [chess.NumTiles]chess.Tile
	whitePieces  []chess.Piece
	blackPieces  []chess.Piece
	enPassant    chess.Piece
	hasEnPassant bool
	toMove       chess.Colour

	whitePlayer   *Player
	blackPlayer   *Player
	currentPlayer *Player
}

// Builder accumulates piece placements, the side to move and the en-passant
// pawn, then freezes them into a Position.
type Builder struct {
	config       map[chess.Square]chess.Piece
	nextMover    chess.Colour
	enPassant    chess.Piece
	hasEnPassant bool
}

// NewBuilder creates an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{
		config:    make(map[chess.Square]chess.Piece),
		nextMover: chess.White,
	}
}

// SetPiece places a piece on its own square, replacing any previous occupant.
func (b *Builder) SetPiece(piece chess.Piece) *Builder {
	b.config[piece.Square] = piece
	return b
}

// SetMoveMaker sets the side to move.
func (b *Builder) SetMoveMaker(c chess.Colour) *Builder {
	b.nextMover = c
	return b
}

// SetEnPassantPawn records the pawn that may be captured in passing.
func (b *Builder) SetEnPassantPawn(pawn chess.Piece) *Builder {
	b.enPassant = pawn
	b.hasEnPassant = true
	return b
}

// Build freezes the builder into a Position. It panics if either side has
// no king, which only happens when a board is assembled incorrectly.
func (b *Builder) Build() *Position {
	pos := &Position{
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
		toMove:       b.nextMover,
	}
	for sq := chess.Square(0); sq < chess.NumTiles; sq++ {
		if piece, ok := b.config[sq]; ok {
			pos.tiles[sq] = chess.NewTile(sq, &piece)
		} else {
			pos.tiles[sq] = chess.EmptyTile(sq)
		}
	}
	pos.whitePieces = pos.calculateActivePieces(chess.White)
	pos.blackPieces = pos.calculateActivePieces(chess.Black)

	whiteMoves := pos.calculateLegalMoves(pos.whitePieces)
	blackMoves := pos.calculateLegalMoves(pos.blackPieces)

	pos.whitePlayer = newPlayer(pos, chess.White, whiteMoves, blackMoves)
	pos.blackPlayer = newPlayer(pos, chess.Black, blackMoves, whiteMoves)
	pos.currentPlayer = chess.Select(b.nextMover, pos.whitePlayer, pos.blackPlayer)
	return pos
}

// calculateActivePieces collects the pieces of one colour in square order.
func (pos *Position) calculateActivePieces(c chess.Colour) []chess.Piece {
	var pieces []chess.Piece
	for _, tile := range pos.tiles {
		if piece, ok := tile.Piece(); ok && piece.Colour == c {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// calculateLegalMoves gathers the pseudo-legal moves of every piece.
func (pos *Position) calculateLegalMoves(pieces []chess.Piece) []Move {
	var moves []Move
	for _, piece := range pieces {
		moves = append(moves, pieceMoves(piece, pos)...)
	}
	return moves
}

// NewStandardPosition returns the standard starting position with White to move.
func NewStandardPosition() *Position {
	backRank := []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}

	builder := NewBuilder()
	for col, kind := range backRank {
		blackHome := chess.SquareAt(col, 0)
		whiteHome := chess.SquareAt(col, 7)
		if kind == chess.King {
			builder.SetPiece(chess.NewKing(chess.Black, blackHome, true, true))
			builder.SetPiece(chess.NewKing(chess.White, whiteHome, true, true))
		} else {
			builder.SetPiece(chess.NewPiece(kind, chess.Black, blackHome))
			builder.SetPiece(chess.NewPiece(kind, chess.White, whiteHome))
		}
		builder.SetPiece(chess.NewPiece(chess.Pawn, chess.Black, chess.SquareAt(col, 1)))
		builder.SetPiece(chess.NewPiece(chess.Pawn, chess.White, chess.SquareAt(col, 6)))
	}
	builder.SetMoveMaker(chess.White)
	return builder.Build()
}

// Tile returns the tile for sq. sq must be valid.
func (pos *Position) Tile(sq chess.Square) chess.Tile {
	return pos.tiles[sq]
}

// PieceAt returns the piece on sq, if any. Off-board squares are empty.
func (pos *Position) PieceAt(sq chess.Square) (chess.Piece, bool) {
	if !sq.Valid() {
		return chess.Piece{}, false
	}
	return pos.tiles[sq].Piece()
}

// IsOccupied reports whether a piece stands on sq.
func (pos *Position) IsOccupied(sq chess.Square) bool {
	return sq.Valid() && pos.tiles[sq].Occupied()
}

// ActivePieces returns the pieces of colour c in square order.
func (pos *Position) ActivePieces(c chess.Colour) []chess.Piece {
	return chess.Select(c, pos.whitePieces, pos.blackPieces)
}

// AllPieces returns every piece on the board, White first.
func (pos *Position) AllPieces() []chess.Piece {
	all := make([]chess.Piece, 0, len(pos.whitePieces)+len(pos.blackPieces))
	all = append(all, pos.whitePieces...)
	return append(all, pos.blackPieces...)
}

// EnPassantPawn returns the pawn that may be captured in passing, if any.
func (pos *Position) EnPassantPawn() (chess.Piece, bool) {
	return pos.enPassant, pos.hasEnPassant
}

// SideToMove returns the colour of the side to move.
func (pos *Position) SideToMove() chess.Colour {
	return pos.toMove
}

// CurrentPlayer returns the player whose turn it is.
func (pos *Position) CurrentPlayer() *Player {
	return pos.currentPlayer
}

// WhitePlayer returns the White player.
func (pos *Position) WhitePlayer() *Player {
	return pos.whitePlayer
}

// BlackPlayer returns the Black player.
func (pos *Position) BlackPlayer() *Player {
	return pos.blackPlayer
}

// Player returns the player of colour c.
func (pos *Position) Player(c chess.Colour) *Player {
	return chess.Select(c, pos.whitePlayer, pos.blackPlayer)
}

// AllLegalMoves returns the pseudo-legal moves of both sides, White first.
func (pos *Position) AllLegalMoves() []Move {
	white := pos.whitePlayer.LegalMoves()
	black := pos.blackPlayer.LegalMoves()
	all := make([]Move, 0, len(white)+len(black))
	all = append(all, white...)
	return append(all, black...)
}

// String renders the board as an 8x8 grid, White upper case, Black lower
// case and '-' for empty squares.
func (pos *Position) String() string {
	var sb strings.Builder
	for sq := 0; sq < chess.NumTiles; sq++ {
		fmt.Fprintf(&sb, "%3s", pos.tiles[sq].String())
		if (sq+1)%chess.NumTilesPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
