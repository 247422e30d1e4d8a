package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes the move log followed by the optional board, FEN and
// status lines.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes g as text.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	outputMoves(g, tw.cfg, tw.w)
	if tw.cfg.Output.ShowBoard {
		OutputBoard(g.Current(), tw.w)
	}
	if tw.cfg.Output.ShowFEN {
		if _, err := io.WriteString(tw.w, g.FEN()+"\n"); err != nil {
			return err
		}
	}
	OutputStatus(g, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	SAN       string `json:"san"`
	UCI       string `json:"uci"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON form.
func GameToJSON(g *game.Game) *JSONGame {
	jg := &JSONGame{
		ID:         g.ID.String(),
		InitialFEN: engine.FEN(g.Start()),
		FinalFEN:   g.FEN(),
		Moves:      make([]JSONMove, 0, g.Plies()),
		Status:     g.Status().String(),
		Result:     g.Result(),
	}

	for _, played := range g.Moves() {
		jg.Moves = append(jg.Moves, moveToJSON(played))
	}
	jg.PlyCount = len(jg.Moves)
	return jg
}

func moveToJSON(played game.PlayedMove) JSONMove {
	m := played.Move
	piece := m.MovedPiece()
	jm := JSONMove{
		Ply:   played.Ply,
		Color: strings.ToLower(piece.Colour.String()),
		SAN:   played.Text,
		UCI:   m.Coordinates(),
		Piece: piece.Kind.String(),
	}
	if attacked, ok := m.AttackedPiece(); ok {
		jm.Captured = attacked.Kind.String()
	}
	if m.IsPromotion() {
		jm.Promotion = m.PromotionKind().String()
	}
	return jm
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*game.Game
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*game.Game, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jw.games = append(jw.games, g)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	output := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}
	for _, g := range jw.games {
		output.Games = append(output.Games, GameToJSON(g))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
