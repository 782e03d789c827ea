// Package session holds the live games served to clients, one per room.
package session

import (
	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
)

// Game is the authoritative state of one game.
type Game struct {
	Board *chess.Board
	Turn  chess.Colour
}

// NewGame returns a game at the starting position with White to move.
func NewGame() *Game {
	return &Game{
		Board: engine.NewInitialBoard(),
		Turn:  chess.White,
	}
}

// Snapshot is a copy of a game's state plus whether the side to move is in check.
type Snapshot struct {
	Board *chess.Board
	Turn  chess.Colour
	Check bool
}

// snapshot copies the game so callers can read it without holding the room lock.
func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Board: g.Board.Copy(),
		Turn:  g.Turn,
		Check: engine.IsInCheck(g.Board, g.Turn),
	}
}
