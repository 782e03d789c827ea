package session

import (
	"sync"
	"time"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
)

// Room serialises all operations on one game.
type Room struct {
	id         string
	mu         sync.Mutex
	game       *Game
	lastActive time.Time
}

// NewRoom creates a room holding a fresh game.
func NewRoom(id string) *Room {
	return &Room{id: id, game: NewGame(), lastActive: time.Now()}
}

// ID returns the room identifier.
func (r *Room) ID() string {
	return r.id
}

// Select returns the legal destinations of the piece on from for the side to move.
func (r *Room) Select(from chess.Square) []chess.Square {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastActive = time.Now()
	return engine.LegalMoves(r.game.Board, from, r.game.Turn)
}

// Move plays from -> to for the side to move. The turn passes to the other
// side only when the move is legal; an illegal move leaves the game untouched.
func (r *Room) Move(from, to chess.Square) (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := engine.ApplyMove(r.game.Board, from, to, r.game.Turn)
	if !ok {
		return r.game.snapshot(), false
	}
	r.game.Board = board
	r.game.Turn = r.game.Turn.Opposite()
	r.lastActive = time.Now()
	return r.game.snapshot(), true
}

// Snapshot returns a copy of the current state.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.snapshot()
}

// Reset restores the starting position.
func (r *Room) Reset() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game = NewGame()
	r.lastActive = time.Now()
	return r.game.snapshot()
}

// LastActive returns when the room was created or last had a piece selected,
// a legal move played or a reset.
func (r *Room) LastActive() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActive
}
