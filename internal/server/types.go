package server

import "github.com/lgbarn/bureaucrat-chess/internal/wire"

// Websocket message types.
const (
	TypeJoin       = "join"
	TypeSelect     = "select"
	TypeMove       = "move"
	TypeReset      = "reset"
	TypeState      = "state"
	TypeLegalMoves = "legal_moves"
	TypeError      = "error"
)

// ClientMessage is a message from a websocket client.
type ClientMessage struct {
	Type string      `json:"type"`           // "join", "select", "move" or "reset"
	Room string      `json:"room"`           // Room identifier
	Pos  *wire.Coord `json:"pos,omitempty"`  // Square for "select"
	Move *wire.Move  `json:"move,omitempty"` // [fromRow, fromCol, toRow, toCol] for "move"
}

// StateMessage is broadcast to a room after a join, a reset and every legal move.
type StateMessage struct {
	Type string `json:"type"`
	Room string `json:"room"`
	wire.State
}

// LegalMovesMessage answers a "select" to the requesting client only.
type LegalMovesMessage struct {
	Type  string       `json:"type"`
	Room  string       `json:"room"`
	From  wire.Coord   `json:"from"`
	Moves []wire.Coord `json:"moves"`
}

// ErrorMessage reports a malformed client message.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// PositionRequest is the body shared by the stateless engine endpoints.
type PositionRequest struct {
	Board wire.Board `json:"board"`
	Turn  string     `json:"turn"`
}

// LegalMovesRequest asks for the legal moves of one piece.
type LegalMovesRequest struct {
	PositionRequest
	From *wire.Coord `json:"from"`
}

// LegalMovesResponse lists the legal destinations of one piece.
type LegalMovesResponse struct {
	From  wire.Coord   `json:"from"`
	Moves []wire.Coord `json:"moves"`
}

// MoveRequest asks for a move to be applied.
type MoveRequest struct {
	PositionRequest
	Move *wire.Move `json:"move"`
}

// MoveResponse is the position after a move. When OK is false the board and
// turn are those of the request.
type MoveResponse struct {
	OK bool `json:"ok"`
	wire.State
}

// CheckResponse reports whether the side in the request is in check.
type CheckResponse struct {
	Check bool `json:"check"`
}

// RoomRequest names a room to create; an empty name gets a generated one.
type RoomRequest struct {
	Room string `json:"room"`
}

// RoomResponse describes one room.
type RoomResponse struct {
	Room    string `json:"room"`
	Clients int    `json:"clients"` // Websocket clients in the room
	wire.State
}

// RoomsResponse lists room identifiers.
type RoomsResponse struct {
	Rooms   []string `json:"rooms"`
	Watched []string `json:"watched"` // Rooms with at least one websocket client
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Rooms   int    `json:"rooms"`
}

// ErrorResponse is returned for rejected HTTP requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
