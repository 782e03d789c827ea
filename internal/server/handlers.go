package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/lgbarn/bureaucrat-chess/internal/chess"
	"github.com/lgbarn/bureaucrat-chess/internal/config"
	"github.com/lgbarn/bureaucrat-chess/internal/engine"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
	"github.com/lgbarn/bureaucrat-chess/internal/session"
	"github.com/lgbarn/bureaucrat-chess/internal/wire"
)

// maxBodyBytes bounds request bodies; a board is well under 1 KiB.
const maxBodyBytes = 64 << 10

// Handlers holds the HTTP handlers.
type Handlers struct {
	store   session.Store
	hub     *Hub
	version string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store session.Store, hub *Hub, version string) *Handlers {
	return &Handlers{
		store:   store,
		hub:     hub,
		version: version,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck,gosec // client went away
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  code,
	})
}

// decodeBody decodes a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return false
	}
	return true
}

// decodePosition converts the board and turn of a request.
func decodePosition(w http.ResponseWriter, req PositionRequest) (*chess.Board, chess.Colour, bool) {
	board, err := wire.DecodeBoard(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_BOARD")
		return nil, chess.White, false
	}
	turn, err := wire.ParseTurn(req.Turn)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TURN")
		return nil, chess.White, false
	}
	return board, turn, true
}

// Health handles GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Rooms:   h.store.Len(),
	})
}

// Initial handles GET /api/initial
func (h *Handlers) Initial(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wire.NewState(engine.NewInitialBoard(), chess.White))
}

// LegalMoves handles POST /api/legal-moves
func (h *Handlers) LegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.From == nil {
		writeError(w, http.StatusBadRequest, "from is required", "MISSING_FROM")
		return
	}
	board, turn, ok := decodePosition(w, req.PositionRequest)
	if !ok {
		return
	}

	moves := engine.LegalMoves(board, req.From.Square(), turn)
	writeJSON(w, http.StatusOK, LegalMovesResponse{
		From:  *req.From,
		Moves: wire.EncodeSquares(moves),
	})
}

// Move handles POST /api/move
// An illegal move is not an error: the response has ok=false and the
// request's position.
func (h *Handlers) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Move == nil {
		writeError(w, http.StatusBadRequest, "move is required", "MISSING_MOVE")
		return
	}
	board, turn, ok := decodePosition(w, req.PositionRequest)
	if !ok {
		return
	}

	next, applied := engine.ApplyMove(board, req.Move.From(), req.Move.To(), turn)
	if applied {
		turn = turn.Opposite()
	}
	writeJSON(w, http.StatusOK, MoveResponse{
		OK:    applied,
		State: wire.NewState(next, turn),
	})
}

// Check handles POST /api/check
func (h *Handlers) Check(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	board, turn, ok := decodePosition(w, req)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, CheckResponse{Check: engine.IsInCheck(board, turn)})
}

// ListRooms handles GET /api/rooms
func (h *Handlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RoomsResponse{Rooms: h.store.Rooms(), Watched: h.hub.Rooms()})
}

// CreateRoom handles POST /api/rooms
// The body is optional; without a room name one is generated.
func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}
	if req.Room == "" {
		req.Room = uuid.NewString()
	}

	room, err := h.store.GetOrCreate(req.Room)
	if err != nil {
		status, code := http.StatusInternalServerError, "ROOM_ERROR"
		if errors.Is(err, errors.ErrRoomLimit) {
			status, code = http.StatusServiceUnavailable, "ROOM_LIMIT"
		}
		writeError(w, status, err.Error(), code)
		return
	}
	h.hub.log.Logf(config.Lifecycle, "room %s created over HTTP", room.ID())

	writeJSON(w, http.StatusCreated, h.roomResponse(room))
}

// GetRoom handles GET /api/rooms/{id}
func (h *Handlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	room, ok := h.store.Get(id)
	if !ok {
		err := &errors.RoomError{Err: errors.ErrUnknownRoom, Room: id}
		writeError(w, http.StatusNotFound, err.Error(), "UNKNOWN_ROOM")
		return
	}
	writeJSON(w, http.StatusOK, h.roomResponse(room))
}

// roomResponse describes a room's current game and audience.
func (h *Handlers) roomResponse(room *session.Room) RoomResponse {
	return RoomResponse{
		Room:    room.ID(),
		Clients: h.hub.ClientCount(room.ID()),
		State:   snapshotState(room.Snapshot()),
	}
}

// snapshotState converts a session snapshot to its wire form.
func snapshotState(snap session.Snapshot) wire.State {
	return wire.State{
		Board: wire.EncodeBoard(snap.Board),
		Turn:  wire.EncodeTurn(snap.Turn),
		Check: snap.Check,
	}
}
