package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/bureaucrat-chess/internal/config"
	"github.com/lgbarn/bureaucrat-chess/internal/errors"
	"github.com/lgbarn/bureaucrat-chess/internal/session"
	"github.com/lgbarn/bureaucrat-chess/internal/wire"
)

const (
	sendBufferSize = 64
	maxMessageSize = 4096
)

// Hub tracks which websocket clients are in which room and relays room
// events. A room's game is evicted from the store when its last client leaves,
// or by SweepIdle when no client ever joined it.
type Hub struct {
	store session.Store
	log   *config.Logger

	mu      sync.Mutex
	members map[string]map[*Client]struct{}
	clients map[*Client]struct{}
}

// NewHub creates a hub backed by store.
func NewHub(store session.Store, logger *config.Logger) *Hub {
	return &Hub{
		store:   store,
		log:     logger,
		members: make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
	}
}

// ServeWS returns the handler that upgrades requests to websocket clients.
func (h *Hub) ServeWS(cfg *config.ServerConfig) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cfg.OriginAllowed(origin)
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Logf(config.Lifecycle, "websocket upgrade error: %v", err)
			return
		}
		client := newClient(h, conn)
		h.register(client)
		go client.writePump()
		client.readPump()
	}
}

// Rooms returns the rooms that have at least one client, sorted.
func (h *Hub) Rooms() []string {
	h.mu.Lock()
	ids := maps.Keys(h.members)
	h.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// ClientCount returns the number of clients in room.
func (h *Hub) ClientCount(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.members[room])
}

// CloseAll disconnects every client.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := maps.Keys(h.clients)
	h.mu.Unlock()
	for _, c := range clients {
		c.conn.Close() //nolint:errcheck,gosec // readPump cleans up
	}
}

// SweepIdle evicts rooms that have no clients and no activity since cutoff.
// It returns the number of rooms evicted.
func (h *Hub) SweepIdle(cutoff time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	evicted := 0
	for _, id := range h.store.Rooms() {
		if len(h.members[id]) > 0 {
			continue
		}
		room, ok := h.store.Get(id)
		if !ok || room.LastActive().After(cutoff) {
			continue
		}
		h.store.Evict(id)
		evicted++
		h.log.Logf(config.Lifecycle, "room %s evicted after idle timeout", id)
	}
	return evicted
}

// sweepIdleRooms runs SweepIdle every timeout until ctx is cancelled.
func (h *Hub) sweepIdleRooms(ctx context.Context, timeout time.Duration) {
	ticker := time.NewTicker(timeout)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.SweepIdle(now.Add(-timeout))
		}
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Logf(config.Events, "client %s connected", c.id)
}

// unregister removes c from every room it joined and evicts rooms left empty.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, c)
	for room := range c.rooms {
		members := h.members[room]
		delete(members, c)
		if len(members) == 0 {
			delete(h.members, room)
			h.store.Evict(room)
			h.log.Logf(config.Lifecycle, "room %s evicted", room)
		}
	}
	h.log.Logf(config.Events, "client %s disconnected", c.id)
}

// handleMessage dispatches one raw client message.
func (h *Hub) handleMessage(c *Client, data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(errors.Wrap(errors.ErrInvalidMessage, "malformed JSON"))
		return
	}

	switch msg.Type {
	case TypeJoin:
		h.join(c, msg)
	case TypeSelect:
		h.selectPiece(c, msg)
	case TypeMove:
		h.move(c, msg)
	case TypeReset:
		h.reset(c, msg)
	default:
		c.sendError(errors.Wrapf(errors.ErrInvalidMessage, "unknown message type %q", msg.Type))
	}
}

// join adds c to the room, creating its game if needed, and sends the
// room's state to every member.
func (h *Hub) join(c *Client, msg ClientMessage) {
	if msg.Room == "" {
		c.sendError(errors.Wrap(errors.ErrInvalidMessage, "join: room is required"))
		return
	}

	// Room creation and membership change under the same lock as eviction.
	h.mu.Lock()
	defer h.mu.Unlock()

	room, err := h.store.GetOrCreate(msg.Room)
	if err != nil {
		h.log.Logf(config.Lifecycle, "%v", &errors.RoomError{Err: err, Room: msg.Room, Event: TypeJoin, Client: c.id})
		c.sendError(err)
		return
	}

	members, ok := h.members[msg.Room]
	if !ok {
		members = make(map[*Client]struct{})
		h.members[msg.Room] = members
		h.log.Logf(config.Lifecycle, "room %s opened", msg.Room)
	}
	members[c] = struct{}{}
	c.rooms[msg.Room] = struct{}{}
	h.log.Logf(config.Events, "client %s joined room %s", c.id, msg.Room)

	h.broadcastLocked(msg.Room, room.Snapshot())
}

// selectPiece answers with the legal moves of one piece. Unknown rooms are ignored.
func (h *Hub) selectPiece(c *Client, msg ClientMessage) {
	if msg.Pos == nil {
		c.sendError(errors.Wrap(errors.ErrInvalidMessage, "select: pos is required"))
		return
	}
	room, ok := h.store.Get(msg.Room)
	if !ok {
		h.log.Logf(config.Events, "%v", &errors.RoomError{Err: errors.ErrUnknownRoom, Room: msg.Room, Event: TypeSelect, Client: c.id})
		return
	}

	moves := room.Select(msg.Pos.Square())
	c.send(LegalMovesMessage{
		Type:  TypeLegalMoves,
		Room:  msg.Room,
		From:  *msg.Pos,
		Moves: wire.EncodeSquares(moves),
	})
}

// move plays a move and broadcasts the new state. Unknown rooms and illegal
// moves are ignored.
func (h *Hub) move(c *Client, msg ClientMessage) {
	if msg.Move == nil {
		c.sendError(errors.Wrap(errors.ErrInvalidMessage, "move: move is required"))
		return
	}
	room, ok := h.store.Get(msg.Room)
	if !ok {
		h.log.Logf(config.Events, "%v", &errors.RoomError{Err: errors.ErrUnknownRoom, Room: msg.Room, Event: TypeMove, Client: c.id})
		return
	}

	// Broadcasts go out in move order.
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, ok := room.Move(msg.Move.From(), msg.Move.To())
	if !ok {
		h.log.Logf(config.Events, "room %s: client %s: illegal move %v", msg.Room, c.id, *msg.Move)
		return
	}
	h.log.Logf(config.Events, "room %s: client %s moved %v", msg.Room, c.id, *msg.Move)
	h.broadcastLocked(msg.Room, snap)
}

// reset restores the starting position and broadcasts it. Unknown rooms are ignored.
func (h *Hub) reset(c *Client, msg ClientMessage) {
	room, ok := h.store.Get(msg.Room)
	if !ok {
		h.log.Logf(config.Events, "%v", &errors.RoomError{Err: errors.ErrUnknownRoom, Room: msg.Room, Event: TypeReset, Client: c.id})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	snap := room.Reset()
	h.log.Logf(config.Events, "room %s: client %s reset the game", msg.Room, c.id)
	h.broadcastLocked(msg.Room, snap)
}

// broadcastLocked sends the state to every member of room. h.mu must be held.
func (h *Hub) broadcastLocked(room string, snap session.Snapshot) {
	msg := StateMessage{
		Type:  TypeState,
		Room:  room,
		State: snapshotState(snap),
	}
	for c := range h.members[room] {
		c.send(msg)
	}
}

// Client is one websocket connection.
type Client struct {
	id    string
	hub   *Hub
	conn  *websocket.Conn
	out   chan interface{}
	rooms map[string]struct{} // guarded by hub.mu
}

func newClient(h *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:    uuid.NewString(),
		hub:   h,
		conn:  conn,
		out:   make(chan interface{}, sendBufferSize),
		rooms: make(map[string]struct{}),
	}
}

// ID returns the connection identifier.
func (c *Client) ID() string {
	return c.id
}

// send queues a message without blocking. A client that cannot keep up is
// disconnected.
func (c *Client) send(msg interface{}) {
	select {
	case c.out <- msg:
	default:
		c.hub.log.Logf(config.Lifecycle, "client %s: send buffer full, disconnecting", c.id)
		c.conn.Close() //nolint:errcheck,gosec // readPump cleans up
	}
}

func (c *Client) sendError(err error) {
	c.send(ErrorMessage{Type: TypeError, Error: err.Error()})
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.out {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		close(c.out)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.hub.handleMessage(c, data)
	}
}
