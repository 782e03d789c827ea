package session

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// Store maps room identifiers to rooms.
type Store interface {
	// GetOrCreate returns the room, creating it with a fresh game if needed.
	GetOrCreate(id string) (*Room, error)

	// Get returns an existing room.
	Get(id string) (*Room, bool)

	// Evict removes a room and its game.
	Evict(id string)

	// Rooms returns the identifiers of all rooms in sorted order.
	Rooms() []string

	// Len returns the number of rooms.
	Len() int
}

// MemoryStore keeps rooms in a map guarded by a read/write mutex.
type MemoryStore struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	maxCapacity int
}

// NewMemoryStore creates an in-memory store.
// maxCapacity of 0 means unlimited capacity.
func NewMemoryStore(maxCapacity int) *MemoryStore {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &MemoryStore{
		rooms:       make(map[string]*Room),
		maxCapacity: maxCapacity,
	}
}

// GetOrCreate returns the named room, creating it if it does not exist.
// Creating a room in a full store fails with ErrRoomLimit.
func (s *MemoryStore) GetOrCreate(id string) (*Room, error) {
	s.mu.RLock()
	room, ok := s.rooms[id]
	s.mu.RUnlock()
	if ok {
		return room, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[id]; ok {
		return room, nil
	}
	if s.maxCapacity > 0 && len(s.rooms) >= s.maxCapacity {
		return nil, &errors.RoomError{Err: errors.ErrRoomLimit, Room: id, Event: "join"}
	}
	room = NewRoom(id)
	s.rooms[id] = room
	return room, nil
}

// Get returns the named room if it exists.
func (s *MemoryStore) Get(id string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	return room, ok
}

// Evict removes the named room. Evicting an unknown room is a no-op.
func (s *MemoryStore) Evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

// Rooms returns the sorted room identifiers.
func (s *MemoryStore) Rooms() []string {
	s.mu.RLock()
	ids := maps.Keys(s.rooms)
	s.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of rooms.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// IsFull reports whether the store has reached its capacity.
// Always false for unlimited capacity.
func (s *MemoryStore) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxCapacity > 0 && len(s.rooms) >= s.maxCapacity
}
