package app

import (
	"sync"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
)

// RoomManagerImpl is the process-wide room table. Rooms are never removed.
type RoomManagerImpl struct {
	mu    sync.RWMutex
	rooms map[domain.RoomCode]core.RoomService
	enc   core.ViewEncoder
	opts  []core.RoomOption
}

func NewRoomManager(enc core.ViewEncoder, opts ...core.RoomOption) core.RoomManager {
	return &RoomManagerImpl{
		rooms: make(map[domain.RoomCode]core.RoomService),
		enc:   enc,
		opts:  opts,
	}
}

// GetOrCreate returns the room for meta.Code, creating it on first reference.
// An existing room only has its blank fields backfilled from meta.
func (f *RoomManagerImpl) GetOrCreate(meta domain.Room) core.RoomService {
	f.mu.RLock()
	room, ok := f.rooms[meta.Code]
	f.mu.RUnlock()
	if ok {
		room.Enrich(meta.Name, meta.ID, meta.AdminUserID)
		return room
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if room, ok = f.rooms[meta.Code]; ok {
		room.Enrich(meta.Name, meta.ID, meta.AdminUserID)
		return room
	}
	room = core.NewRoomService(meta, f.enc, f.opts...)
	f.rooms[meta.Code] = room
	return room
}

func (f *RoomManagerImpl) Get(code domain.RoomCode) (core.RoomService, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	room, ok := f.rooms[code]
	return room, ok
}

func (f *RoomManagerImpl) List() []core.RoomService {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]core.RoomService, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out
}
