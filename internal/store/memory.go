package store

import (
	"context"
	"sync"
	"time"

	"github.com/dkeye/Poker/internal/domain"
)

type MemberRecord struct {
	RoomID   domain.RoomID
	UserID   domain.UserID
	Name     string
	IsAdmin  bool
	LastSeen time.Time
}

type memberKey struct {
	room domain.RoomID
	user domain.UserID
}

// Memory is a process-local directory for development and tests.
type Memory struct {
	mu      sync.RWMutex
	nextID  domain.RoomID
	rooms   map[domain.RoomCode]domain.Room
	members map[memberKey]MemberRecord
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		rooms:   make(map[domain.RoomCode]domain.Room),
		members: make(map[memberKey]MemberRecord),
		now:     time.Now,
	}
}

func (m *Memory) CodeExists(_ context.Context, code domain.RoomCode) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rooms[code]
	return ok, nil
}

func (m *Memory) CreateRoom(_ context.Context, code domain.RoomCode, name domain.RoomName, admin domain.UserID) (domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[code]; ok {
		return domain.Room{}, domain.ErrRoomCodeTaken
	}
	m.nextID++
	room := domain.Room{ID: m.nextID, Code: code, Name: name, AdminUserID: admin}
	m.rooms[code] = room
	return room, nil
}

func (m *Memory) FindRoom(_ context.Context, code domain.RoomCode) (domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[code]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return room, nil
}

func (m *Memory) UpsertMember(_ context.Context, roomID domain.RoomID, user domain.UserID, name string, isAdmin bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[memberKey{roomID, user}] = MemberRecord{
		RoomID:   roomID,
		UserID:   user,
		Name:     name,
		IsAdmin:  isAdmin,
		LastSeen: m.now(),
	}
	return nil
}

func (m *Memory) TouchMember(_ context.Context, roomID domain.RoomID, user domain.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memberKey{roomID, user}
	if rec, ok := m.members[k]; ok {
		rec.LastSeen = m.now()
		m.members[k] = rec
	}
	return nil
}

// Member returns the persisted membership row, if any.
func (m *Memory) Member(roomID domain.RoomID, user domain.UserID) (MemberRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.members[memberKey{roomID, user}]
	return rec, ok
}
