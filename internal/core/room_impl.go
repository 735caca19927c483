package core

import (
	"math/rand/v2"
	"sync"

	"github.com/dkeye/Poker/internal/domain"
	"github.com/rs/zerolog/log"
)

type RoomOption func(*roomImpl)

// WithPicker overrides how pending pairs are settled on reveal.
// pick must return 0 or 1.
func WithPicker(pick func() int) RoomOption {
	return func(r *roomImpl) { r.pick = pick }
}

// roomImpl is a threadsafe in-memory room.
// All mutation and the fan-out of its result happen under mu, so every
// connection sees the room's changes in the same order.
type roomImpl struct {
	mu     sync.RWMutex
	room   domain.Room
	reveal bool

	order   []domain.UserID
	members map[domain.UserID]*domain.Member
	// connRef is the live session of each member, if any.
	connRef map[domain.UserID]SessionID

	conns  map[SessionID]SignalConnection
	userOf map[SessionID]domain.UserID

	enc  ViewEncoder
	pick func() int
}

func NewRoomService(room domain.Room, enc ViewEncoder, opts ...RoomOption) RoomService {
	r := &roomImpl{
		room:    room,
		members: make(map[domain.UserID]*domain.Member),
		connRef: make(map[domain.UserID]SessionID),
		conns:   make(map[SessionID]SignalConnection),
		userOf:  make(map[SessionID]domain.UserID),
		enc:     enc,
		pick:    func() int { return rand.IntN(2) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *roomImpl) Room() domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.room
}

func (r *roomImpl) Enrich(name domain.RoomName, id domain.RoomID, admin domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.room.Name == "" {
		r.room.Name = name
	}
	if r.room.AdminUserID == "" {
		r.room.AdminUserID = admin
	}
	if r.room.ID == 0 {
		r.room.ID = id
	}
}

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *roomImpl) IsMember(uid domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[uid]
	return ok
}

func (r *roomImpl) Snapshot() PublicRoom {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.projectLocked()
}

func (r *roomImpl) attachLocked(sid SessionID, conn SignalConnection, uid domain.UserID) {
	r.conns[sid] = conn
	r.userOf[sid] = uid
}

func (r *roomImpl) detachLocked(sid SessionID) {
	delete(r.conns, sid)
	delete(r.userOf, sid)
}

func (r *roomImpl) addMemberLocked(m *domain.Member) {
	if _, ok := r.members[m.ID]; !ok {
		r.order = append(r.order, m.ID)
	}
	r.members[m.ID] = m
}

func (r *roomImpl) removeMemberLocked(uid domain.UserID) bool {
	if _, ok := r.members[uid]; !ok {
		return false
	}
	delete(r.members, uid)
	delete(r.connRef, uid)
	for i, id := range r.order {
		if id == uid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// publishLocked fans the current projection out to the broadcast group.
func (r *roomImpl) publishLocked() PublishResult {
	res := PublishResult{}
	frame, err := r.enc.RoomState(r.projectLocked())
	if err != nil {
		log.Error().Err(err).Str("module", "core.room").Str("room", string(r.room.Code)).Msg("encode room state")
		return res
	}
	for sid, conn := range r.conns {
		if err := conn.TrySend(frame); err != nil {
			res.Dropped = append(res.Dropped, sid)
			continue
		}
		res.SendTo++
	}
	log.Debug().Str("module", "core.room").Str("room", string(r.room.Code)).Int("sent_to", res.SendTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}
