package core

import (
	"time"

	"github.com/dkeye/Poker/internal/domain"
)

// PublishResult reports delivery stats/backpressure to orchestrator.
type PublishResult struct {
	SendTo  int
	Dropped []SessionID
}

// KickResult describes a successful kick.
type KickResult struct {
	PublishResult
	// Detached lists the sessions of the kicked user that left the broadcast group.
	Detached []SessionID
}

// RoomService is the core-facing API of a room.
// Every mutating call returns whether state changed; a change is published to
// the room's broadcast group before the call returns.
// It never closes adapter-owned resources.
type RoomService interface {
	Room() domain.Room
	// Enrich backfills blank name and admin; stored values are never replaced.
	Enrich(name domain.RoomName, id domain.RoomID, admin domain.UserID)
	MemberCount() int
	IsMember(uid domain.UserID) bool
	Snapshot() PublicRoom

	Join(sid SessionID, conn SignalConnection, uid domain.UserID, name string, now time.Time) (res PublishResult, isAdmin bool)
	Disconnect(sid SessionID, uid domain.UserID, now time.Time) (PublishResult, bool)
	Leave(sid SessionID, uid domain.UserID) (PublishResult, bool)
	Rename(uid domain.UserID, name string, now time.Time) (PublishResult, bool)
	Kick(requester, target domain.UserID) (KickResult, bool)
	// Reap drops members offline since before cutoff. It does not publish.
	Reap(cutoff time.Time) []domain.UserID

	Vote(uid domain.UserID, v domain.Vote) (PublishResult, bool)
	Reveal(uid domain.UserID) (PublishResult, bool)
	Reset(uid domain.UserID) (PublishResult, bool)
}

type RoomManager interface {
	GetOrCreate(meta domain.Room) RoomService
	Get(code domain.RoomCode) (RoomService, bool)
	List() []RoomService
}
