package core

import (
	"context"

	"github.com/dkeye/Poker/internal/domain"
)

// RoomDirectory is the durable registry of rooms and their membership history.
// Lookups happen before a room is mutated, writes after its broadcast.
type RoomDirectory interface {
	CodeExists(ctx context.Context, code domain.RoomCode) (bool, error)
	CreateRoom(ctx context.Context, code domain.RoomCode, name domain.RoomName, admin domain.UserID) (domain.Room, error)
	// FindRoom returns domain.ErrRoomNotFound when the code is unknown.
	FindRoom(ctx context.Context, code domain.RoomCode) (domain.Room, error)
	UpsertMember(ctx context.Context, roomID domain.RoomID, user domain.UserID, name string, isAdmin bool) error
	TouchMember(ctx context.Context, roomID domain.RoomID, user domain.UserID) error
}

// ViewEncoder turns outbound room messages into frames.
type ViewEncoder interface {
	RoomState(PublicRoom) (Frame, error)
	Kicked() (Frame, error)
}
