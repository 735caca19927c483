package app

import "github.com/dkeye/Poker/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	CloseSession
)

// Policy decides what to do with a session whose send buffer overflowed
// during a broadcast.
type Policy interface {
	OnBackPressure(room core.RoomService, sid core.SessionID) BackpressureAction
}

// SimplePolicy closes slow sessions. The client rejoins and gets a full
// room-state on the next broadcast.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(room core.RoomService, sid core.SessionID) BackpressureAction {
	return CloseSession
}
