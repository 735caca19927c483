// Package wire defines the JSON messages exchanged on the realtime channel.
// Every frame is a flat object with a "type" discriminator.
package wire

import (
	"encoding/json"
	"strings"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
)

// Client -> server event types.
const (
	TypeJoinRoom    = "join-room"
	TypeVote        = "vote"
	TypeRevealCards = "reveal-cards"
	TypeResetRound  = "reset-round"
	TypeChangeName  = "change-name"
	TypeKickUser    = "kick-user"
	TypeLeaveRoom   = "leave-room"
	TypePing        = "ping"
)

// Server -> client message types.
const (
	TypeRoomState = "room-state"
	TypeRoomError = "room-error"
	TypeKicked    = "kicked"
	TypePong      = "pong"
)

// TypeUnknown labels client events whose type is not recognized.
const TypeUnknown = "unknown"

// EventLabel bounds a client supplied type to the known event set.
func EventLabel(t string) string {
	switch t {
	case TypeJoinRoom, TypeVote, TypeRevealCards, TypeResetRound,
		TypeChangeName, TypeKickUser, TypeLeaveRoom, TypePing:
		return t
	}
	return TypeUnknown
}

// pairPrefix marks a legacy card string holding two candidate cards.
const pairPrefix = "RANDOM:"

type Envelope struct {
	Type string `json:"type"`
}

type JoinRoom struct {
	RoomCode string `json:"roomCode"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
}

type Vote struct {
	Card string   `json:"card"`
	Pair []string `json:"pair,omitempty"`
}

type ChangeName struct {
	Name string `json:"name"`
}

type KickUser struct {
	UserID string `json:"userId"`
}

type RoomState struct {
	Type string `json:"type"`
	core.PublicRoom
}

type RoomError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Notice struct {
	Type string `json:"type"`
}

// DecodeVote maps a vote payload onto the domain vote. A pair of two labels, or
// a "RANDOM:a,b" card with exactly two non-empty options, becomes a pending
// pair; anything else is an opaque card label.
func DecodeVote(v Vote) domain.Vote {
	if len(v.Pair) == 2 && v.Pair[0] != "" && v.Pair[1] != "" {
		return domain.PairVote(v.Pair[0], v.Pair[1])
	}
	if rest, ok := strings.CutPrefix(v.Card, pairPrefix); ok {
		var options []string
		for _, o := range strings.Split(rest, ",") {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		if len(options) == 2 {
			return domain.PairVote(options[0], options[1])
		}
	}
	return domain.ValueVote(v.Card)
}

// JSONEncoder implements core.ViewEncoder.
type JSONEncoder struct{}

func (JSONEncoder) RoomState(v core.PublicRoom) (core.Frame, error) {
	return json.Marshal(RoomState{Type: TypeRoomState, PublicRoom: v})
}

func (JSONEncoder) Kicked() (core.Frame, error) {
	return json.Marshal(Notice{Type: TypeKicked})
}

func Error(message string) RoomError {
	return RoomError{Type: TypeRoomError, Message: message}
}
