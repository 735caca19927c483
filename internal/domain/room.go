package domain

import (
	"math/rand/v2"
	"strings"
)

type (
	RoomCode string
	RoomName string
	RoomID   int64
)

const RoomCodeLen = 6

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	roomAdjectives = []string{
		"Amber", "Brisk", "Calm", "Clever", "Golden", "Lucky",
		"Mellow", "Quiet", "Rapid", "Sunny", "Vivid", "Warm",
	}
	roomNouns = []string{
		"Beacon", "Canyon", "Comet", "Harbor", "Meadow", "Orchard",
		"Panda", "Peak", "River", "Rocket", "Signal", "Summit",
	}
)

// Room is the identity of a room as known to the directory.
type Room struct {
	ID          RoomID
	Code        RoomCode
	Name        RoomName
	AdminUserID UserID
}

// NormalizeCode trims and upper-cases a client supplied room code.
func NormalizeCode(code string) RoomCode {
	return RoomCode(strings.ToUpper(strings.TrimSpace(code)))
}

func GenerateRoomCode() RoomCode {
	var b strings.Builder
	b.Grow(RoomCodeLen)
	for range RoomCodeLen {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return RoomCode(b.String())
}

func GenerateRoomName() RoomName {
	adj := roomAdjectives[rand.IntN(len(roomAdjectives))]
	noun := roomNouns[rand.IntN(len(roomNouns))]
	return RoomName(adj + " " + noun)
}
