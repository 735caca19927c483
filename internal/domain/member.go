package domain

import "time"

// Member represents user's participation in a room.
// No transport or lifecycle logic here.
type Member struct {
	ID       UserID
	Name     string
	Vote     Vote
	HasVoted bool
	IsAdmin  bool
	IsOnline bool
	LastSeen time.Time
}

func NewMember(id UserID, name string) *Member {
	return &Member{ID: id, Name: name}
}
