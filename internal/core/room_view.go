package core

import "github.com/dkeye/Poker/internal/domain"

// PublicUser is the redacted view of a member. Vote is nil unless the room is
// revealed and the member holds a concrete card.
type PublicUser struct {
	ID       domain.UserID `json:"id"`
	Name     string        `json:"name"`
	HasVoted bool          `json:"hasVoted"`
	IsAdmin  bool          `json:"isAdmin"`
	IsOnline bool          `json:"isOnline"`
	Vote     *string       `json:"vote"`
}

type PublicRoom struct {
	Code   domain.RoomCode `json:"code"`
	Name   domain.RoomName `json:"name"`
	Reveal bool            `json:"reveal"`
	Users  []PublicUser    `json:"users"`
}

func (r *roomImpl) projectLocked() PublicRoom {
	users := make([]PublicUser, 0, len(r.order))
	for _, id := range r.order {
		m := r.members[id]
		u := PublicUser{
			ID:       m.ID,
			Name:     m.Name,
			HasVoted: m.HasVoted,
			IsAdmin:  m.IsAdmin,
			IsOnline: m.IsOnline,
		}
		if r.reveal {
			if label, ok := m.Vote.Label(); ok {
				u.Vote = &label
			}
		}
		users = append(users, u)
	}
	return PublicRoom{
		Code:   r.room.Code,
		Name:   r.room.Name,
		Reveal: r.reveal,
		Users:  users,
	}
}
