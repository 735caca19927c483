package app

import (
	"context"
	"fmt"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const CodeAttempts = 5

// RoomCreator allocates new rooms in the directory.
type RoomCreator struct {
	Directory core.RoomDirectory
	NewCode   func() domain.RoomCode
	NewName   func() domain.RoomName
}

func NewRoomCreator(dir core.RoomDirectory) *RoomCreator {
	return &RoomCreator{
		Directory: dir,
		NewCode:   domain.GenerateRoomCode,
		NewName:   domain.GenerateRoomName,
	}
}

// Create registers a room with a fresh code. A blank admin gets a new UUID.
func (c *RoomCreator) Create(ctx context.Context, admin domain.UserID) (domain.Room, error) {
	if admin == "" {
		admin = domain.UserID(uuid.NewString())
	}
	name := c.NewName()

	var code domain.RoomCode
	for attempt := 0; ; attempt++ {
		if attempt == CodeAttempts {
			return domain.Room{}, domain.ErrCodeSpaceExhausted
		}
		code = c.NewCode()
		taken, err := c.Directory.CodeExists(ctx, code)
		if err != nil {
			return domain.Room{}, fmt.Errorf("check room code: %w", err)
		}
		if !taken {
			break
		}
		log.Warn().Str("module", "app.rooms").Str("room", string(code)).Int("attempt", attempt+1).Msg("room code collision")
	}

	room, err := c.Directory.CreateRoom(ctx, code, name, admin)
	if err != nil {
		return domain.Room{}, fmt.Errorf("create room: %w", err)
	}
	log.Info().Str("module", "app.rooms").Str("room", string(room.Code)).Str("admin", string(room.AdminUserID)).Msg("room created")
	return room, nil
}
