package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("missing room or user data")
	ErrUserIDTooLong      = fmt.Errorf("%w: user id too long", ErrValidation)
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomCodeTaken      = errors.New("room code already taken")
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique room code")
)
