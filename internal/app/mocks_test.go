package app

import (
	"context"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- RoomDirectory ---

type MockRoomDirectory struct {
	mock.Mock
}

func (m *MockRoomDirectory) CodeExists(ctx context.Context, code domain.RoomCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomDirectory) CreateRoom(ctx context.Context, code domain.RoomCode, name domain.RoomName, admin domain.UserID) (domain.Room, error) {
	args := m.Called(ctx, code, name, admin)
	return args.Get(0).(domain.Room), args.Error(1)
}

func (m *MockRoomDirectory) FindRoom(ctx context.Context, code domain.RoomCode) (domain.Room, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Room), args.Error(1)
}

func (m *MockRoomDirectory) UpsertMember(ctx context.Context, roomID domain.RoomID, user domain.UserID, name string, isAdmin bool) error {
	return m.Called(ctx, roomID, user, name, isAdmin).Error(0)
}

func (m *MockRoomDirectory) TouchMember(ctx context.Context, roomID domain.RoomID, user domain.UserID) error {
	return m.Called(ctx, roomID, user).Error(0)
}

// --- SignalConnection ---

type MockSignalConnection struct {
	mock.Mock
}

func (m *MockSignalConnection) TrySend(f core.Frame) error {
	return m.Called(f).Error(0)
}

func (m *MockSignalConnection) Close() {
	m.Called()
}

type nopEncoder struct{}

func (nopEncoder) RoomState(core.PublicRoom) (core.Frame, error) { return core.Frame("state"), nil }
func (nopEncoder) Kicked() (core.Frame, error)                   { return core.Frame("kicked"), nil }
