package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dkeye/Poker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sequence(codes ...domain.RoomCode) func() domain.RoomCode {
	i := 0
	return func() domain.RoomCode {
		c := codes[i%len(codes)]
		i++
		return c
	}
}

func newTestCreator(dir *MockRoomDirectory, codes ...domain.RoomCode) *RoomCreator {
	c := NewRoomCreator(dir)
	c.NewCode = sequence(codes...)
	c.NewName = func() domain.RoomName { return "Calm Panda" }
	return c
}

func TestRoomCreator_Create(t *testing.T) {
	ctx := context.Background()
	dir := new(MockRoomDirectory)
	dir.On("CodeExists", ctx, domain.RoomCode("AAAAAA")).Return(true, nil).Once()
	dir.On("CodeExists", ctx, domain.RoomCode("BBBBBB")).Return(false, nil).Once()
	want := domain.Room{ID: 3, Code: "BBBBBB", Name: "Calm Panda", AdminUserID: "admin"}
	dir.On("CreateRoom", ctx, domain.RoomCode("BBBBBB"), domain.RoomName("Calm Panda"), domain.UserID("admin")).Return(want, nil).Once()

	got, err := newTestCreator(dir, "AAAAAA", "BBBBBB").Create(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	dir.AssertExpectations(t)
}

func TestRoomCreator_BlankAdminGetsID(t *testing.T) {
	ctx := context.Background()
	dir := new(MockRoomDirectory)
	dir.On("CodeExists", ctx, mock.Anything).Return(false, nil)
	dir.On("CreateRoom", ctx, domain.RoomCode("AAAAAA"), domain.RoomName("Calm Panda"), mock.MatchedBy(func(id domain.UserID) bool {
		return len(id) == 36
	})).Return(domain.Room{Code: "AAAAAA"}, nil).Once()

	_, err := newTestCreator(dir, "AAAAAA").Create(ctx, "")
	require.NoError(t, err)
	dir.AssertExpectations(t)
}

func TestRoomCreator_GivesUpAfterAttempts(t *testing.T) {
	ctx := context.Background()
	dir := new(MockRoomDirectory)
	dir.On("CodeExists", ctx, mock.Anything).Return(true, nil)

	_, err := newTestCreator(dir, "AAAAAA").Create(ctx, "admin")
	assert.ErrorIs(t, err, domain.ErrCodeSpaceExhausted)
	dir.AssertNumberOfCalls(t, "CodeExists", CodeAttempts)
	dir.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoomCreator_DirectoryError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	dir := new(MockRoomDirectory)
	dir.On("CodeExists", ctx, mock.Anything).Return(false, boom)

	_, err := newTestCreator(dir, "AAAAAA").Create(ctx, "admin")
	assert.ErrorIs(t, err, boom)
}
