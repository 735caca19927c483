package app

import (
	"testing"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Binding(t *testing.T) {
	r := NewRegistry()
	sid := core.SessionID("s1")

	assert.False(t, r.BindRoom(sid, "AB12CD", "u1"), "unknown session")

	r.BindSignal(sid, new(MockSignalConnection), nil)
	_, _, ok := r.Binding(sid)
	assert.False(t, ok, "signal alone carries no room authority")

	assert.True(t, r.BindRoom(sid, "AB12CD", "u1"))
	code, uid, ok := r.Binding(sid)
	assert.True(t, ok)
	assert.Equal(t, domain.RoomCode("AB12CD"), code)
	assert.Equal(t, domain.UserID("u1"), uid)

	r.ClearRoom(sid)
	_, _, ok = r.Binding(sid)
	assert.False(t, ok)
	_, ok = r.GetSignal(sid)
	assert.True(t, ok, "clearing the room keeps the connection")

	r.Unbind(sid)
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_Cancel(t *testing.T) {
	r := NewRegistry()
	canceled := false
	r.BindSignal("s1", new(MockSignalConnection), func() { canceled = true })

	assert.True(t, r.Cancel("s1"))
	assert.True(t, canceled)
	assert.False(t, r.Cancel("missing"))
}
