package wire

import (
	"encoding/json"
	"testing"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVote(t *testing.T) {
	tests := []struct {
		name string
		in   Vote
		want domain.Vote
	}{
		{"plain card", Vote{Card: "5"}, domain.ValueVote("5")},
		{"coffee card", Vote{Card: "☕"}, domain.ValueVote("☕")},
		{"legacy pair", Vote{Card: "RANDOM:5,8"}, domain.PairVote("5", "8")},
		{"legacy pair with spaces", Vote{Card: "RANDOM: 5 , 8 "}, domain.PairVote("5", "8")},
		{"legacy pair with three options", Vote{Card: "RANDOM:3,5,8"}, domain.ValueVote("RANDOM:3,5,8")},
		{"legacy pair with one option", Vote{Card: "RANDOM:5,"}, domain.ValueVote("RANDOM:5,")},
		{"structured pair", Vote{Pair: []string{"13", "21"}}, domain.PairVote("13", "21")},
		{"structured pair with blank", Vote{Card: "8", Pair: []string{"13", ""}}, domain.ValueVote("8")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeVote(tt.in))
		})
	}
}

func TestJSONEncoder_RoomStateIsFlat(t *testing.T) {
	five := "5"
	frame, err := JSONEncoder{}.RoomState(core.PublicRoom{
		Code:   "AB12CD",
		Name:   "Calm Panda",
		Reveal: true,
		Users:  []core.PublicUser{{ID: "a", Name: "Alice", HasVoted: true, Vote: &five}, {ID: "b", Name: "Bob"}},
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(frame, &got))
	assert.Equal(t, TypeRoomState, got["type"])
	assert.Equal(t, "AB12CD", got["code"])
	assert.Equal(t, true, got["reveal"])

	users := got["users"].([]any)
	require.Len(t, users, 2)
	assert.Equal(t, "5", users[0].(map[string]any)["vote"])
	assert.Nil(t, users[1].(map[string]any)["vote"])
	assert.Contains(t, users[1].(map[string]any), "vote", "vote is always present, null when hidden")
}

func TestJSONEncoder_Kicked(t *testing.T) {
	frame, err := JSONEncoder{}.Kicked()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"kicked"}`, string(frame))
}

func TestError(t *testing.T) {
	b, err := json.Marshal(Error("Room not found."))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"room-error","message":"Room not found."}`, string(b))
}

func TestEventLabel(t *testing.T) {
	assert.Equal(t, TypeVote, EventLabel("vote"))
	assert.Equal(t, TypePing, EventLabel("ping"))
	assert.Equal(t, TypeUnknown, EventLabel("junk-1"))
	assert.Equal(t, TypeUnknown, EventLabel(""))
}
