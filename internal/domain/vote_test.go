package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVote_ZeroValueIsNone(t *testing.T) {
	var v Vote
	assert.True(t, v.IsNone())
	assert.Equal(t, VoteNone, v.Kind())
	_, ok := v.Label()
	assert.False(t, ok)
}

func TestVote_Label(t *testing.T) {
	label, ok := ValueVote("5").Label()
	assert.True(t, ok)
	assert.Equal(t, "5", label)

	_, ok = PairVote("3", "5").Label()
	assert.False(t, ok, "pending pair has no concrete label")
}

func TestVote_Resolve(t *testing.T) {
	pair := PairVote("3", "5")

	first := pair.Resolve(func() int { return 0 })
	second := pair.Resolve(func() int { return 1 })

	l, _ := first.Label()
	assert.Equal(t, "3", l)
	l, _ = second.Label()
	assert.Equal(t, "5", l)
}

func TestVote_ResolveLeavesOthersUntouched(t *testing.T) {
	called := false
	pick := func() int { called = true; return 1 }

	assert.Equal(t, ValueVote("8"), ValueVote("8").Resolve(pick))
	assert.Equal(t, NoVote(), NoVote().Resolve(pick))
	assert.False(t, called)
}
