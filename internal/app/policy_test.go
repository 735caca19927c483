package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplePolicy_ClosesSlowSessions(t *testing.T) {
	assert.Equal(t, CloseSession, SimplePolicy{}.OnBackPressure(nil, "s1"))
}
