package signal

import (
	"context"
	"fmt"
	"testing"

	"github.com/dkeye/Poker/internal/adapters/wire"
	"github.com/dkeye/Poker/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_PerSession(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(0.001), 2)

	assert.True(t, rl.Allow("s1"))
	assert.True(t, rl.Allow("s1"))
	assert.False(t, rl.Allow("s1"))
	assert.True(t, rl.Allow("s2"), "buckets are per session")

	rl.Forget("s1")
	assert.True(t, rl.Allow("s1"), "forgotten session starts with a full bucket")
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{PingPeriod: 90e9, PongWait: 60e9}.withDefaults()
	assert.Less(t, o.PingPeriod, o.PongWait)
	assert.Equal(t, int64(32768), o.ReadLimit)
	assert.Equal(t, 64, o.SendBuffer)
}

func TestHandleSignal_RateLimitedTypesKeepLabelsBounded(t *testing.T) {
	ctl := NewSignalWSController(nil, Options{EventRate: 0.0001, EventBurst: 1})
	// Exhaust the bucket with a type that takes the unknown branch.
	ctl.handleSignal(context.Background(), "s1", nil, []byte(`{"type":"warmup"}`))

	rejected := metrics.Events.WithLabelValues(wire.TypeUnknown, metrics.OutcomeRejected)
	rejectedBefore := testutil.ToFloat64(rejected)
	before := testutil.CollectAndCount(metrics.Events)
	for i := range 1000 {
		ctl.handleSignal(context.Background(), "s1", nil, []byte(fmt.Sprintf(`{"type":"junk-%d"}`, i)))
	}
	after := testutil.CollectAndCount(metrics.Events)

	assert.Equal(t, 0, after-before, "no new series per client type")
	assert.Equal(t, rejectedBefore+1000, testutil.ToFloat64(rejected))
}
