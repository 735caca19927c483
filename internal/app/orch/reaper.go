package orch

import (
	"context"
	"time"

	"github.com/dkeye/Poker/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	DefaultReapInterval = time.Minute
	DefaultOfflineTTL   = 15 * time.Minute
)

// Reap removes members that have been offline for longer than ttl, in every
// room. Nobody is notified; the next broadcast of the room omits them.
func (o *Orchestrator) Reap(ttl time.Duration) int {
	cutoff := o.now().Add(-ttl)
	total := 0
	for _, room := range o.Rooms.List() {
		total += len(room.Reap(cutoff))
	}
	if total > 0 {
		metrics.ReapedMembers.Add(float64(total))
		log.Info().Str("module", "orch.reaper").Int("reaped", total).Msg("reaper sweep")
	}
	return total
}

// RunReaper sweeps every interval until ctx is done.
func (o *Orchestrator) RunReaper(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	if ttl <= 0 {
		ttl = DefaultOfflineTTL
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	log.Info().Str("module", "orch.reaper").Dur("interval", interval).Dur("ttl", ttl).Msg("reaper started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "orch.reaper").Msg("reaper stopped")
			return
		case <-t.C:
			o.Reap(ttl)
		}
	}
}
