package orch

import (
	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/dkeye/Poker/internal/metrics"
)

func (o *Orchestrator) Vote(sid core.SessionID, v domain.Vote) {
	room, uid, ok := o.bound(sid)
	if !ok {
		metrics.Event("vote", false)
		return
	}
	res, changed := room.Vote(uid, v)
	metrics.Event("vote", changed)
	if changed {
		o.settle(room, res)
	}
}

func (o *Orchestrator) Reveal(sid core.SessionID) {
	room, uid, ok := o.bound(sid)
	if !ok {
		metrics.Event("reveal-cards", false)
		return
	}
	res, changed := room.Reveal(uid)
	metrics.Event("reveal-cards", changed)
	if changed {
		o.settle(room, res)
	}
}

func (o *Orchestrator) Reset(sid core.SessionID) {
	room, uid, ok := o.bound(sid)
	if !ok {
		metrics.Event("reset-round", false)
		return
	}
	res, changed := room.Reset(uid)
	metrics.Event("reset-round", changed)
	if changed {
		o.settle(room, res)
	}
}
