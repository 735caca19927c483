package orch

import (
	"time"

	"github.com/dkeye/Poker/internal/app"
	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/dkeye/Poker/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Orchestrator is the connection session layer: it resolves a session's
// binding and routes each event to the room it joined.
type Orchestrator struct {
	Registry  *app.Registry
	Rooms     core.RoomManager
	Policy    app.Policy
	Directory core.RoomDirectory
	Now       func() time.Time
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// bound resolves the room and user behind a joined session. Anything else
// reports false and the caller drops the event.
func (o *Orchestrator) bound(sid core.SessionID) (core.RoomService, domain.UserID, bool) {
	code, uid, ok := o.Registry.Binding(sid)
	if !ok {
		return nil, "", false
	}
	room, ok := o.Rooms.Get(code)
	if !ok {
		return nil, "", false
	}
	return room, uid, true
}

// settle applies the backpressure policy to sessions that missed a broadcast.
func (o *Orchestrator) settle(room core.RoomService, res core.PublishResult) {
	metrics.Broadcasts.Add(float64(res.SendTo))
	if len(res.Dropped) == 0 {
		return
	}
	metrics.DroppedFrames.Add(float64(len(res.Dropped)))
	if o.Policy == nil {
		return
	}
	for _, sid := range res.Dropped {
		switch o.Policy.OnBackPressure(room, sid) {
		case app.CloseSession:
			log.Warn().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room.Room().Code)).Msg("closing slow session")
			o.Registry.Cancel(sid)
		case app.DropFrame, app.NoAction:
		}
	}
}
