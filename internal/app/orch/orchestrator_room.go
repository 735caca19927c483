package orch

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/dkeye/Poker/internal/metrics"
	"github.com/rs/zerolog/log"
)

var errUnknownSession = errors.New("unknown session")

type JoinRequest struct {
	RoomCode string
	UserID   string
	Name     string
}

// Join runs the join handshake. Validation and lookup errors are returned to
// the caller for a unicast reply; the room is not touched in that case.
func (o *Orchestrator) Join(ctx context.Context, sid core.SessionID, req JoinRequest) error {
	code := domain.NormalizeCode(req.RoomCode)
	if code == "" {
		metrics.Events.WithLabelValues("join-room", metrics.OutcomeRejected).Inc()
		return domain.ErrValidation
	}
	uid, err := domain.NormalizeUserID(req.UserID)
	if err != nil {
		metrics.Events.WithLabelValues("join-room", metrics.OutcomeRejected).Inc()
		return err
	}
	name := domain.NormalizeUsername(req.Name)

	conn, ok := o.Registry.GetSignal(sid)
	if !ok {
		return errUnknownSession
	}

	meta, err := o.Directory.FindRoom(ctx, code)
	if err != nil {
		metrics.Events.WithLabelValues("join-room", metrics.OutcomeRejected).Inc()
		if errors.Is(err, domain.ErrRoomNotFound) {
			return err
		}
		return fmt.Errorf("find room %s: %w", code, err)
	}

	if prevCode, prevUser, ok := o.Registry.Binding(sid); ok && (prevCode != code || prevUser != uid) {
		o.detach(ctx, sid, prevCode, prevUser)
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("from_room", string(prevCode)).Msg("switched room")
	}

	room := o.Rooms.GetOrCreate(meta)
	metrics.Rooms.Set(float64(len(o.Rooms.List())))
	res, isAdmin := room.Join(sid, conn, uid, name, o.now())
	o.Registry.BindRoom(sid, code, uid)
	metrics.Event("join-room", true)
	o.settle(room, res)

	if err := o.Directory.UpsertMember(ctx, room.Room().ID, uid, name, isAdmin); err != nil {
		log.Error().Err(err).Str("module", "orch").Str("room", string(code)).Str("user", string(uid)).Msg("persist member")
	}
	return nil
}

// Leave removes the caller from its room at once, with no reap window.
func (o *Orchestrator) Leave(ctx context.Context, sid core.SessionID) {
	room, uid, ok := o.bound(sid)
	if !ok {
		metrics.Event("leave-room", false)
		return
	}
	res, changed := room.Leave(sid, uid)
	o.Registry.ClearRoom(sid)
	metrics.Event("leave-room", changed)
	if !changed {
		return
	}
	o.settle(room, res)
	if err := o.Directory.TouchMember(ctx, room.Room().ID, uid); err != nil {
		log.Error().Err(err).Str("module", "orch").Str("user", string(uid)).Msg("touch member on leave")
	}
}

// Kick removes target when the caller is the room admin; otherwise nothing happens.
func (o *Orchestrator) Kick(sid core.SessionID, target string) {
	room, uid, ok := o.bound(sid)
	if !ok {
		metrics.Event("kick-user", false)
		return
	}
	res, changed := room.Kick(uid, domain.UserID(target))
	metrics.Event("kick-user", changed)
	if !changed {
		return
	}
	for _, kicked := range res.Detached {
		o.Registry.ClearRoom(kicked)
	}
	o.settle(room, res.PublishResult)
}

func (o *Orchestrator) Rename(ctx context.Context, sid core.SessionID, name string) {
	room, uid, ok := o.bound(sid)
	if !ok {
		metrics.Event("change-name", false)
		return
	}
	name = domain.NormalizeUsername(name)
	res, changed := room.Rename(uid, name, o.now())
	metrics.Event("change-name", changed)
	if !changed {
		return
	}
	o.settle(room, res)

	meta := room.Room()
	isAdmin := meta.AdminUserID != "" && meta.AdminUserID == uid
	if err := o.Directory.UpsertMember(ctx, meta.ID, uid, name, isAdmin); err != nil {
		log.Error().Err(err).Str("module", "orch").Str("user", string(uid)).Msg("persist rename")
	}
}

// OnDisconnect handles a closed transport: the member goes offline but keeps
// its round state until it rejoins or is reaped.
func (o *Orchestrator) OnDisconnect(ctx context.Context, sid core.SessionID) {
	if code, uid, ok := o.Registry.Binding(sid); ok {
		o.detach(ctx, sid, code, uid)
	}
	o.Registry.Unbind(sid)
}

func (o *Orchestrator) detach(ctx context.Context, sid core.SessionID, code domain.RoomCode, uid domain.UserID) {
	room, ok := o.Rooms.Get(code)
	if !ok {
		return
	}
	res, changed := room.Disconnect(sid, uid, o.now())
	o.Registry.ClearRoom(sid)
	if !changed {
		return
	}
	o.settle(room, res)
	if err := o.Directory.TouchMember(context.WithoutCancel(ctx), room.Room().ID, uid); err != nil {
		log.Error().Err(err).Str("module", "orch").Str("user", string(uid)).Msg("touch member on disconnect")
	}
}
