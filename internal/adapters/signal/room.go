package signal

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dkeye/Poker/internal/adapters/wire"
	"github.com/dkeye/Poker/internal/app/orch"
	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	msgMissingData  = "Missing room or user data."
	msgRoomNotFound = "Room not found."
	msgJoinFailed   = "Unable to join room."
)

func (ctl *SignalWSController) handleJoin(
	ctx context.Context,
	sid core.SessionID,
	conn *WsSignalConn,
	data []byte,
) {
	var p wire.JoinRoom
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendJSON(conn, wire.Error(msgMissingData))
		return
	}

	err := ctl.Orch.Join(ctx, sid, orch.JoinRequest{RoomCode: p.RoomCode, UserID: p.UserID, Name: p.Name})
	switch {
	case err == nil:
		log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.RoomCode).Msg("join")
	case errors.Is(err, domain.ErrValidation):
		ctl.sendJSON(conn, wire.Error(msgMissingData))
	case errors.Is(err, domain.ErrRoomNotFound):
		ctl.sendJSON(conn, wire.Error(msgRoomNotFound))
	default:
		log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("join failed")
		ctl.sendJSON(conn, wire.Error(msgJoinFailed))
	}
}

// handleLeave drops the current room; the connection stays open.
func (ctl *SignalWSController) handleLeave(ctx context.Context, sid core.SessionID) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave")
	ctl.Orch.Leave(ctx, sid)
}

func (ctl *SignalWSController) handleKick(sid core.SessionID, data []byte) {
	var p wire.KickUser
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad kick payload")
		return
	}
	ctl.Orch.Kick(sid, p.UserID)
}
