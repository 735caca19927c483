package signal

import (
	"context"
	"encoding/json"

	"github.com/dkeye/Poker/internal/adapters/wire"
	"github.com/dkeye/Poker/internal/core"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleRename(
	ctx context.Context,
	sid core.SessionID,
	data []byte,
) {
	var p wire.ChangeName
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad rename payload")
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("name", p.Name).Msg("rename")
	ctl.Orch.Rename(ctx, sid, p.Name)
}
