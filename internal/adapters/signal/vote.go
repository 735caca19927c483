package signal

import (
	"encoding/json"

	"github.com/dkeye/Poker/internal/adapters/wire"
	"github.com/dkeye/Poker/internal/core"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleVote(sid core.SessionID, data []byte) {
	var p wire.Vote
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad vote payload")
		return
	}
	ctl.Orch.Vote(sid, wire.DecodeVote(p))
}
