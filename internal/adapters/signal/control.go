package signal

import "github.com/dkeye/Poker/internal/adapters/wire"

func (ctl *SignalWSController) handlePing(
	conn *WsSignalConn,
) {
	ctl.sendJSON(conn, wire.Notice{Type: wire.TypePong})
}
