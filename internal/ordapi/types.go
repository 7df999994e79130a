package ordapi

import "encoding/json"

// NodeInfo is the subset of /api/v1/node/info the comparator relies on.
type NodeInfo struct {
	Network        string
	OrdBlockHeight uint64
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type nodeInfoPayload struct {
	ChainInfo struct {
		Network        string `json:"network"`
		OrdBlockHeight int64  `json:"ordBlockHeight"`
	} `json:"chainInfo"`
}

// blockEventsPayload matches the {"block":[{"events":[...]}]} shape both
// receipt endpoints share; events are decoded per protocol.
type blockEventsPayload struct {
	Block []struct {
		Events []json.RawMessage `json:"events"`
	} `json:"block"`
}

type ordinalEventDTO struct {
	Type          string `json:"type"`
	InscriptionID string `json:"inscriptionId"`
	Owner         string `json:"owner"`
	ContentHash   string `json:"contentHash"`
	Sequence      uint64 `json:"sequence"`
}

type brc20EventDTO struct {
	Ticker string `json:"tick"`
	TxID   string `json:"txid"`
	Op     string `json:"op"`
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
	Valid  bool   `json:"valid"`
	Msg    string `json:"msg"`
}
