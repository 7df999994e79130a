package model

// OrdinalEvent is a single inscription event reported by an indexer for one block.
type OrdinalEvent struct {
	InscriptionID string
	Type          string
	Owner         string
	ContentHash   string
	Sequence      uint64
}

// BRC20Event is a single token-ledger entry reported by an indexer for one block.
type BRC20Event struct {
	Ticker string
	TxID   string
	Op     string
	Amount string
	From   string
	To     string
	Valid  bool
	Msg    string
}

// Receipts is the ordered sequence of protocol events for one block from one
// endpoint. Exactly one of the event slices is populated, selected by Protocol.
// Immutable once fetched.
type Receipts struct {
	Protocol Protocol
	Ordinal  []OrdinalEvent
	BRC20    []BRC20Event
}

// Len returns the number of events carried for the receipt's protocol.
func (r Receipts) Len() int {
	switch r.Protocol {
	case Ordinal:
		return len(r.Ordinal)
	case BRC20:
		return len(r.BRC20)
	}
	return 0
}
