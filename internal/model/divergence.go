package model

// DivergenceKind classifies a detected disagreement between the two indexers.
type DivergenceKind string

var (
	MissingInSecondary DivergenceKind = "MISSING_IN_SECONDARY"
	MissingInPrimary   DivergenceKind = "MISSING_IN_PRIMARY"
	FieldMismatch      DivergenceKind = "FIELD_MISMATCH"
	CountMismatch      DivergenceKind = "COUNT_MISMATCH"
)

// DivergenceEntry is one disagreement found by a comparator. Key is the
// deterministic match key the entry was produced for (inscription id for
// ordinal, ticker/txid for brc20, empty for block-level entries).
type DivergenceEntry struct {
	Height uint64
	Kind   DivergenceKind
	Key    string
	Detail string
}

// BlockStatus is the verification outcome for one height.
type BlockStatus string

var (
	StatusOK          BlockStatus = "OK"
	StatusFetchFailed BlockStatus = "FETCH_FAILED"
	StatusFatal       BlockStatus = "FATAL"
)

// BlockResult is the unit finalized by the engine in height order.
// Reason carries the failure cause for non-OK statuses.
type BlockResult struct {
	Height      uint64
	Hash        string
	Status      BlockStatus
	Divergences []DivergenceEntry
	Reason      string
}
