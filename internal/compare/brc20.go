package compare

import (
	"fmt"
	"sort"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// BRC20Comparator matches token-ledger entries by (ticker, transaction
// reference) and compares operation type and balance deltas. Invalid events are
// dropped before matching and the msg field is never compared, mirroring what
// indexers agree to expose.
type BRC20Comparator struct{}

// Compare implements Comparator.
func (BRC20Comparator) Compare(height uint64, primary, secondary model.Receipts) []model.DivergenceEntry {
	primaryByKey := brc20Index(primary.BRC20)
	secondaryByKey := brc20Index(secondary.BRC20)

	keys := make([]string, 0, len(primaryByKey)+len(secondaryByKey))
	for k := range primaryByKey {
		keys = append(keys, k)
	}
	for k := range secondaryByKey {
		if _, ok := primaryByKey[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var entries []model.DivergenceEntry
	primaryTotal, secondaryTotal := 0, 0
	for _, key := range keys {
		p := primaryByKey[key]
		s := secondaryByKey[key]
		primaryTotal += len(p)
		secondaryTotal += len(s)

		switch {
		case len(p) > 0 && len(s) == 0:
			entries = append(entries, model.DivergenceEntry{
				Height: height,
				Kind:   model.MissingInSecondary,
				Key:    key,
				Detail: fmt.Sprintf("ledger entry %s present in primary only", key),
			})
			continue
		case len(p) == 0 && len(s) > 0:
			entries = append(entries, model.DivergenceEntry{
				Height: height,
				Kind:   model.MissingInPrimary,
				Key:    key,
				Detail: fmt.Sprintf("ledger entry %s present in secondary only", key),
			})
			continue
		}

		for i := 0; i < len(p) && i < len(s); i++ {
			entries = append(entries, compareBRC20Entry(height, key, p[i], s[i])...)
		}
		if len(p) != len(s) {
			entries = append(entries, model.DivergenceEntry{
				Height: height,
				Kind:   model.CountMismatch,
				Key:    key,
				Detail: fmt.Sprintf("entry count for %s: primary=%d secondary=%d", key, len(p), len(s)),
			})
		}
	}

	// A one-sided superset is itself a divergence even when every present
	// entry matches.
	if primaryTotal != secondaryTotal {
		entries = append(entries, model.DivergenceEntry{
			Height: height,
			Kind:   model.CountMismatch,
			Detail: fmt.Sprintf("total ledger entries: primary=%d secondary=%d", primaryTotal, secondaryTotal),
		})
	}
	return entries
}

func compareBRC20Entry(height uint64, key string, p, s model.BRC20Event) []model.DivergenceEntry {
	var entries []model.DivergenceEntry
	if p.Op != s.Op {
		entries = append(entries, fieldMismatch(height, key, "op", p.Op, s.Op))
	}
	if p.Amount != s.Amount {
		entries = append(entries, fieldMismatch(height, key, "amount", p.Amount, s.Amount))
	}
	if p.From != s.From {
		entries = append(entries, fieldMismatch(height, key, "from", p.From, s.From))
	}
	if p.To != s.To {
		entries = append(entries, fieldMismatch(height, key, "to", p.To, s.To))
	}
	return entries
}

// brc20Index groups valid events by (ticker, txid), preserving input order
// within a key. Multiple entries per key are legal (one tx can move a token
// several times).
func brc20Index(events []model.BRC20Event) map[string][]model.BRC20Event {
	idx := make(map[string][]model.BRC20Event, len(events))
	for _, ev := range events {
		if !ev.Valid {
			continue
		}
		key := ev.Ticker + "/" + ev.TxID
		idx[key] = append(idx[key], ev)
	}
	return idx
}
