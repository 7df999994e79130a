package compare

import (
	"fmt"
	"sort"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// OrdinalComparator matches inscription events by inscription id and compares
// owner, content hash and transfer sequence for matched ids.
type OrdinalComparator struct{}

// Compare implements Comparator.
func (OrdinalComparator) Compare(height uint64, primary, secondary model.Receipts) []model.DivergenceEntry {
	primaryByID := ordinalIndex(primary.Ordinal)
	secondaryByID := ordinalIndex(secondary.Ordinal)

	ids := make([]string, 0, len(primaryByID)+len(secondaryByID))
	for id := range primaryByID {
		ids = append(ids, id)
	}
	for id := range secondaryByID {
		if _, ok := primaryByID[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var entries []model.DivergenceEntry
	for _, id := range ids {
		p, inPrimary := primaryByID[id]
		s, inSecondary := secondaryByID[id]

		switch {
		case inPrimary && !inSecondary:
			entries = append(entries, model.DivergenceEntry{
				Height: height,
				Kind:   model.MissingInSecondary,
				Key:    id,
				Detail: fmt.Sprintf("inscription %s present in primary only", id),
			})
		case !inPrimary && inSecondary:
			entries = append(entries, model.DivergenceEntry{
				Height: height,
				Kind:   model.MissingInPrimary,
				Key:    id,
				Detail: fmt.Sprintf("inscription %s present in secondary only", id),
			})
		default:
			if p.Owner != s.Owner {
				entries = append(entries, fieldMismatch(height, id, "owner", p.Owner, s.Owner))
			}
			if p.ContentHash != s.ContentHash {
				entries = append(entries, fieldMismatch(height, id, "contentHash", p.ContentHash, s.ContentHash))
			}
			if p.Sequence != s.Sequence {
				entries = append(entries, fieldMismatch(height, id, "sequence",
					fmt.Sprintf("%d", p.Sequence), fmt.Sprintf("%d", s.Sequence)))
			}
		}
	}
	return entries
}

// ordinalIndex keys events by inscription id. On duplicate ids the last event
// wins: an inscription's final state within a block is what indexers report.
func ordinalIndex(events []model.OrdinalEvent) map[string]model.OrdinalEvent {
	idx := make(map[string]model.OrdinalEvent, len(events))
	for _, ev := range events {
		idx[ev.InscriptionID] = ev
	}
	return idx
}
