package compare

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

func ordinalReceipts(events ...model.OrdinalEvent) model.Receipts {
	return model.Receipts{Protocol: model.Ordinal, Ordinal: events}
}

func TestOrdinalCompare_IdenticalReceipts(t *testing.T) {
	t.Parallel()

	events := []model.OrdinalEvent{
		{InscriptionID: "abc123i0", Type: "transfer", Owner: "bc1qaaa", ContentHash: "deadbeef", Sequence: 2},
		{InscriptionID: "def456i0", Type: "inscribe", Owner: "bc1qbbb", ContentHash: "cafebabe", Sequence: 0},
	}
	got := OrdinalComparator{}.Compare(105, ordinalReceipts(events...), ordinalReceipts(events...))
	require.Empty(t, got)
}

func TestOrdinalCompare_MissingInSecondary(t *testing.T) {
	t.Parallel()

	primary := ordinalReceipts(
		model.OrdinalEvent{InscriptionID: "abc123i0", Owner: "bc1qaaa", ContentHash: "deadbeef", Sequence: 1},
		model.OrdinalEvent{InscriptionID: "def456i0", Owner: "bc1qbbb", ContentHash: "cafebabe", Sequence: 0},
	)
	secondary := ordinalReceipts(
		model.OrdinalEvent{InscriptionID: "def456i0", Owner: "bc1qbbb", ContentHash: "cafebabe", Sequence: 0},
	)

	got := OrdinalComparator{}.Compare(105, primary, secondary)
	require.Len(t, got, 1)
	require.Equal(t, model.MissingInSecondary, got[0].Kind)
	require.Equal(t, "abc123i0", got[0].Key)
	require.Equal(t, uint64(105), got[0].Height)
}

func TestOrdinalCompare_MissingInPrimary(t *testing.T) {
	t.Parallel()

	primary := ordinalReceipts()
	secondary := ordinalReceipts(
		model.OrdinalEvent{InscriptionID: "abc123i0", Owner: "bc1qaaa"},
	)

	got := OrdinalComparator{}.Compare(200, primary, secondary)
	require.Len(t, got, 1)
	require.Equal(t, model.MissingInPrimary, got[0].Kind)
}

func TestOrdinalCompare_FieldMismatches(t *testing.T) {
	t.Parallel()

	primary := ordinalReceipts(
		model.OrdinalEvent{InscriptionID: "abc123i0", Owner: "bc1qaaa", ContentHash: "deadbeef", Sequence: 1},
	)
	secondary := ordinalReceipts(
		model.OrdinalEvent{InscriptionID: "abc123i0", Owner: "bc1qzzz", ContentHash: "deadbeef", Sequence: 2},
	)

	got := OrdinalComparator{}.Compare(300, primary, secondary)
	require.Len(t, got, 2)
	for _, entry := range got {
		require.Equal(t, model.FieldMismatch, entry.Kind)
		require.Equal(t, "abc123i0", entry.Key)
	}
	require.Contains(t, got[0].Detail, "owner")
	require.Contains(t, got[0].Detail, "bc1qaaa")
	require.Contains(t, got[0].Detail, "bc1qzzz")
	require.Contains(t, got[1].Detail, "sequence")
}

func TestOrdinalCompare_Deterministic(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	events := make([]model.OrdinalEvent, 50)
	for i := range events {
		events[i] = model.OrdinalEvent{
			InscriptionID: string(rune('a'+i%26)) + "i0",
			Owner:         "bc1q" + string(rune('a'+i%26)),
			Sequence:      uint64(i),
		}
	}
	shuffled := make([]model.OrdinalEvent, len(events))
	copy(shuffled, events)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	first := OrdinalComparator{}.Compare(1, ordinalReceipts(events...), ordinalReceipts())
	second := OrdinalComparator{}.Compare(1, ordinalReceipts(events...), ordinalReceipts())
	require.Equal(t, first, second)

	// Input order must not affect output order.
	reordered := OrdinalComparator{}.Compare(1, ordinalReceipts(shuffled...), ordinalReceipts())
	require.Equal(t, first, reordered)
}
