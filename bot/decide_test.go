package bot

import (
	"math"
	"testing"

	"hexbot/hexagon"
)

func TestSafestSlotPicksFarthestHazard(t *testing.T) {
	walls := []hexagon.Wall{
		{Slot: 0, Distance: 50, Enabled: true},
		{Slot: 3, Distance: 200, Enabled: true},
	}

	// Slots 1, 2, 4, 5 have no hazard; the first of those wins
	slot, ok := SafestSlot(6, walls)
	if !ok {
		t.Fatal("expected a decision")
	}
	if slot != 1 {
		t.Errorf("expected slot 1, got %d", slot)
	}
}

func TestSafestSlotAllSlotsHazarded(t *testing.T) {
	walls := []hexagon.Wall{
		{Slot: 0, Distance: 50, Enabled: true},
		{Slot: 1, Distance: 300, Enabled: true},
		{Slot: 2, Distance: 100, Enabled: true},
		{Slot: 3, Distance: 200, Enabled: true},
	}

	slot, ok := SafestSlot(4, walls)
	if !ok {
		t.Fatal("expected a decision")
	}
	if slot != 1 {
		t.Errorf("expected slot 1 (farthest hazard at 300), got %d", slot)
	}
}

func TestSafestSlotMinFoldsPerSlot(t *testing.T) {
	// Two walls in the same slot: the closer one defines the hazard
	walls := []hexagon.Wall{
		{Slot: 0, Distance: 500, Enabled: true},
		{Slot: 0, Distance: 40, Enabled: true},
		{Slot: 1, Distance: 100, Enabled: true},
	}

	slot, ok := SafestSlot(2, walls)
	if !ok {
		t.Fatal("expected a decision")
	}
	if slot != 1 {
		t.Errorf("expected slot 1, got %d", slot)
	}
}

func TestSafestSlotIgnoresDisabledAndZeroDistance(t *testing.T) {
	walls := []hexagon.Wall{
		{Slot: 1, Distance: 10, Enabled: false},
		{Slot: 1, Distance: 0, Enabled: true},
		{Slot: 0, Distance: 80, Enabled: true},
	}

	// Slot 1's records are all inert, so it counts as hazard free
	slot, ok := SafestSlot(2, walls)
	if !ok {
		t.Fatal("expected a decision")
	}
	if slot != 1 {
		t.Errorf("expected slot 1, got %d", slot)
	}
}

func TestSafestSlotAllWallsInert(t *testing.T) {
	walls := []hexagon.Wall{
		{Slot: 0, Distance: 10, Enabled: false},
		{Slot: 1, Distance: 0, Enabled: true},
	}

	if slot, ok := SafestSlot(4, walls); ok {
		t.Errorf("expected no decision, got slot %d", slot)
	}
}

func TestSafestSlotEmptyWalls(t *testing.T) {
	if _, ok := SafestSlot(6, nil); ok {
		t.Error("expected no decision for empty wall set")
	}
	if _, ok := SafestSlot(0, []hexagon.Wall{{Slot: 0, Distance: 1, Enabled: true}}); ok {
		t.Error("expected no decision for zero slot count")
	}
}

func TestSafestSlotNormalizesOutOfRangeSlot(t *testing.T) {
	// One wall at slot 4 with 4 slots in play folds into slot 0
	walls := []hexagon.Wall{
		{Slot: 4, Distance: 10, Enabled: true},
	}

	slot, ok := SafestSlot(4, walls)
	if !ok {
		t.Fatal("expected a decision")
	}
	if slot != 1 {
		t.Errorf("expected slot 1, got %d", slot)
	}
}

func TestSafestSlotTieBreaksToLowestIndex(t *testing.T) {
	walls := []hexagon.Wall{
		{Slot: 0, Distance: 100, Enabled: true},
		{Slot: 1, Distance: 100, Enabled: true},
		{Slot: 2, Distance: 100, Enabled: true},
	}

	slot, ok := SafestSlot(3, walls)
	if !ok {
		t.Fatal("expected a decision")
	}
	if slot != 0 {
		t.Errorf("expected slot 0 on a full tie, got %d", slot)
	}
}

func TestSafestSlotGreedyMaxInvariant(t *testing.T) {
	cases := [][]hexagon.Wall{
		{
			{Slot: 0, Distance: 7, Enabled: true},
			{Slot: 2, Distance: 900, Enabled: true},
			{Slot: 5, Distance: 33, Enabled: true},
		},
		{
			{Slot: 1, Distance: 64, Enabled: true},
			{Slot: 1, Distance: 12, Enabled: true},
			{Slot: 9, Distance: 55, Enabled: true},
			{Slot: 4, Distance: 55, Enabled: false},
		},
		{
			{Slot: 0, Distance: 1, Enabled: true},
			{Slot: 1, Distance: 2, Enabled: true},
			{Slot: 2, Distance: 3, Enabled: true},
			{Slot: 3, Distance: 4, Enabled: true},
			{Slot: 4, Distance: 5, Enabled: true},
			{Slot: 5, Distance: 6, Enabled: true},
		},
	}

	const numSlots = 6

	for i, walls := range cases {
		chosen, ok := SafestSlot(numSlots, walls)
		if !ok {
			t.Fatalf("case %d: expected a decision", i)
		}

		closest := closestHazards(numSlots, walls)
		for slot, dist := range closest {
			if closest[chosen] < dist {
				t.Errorf("case %d: chose slot %d (hazard %d) but slot %d has hazard %d",
					i, chosen, closest[chosen], slot, dist)
			}
			if dist == closest[chosen] && uint32(slot) < chosen {
				t.Errorf("case %d: tie between %d and %d not broken to lowest index", i, slot, chosen)
			}
		}
	}
}

// closestHazards mirrors the aggregation independently for invariant checks
func closestHazards(numSlots uint32, walls []hexagon.Wall) []uint32 {
	closest := make([]uint32, numSlots)
	for i := range closest {
		closest[i] = math.MaxUint32
	}
	for _, w := range walls {
		if w.Distance == 0 || !w.Enabled {
			continue
		}
		if idx := w.Slot % numSlots; w.Distance < closest[idx] {
			closest[idx] = w.Distance
		}
	}
	return closest
}
