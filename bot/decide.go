// Package bot turns a snapshot of the wall field into a single target
// slot and drives the game toward it.
package bot

import (
	"math"

	"hexbot/hexagon"
)

// SafestSlot picks the slot whose nearest live wall is farthest away.
//
// Every slot starts with a closest-hazard distance of "no known hazard"
// (MaxUint32). Each wall with a nonzero distance and its enabled flag set
// lowers the entry for its slot; slot indices outside [0, numSlots) fold
// in by modulo. The answer is the slot with the maximum closest-hazard
// distance, ties resolving to the lowest index.
//
// ok is false when no wall passed the filter: with no live hazard there is
// nothing to dodge and the caller should skip the cycle.
func SafestSlot(numSlots uint32, walls []hexagon.Wall) (slot uint32, ok bool) {
	if numSlots == 0 || len(walls) == 0 {
		return 0, false
	}

	closest := make([]uint32, numSlots)
	for i := range closest {
		closest[i] = math.MaxUint32
	}

	found := false
	for _, w := range walls {
		if w.Distance == 0 || !w.Enabled {
			continue
		}

		idx := w.Slot % numSlots
		if w.Distance < closest[idx] {
			closest[idx] = w.Distance
		}
		found = true
	}

	if !found {
		return 0, false
	}

	best := uint32(0)
	for i := uint32(1); i < numSlots; i++ {
		if closest[i] > closest[best] {
			best = i
		}
	}

	return best, true
}
