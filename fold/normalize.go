package fold

import "sort"

// Reindex reassigns contiguous 0-based indices to each side's panels,
// preserving their current relative order. Panels that already carry
// contiguous indices come back unchanged apart from slice identity.
func Reindex(panels []Panel) []Panel {
	out := make([]Panel, len(panels))
	copy(out, panels)

	for _, side := range []Side{Front, Back} {
		// Collect positions of this side's panels in the output slice,
		// ordered by their current index (stable for duplicates).
		pos := []int{}
		for i := range out {
			if out[i].Side == side {
				pos = append(pos, i)
			}
		}
		sort.SliceStable(pos, func(a, b int) bool { return out[pos[a]].Index < out[pos[b]].Index })
		for rank, i := range pos {
			out[i].Index = rank
		}
	}
	return out
}

// Normalize rebuilds the crease set against a panel snapshot and is the one
// place crease defaults are resolved. For each position k the front crease
// is the source of truth for direction (Forward when absent) and the back
// crease is forced to the opposite; the sequence comes from whichever side
// already has one, else defaults to k. A front crease is emitted iff
// k < frontCount-1 and a back crease iff k < backCount-1, so orphans
// referencing positions that no longer exist are silently dropped and
// missing creases are recreated. Sequences are then reranked so they always
// form a permutation of the crease positions, healing duplicates and gaps
// in hand-edited input.
//
// Normalize is idempotent: feeding its output back in returns the same set.
func Normalize(panels []Panel, creases []Crease) []Crease {
	frontCount := CountSide(panels, Front)
	backCount := CountSide(panels, Back)
	top := frontCount
	if backCount > top {
		top = backCount
	}

	out := []Crease{}
	for k := 0; k <= top-2; k++ {
		front := CreaseAt(creases, Front, k)
		back := CreaseAt(creases, Back, k)

		dir := Forward
		if front != nil {
			dir = front.Direction
		} else if back != nil {
			dir = back.Direction.Opposite()
		}

		seq := k
		if front != nil {
			seq = front.Sequence
		} else if back != nil {
			seq = back.Sequence
		}

		if k < frontCount-1 {
			id := NewID()
			if front != nil {
				id = front.ID
			}
			out = append(out, Crease{ID: id, Side: Front, Between: k, Direction: dir, Sequence: seq})
		}
		if k < backCount-1 {
			id := NewID()
			if back != nil {
				id = back.ID
			}
			out = append(out, Crease{ID: id, Side: Back, Between: k, Direction: dir.Opposite(), Sequence: seq})
		}
	}

	// Rerank sequences by (Sequence, Between) so the values are a tight
	// permutation of the positions. A valid permutation ranks to itself,
	// which keeps Normalize idempotent.
	posSeq := map[int]int{}
	positions := []int{}
	for _, c := range out {
		if _, ok := posSeq[c.Between]; !ok {
			posSeq[c.Between] = c.Sequence
			positions = append(positions, c.Between)
		}
	}
	sort.SliceStable(positions, func(a, b int) bool { return posSeq[positions[a]] < posSeq[positions[b]] })
	rank := map[int]int{}
	for r, p := range positions {
		rank[p] = r
	}
	for i := range out {
		out[i].Sequence = rank[out[i].Between]
	}
	return out
}
