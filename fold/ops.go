package fold

import (
	"errors"
	"fmt"
)

var (
	// ErrLastSpread is returned when removing the only remaining spread.
	ErrLastSpread = errors.New("cannot remove the last spread")
	// ErrSameSide is returned when a cross-side swap names two panels on
	// one side; that is a caller bug, not bad user data.
	ErrSameSide = errors.New("panels are on the same side")
	// ErrNoCounterpart is returned when a cross-side move has no panel to
	// trade places with, which would leave the side counts unequal.
	ErrNoCounterpart = errors.New("no counterpart panel on the target side")
)

// ReorderWithinSide moves the panel at from to to within one side's ordered
// list, standard list-move semantics: every other panel keeps its relative
// order. The result is reindexed. Out-of-range indices leave the input
// untouched and return an error.
func ReorderWithinSide(panels []Panel, side Side, from, to int) ([]Panel, error) {
	count := CountSide(panels, side)
	if from < 0 || from >= count || to < 0 || to >= count {
		return panels, fmt.Errorf("reorder %s %d -> %d: index out of range (%d panels)", side, from, to, count)
	}
	if from == to {
		return Reindex(panels), nil
	}

	row := SidePanels(panels, side)
	moved := row[from]
	row = append(row[:from], row[from+1:]...)
	row = append(row[:to], append([]Panel{moved}, row[to:]...)...)

	out := make([]Panel, 0, len(panels))
	for _, p := range panels {
		if p.Side != side {
			out = append(out, p)
		}
	}
	for i, p := range row {
		p.Index = i
		out = append(out, p)
	}
	return Reindex(out), nil
}

// SwapAcrossSides exchanges the side and index of two panels sitting on
// different sides, so each one takes the other's slot and the per-side
// counts stay equal. The result is reindexed.
func SwapAcrossSides(panels []Panel, aID, bID string) ([]Panel, error) {
	out := make([]Panel, len(panels))
	copy(out, panels)

	ai, bi := -1, -1
	for i := range out {
		switch out[i].ID {
		case aID:
			ai = i
		case bID:
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return panels, fmt.Errorf("swap: unknown panel id")
	}
	if out[ai].Side == out[bi].Side {
		return panels, ErrSameSide
	}

	out[ai].Side, out[bi].Side = out[bi].Side, out[ai].Side
	out[ai].Index, out[bi].Index = out[bi].Index, out[ai].Index
	return Reindex(out), nil
}

// MoveAcrossSides moves one panel to targetIndex on the opposite side by
// trading places with the panel already there. Without a counterpart at
// that position the move is rejected, since it would break the equal-count
// invariant.
func MoveAcrossSides(panels []Panel, id string, targetIndex int) ([]Panel, error) {
	var src *Panel
	for i := range panels {
		if panels[i].ID == id {
			src = &panels[i]
			break
		}
	}
	if src == nil {
		return panels, fmt.Errorf("move: unknown panel id %q", id)
	}
	other := PanelAt(panels, src.Side.Opposite(), targetIndex)
	if other == nil {
		return panels, ErrNoCounterpart
	}
	return SwapAcrossSides(panels, src.ID, other.ID)
}

// SetCreaseDirection sets the clicked side's crease at between to dir and
// forces the opposite side's crease at the same position to the inverse.
// When neither crease exists yet, both are created with sequence = between.
// Sequences of existing creases are never changed here.
func SetCreaseDirection(creases []Crease, between int, side Side, dir Direction) []Crease {
	out := make([]Crease, len(creases))
	copy(out, creases)

	clicked, partner := -1, -1
	for i := range out {
		if out[i].Between != between {
			continue
		}
		if out[i].Side == side {
			clicked = i
		} else {
			partner = i
		}
	}

	seq := between
	if clicked >= 0 {
		seq = out[clicked].Sequence
	} else if partner >= 0 {
		seq = out[partner].Sequence
	}

	if clicked >= 0 {
		out[clicked].Direction = dir
	} else {
		out = append(out, Crease{ID: NewID(), Side: side, Between: between, Direction: dir, Sequence: seq})
	}
	if partner >= 0 {
		out[partner].Direction = dir.Opposite()
	} else {
		out = append(out, Crease{ID: NewID(), Side: side.Opposite(), Between: between, Direction: dir.Opposite(), Sequence: seq})
	}
	return out
}

// SetUnfoldSequence assigns seq to the crease pair at between. When another
// pair already owns seq the two pairs trade sequence numbers, a
// transposition that keeps the values a permutation. Assigning a value no
// pair owns is a no-op so the set stays a tight permutation of
// 0..spreadCount-2; see DESIGN.md for the policy choice.
func SetUnfoldSequence(creases []Crease, between, seq int) []Crease {
	out := make([]Crease, len(creases))
	copy(out, creases)

	target := CreaseAt(out, Front, between)
	if target == nil {
		return out
	}
	if target.Sequence == seq {
		return out
	}

	holder := -1 // front crease currently owning seq
	for i := range out {
		if out[i].Side == Front && out[i].Sequence == seq {
			holder = i
			break
		}
	}
	if holder < 0 {
		return out
	}

	old := target.Sequence
	holderBetween := out[holder].Between
	// Both sides of each pair move together.
	for i := range out {
		switch out[i].Between {
		case between:
			out[i].Sequence = seq
		case holderBetween:
			out[i].Sequence = old
		}
	}
	return out
}

// AddSpread appends one front and one back panel at the next index. Past the
// first spread it also adds the joining crease pair with the default
// forward/backward directions and sequence = newIndex-1. The crease set is
// re-normalized against the grown panel list.
func AddSpread(deck Deck, frontImage, backImage string) Deck {
	n := SpreadCount(deck.Panels)

	panels := make([]Panel, len(deck.Panels), len(deck.Panels)+2)
	copy(panels, deck.Panels)
	panels = append(panels,
		Panel{ID: NewID(), Side: Front, Index: n, Image: frontImage},
		Panel{ID: NewID(), Side: Back, Index: n, Image: backImage},
	)

	creases := make([]Crease, len(deck.Creases), len(deck.Creases)+2)
	copy(creases, deck.Creases)
	if n > 0 {
		creases = append(creases,
			Crease{ID: NewID(), Side: Front, Between: n - 1, Direction: Forward, Sequence: n - 1},
			Crease{ID: NewID(), Side: Back, Between: n - 1, Direction: Backward, Sequence: n - 1},
		)
	}

	return Deck{Panels: Reindex(panels), Creases: Normalize(panels, creases), Cover: deck.Cover}
}

// RemoveSpread drops the panel pair with the highest index and the crease
// pair that referenced it. Removing the only spread is rejected. Remaining
// sequences are compacted so they stay a permutation of 0..spreadCount-2,
// preserving their relative order.
func RemoveSpread(deck Deck) (Deck, error) {
	n := SpreadCount(deck.Panels)
	if n <= 1 {
		return deck, ErrLastSpread
	}

	panels := []Panel{}
	for _, p := range deck.Panels {
		if p.Index != n-1 {
			panels = append(panels, p)
		}
	}

	removedSeq := -1
	if c := CreaseAt(deck.Creases, Front, n-2); c != nil {
		removedSeq = c.Sequence
	}
	creases := []Crease{}
	for _, c := range deck.Creases {
		if c.Between == n-2 {
			continue
		}
		if removedSeq >= 0 && c.Sequence > removedSeq {
			c.Sequence--
		}
		creases = append(creases, c)
	}

	cover := deck.Cover
	if cover.Spread > n-2 {
		cover.Spread = n - 2
	}

	return Deck{Panels: Reindex(panels), Creases: Normalize(panels, creases), Cover: cover}, nil
}
