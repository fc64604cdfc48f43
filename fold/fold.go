// Package fold owns the canonical panel/crease data model of a multi-panel
// folding card and the mutation operations that keep it consistent.
//
// A card is a row of spreads. Each spread is a front panel and a back panel
// sharing the same index; the two sides always hold the same number of
// panels. Adjacent panels on one side are joined by a crease, and the front
// and back crease at the same position always fold in opposite directions
// and open at the same point in the unfold sequence.
//
// All operations here are pure: they take a snapshot, return a new one, and
// never touch the input slices.
package fold

import (
	"sort"

	"github.com/google/uuid"
)

// Side identifies which face of the card a panel or crease belongs to.
type Side string

const (
	Front Side = "front"
	Back  Side = "back"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Front {
		return Back
	}
	return Front
}

// Direction is the rotation sense of a crease: Forward folds toward the
// viewer, Backward folds away.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Opposite returns the inverse fold direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Panel is one rigid face of the card. Index is the panel's position on its
// side, contiguous from 0. Image is an opaque asset reference supplied by
// the caller; this package never interprets it.
type Panel struct {
	ID    string
	Side  Side
	Index int
	Image string
}

// Crease is the foldable boundary between the panels at Between and
// Between+1 on one side. Sequence is the crease's rank in the unfold order,
// lowest opening first; front creases of one card hold a permutation of
// 0..spreadCount-2.
type Crease struct {
	ID        string
	Side      Side
	Between   int
	Direction Direction
	Sequence  int
}

// Cover designates which spread and side faces outward when the card is
// fully folded. The zero value (spread 0, front) is the default.
type Cover struct {
	Spread int
	Side   Side
}

// Deck is a full card snapshot.
type Deck struct {
	Panels  []Panel
	Creases []Crease
	Cover   Cover
}

// NewID mints an identifier for a panel or crease.
func NewID() string {
	return uuid.NewString()
}

// SpreadCount returns the number of spreads, which equals the per-side panel
// count. With unequal sides (a transient, un-normalized state) it returns
// the larger count.
func SpreadCount(panels []Panel) int {
	f := CountSide(panels, Front)
	b := CountSide(panels, Back)
	if b > f {
		return b
	}
	return f
}

// CountSide returns how many panels sit on one side.
func CountSide(panels []Panel, side Side) int {
	n := 0
	for _, p := range panels {
		if p.Side == side {
			n++
		}
	}
	return n
}

// PanelAt returns the panel at (side, index), or nil.
func PanelAt(panels []Panel, side Side, index int) *Panel {
	for i := range panels {
		if panels[i].Side == side && panels[i].Index == index {
			return &panels[i]
		}
	}
	return nil
}

// CreaseAt returns the crease at (side, between), or nil.
func CreaseAt(creases []Crease, side Side, between int) *Crease {
	for i := range creases {
		if creases[i].Side == side && creases[i].Between == between {
			return &creases[i]
		}
	}
	return nil
}

// SidePanels returns the panels of one side ordered by index.
func SidePanels(panels []Panel, side Side) []Panel {
	out := []Panel{}
	for _, p := range panels {
		if p.Side == side {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// FrontCreases returns the front-side creases ordered by position. The front
// side is the source of truth for fold direction, so this is the slice the
// kinematics and animation layers consume.
func FrontCreases(creases []Crease) []Crease {
	out := []Crease{}
	for _, c := range creases {
		if c.Side == Front {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Between < out[j].Between })
	return out
}
