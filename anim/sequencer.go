// Package anim drives per-crease fold amounts over time. It owns an
// explicit pending-transition schedule on a single timeline: every
// Fold/Unfold/SetScalar call clears the schedule before writing a new one,
// so stale transitions can never overwrite fresher state.
package anim

import (
	"sort"
	"time"

	"cardfold/fold"
)

// Transition is one scheduled fold-amount ramp for a crease position.
type Transition struct {
	Between  int
	Start    time.Duration // timeline instant the ramp begins
	Duration time.Duration
	From, To float64
}

// Sequencer holds the current fold amount per crease position and the
// pending schedule. It is driven from a single event loop via Advance and
// is not safe for concurrent use.
type Sequencer struct {
	PerCrease time.Duration // duration of one crease's transition
	Overlap   time.Duration // how much consecutive transitions overlap

	amounts map[int]float64
	order   []int // crease positions in unfold order
	pending []Transition
	clock   time.Duration
}

// NewSequencer seeds a sequencer from a crease snapshot with every position
// fully unfolded.
func NewSequencer(creases []fold.Crease) *Sequencer {
	s := &Sequencer{
		PerCrease: 600 * time.Millisecond,
		Overlap:   200 * time.Millisecond,
		amounts:   map[int]float64{},
	}
	s.Rebind(creases)
	return s
}

// Rebind refreshes the tracked crease positions after a consistency-engine
// mutation. Positions that survived keep their current amount, new ones
// start unfolded, vanished ones are dropped along with any transitions
// still pending for them.
func (s *Sequencer) Rebind(creases []fold.Crease) {
	s.order = unfoldOrder(creases)

	amounts := make(map[int]float64, len(s.order))
	for _, between := range s.order {
		amounts[between] = s.amounts[between]
	}
	s.amounts = amounts

	kept := s.pending[:0]
	for _, tr := range s.pending {
		if _, ok := amounts[tr.Between]; ok {
			kept = append(kept, tr)
		}
	}
	s.pending = kept
}

// FoldAll schedules every crease to fold closed. Creases fold in the
// reverse of the unfold order, outermost first, each delayed by
// orderIndex * (PerCrease - Overlap) so consecutive transitions visibly
// overlap instead of queueing.
func (s *Sequencer) FoldAll() {
	s.pending = s.pending[:0]
	step := s.PerCrease - s.Overlap
	for i := len(s.order) - 1; i >= 0; i-- {
		between := s.order[i]
		idx := len(s.order) - 1 - i
		s.pending = append(s.pending, Transition{
			Between:  between,
			Start:    s.clock + time.Duration(idx)*step,
			Duration: s.PerCrease,
			From:     s.amounts[between],
			To:       1,
		})
	}
}

// UnfoldAll schedules every crease to open, lowest sequence first, with the
// same stagger as FoldAll.
func (s *Sequencer) UnfoldAll() {
	s.pending = s.pending[:0]
	step := s.PerCrease - s.Overlap
	for idx, between := range s.order {
		s.pending = append(s.pending, Transition{
			Between:  between,
			Start:    s.clock + time.Duration(idx)*step,
			Duration: s.PerCrease,
			From:     s.amounts[between],
			To:       0,
		})
	}
}

// SetScalar maps one continuous control in [0,1] onto all crease amounts,
// cancelling any pending transitions first. [0,1] is split into n equal
// segments; the crease at unfold-order index i owns [(n-i-1)/n, (n-i)/n],
// so scrubbing the scalar folds and unfolds the card in the same physical
// order as FoldAll/UnfoldAll.
func (s *Sequencer) SetScalar(v float64) {
	s.pending = s.pending[:0]
	n := len(s.order)
	if n == 0 {
		return
	}
	v = clamp01(v)
	for i, between := range s.order {
		lo := float64(n-i-1) / float64(n)
		hi := float64(n-i) / float64(n)
		s.amounts[between] = clamp01((v - lo) / (hi - lo))
	}
}

// Advance moves the timeline forward and applies pending transitions,
// linearly interpolating each ramp and discarding it once complete.
func (s *Sequencer) Advance(dt time.Duration) {
	s.clock += dt
	kept := s.pending[:0]
	for _, tr := range s.pending {
		switch {
		case s.clock < tr.Start:
			kept = append(kept, tr)
		case s.clock >= tr.Start+tr.Duration:
			s.amounts[tr.Between] = tr.To
		default:
			t := float64(s.clock-tr.Start) / float64(tr.Duration)
			s.amounts[tr.Between] = tr.From + (tr.To-tr.From)*t
			kept = append(kept, tr)
		}
	}
	s.pending = kept
}

// Animating reports whether any transition is still pending.
func (s *Sequencer) Animating() bool {
	return len(s.pending) > 0
}

// Amounts returns a snapshot of the current fold amount per position.
func (s *Sequencer) Amounts() map[int]float64 {
	out := make(map[int]float64, len(s.amounts))
	for k, v := range s.amounts {
		out[k] = v
	}
	return out
}

// Pending returns a copy of the schedule, mainly for tests and debugging.
func (s *Sequencer) Pending() []Transition {
	out := make([]Transition, len(s.pending))
	copy(out, s.pending)
	return out
}

// unfoldOrder returns crease positions sorted by sequence ascending.
// Sequences are unique by construction, but a stable sort keeps original
// array order as the tiebreak so behavior stays deterministic regardless.
func unfoldOrder(creases []fold.Crease) []int {
	front := fold.FrontCreases(creases)
	sort.SliceStable(front, func(i, j int) bool { return front[i].Sequence < front[j].Sequence })
	out := make([]int, len(front))
	for i, c := range front {
		out[i] = c.Between
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
