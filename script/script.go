// Package script runs Starlark deck scripts: small programs that build and
// edit a card through the same operations the editor exposes, useful for
// seeding test decks and batch edits without opening a window.
package script

import (
	"fmt"
	"os"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"cardfold/anim"
	"cardfold/fold"
)

// Run executes the script at path against an empty deck and returns the
// resulting snapshot.
func Run(path string) (fold.Deck, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return fold.Deck{}, err
	}
	return RunSource(path, string(src))
}

// RunSource executes Starlark source against an empty deck. The script sees
// the editor operations as builtins:
//
//	add_spread(front="a.png", back="b.png")   -> new spread index
//	remove_spread()
//	reorder(side, from_, to)
//	swap(side, index)         # trade the panel with its counterpart slot
//	set_direction(between, side, direction)
//	set_sequence(between, seq)
//	set_cover(spread, side)
//	spread_count()
//	fold_amounts(scalar)      # {between: amount} for a scrub position
//
// Every mutation re-normalizes the deck, so scripts can never leave it in
// an inconsistent state.
func RunSource(name, src string) (fold.Deck, error) {
	b := &builder{deck: fold.Deck{Cover: fold.Cover{Spread: 0, Side: fold.Front}}}

	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}
	predeclared := starlark.StringDict{
		"add_spread":    starlark.NewBuiltin("add_spread", b.addSpread),
		"remove_spread": starlark.NewBuiltin("remove_spread", b.removeSpread),
		"reorder":       starlark.NewBuiltin("reorder", b.reorder),
		"swap":          starlark.NewBuiltin("swap", b.swap),
		"set_direction": starlark.NewBuiltin("set_direction", b.setDirection),
		"set_sequence":  starlark.NewBuiltin("set_sequence", b.setSequence),
		"set_cover":     starlark.NewBuiltin("set_cover", b.setCover),
		"spread_count":  starlark.NewBuiltin("spread_count", b.spreadCount),
		"fold_amounts":  starlark.NewBuiltin("fold_amounts", b.foldAmounts),
	}

	// Deck scripts are plain top-level programs, so loops and conditionals
	// must work outside function bodies.
	opts := &syntax.FileOptions{TopLevelControl: true}
	if _, err := starlark.ExecFileOptions(opts, thread, name, src, predeclared); err != nil {
		return fold.Deck{}, err
	}
	return b.deck, nil
}

// builder accumulates deck mutations issued by a running script.
type builder struct {
	deck fold.Deck
}

// renorm re-normalizes after any panel or crease mutation.
func (b *builder) renorm() {
	b.deck.Panels = fold.Reindex(b.deck.Panels)
	b.deck.Creases = fold.Normalize(b.deck.Panels, b.deck.Creases)
}

func (b *builder) addSpread(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var front, back string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "front?", &front, "back?", &back); err != nil {
		return nil, err
	}
	b.deck = fold.AddSpread(b.deck, front, back)
	return starlark.MakeInt(fold.SpreadCount(b.deck.Panels) - 1), nil
}

func (b *builder) removeSpread(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	deck, err := fold.RemoveSpread(b.deck)
	if err != nil {
		return nil, err
	}
	b.deck = deck
	return starlark.None, nil
}

func (b *builder) reorder(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var side string
	var from, to int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "side", &side, "from_", &from, "to", &to); err != nil {
		return nil, err
	}
	s, err := parseSide(side)
	if err != nil {
		return nil, err
	}
	panels, err := fold.ReorderWithinSide(b.deck.Panels, s, from, to)
	if err != nil {
		return nil, err
	}
	b.deck.Panels = panels
	b.renorm()
	return starlark.None, nil
}

func (b *builder) swap(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var side string
	var index int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "side", &side, "index", &index); err != nil {
		return nil, err
	}
	s, err := parseSide(side)
	if err != nil {
		return nil, err
	}
	p := fold.PanelAt(b.deck.Panels, s, index)
	if p == nil {
		return nil, fmt.Errorf("swap: no panel at %s/%d", s, index)
	}
	panels, err := fold.MoveAcrossSides(b.deck.Panels, p.ID, index)
	if err != nil {
		return nil, err
	}
	b.deck.Panels = panels
	b.renorm()
	return starlark.None, nil
}

func (b *builder) setDirection(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var between int
	var side, direction string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "between", &between, "side", &side, "direction", &direction); err != nil {
		return nil, err
	}
	s, err := parseSide(side)
	if err != nil {
		return nil, err
	}
	d, err := parseDirection(direction)
	if err != nil {
		return nil, err
	}
	b.deck.Creases = fold.SetCreaseDirection(b.deck.Creases, between, s, d)
	b.renorm()
	return starlark.None, nil
}

func (b *builder) setSequence(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var between, seq int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "between", &between, "seq", &seq); err != nil {
		return nil, err
	}
	b.deck.Creases = fold.SetUnfoldSequence(b.deck.Creases, between, seq)
	return starlark.None, nil
}

func (b *builder) setCover(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var spread int
	var side string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "spread", &spread, "side", &side); err != nil {
		return nil, err
	}
	s, err := parseSide(side)
	if err != nil {
		return nil, err
	}
	if spread < 0 || spread >= fold.SpreadCount(b.deck.Panels) {
		return nil, fmt.Errorf("set_cover: spread %d out of range", spread)
	}
	b.deck.Cover = fold.Cover{Spread: spread, Side: s}
	return starlark.None, nil
}

func (b *builder) spreadCount(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.MakeInt(fold.SpreadCount(b.deck.Panels)), nil
}

// foldAmounts exposes the scrub mapping so scripts can inspect what a scalar
// position does to each crease without animating anything.
func (b *builder) foldAmounts(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var scalar float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "scalar", &scalar); err != nil {
		return nil, err
	}
	seq := anim.NewSequencer(b.deck.Creases)
	seq.SetScalar(scalar)
	amounts := seq.Amounts()

	positions := make([]int, 0, len(amounts))
	for between := range amounts {
		positions = append(positions, between)
	}
	sort.Ints(positions)

	d := starlark.NewDict(len(positions))
	for _, between := range positions {
		if err := d.SetKey(starlark.MakeInt(between), starlark.Float(amounts[between])); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func parseSide(s string) (fold.Side, error) {
	switch s {
	case "front":
		return fold.Front, nil
	case "back":
		return fold.Back, nil
	}
	return "", fmt.Errorf("unknown side %q (want front or back)", s)
}

func parseDirection(d string) (fold.Direction, error) {
	switch d {
	case "forward":
		return fold.Forward, nil
	case "backward":
		return fold.Backward, nil
	}
	return "", fmt.Errorf("unknown direction %q (want forward or backward)", d)
}
