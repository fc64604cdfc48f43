package main

import (
	"os"
	"path/filepath"
	"testing"

	"cardfold/fold"
)

func buildDeck(n int) fold.Deck {
	deck := fold.Deck{Cover: fold.Cover{Spread: 0, Side: fold.Front}}
	for i := 0; i < n; i++ {
		deck = fold.AddSpread(deck, "", "")
	}
	return deck
}

func TestSaveLoadRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "card.yaml")

	deck := buildDeck(3)
	deck.Creases = fold.SetCreaseDirection(deck.Creases, 1, fold.Front, fold.Backward)
	deck.Creases = fold.SetUnfoldSequence(deck.Creases, 0, 1)
	deck.Cover = fold.Cover{Spread: 1, Side: fold.Back}

	if err := SaveDeck(deck, filename); err != nil {
		t.Fatalf("Failed to save deck: %v", err)
	}
	loaded, err := LoadDeck(filename)
	if err != nil {
		t.Fatalf("Failed to load deck: %v", err)
	}

	if got := fold.SpreadCount(loaded.Panels); got != 3 {
		t.Fatalf("Expected 3 spreads, got %d", got)
	}
	if got := fold.CreaseAt(loaded.Creases, fold.Front, 1).Direction; got != fold.Backward {
		t.Errorf("Direction lost in round trip: %s", got)
	}
	if got := fold.CreaseAt(loaded.Creases, fold.Front, 0).Sequence; got != 1 {
		t.Errorf("Sequence lost in round trip: %d", got)
	}
	if loaded.Cover != deck.Cover {
		t.Errorf("Cover lost in round trip: %+v", loaded.Cover)
	}
	// IDs survive so external references stay valid.
	if loaded.Panels[0].ID != deck.Panels[0].ID {
		t.Errorf("Panel ID changed across save/load")
	}
}

func TestLoadHealsInconsistentState(t *testing.T) {
	// A hand-edited file: both creases fold forward, the back crease
	// carries a stale sequence, one crease is an orphan, and panel indices
	// have gaps. Loading must never trust it.
	src := `
panels:
  - {id: f0, side: front, index: 0}
  - {id: f1, side: front, index: 5}
  - {id: b0, side: back, index: 0}
  - {id: b1, side: back, index: 1}
creases:
  - {id: cf, side: front, between: 0, direction: forward, sequence: 0}
  - {id: cb, side: back, between: 0, direction: forward, sequence: 3}
  - {id: orphan, side: front, between: 9, direction: forward, sequence: 9}
cover: {spread: 7, side: back}
`
	filename := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	deck, err := LoadDeck(filename)
	if err != nil {
		t.Fatalf("Failed to load deck: %v", err)
	}

	// Indices reindexed contiguous.
	if fold.PanelAt(deck.Panels, fold.Front, 1) == nil {
		t.Errorf("Front indices not healed: %+v", deck.Panels)
	}
	// Front is direction truth; back forced opposite.
	front := fold.CreaseAt(deck.Creases, fold.Front, 0)
	back := fold.CreaseAt(deck.Creases, fold.Back, 0)
	if front.Direction != fold.Forward || back.Direction != fold.Backward {
		t.Errorf("Directions not healed: %s/%s", front.Direction, back.Direction)
	}
	// The pair shares the front sequence.
	if back.Sequence != front.Sequence {
		t.Errorf("Sequences not shared: %d vs %d", front.Sequence, back.Sequence)
	}
	// Orphan dropped, out-of-range cover reset.
	if fold.CreaseAt(deck.Creases, fold.Front, 9) != nil {
		t.Errorf("Orphan crease survived load")
	}
	if deck.Cover.Spread != 0 {
		t.Errorf("Cover spread not reset: %d", deck.Cover.Spread)
	}
}

func TestLoadHealsDuplicateSequences(t *testing.T) {
	// Two front creases both claim unfold rank 0. Loading must rerank them
	// into a permutation or the fold order is forever ambiguous.
	src := `
panels:
  - {id: f0, side: front, index: 0}
  - {id: f1, side: front, index: 1}
  - {id: f2, side: front, index: 2}
  - {id: b0, side: back, index: 0}
  - {id: b1, side: back, index: 1}
  - {id: b2, side: back, index: 2}
creases:
  - {id: c0, side: front, between: 0, direction: forward, sequence: 0}
  - {id: c1, side: front, between: 1, direction: forward, sequence: 0}
cover: {spread: 0, side: front}
`
	filename := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	deck, err := LoadDeck(filename)
	if err != nil {
		t.Fatalf("Failed to load deck: %v", err)
	}

	seen := map[int]bool{}
	n := fold.SpreadCount(deck.Panels)
	for k := 0; k < n-1; k++ {
		seq := fold.CreaseAt(deck.Creases, fold.Front, k).Sequence
		if seq < 0 || seq > n-2 || seen[seq] {
			t.Fatalf("Sequence %d at position %d breaks the permutation", seq, k)
		}
		seen[seq] = true
	}
	// Ties rank in position order.
	if got := fold.CreaseAt(deck.Creases, fold.Front, 1).Sequence; got != 1 {
		t.Errorf("Position 1: expected rank 1 after healing, got %d", got)
	}
}

func TestLoadMintsMissingIDs(t *testing.T) {
	src := `
panels:
  - {side: front, index: 0}
  - {side: back, index: 0}
`
	filename := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	deck, err := LoadDeck(filename)
	if err != nil {
		t.Fatalf("Failed to load deck: %v", err)
	}
	for _, p := range deck.Panels {
		if p.ID == "" {
			t.Errorf("Panel left without an ID")
		}
	}
}
