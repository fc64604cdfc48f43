package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"cardfold/fold"
)

type PanelState struct {
	ID    string `yaml:"id"`
	Side  string `yaml:"side"`
	Index int    `yaml:"index"`
	Image string `yaml:"image,omitempty"`
}

type CreaseState struct {
	ID        string `yaml:"id"`
	Side      string `yaml:"side"`
	Between   int    `yaml:"between"`
	Direction string `yaml:"direction"`
	Sequence  int    `yaml:"sequence"`
}

type CoverState struct {
	Spread int    `yaml:"spread"`
	Side   string `yaml:"side"`
}

type DeckState struct {
	Panels  []PanelState  `yaml:"panels"`
	Creases []CreaseState `yaml:"creases"`
	Cover   CoverState    `yaml:"cover"`
}

// SaveDeck writes a normalized deck snapshot to a YAML file. The snapshot
// is the persistence boundary: nothing beyond this file is stored.
func SaveDeck(deck fold.Deck, filename string) error {
	state := DeckState{
		Cover: CoverState{Spread: deck.Cover.Spread, Side: string(deck.Cover.Side)},
	}
	for _, p := range deck.Panels {
		state.Panels = append(state.Panels, PanelState{
			ID:    p.ID,
			Side:  string(p.Side),
			Index: p.Index,
			Image: p.Image,
		})
	}
	for _, c := range deck.Creases {
		state.Creases = append(state.Creases, CreaseState{
			ID:        c.ID,
			Side:      string(c.Side),
			Between:   c.Between,
			Direction: string(c.Direction),
			Sequence:  c.Sequence,
		})
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return err
	}
	return enc.Close()
}

// LoadDeck reads a deck snapshot. Loaded data is never trusted as
// consistent: missing IDs are minted, unknown sides and directions fall
// back to defaults, and the whole set is reindexed and normalized before
// it reaches the engine.
func LoadDeck(filename string) (fold.Deck, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fold.Deck{}, err
	}

	var state DeckState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fold.Deck{}, err
	}

	deck := fold.Deck{}
	for _, ps := range state.Panels {
		id := ps.ID
		if id == "" {
			id = fold.NewID()
		}
		deck.Panels = append(deck.Panels, fold.Panel{
			ID:    id,
			Side:  loadSide(ps.Side),
			Index: ps.Index,
			Image: ps.Image,
		})
	}
	for _, cs := range state.Creases {
		id := cs.ID
		if id == "" {
			id = fold.NewID()
		}
		deck.Creases = append(deck.Creases, fold.Crease{
			ID:        id,
			Side:      loadSide(cs.Side),
			Between:   cs.Between,
			Direction: loadDirection(cs.Direction),
			Sequence:  cs.Sequence,
		})
	}

	deck.Panels = fold.Reindex(deck.Panels)
	deck.Creases = fold.Normalize(deck.Panels, deck.Creases)

	deck.Cover = fold.Cover{Spread: state.Cover.Spread, Side: loadSide(state.Cover.Side)}
	if n := fold.SpreadCount(deck.Panels); deck.Cover.Spread < 0 || deck.Cover.Spread >= n {
		deck.Cover.Spread = 0
	}

	return deck, nil
}

func loadSide(s string) fold.Side {
	if s == string(fold.Back) {
		return fold.Back
	}
	return fold.Front
}

func loadDirection(d string) fold.Direction {
	if d == string(fold.Backward) {
		return fold.Backward
	}
	return fold.Forward
}
