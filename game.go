package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"cardfold/anim"
	"cardfold/fold"
	"cardfold/kinematics"
)

type Game struct {
	deck   fold.Deck
	seq    *anim.Sequencer
	camera Camera

	cfg    Config
	logger *log.Logger

	screenWidth  int
	screenHeight int

	// Sub-systems
	input *InputSystem
	ui    *UISystem

	face   font.Face
	images map[string]*ebiten.Image

	statusText  string
	statusUntil time.Time

	screenshotRequested bool
}

func NewGame(cfg Config, logger *log.Logger) *Game {
	g := &Game{
		camera: Camera{X: 0, Y: 0, Zoom: DefaultCameraZoom},
		cfg:    cfg,
		logger: logger,
		face:   LoadUIFont(logger),
		images: map[string]*ebiten.Image{},
	}

	g.input = NewInputSystem(g)
	g.ui = NewUISystem(g)

	g.deck = sampleDeck()
	g.seq = anim.NewSequencer(g.deck.Creases)
	g.seq.PerCrease = cfg.perCrease()
	g.seq.Overlap = cfg.staggerOverlap()

	return g
}

// sampleDeck builds a three-spread card so a fresh run has something to
// fold.
func sampleDeck() fold.Deck {
	deck := fold.Deck{Cover: fold.Cover{Spread: 0, Side: fold.Front}}
	for i := 0; i < 3; i++ {
		deck = fold.AddSpread(deck, "", "")
	}
	return deck
}

// SetDeck replaces the card wholesale (load, script import) and rebinds the
// sequencer to the new crease set.
func (g *Game) SetDeck(deck fold.Deck) {
	deck.Panels = fold.Reindex(deck.Panels)
	deck.Creases = fold.Normalize(deck.Panels, deck.Creases)
	g.deck = deck
	g.seq.Rebind(g.deck.Creases)
}

// renorm re-establishes the crease invariants after any panel mutation and
// keeps the sequencer bound to the surviving crease positions.
func (g *Game) renorm() {
	g.deck.Panels = fold.Reindex(g.deck.Panels)
	g.deck.Creases = fold.Normalize(g.deck.Panels, g.deck.Creases)
	g.seq.Rebind(g.deck.Creases)
}

// applyPanels commits the result of a panel operation. A rejected operation
// leaves the deck untouched and surfaces the reason as a status line.
func (g *Game) applyPanels(panels []fold.Panel, err error) {
	if err != nil {
		g.logger.Warn("Operation rejected", "err", err)
		g.setStatus(err.Error())
		return
	}
	g.deck.Panels = panels
	g.renorm()
}

func (g *Game) setStatus(s string) {
	g.statusText = s
	g.statusUntil = time.Now().Add(StatusSeconds * time.Second)
}

func (g *Game) Update() error {
	g.input.Update()
	g.ui.Update()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.seq.Advance(time.Second / time.Duration(tps))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	cw := float64(g.screenWidth) / 2
	ch := (float64(g.screenHeight) - StripHeight) / 2

	g.drawBackgroundGrid(screen, cw, ch)
	g.drawFoldView(screen, cw, ch)
	g.drawStrip(screen)
	g.ui.Draw(screen)
	g.drawHUD(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	amounts := g.seq.Amounts()
	progress := kinematics.OverallProgress(amounts)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Spreads: %d  Fold: %.0f%%  Cover: %s/%d  Zoom: %.2f\n"+
			"F fold  U unfold  Shift+Wheel scrub  A/R add/remove spread  C cover  Ctrl+S save",
		fold.SpreadCount(g.deck.Panels), progress*100,
		g.deck.Cover.Side, g.deck.Cover.Spread,
		g.camera.Zoom,
	), 10, 10)

	if g.statusText != "" && time.Now().Before(g.statusUntil) {
		ebitenutil.DebugPrintAt(screen, g.statusText, 10, 44)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	f, err := os.Create("screenshot.png")
	if err != nil {
		g.logger.Error("Screenshot failed", "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		g.logger.Error("Screenshot failed", "err", err)
		return
	}
	g.logger.Info("Screenshot saved", "path", "screenshot.png")
	g.setStatus("saved screenshot.png")
}

// panelImage returns the cached image for an asset reference, loading it on
// first use. Panels without a loadable image draw as colored rectangles.
func (g *Game) panelImage(ref string) *ebiten.Image {
	if ref == "" {
		return nil
	}
	if img, ok := g.images[ref]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(ref)
	if err != nil {
		g.logger.Debug("Panel image not loadable", "ref", ref, "err", err)
		img = nil
	}
	g.images[ref] = img
	return img
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
