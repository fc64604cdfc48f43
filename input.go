package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cardfold/fold"
	"cardfold/kinematics"
)

type InputSystem struct {
	game *Game

	// Panning state
	isPanning  bool
	lastMouseX int
	lastMouseY int

	// Thumbnail drag state; a copy of the panel being dragged.
	draggingPanel *fold.Panel
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

func (is *InputSystem) Update() {
	g := is.game
	mx, my := ebiten.CursorPosition()
	overUI := g.ui.IsMouseOver(mx, my)
	overStrip := g.overStrip(float64(mx), float64(my))

	is.handleControlKeys()
	is.handleSequenceKeys(float64(mx), float64(my))
	is.handleWheel()
	is.handleStripMouse(float64(mx), float64(my))
	is.handlePanning(mx, my, overUI || overStrip)
}

func (is *InputSystem) handleControlKeys() {
	g := is.game

	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.screenshotRequested = true
	}

	// --- Save ---
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveDeck(g.deck, g.cfg.StatePath); err != nil {
			g.logger.Error("Save failed", "path", g.cfg.StatePath, "err", err)
			g.setStatus("save failed: " + err.Error())
		} else {
			g.logger.Info("Saved", "path", g.cfg.StatePath)
			g.setStatus("saved " + g.cfg.StatePath)
		}
		return
	}

	// --- Fold / unfold ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.seq.FoldAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.seq.UnfoldAll()
	}

	// --- Spreads ---
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.deck = fold.AddSpread(g.deck, "", "")
		g.seq.Rebind(g.deck.Creases)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		deck, err := fold.RemoveSpread(g.deck)
		if err != nil {
			g.logger.Warn("Operation rejected", "err", err)
			g.setStatus(err.Error())
		} else {
			g.deck = deck
			g.seq.Rebind(g.deck.Creases)
		}
	}

	// --- Cover designation: cycle through panels ---
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.deck.Cover = nextCover(g.deck.Cover, fold.SpreadCount(g.deck.Panels))
	}
}

// nextCover steps front 0..n-1, then back 0..n-1, then wraps.
func nextCover(c fold.Cover, n int) fold.Cover {
	if n == 0 {
		return c
	}
	c.Spread++
	if c.Spread >= n {
		c.Spread = 0
		c.Side = c.Side.Opposite()
	}
	return c
}

// handleSequenceKeys reassigns a crease's unfold rank: hover its marker and
// press a digit. The engine swaps ranks with the current owner, so the
// values stay a permutation.
func (is *InputSystem) handleSequenceKeys(mx, my float64) {
	g := is.game
	_, between, ok := g.creaseMarkerAt(mx, my)
	if !ok {
		return
	}
	for d := 0; d <= 9; d++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit0 + ebiten.Key(d)) {
			g.deck.Creases = fold.SetUnfoldSequence(g.deck.Creases, between, d)
			g.seq.Rebind(g.deck.Creases)
			return
		}
	}
}

func (is *InputSystem) handleWheel() {
	g := is.game
	_, dy := ebiten.Wheel()

	// Keyboard zooming
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		dy += 0.1
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		dy -= 0.1
	}
	if dy == 0 {
		return
	}

	// Shift+wheel scrubs the fold instead of zooming. The scalar's segment
	// mapping has mean equal to the scalar itself, so overall progress is a
	// stable base to step from.
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		v := kinematics.OverallProgress(g.seq.Amounts()) + dy*ScrubStep
		g.seq.SetScalar(math.Max(0, math.Min(1, v)))
		return
	}

	newZoom := g.camera.Zoom * math.Pow(1+ZoomSpeed, dy)
	if newZoom > ZoomLimitMin && newZoom < ZoomLimitMax {
		g.camera.Zoom = newZoom
	}
}

func (is *InputSystem) handleStripMouse(mx, my float64) {
	g := is.game

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Crease marker click toggles the fold direction of that side's
		// crease; the partner is forced inverse by the engine.
		if side, between, ok := g.creaseMarkerAt(mx, my); ok {
			crease := fold.CreaseAt(g.deck.Creases, side, between)
			if crease != nil {
				g.deck.Creases = fold.SetCreaseDirection(g.deck.Creases, between, side, crease.Direction.Opposite())
				g.renorm()
			}
			return
		}
		// Thumbnail press starts a drag.
		if side, index, ok := g.thumbAt(mx, my); ok {
			if p := fold.PanelAt(g.deck.Panels, side, index); p != nil {
				cp := *p
				is.draggingPanel = &cp
			}
			return
		}
		return
	}

	if is.draggingPanel == nil {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return // still dragging; the strip draws the thumb at the cursor
	}

	// Drop.
	p := *is.draggingPanel
	is.draggingPanel = nil
	side, slot, ok := g.dropSlot(mx, my)
	if !ok {
		return // released outside the rows, cancel
	}
	if side == p.Side {
		g.applyPanels(fold.ReorderWithinSide(g.deck.Panels, side, p.Index, slot))
	} else {
		g.applyPanels(fold.MoveAcrossSides(g.deck.Panels, p.ID, slot))
	}
}

func (is *InputSystem) handlePanning(mx, my int, overUI bool) {
	g := is.game
	isPanButtonHeld := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && is.draggingPanel == nil && !overUI)

	if !is.isPanning {
		if isPanButtonHeld {
			is.isPanning = true
			is.lastMouseX, is.lastMouseY = mx, my
		}
	} else {
		if isPanButtonHeld {
			dx := float64(mx - is.lastMouseX)
			dy := float64(my - is.lastMouseY)
			g.camera.X -= dx / g.camera.Zoom
			g.camera.Y -= dy / g.camera.Zoom
			is.lastMouseX, is.lastMouseY = mx, my
		} else {
			is.isPanning = false
		}
	}
}
