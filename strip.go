package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cardfold/fold"
)

// The editor strip is the docked panel along the bottom of the window: one
// row of thumbnails per side with crease markers in the gaps. Dragging a
// thumbnail reorders within its row or trades places across rows; clicking
// a marker toggles that crease's fold direction.

func (g *Game) stripTop() float64 {
	return float64(g.screenHeight) - StripHeight
}

// rowY returns the top of a side's thumbnail row.
func (g *Game) rowY(side fold.Side) float64 {
	y := g.stripTop() + StripPadding + 14
	if side == fold.Back {
		y += ThumbHeight + RowGap
	}
	return y
}

// thumbRect returns the screen rectangle of the thumbnail at (side, index).
func (g *Game) thumbRect(side fold.Side, index int) (x, y, w, h float64) {
	x = StripPadding + float64(index)*(ThumbWidth+ThumbGap)
	return x, g.rowY(side), ThumbWidth, ThumbHeight
}

// creaseRect returns the screen rectangle of the crease marker between
// thumbnails at between and between+1 on a side.
func (g *Game) creaseRect(side fold.Side, between int) (x, y, w, h float64) {
	tx, ty, tw, th := g.thumbRect(side, between)
	cx := tx + tw + ThumbGap/2
	cy := ty + th/2
	return cx - CreaseHitSize/2, cy - CreaseHitSize/2, CreaseHitSize, CreaseHitSize
}

// thumbAt hit-tests the strip for a panel thumbnail.
func (g *Game) thumbAt(mx, my float64) (fold.Side, int, bool) {
	for _, side := range []fold.Side{fold.Front, fold.Back} {
		for i := 0; i < fold.CountSide(g.deck.Panels, side); i++ {
			x, y, w, h := g.thumbRect(side, i)
			if mx >= x && mx < x+w && my >= y && my < y+h {
				return side, i, true
			}
		}
	}
	return fold.Front, 0, false
}

// dropSlot maps a release position to the nearest thumbnail slot on the row
// under the cursor. Unlike thumbAt it accepts positions in the gaps, so a
// drop between two thumbnails still lands.
func (g *Game) dropSlot(mx, my float64) (fold.Side, int, bool) {
	for _, side := range []fold.Side{fold.Front, fold.Back} {
		y := g.rowY(side)
		if my < y-RowGap/2 || my >= y+ThumbHeight+RowGap/2 {
			continue
		}
		count := fold.CountSide(g.deck.Panels, side)
		slot := int((mx - StripPadding + ThumbGap/2) / (ThumbWidth + ThumbGap))
		if slot < 0 {
			slot = 0
		}
		if slot > count-1 {
			slot = count - 1
		}
		return side, slot, count > 0
	}
	return fold.Front, 0, false
}

// creaseMarkerAt hit-tests the strip for a crease marker.
func (g *Game) creaseMarkerAt(mx, my float64) (fold.Side, int, bool) {
	for _, side := range []fold.Side{fold.Front, fold.Back} {
		for k := 0; k < fold.CountSide(g.deck.Panels, side)-1; k++ {
			x, y, w, h := g.creaseRect(side, k)
			if mx >= x && mx < x+w && my >= y && my < y+h {
				return side, k, true
			}
		}
	}
	return fold.Front, 0, false
}

func (g *Game) overStrip(mx, my float64) bool {
	return my >= g.stripTop()
}

func (g *Game) drawStrip(screen *ebiten.Image) {
	top := g.stripTop()
	vector.DrawFilledRect(screen, 0, float32(top), float32(g.screenWidth), StripHeight, ColorStripBack, false)

	mx, my := ebiten.CursorPosition()
	hoverSide, hoverIndex, hovering := g.thumbAt(float64(mx), float64(my))

	for _, side := range []fold.Side{fold.Front, fold.Back} {
		label := "FRONT"
		if side == fold.Back {
			label = "BACK"
		}
		ebitenutil.DebugPrintAt(screen, label, int(StripPadding), int(g.rowY(side))-15)

		for _, p := range fold.SidePanels(g.deck.Panels, side) {
			dragging := g.input.draggingPanel != nil && g.input.draggingPanel.ID == p.ID
			hovered := hovering && hoverSide == side && hoverIndex == p.Index
			g.drawThumb(screen, p, dragging, hovered)
		}
		for k := 0; k < fold.CountSide(g.deck.Panels, side)-1; k++ {
			g.drawCreaseMarker(screen, side, k, float64(mx), float64(my))
		}
	}

	// The dragged thumbnail rides the cursor above everything else.
	if p := g.input.draggingPanel; p != nil {
		g.drawThumbAt(screen, *p, float64(mx)-ThumbWidth/2, float64(my)-ThumbHeight/2, ColorThumbDrag)
	}
}

func (g *Game) drawThumb(screen *ebiten.Image, p fold.Panel, dragging, hovered bool) {
	x, y, _, _ := g.thumbRect(p.Side, p.Index)
	border := ColorThumbBorder
	if hovered {
		border = ColorThumbHover
	}
	if dragging {
		border = ColorThumbDrag
	}
	g.drawThumbAt(screen, p, x, y, border)

	if g.deck.Cover.Spread == p.Index && g.deck.Cover.Side == p.Side {
		vector.StrokeRect(screen, float32(x-3), float32(y-3), ThumbWidth+6, ThumbHeight+6, 2, ColorCoverMark, false)
	}
}

func (g *Game) drawThumbAt(screen *ebiten.Image, p fold.Panel, x, y float64, border color.RGBA) {
	if img := g.panelImage(p.Image); img != nil {
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(ThumbWidth/float64(iw), ThumbHeight/float64(ih))
		opts.GeoM.Translate(x, y)
		screen.DrawImage(img, opts)
	} else {
		c := PanelPalette[(p.Index*2+sideOrdinal(p.Side))%len(PanelPalette)]
		vector.DrawFilledRect(screen, float32(x), float32(y), ThumbWidth, ThumbHeight, c, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), ThumbWidth, ThumbHeight, 1, border, false)
	ebitenutil.DebugPrintAt(screen, strconv.Itoa(p.Index), int(x)+3, int(y)+2)
}

// drawCreaseMarker renders the fold-direction arrow and sequence badge for
// one crease. The arrow points toward the viewer (down) for forward folds
// and away (up) for backward folds.
func (g *Game) drawCreaseMarker(screen *ebiten.Image, side fold.Side, between int, mx, my float64) {
	crease := fold.CreaseAt(g.deck.Creases, side, between)
	if crease == nil {
		return
	}
	x, y, w, h := g.creaseRect(side, between)
	cx, cy := float32(x+w/2), float32(y+h/2)

	c := ColorCreaseMarker
	if mx >= x && mx < x+w && my >= y && my < y+h {
		c = ColorCreaseHover
	}

	half := float32(6)
	if crease.Direction == fold.Forward {
		drawTriangle(screen, cx, cy+half, cx-half, cy-half, cx+half, cy-half, c)
	} else {
		drawTriangle(screen, cx, cy-half, cx-half, cy+half, cx+half, cy+half, c)
	}

	// Sequence badge, shown on the front row only (the pair shares it).
	if side == fold.Front {
		vector.DrawFilledRect(screen, cx-7, float32(y)-14, 14, 13, ColorSeqBadge, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", crease.Sequence), int(cx)-4, int(y)-16)
	}
}

func drawTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, c color.RGBA) {
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, true)
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, c, true)
	vector.StrokeLine(screen, x2, y2, x0, y0, 2, c, true)
}
