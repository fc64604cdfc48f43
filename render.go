package main

import (
	"math"
	"sort"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cardfold/fold"
	"cardfold/kinematics"
)

// foldedPanel is one spread projected into the fold view: a horizontal span
// from x to x+dx (dx carries the facing sign) lifted by z.
type foldedPanel struct {
	spread int
	x, dx  float64
	z      float64
	facing float64 // cos of the effective rotation; >= 0 shows the front face
}

// projectChain turns the kinematic chain into drawable spans. The card is
// laid out hinge to hinge: each spread starts where the previous one ended,
// and its horizontal extent is the panel width scaled by the cosine of its
// cumulative rotation (plus the whole-card cover rotation). The result is
// centered on the origin.
func (g *Game) projectChain() []foldedPanel {
	n := fold.SpreadCount(g.deck.Panels)
	if n == 0 {
		return nil
	}

	amounts := kinematics.Amounts(g.seq.Amounts())
	transforms := kinematics.ComputeChain(n, g.deck.Creases, amounts, kinematics.Options{
		MinAngle: g.cfg.MinAngleDeg,
		ZSpacing: g.cfg.ZSpacing,
	})
	coverRot := kinematics.CoverRotation(g.deck.Cover, kinematics.OverallProgress(amounts))

	out := make([]foldedPanel, n)
	x := 0.0
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, tr := range transforms {
		facing := math.Cos((tr.Rotation + coverRot) * math.Pi / 180)
		dx := PanelWorldWidth * facing
		out[i] = foldedPanel{spread: i, x: x, dx: dx, z: tr.ZOffset, facing: facing}
		lo, hi := x, x+dx
		if hi < lo {
			lo, hi = hi, lo
		}
		minX, maxX = math.Min(minX, lo), math.Max(maxX, hi)
		x += dx
	}

	shift := -(minX + maxX) / 2
	for i := range out {
		out[i].x += shift
	}
	return out
}

// drawFoldView renders the folded card. Panels draw back to front by z so
// the stacking the kinematics engine computed reads correctly on screen.
func (g *Game) drawFoldView(screen *ebiten.Image, cw, ch float64) {
	spans := g.projectChain()
	order := make([]int, len(spans))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return spans[order[a]].z < spans[order[b]].z })

	for _, i := range order {
		g.drawFoldedPanel(screen, spans[i], cw, ch)
	}
}

func (g *Game) drawFoldedPanel(screen *ebiten.Image, fp foldedPanel, cw, ch float64) {
	lift := fp.z * ZLiftScale
	left, right := fp.x, fp.x+fp.dx
	if right < left {
		left, right = right, left
	}

	sx, sy := g.camera.WorldToScreen(left, -PanelWorldHeight/2-lift, cw, ch)
	w := (right - left) * g.camera.Zoom
	h := PanelWorldHeight * g.camera.Zoom

	// Edge-on panels collapse to a line.
	if right-left < EdgeOnExtent {
		mx, _ := g.camera.WorldToScreen((left+right)/2, 0, cw, ch)
		vector.StrokeLine(screen, float32(mx), float32(sy), float32(mx), float32(sy+h), 2, ColorPanelEdge, true)
		return
	}

	side := fold.Front
	if fp.facing < 0 {
		side = fold.Back
	}
	panel := fold.PanelAt(g.deck.Panels, side, fp.spread)

	// Fake lighting: panels turned away from flat draw darker.
	shade := 0.45 + 0.55*math.Abs(fp.facing)

	if panel != nil {
		if img := g.panelImage(panel.Image); img != nil {
			g.drawPanelImage(screen, img, sx, sy, w, h, fp.facing < 0, shade)
		} else {
			c := PanelPalette[(fp.spread*2+sideOrdinal(side))%len(PanelPalette)]
			c.R = uint8(float64(c.R) * shade)
			c.G = uint8(float64(c.G) * shade)
			c.B = uint8(float64(c.B) * shade)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(w), float32(h), c, false)
		}
	}
	vector.StrokeRect(screen, float32(sx), float32(sy), float32(w), float32(h), 1, ColorPanelEdge, false)

	// Mark the designated cover panel.
	if panel != nil && g.deck.Cover.Spread == fp.spread && g.deck.Cover.Side == side {
		vector.StrokeRect(screen, float32(sx+2), float32(sy+2), float32(w-4), float32(h-4), 2, ColorCoverMark, false)
	}

	if panel != nil && g.face != nil {
		label := string(side)[:1] + strconv.Itoa(fp.spread)
		DrawTextLines(screen, g.face, label, int(sx)+4, int(sy)+4, ColorPanelEdge)
	}
}

// drawPanelImage squashes the panel texture to the folded extent; the back
// face mirrors horizontally, matching a physical page turn.
func (g *Game) drawPanelImage(screen *ebiten.Image, img *ebiten.Image, sx, sy, w, h float64, mirrored bool, shade float64) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	scaleX := w / float64(iw)
	if mirrored {
		opts.GeoM.Scale(-scaleX, h/float64(ih))
		opts.GeoM.Translate(sx+w, sy)
	} else {
		opts.GeoM.Scale(scaleX, h/float64(ih))
		opts.GeoM.Translate(sx, sy)
	}
	opts.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
	screen.DrawImage(img, opts)
}

func sideOrdinal(s fold.Side) int {
	if s == fold.Back {
		return 1
	}
	return 0
}
