package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawBackgroundGrid renders a faint reference grid under the fold view,
// centered on the world origin where the card is anchored.
func (g *Game) drawBackgroundGrid(screen *ebiten.Image, cw, ch float64) {
	viewBottom := float64(g.screenHeight) - StripHeight

	left, top := g.camera.ScreenToWorld(0, 0, cw, ch)
	right, bottom := g.camera.ScreenToWorld(float64(g.screenWidth), viewBottom, cw, ch)

	const step = 50.0
	startWx := math.Floor(left/step) * step
	startWy := math.Floor(top/step) * step

	for wx := startWx; wx < right; wx += step {
		sx, _ := g.camera.WorldToScreen(wx, 0, cw, ch)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(viewBottom), 1, ColorGrid, false)
	}
	for wy := startWy; wy < bottom; wy += step {
		_, sy := g.camera.WorldToScreen(0, wy, cw, ch)
		vector.StrokeLine(screen, 0, float32(sy), float32(g.screenWidth), float32(sy), 1, ColorGrid, false)
	}

	// Origin marker: the card centers itself here.
	originX, originY := g.camera.WorldToScreen(0, 0, cw, ch)
	vector.StrokeLine(screen, float32(originX-12), float32(originY), float32(originX+12), float32(originY), 2, ColorOriginCross, false)
	vector.StrokeLine(screen, float32(originX), float32(originY-12), float32(originX), float32(originY+12), 2, ColorOriginCross, false)
}
