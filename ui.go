package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cardfold/fold"
	"cardfold/kinematics"
)

// Button is a labeled clickable rectangle in screen space.
type Button struct {
	Label  string
	Action func(g *Game)
}

type UISystem struct {
	game    *Game
	buttons []Button

	draggingSlider bool
}

func NewUISystem(g *Game) *UISystem {
	return &UISystem{
		game: g,
		buttons: []Button{
			{Label: "Fold", Action: func(g *Game) { g.seq.FoldAll() }},
			{Label: "Unfold", Action: func(g *Game) { g.seq.UnfoldAll() }},
			{Label: "Add", Action: func(g *Game) {
				g.deck = fold.AddSpread(g.deck, "", "")
				g.seq.Rebind(g.deck.Creases)
			}},
			{Label: "Remove", Action: func(g *Game) {
				deck, err := fold.RemoveSpread(g.deck)
				if err != nil {
					g.setStatus(err.Error())
					return
				}
				g.deck = deck
				g.seq.Rebind(g.deck.Creases)
			}},
			{Label: "Cover", Action: func(g *Game) {
				g.deck.Cover = nextCover(g.deck.Cover, fold.SpreadCount(g.deck.Panels))
			}},
			{Label: "Save", Action: func(g *Game) {
				if err := SaveDeck(g.deck, g.cfg.StatePath); err != nil {
					g.logger.Error("Save failed", "err", err)
					g.setStatus("save failed: " + err.Error())
					return
				}
				g.setStatus("saved " + g.cfg.StatePath)
			}},
		},
	}
}

// buttonRect lays the buttons out as a column along the right edge.
func (ui *UISystem) buttonRect(i int) (x, y, w, h float64) {
	x = float64(ui.game.screenWidth) - ButtonWidth - ButtonMargin
	y = ButtonMargin + float64(i)*(ButtonHeight+ButtonMargin)
	return x, y, ButtonWidth, ButtonHeight
}

// sliderRect is the scalar scrub track, top center.
func (ui *UISystem) sliderRect() (x, y, w, h float64) {
	x = (float64(ui.game.screenWidth) - SliderWidth) / 2
	return x, ButtonMargin + 4, SliderWidth, SliderHeight
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	fx, fy := float64(mx), float64(my)
	for i := range ui.buttons {
		x, y, w, h := ui.buttonRect(i)
		if fx >= x && fx < x+w && fy >= y && fy < y+h {
			return true
		}
	}
	x, y, w, h := ui.sliderRect()
	return fx >= x-4 && fx < x+w+4 && fy >= y-6 && fy < y+h+6
}

func (ui *UISystem) Update() {
	g := ui.game
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i, b := range ui.buttons {
			x, y, w, h := ui.buttonRect(i)
			if fx >= x && fx < x+w && fy >= y && fy < y+h {
				b.Action(g)
				return
			}
		}
		x, y, w, h := ui.sliderRect()
		if fx >= x-4 && fx < x+w+4 && fy >= y-6 && fy < y+h+6 {
			ui.draggingSlider = true
		}
	}

	if ui.draggingSlider {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			x, _, w, _ := ui.sliderRect()
			v := (fx - x) / w
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			g.seq.SetScalar(v)
		} else {
			ui.draggingSlider = false
		}
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	g := ui.game
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	for i, b := range ui.buttons {
		x, y, w, h := ui.buttonRect(i)
		c := ColorButton
		if fx >= x && fx < x+w && fy >= y && fy < y+h {
			c = ColorButtonHover
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
		ebitenutil.DebugPrintAt(screen, b.Label, int(x)+6, int(y)+5)
	}

	// Scrub slider reflects overall fold progress.
	x, y, w, h := ui.sliderRect()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), ColorSliderTrack, false)
	progress := kinematics.OverallProgress(g.seq.Amounts())
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*progress), float32(h), ColorSliderFill, false)
}
