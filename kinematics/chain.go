// Package kinematics converts per-crease fold amounts into the cumulative
// 3D placement of every spread in the card. It reads a fold snapshot and
// owns no state of its own.
package kinematics

import (
	"math"

	"cardfold/fold"
)

// Amounts maps a crease position (between) to its fold amount, 0 = flat,
// 1 = fully folded. Values outside [0,1] are clamped.
type Amounts map[int]float64

// Options selects the unfolded look and the stacking epsilon.
type Options struct {
	// MinAngle is the hinge angle in degrees at fold amount 0. Zero gives a
	// flat unfolded card; a small value (e.g. 30) keeps the card slightly
	// open for a volumetric look, interpolating up to 180 as the amount
	// rises.
	MinAngle float64

	// ZSpacing is the per-hinge depth step that keeps stacked surfaces from
	// colliding. It is a visual epsilon, not a thickness model.
	ZSpacing float64
}

// Transform is the cumulative placement of one spread in the hinge chain.
// Rotation is in degrees about the vertical hinge axis; ZOffset is depth
// toward the viewer when positive; Flipped reports whether the spread's
// back face currently points at the viewer.
type Transform struct {
	Rotation float64
	ZOffset  float64
	Flipped  bool
}

const fullFold = 180.0

// ComputeChain walks the spreads left to right as a kinematic chain.
// Spread 0 is the anchor with zero rotation and offset; the hinge for
// spread i is the front crease at between = i-1 (the front side is the
// direction source of truth). Each spread's frame composes with its
// parent's, so a fold at position k propagates to every later spread.
// A missing crease is no hinge: zero contribution, not an error.
func ComputeChain(spreadCount int, creases []fold.Crease, amounts Amounts, opts Options) []Transform {
	if spreadCount <= 0 {
		return nil
	}

	front := map[int]fold.Crease{}
	for _, c := range fold.FrontCreases(creases) {
		front[c.Between] = c
	}

	out := make([]Transform, spreadCount)
	rot, z := 0.0, 0.0
	for i := 1; i < spreadCount; i++ {
		if c, ok := front[i-1]; ok {
			amt := clamp01(amounts[i-1])
			angle := opts.MinAngle + (fullFold-opts.MinAngle)*amt
			rot += directionSign(c.Direction) * angle
			z += directionDepth(c.Direction) * amt * opts.ZSpacing
		}
		out[i] = Transform{Rotation: rot, ZOffset: z}
	}
	for i := range out {
		out[i].Flipped = math.Cos(deg2rad(out[i].Rotation)) < 0
	}
	return out
}

// OverallProgress is the mean fold amount across positions, used for
// whole-card centering and width display only, never for hinge angles.
func OverallProgress(amounts Amounts) float64 {
	if len(amounts) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range amounts {
		sum += clamp01(v)
	}
	return sum / float64(len(amounts))
}

// CoverRotation is the whole-card rotation in degrees that turns the
// designated cover toward the viewer. The side flip contributes 180 for a
// back cover; spreads stacked before the cover index contribute another
// 180 each once fold progress passes the halfway threshold. The spread
// term is a discrete correction: which face points out is itself a
// discontinuous identity at 50% fold, so it is not interpolated.
func CoverRotation(cover fold.Cover, progress float64) float64 {
	rot := 0.0
	if cover.Side == fold.Back {
		rot += fullFold
	}
	if progress > 0.5 {
		rot += fullFold * float64(cover.Spread)
	}
	return rot
}

func directionSign(d fold.Direction) float64 {
	if d == fold.Forward {
		return -1
	}
	return 1
}

// directionDepth maps forward folds toward the viewer (+) and backward
// folds away (-).
func directionDepth(d fold.Direction) float64 {
	if d == fold.Forward {
		return 1
	}
	return -1
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

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
