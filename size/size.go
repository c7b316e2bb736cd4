// SPDX-License-Identifier: Unlicense OR MIT

/*
Package size resolves the size of an element from the size of its
parent and a set of optional constraints.

A Modifier holds four constraint slots: a scale, a maximum size, a
minimum size and an aspect ratio. Each slot is Unset, Static or
Dynamic; Dynamic slots query their source on every resolution, so
a Modifier always reflects the latest values.

Resolution starts from the parent size and applies, in order, the
scale, the maximum, the minimum and the ratio. The minimum is applied
after the maximum and wins when the two conflict. The ratio is
applied last and may override the bounds.

If no slot is active the Modifier resolves to no size at all, and the
element inherits the size of its parent.

Invalid constraint values are not reported. Negative sizes, zero
ratios and NaN components propagate through the arithmetic as NaN or
infinite results.
*/
package size

import (
	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/render"
)

// ScaleMode selects how a scale constraint applies to each axis.
type ScaleMode uint8

const (
	// ScaleMultiply multiplies each axis by its scale component.
	// Undefined components leave their axis unscaled.
	ScaleMultiply ScaleMode = iota
	// ScaleLegacy replaces each non-zero axis with its scale
	// component instead of multiplying, and sets the axis to 1 if
	// the component is Undefined or the axis is zero. It matches
	// layouts built against the first release of the algorithm.
	ScaleLegacy
)

// Options configure the constraints of a new Modifier.
type Options struct {
	Scale Pair
	Min   Pair
	Max   Pair
	Ratio Ratio
}

// Modifier resolves a constrained size once per layout pass. It is a
// render.Node: the host commits it with the parent size and it
// returns the resolved size along with the target it modifies.
//
// The zero value has no constraints and no registration token. A
// Modifier must not be used concurrently.
type Modifier struct {
	// ScaleMode selects how the scale constraint applies.
	ScaleMode ScaleMode

	scale  Pair
	max    Pair
	min    Pair
	ratio  Ratio
	parent f32.Point
	out    render.Output
}

// New returns a Modifier configured with opts and registered with
// reg. A nil reg leaves the Modifier unregistered.
func New(reg render.Registry, opts Options) *Modifier {
	m := &Modifier{
		scale: opts.Scale,
		min:   opts.Min,
		max:   opts.Max,
		ratio: opts.Ratio,
	}
	if reg != nil {
		m.out.Token = reg.Register(m)
	}
	return m
}

// Token returns the registration token of m.
func (m *Modifier) Token() render.Token {
	return m.out.Token
}

// SetScale replaces the scale constraint. The zero Pair clears it.
func (m *Modifier) SetScale(c Pair) *Modifier {
	m.scale = c
	return m
}

// SetMax replaces the maximum size constraint. The zero Pair
// clears it.
func (m *Modifier) SetMax(c Pair) *Modifier {
	m.max = c
	return m
}

// SetMin replaces the minimum size constraint. The zero Pair
// clears it.
func (m *Modifier) SetMin(c Pair) *Modifier {
	m.min = c
	return m
}

// SetRatio replaces the aspect ratio constraint. The zero Ratio
// clears it.
func (m *Modifier) SetRatio(c Ratio) *Modifier {
	m.ratio = c
	return m
}

// Scale returns the scale constraint.
func (m *Modifier) Scale() Pair {
	return m.scale
}

// Max returns the maximum size constraint.
func (m *Modifier) Max() Pair {
	return m.max
}

// Min returns the minimum size constraint.
func (m *Modifier) Min() Pair {
	return m.min
}

// Ratio returns the aspect ratio constraint.
func (m *Modifier) Ratio() Ratio {
	return m.ratio
}

// Size returns the size resolved by the most recent Commit. It
// reports false if m was never committed or if no constraint was
// active.
func (m *Modifier) Size() (f32.Point, bool) {
	return m.out.Spec.Size, m.out.Spec.Sized
}

// Resolve computes the constrained size for a parent of the given
// size. It reports false if no constraint is active, in which case
// the element inherits the parent size.
//
// Resolve does not modify m.
func (m *Modifier) Resolve(parent f32.Point) (f32.Point, bool) {
	scale, hasScale := m.scale.Resolve()
	maxSize, hasMax := m.max.Resolve()
	minSize, hasMin := m.min.Resolve()
	ratio, hasRatio := m.ratio.Resolve()
	if !hasScale && !hasMax && !hasMin && !hasRatio {
		return f32.Point{}, false
	}
	sz := parent
	if hasScale {
		switch m.ScaleMode {
		case ScaleLegacy:
			sz.X = legacyScale(sz.X, scale.X)
			sz.Y = legacyScale(sz.Y, scale.Y)
		default:
			sz.X = multiply(sz.X, scale.X)
			sz.Y = multiply(sz.Y, scale.Y)
		}
	}
	if hasMax {
		if !IsUndefined(maxSize.X) {
			sz.X = minf(sz.X, maxSize.X)
		}
		if !IsUndefined(maxSize.Y) {
			sz.Y = minf(sz.Y, maxSize.Y)
		}
	}
	if hasMin {
		if !IsUndefined(minSize.X) {
			sz.X = maxf(sz.X, minSize.X)
		}
		if !IsUndefined(minSize.Y) {
			sz.Y = maxf(sz.Y, minSize.Y)
		}
	}
	if hasRatio {
		if ratio < sz.X/sz.Y {
			sz.X = sz.Y * ratio
		} else {
			sz.Y = sz.X / ratio
		}
	}
	return sz, true
}

// Commit implements render.Node. It records the parent size of the
// pass and resolves the size returned by Size and Modify.
func (m *Modifier) Commit(ctx render.Context) {
	m.parent = ctx.Size
	m.out.Spec.Size, m.out.Spec.Sized = m.Resolve(m.parent)
}

// Modify sets target as the pass-through payload and returns the
// output of m. The output is valid until the next Commit.
func (m *Modifier) Modify(target interface{}) render.Output {
	m.out.Spec.Target = target
	return m.out
}

func multiply(v, s float32) float32 {
	if IsUndefined(s) {
		return v
	}
	return v * s
}

func legacyScale(v, s float32) float32 {
	var defined float32
	if !IsUndefined(s) {
		defined = 1
	}
	if p := v * defined; p != 0 && !IsUndefined(p) {
		return s
	}
	return 1
}

// minf is like math.Min, but for float32. A NaN argument gives NaN.
func minf(a, b float32) float32 {
	if IsUndefined(a) || IsUndefined(b) {
		return Undefined
	}
	if b < a {
		return b
	}
	return a
}

// maxf is like math.Max, but for float32. A NaN argument gives NaN.
func maxf(a, b float32) float32 {
	if IsUndefined(a) || IsUndefined(b) {
		return Undefined
	}
	if b > a {
		return b
	}
	return a
}

func (s ScaleMode) String() string {
	switch s {
	case ScaleMultiply:
		return "ScaleMultiply"
	case ScaleLegacy:
		return "ScaleLegacy"
	default:
		panic("unreachable")
	}
}
