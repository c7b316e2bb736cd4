// SPDX-License-Identifier: Unlicense OR MIT

package size

import (
	"math"

	"gioui.org/sizemod/f32"
)

// Undefined marks a constraint component that leaves its axis
// unconstrained. Use IsUndefined to test for it; Undefined is a NaN
// and never compares equal to itself.
var Undefined = float32(math.NaN())

// IsUndefined reports whether v is Undefined.
func IsUndefined(v float32) bool {
	return v != v
}

// Kind describes the state of a constraint slot.
type Kind uint8

const (
	// Unset constraints take no part in resolution.
	Unset Kind = iota
	// Static constraints hold a fixed value.
	Static
	// Dynamic constraints query their source on every resolution.
	Dynamic
)

// PairSource supplies a size-shaped constraint value. Get reports
// false if the constraint is inactive.
type PairSource interface {
	Get() (f32.Point, bool)
}

// PairFunc adapts a function, including a bound method value such as
// obj.MaxSize, to a PairSource.
type PairFunc func() (f32.Point, bool)

// RatioSource supplies an aspect ratio. Get reports false if the
// constraint is inactive.
type RatioSource interface {
	Get() (float32, bool)
}

// RatioFunc adapts a function to a RatioSource.
type RatioFunc func() (float32, bool)

// Pair is a size-shaped constraint slot, used for the scale, maximum
// and minimum constraints. The zero value is Unset.
type Pair struct {
	kind  Kind
	value f32.Point
	src   PairSource
}

// Ratio is an aspect ratio constraint slot (width / height). The
// zero value is Unset.
type Ratio struct {
	kind  Kind
	value float32
	src   RatioSource
}

func (f PairFunc) Get() (f32.Point, bool) {
	return f()
}

func (f RatioFunc) Get() (float32, bool) {
	return f()
}

// StaticPair returns a constraint fixed at p. Components of p may be
// Undefined.
func StaticPair(p f32.Point) Pair {
	return Pair{kind: Static, value: p}
}

// DynamicPair returns a constraint that queries src on every
// resolution. A nil src or a nil PairFunc gives an Unset
// constraint. Any other src must be callable: a typed nil pointer
// is not detected, and its Get method is invoked on resolution.
func DynamicPair(src PairSource) Pair {
	if f, ok := src.(PairFunc); src == nil || ok && f == nil {
		return Pair{}
	}
	return Pair{kind: Dynamic, src: src}
}

// Kind returns the state of c.
func (c Pair) Kind() Kind {
	return c.kind
}

// Value returns the fixed value of a Static constraint.
func (c Pair) Value() (f32.Point, bool) {
	return c.value, c.kind == Static
}

// Source returns the source of a Dynamic constraint, without
// querying it.
func (c Pair) Source() PairSource {
	return c.src
}

// Resolve returns the current value of c, querying the source of
// Dynamic constraints.
func (c Pair) Resolve() (f32.Point, bool) {
	switch c.kind {
	case Static:
		return c.value, true
	case Dynamic:
		return c.src.Get()
	default:
		return f32.Point{}, false
	}
}

// StaticRatio returns a constraint fixed at r. A zero or NaN ratio
// gives an Unset constraint.
func StaticRatio(r float32) Ratio {
	if !activeRatio(r) {
		return Ratio{}
	}
	return Ratio{kind: Static, value: r}
}

// DynamicRatio returns a constraint that queries src on every
// resolution. A nil src or a nil RatioFunc gives an Unset
// constraint. Any other src must be callable: a typed nil pointer
// is not detected, and its Get method is invoked on resolution.
func DynamicRatio(src RatioSource) Ratio {
	if f, ok := src.(RatioFunc); src == nil || ok && f == nil {
		return Ratio{}
	}
	return Ratio{kind: Dynamic, src: src}
}

// Kind returns the state of c.
func (c Ratio) Kind() Kind {
	return c.kind
}

// Value returns the fixed value of a Static constraint.
func (c Ratio) Value() (float32, bool) {
	return c.value, c.kind == Static
}

// Source returns the source of a Dynamic constraint, without
// querying it.
func (c Ratio) Source() RatioSource {
	return c.src
}

// Resolve returns the current value of c, querying the source of
// Dynamic constraints. A source returning a zero or NaN ratio leaves
// the constraint inactive.
func (c Ratio) Resolve() (float32, bool) {
	switch c.kind {
	case Static:
		return c.value, true
	case Dynamic:
		r, ok := c.src.Get()
		if !ok || !activeRatio(r) {
			return 0, false
		}
		return r, true
	default:
		return 0, false
	}
}

func activeRatio(r float32) bool {
	return r != 0 && !IsUndefined(r)
}

func (k Kind) String() string {
	switch k {
	case Unset:
		return "Unset"
	case Static:
		return "Static"
	case Dynamic:
		return "Dynamic"
	default:
		panic("unreachable")
	}
}
