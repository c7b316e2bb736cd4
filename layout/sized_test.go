// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"testing"

	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/size"
)

func TestSizedRigid(t *testing.T) {
	gtx := new(Context)
	gtx.Reset(image.Pt(300, 200))
	m := size.New(nil, size.Options{Ratio: size.StaticRatio(1)})
	var inner Constraints
	Sized{Modifier: m}.Layout(gtx, func() {
		inner = gtx.Constraints
		gtx.Dimensions.Size = image.Pt(1000, 1)
	})
	if want := RigidConstraints(image.Pt(200, 200)); inner != want {
		t.Errorf("child constraints %v, want %v", inner, want)
	}
	if got, want := gtx.Dimensions.Size, image.Pt(200, 200); got != want {
		t.Errorf("dimensions %v, want %v", got, want)
	}
	if got := gtx.Constraints; got != RigidConstraints(image.Pt(300, 200)) {
		t.Errorf("constraints not restored: %v", got)
	}
}

func TestSizedInherit(t *testing.T) {
	gtx := new(Context)
	gtx.Reset(image.Pt(300, 200))
	gtx.Constraints.Width.Min = 0
	outer := gtx.Constraints
	var inner Constraints
	Sized{Modifier: size.New(nil, size.Options{})}.Layout(gtx, func() {
		inner = gtx.Constraints
	})
	if inner != outer {
		t.Errorf("child constraints %v, want %v", inner, outer)
	}
}

func TestSizedDynamic(t *testing.T) {
	gtx := new(Context)
	gtx.Reset(image.Pt(100, 100))
	zoom := float32(0.5)
	m := size.New(nil, size.Options{
		Scale: size.DynamicPair(size.PairFunc(func() (f32.Point, bool) {
			return f32.Pt(zoom, zoom), true
		})),
		Min: size.StaticPair(f32.Pt(-10, -10)),
	})
	s := Sized{Modifier: m}
	for _, z := range []float32{0.5, 0.25, -1} {
		zoom = z
		s.Layout(gtx, func() {})
		want := clampSize(f32.Pt(100*z, 100*z))
		if got := gtx.Dimensions.Size; got != want {
			t.Errorf("zoom %v: have %v, want %v", z, got, want)
		}
	}
}
