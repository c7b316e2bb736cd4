// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/render"
	"gioui.org/sizemod/size"
)

// Sized lays out a widget at the size resolved by a Modifier. The
// maximum constraints are the parent size of each pass.
type Sized struct {
	Modifier *size.Modifier
}

// Layout commits the Modifier and lays out w. If the Modifier
// resolved a size, w is laid out with rigid constraints of that size,
// rounded to whole pixels. Otherwise w inherits the incoming
// constraints.
func (s Sized) Layout(gtx *Context, w Widget) {
	cs := gtx.Constraints
	s.Modifier.Commit(render.Context{Size: f32.FromImage(cs.Max())})
	if sz, ok := s.Modifier.Size(); ok {
		cs = RigidConstraints(clampSize(sz))
	}
	ctxLayout(gtx, cs, w)
}

// clampSize rounds sz to pixels. Negative or NaN axes become zero.
func clampSize(sz f32.Point) image.Point {
	p := sz.Round()
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}
