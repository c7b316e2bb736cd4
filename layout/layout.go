// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Constraints represent a set of acceptable ranges for
// a widget's width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is a range of acceptable sizes in a single
// dimension.
type Constraint struct {
	Min, Max int
}

// Dimensions are the resolved size and baseline for a widget.
type Dimensions struct {
	Size     image.Point
	Baseline int
}

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

// Widget is a function scope for computing the dimensions of a user
// interface element.
type Widget func()

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Constrain a value to the range [Min; Max].
func (c Constraint) Constrain(v int) int {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// Constrain a size to the Width and Height ranges.
func (c Constraints) Constrain(size image.Point) image.Point {
	return image.Point{X: c.Width.Constrain(size.X), Y: c.Height.Constrain(size.Y)}
}

// Max returns the largest size allowed by c.
func (c Constraints) Max() image.Point {
	return image.Point{X: c.Width.Max, Y: c.Height.Max}
}

// RigidConstraints returns the constraints that can only be
// satisfied by the given dimensions.
func RigidConstraints(size image.Point) Constraints {
	return Constraints{
		Width:  Constraint{Min: size.X, Max: size.X},
		Height: Constraint{Min: size.Y, Max: size.Y},
	}
}

// Position returns the offset of a child of size sz aligned in
// the given space. Children larger than the space get negative
// offsets.
func (d Direction) Position(sz, space image.Point) image.Point {
	var p image.Point
	switch d {
	case N, S, Center:
		p.X = (space.X - sz.X) / 2
	case NE, SE, E:
		p.X = space.X - sz.X
	}
	switch d {
	case W, Center, E:
		p.Y = (space.Y - sz.Y) / 2
	case SW, S, SE:
		p.Y = space.Y - sz.Y
	}
	return p
}

// ParseDirection returns the Direction named s, such as "NW" or
// "Center".
func ParseDirection(s string) (Direction, bool) {
	for d := NW; d <= Center; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
