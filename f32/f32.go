// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle.

Sizes are represented as Points where X is the width and Y
is the height. The coordinate space has the origin in the top
left corner with the axes extending right and down.
*/
package f32

import (
	"image"
	"math"
	"strconv"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// String return a string representation of p.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(float64(p.X), 'f', -1, 32) +
		"," + strconv.FormatFloat(float64(p.Y), 'f', -1, 32) + ")"
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Round returns the integer point closest to p. Coordinates
// that are NaN or out of range for an int round to zero.
func (p Point) Round() image.Point {
	return image.Point{X: round(p.X), Y: round(p.Y)}
}

func round(v float32) int {
	r := math.Round(float64(v))
	if math.IsNaN(r) || r > math.MaxInt32 || r < math.MinInt32 {
		return 0
	}
	return int(r)
}

// FromImage converts an integer point to a Point.
func FromImage(p image.Point) Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}
