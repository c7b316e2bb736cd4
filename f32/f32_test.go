// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"
	"math"
	"testing"
)

func TestPointString(t *testing.T) {
	tests := []struct {
		p    Point
		want string
	}{
		{Pt(0, 0), "(0,0)"},
		{Pt(100, 50.5), "(100,50.5)"},
		{Pt(-1, 0.25), "(-1,0.25)"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("have %q, want %q", got, tc.want)
		}
	}
}

func TestPointRound(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		p    Point
		want image.Point
	}{
		{Pt(10.4, 10.6), image.Pt(10, 11)},
		{Pt(-0.6, 0.5), image.Pt(-1, 1)},
		{Pt(nan, 3), image.Pt(0, 3)},
		{Pt(inf, -inf), image.Pt(0, 0)},
	}
	for _, tc := range tests {
		if got := tc.p.Round(); got != tc.want {
			t.Errorf("%v.Round() = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle{Max: Pt(30, 20)}.Add(Pt(5, 5))
	if got, want := r.Min, Pt(5, 5); got != want {
		t.Errorf("offset mismatch: have %v, want %v", got, want)
	}
	if r.Dx() != 30 || r.Dy() != 20 {
		t.Errorf("size mismatch: have %vx%v, want 30x20", r.Dx(), r.Dy())
	}
}

func TestFromImage(t *testing.T) {
	if got, want := FromImage(image.Pt(3, -4)), Pt(3, -4); got != want {
		t.Errorf("have %v, want %v", got, want)
	}
	if got := FromImage(image.Pt(7, 9)).Round(); got != image.Pt(7, 9) {
		t.Errorf("round trip mismatch: have %v", got)
	}
}
