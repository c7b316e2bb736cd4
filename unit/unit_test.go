// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/unit"
)

func TestMetricSize(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}

	if got, exp := m.Size(f32.Pt(30, 4)), f32.Pt(60, 8); got != exp {
		t.Errorf("Size conversion mismatch %v != %v", exp, got)
	}
}

func TestMetricZero(t *testing.T) {
	var m unit.Metric
	if got, exp := m.Size(f32.Pt(7, 9)), f32.Pt(7, 9); got != exp {
		t.Errorf("zero metric mismatch %v != %v", exp, got)
	}
}
