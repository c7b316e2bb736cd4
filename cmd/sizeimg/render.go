// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/render"
	"gioui.org/sizemod/size"
	"gioui.org/sizemod/unit"
)

// maxDim bounds the pixel size of canvases and scaled images.
const maxDim = 1 << 14

// canvasSize returns the pixel size of the canvas for parent, in dp.
func canvasSize(parent f32.Point, m unit.Metric) (image.Point, error) {
	space := m.Size(parent).Round()
	if space.X <= 0 || space.Y <= 0 || space.X > maxDim || space.Y > maxDim {
		return image.Point{}, fmt.Errorf("unusable canvas size %v for parent %v", space, parent)
	}
	return space, nil
}

// renderVariant runs one layout pass of img in a parent of size
// parent, in dp, and returns the composited canvas.
func renderVariant(img image.Image, parent f32.Point, j *job) (*image.RGBA, error) {
	space, err := canvasSize(parent, j.metric)
	if err != nil {
		return nil, err
	}
	var tree render.Tree
	m := size.New(&tree, j.opts)
	m.ScaleMode = j.mode
	tree.Layout(render.Context{Size: parent})
	out := m.Modify(img)

	target, ok := out.Spec.Target.(image.Image)
	if !ok {
		return nil, errors.New("target is not an image")
	}
	sz := parent
	if out.Spec.Sized {
		sz = out.Spec.Size
	}
	px := j.metric.Size(sz).Round()
	if px.X <= 0 || px.Y <= 0 || px.X > maxDim || px.Y > maxDim {
		return nil, fmt.Errorf("unusable resolved size %v", sz)
	}
	scaled := image.NewRGBA(image.Rectangle{Max: px})
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), target, target.Bounds(), draw.Over, nil)

	off := j.align.Position(px, space)
	bounds := f32.Rectangle{Max: f32.FromImage(px)}.Add(f32.FromImage(off))

	dc := gg.NewContext(space.X, space.Y)
	dc.SetColor(j.bg)
	dc.Clear()
	dc.DrawImage(scaled, off.X, off.Y)
	dc.SetColor(colornames.Red)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(bounds.Min.X)+0.5, float64(bounds.Min.Y)+0.5, float64(bounds.Dx())-1, float64(bounds.Dy())-1)
	dc.Stroke()
	dc.SetColor(colornames.Black)
	dc.DrawStringAnchored(fmt.Sprintf("%dx%d", px.X, px.Y), float64(space.X)-4, float64(space.Y)-4, 1, 0)

	canvas, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, errors.New("unexpected canvas format")
	}
	return canvas, nil
}
