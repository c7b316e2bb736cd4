package layout_test

import (
	"fmt"
	"image"

	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/layout"
	"gioui.org/sizemod/size"
)

func ExampleSized() {
	gtx := new(layout.Context)
	gtx.Reset(image.Point{X: 640, Y: 480})

	m := size.New(nil, size.Options{
		Max:   size.StaticPair(f32.Pt(320, size.Undefined)),
		Ratio: size.StaticRatio(16.0 / 9),
	})
	layout.Sized{Modifier: m}.Layout(gtx, func() {
		fmt.Println(gtx.Constraints)
		layoutWidget(gtx, 10, 10)
	})
	fmt.Println(gtx.Dimensions.Size)

	// Output:
	// {{320 320} {180 180}}
	// (320,180)
}

func ExampleDirection_Position() {
	fmt.Println(layout.Center.Position(image.Pt(20, 10), image.Pt(100, 50)))

	// Output:
	// (40,20)
}

func layoutWidget(gtx *layout.Context, width, height int) {
	gtx.Dimensions = layout.Dimensions{
		Size: image.Point{
			X: width,
			Y: height,
		},
	}
}
