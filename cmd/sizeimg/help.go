// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The sizeimg command fits an image into one or more parent sizes.

Usage:

	sizeimg [flags] <image>

For every parent size, sizeimg resolves the size of the image from the
scale, minimum, maximum and ratio constraints, scales the image to that
size and places it on a canvas the size of the parent. The result is
written as <name>_<W>x<H>.png in the output directory, with the resolved
bounds outlined and labelled.

Sizes are written WxH. In constraints, an axis given as _ is left
unconstrained, as in -max 300x_.

The -parent flag lists the parent sizes, separated by commas. The
default is 640x480.

The -scale, -min and -max flags set the scale, minimum size and maximum
size constraints. The minimum is applied after the maximum and wins if
they conflict.

The -ratio flag sets the aspect ratio, as a number or a fraction such as
16/9. The ratio is applied last.

Without any constraint the image fills its parent.

The -legacyscale flag replaces scaled axes with the scale factors
instead of multiplying, as layouts built with the first release did.

The -config flag names a TOML file with the keys parents, scale, min,
max, ratio, align, background, legacy_scale and px_per_dp. Flags on the command
line override the file.

The -align flag places the image in its parent: NW, N, NE, E, SE, S,
SW, W or Center.

The -bg flag names the background colour, such as white or
lightsteelblue.

Sizes are in device independent pixels. The -pxperdp flag sets the
number of output pixels per dp, such as 2 for high density screens.

The -o flag specifies the output directory.

The -v flag logs every file written.
`
