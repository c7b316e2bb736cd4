// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"gioui.org/sizemod/f32"
	"gioui.org/sizemod/layout"
	"gioui.org/sizemod/size"
	"gioui.org/sizemod/unit"
)

// config mirrors the command line flags. It is also the layout of
// the -config file.
type config struct {
	Parents     []string `toml:"parents"`
	Scale       string   `toml:"scale"`
	Min         string   `toml:"min"`
	Max         string   `toml:"max"`
	Ratio       string   `toml:"ratio"`
	Align       string   `toml:"align"`
	Background  string   `toml:"background"`
	LegacyScale bool     `toml:"legacy_scale"`
	PxPerDp     float32  `toml:"px_per_dp"`
}

// job is a validated config.
type job struct {
	parents []f32.Point
	opts    size.Options
	mode    size.ScaleMode
	align   layout.Direction
	bg      color.Color
	metric  unit.Metric
	outDir  string
	verbose bool
}

func defaultConfig() config {
	return config{
		Parents:    []string{"640x480"},
		Align:      "Center",
		Background: "white",
	}
}

// parseArgs parses the command line and any -config file. It returns
// the job and the path of the input image.
func parseArgs(args []string) (*job, string, error) {
	fs := flag.NewFlagSet("sizeimg", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), mainUsage)
	}
	var (
		parents     = fs.String("parent", "", "comma separated parent sizes, such as 640x480,320x240.")
		scale       = fs.String("scale", "", "scale constraint WxH.")
		minSize     = fs.String("min", "", "minimum size constraint WxH.")
		maxSize     = fs.String("max", "", "maximum size constraint WxH.")
		ratio       = fs.String("ratio", "", "aspect ratio constraint, such as 1.5 or 4/3.")
		align       = fs.String("align", "", "alignment of the image in its parent.")
		bg          = fs.String("bg", "", "background colour name.")
		legacyScale = fs.Bool("legacyscale", false, "replace scaled axes with the scale factors.")
		pxPerDp     = fs.Float64("pxperdp", 1, "pixels per dp of the output.")
		configPath  = fs.String("config", "", "TOML file with default settings.")
		outDir      = fs.String("o", ".", "output directory.")
		verbose     = fs.Bool("v", false, "log every file written.")
	)
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		return nil, "", errors.New("specify exactly one image")
	}
	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return nil, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parent":
			cfg.Parents = strings.Split(*parents, ",")
		case "scale":
			cfg.Scale = *scale
		case "min":
			cfg.Min = *minSize
		case "max":
			cfg.Max = *maxSize
		case "ratio":
			cfg.Ratio = *ratio
		case "align":
			cfg.Align = *align
		case "bg":
			cfg.Background = *bg
		case "legacyscale":
			cfg.LegacyScale = *legacyScale
		case "pxperdp":
			cfg.PxPerDp = float32(*pxPerDp)
		}
	})
	j, err := cfg.job()
	if err != nil {
		return nil, "", err
	}
	j.outDir = *outDir
	j.verbose = *verbose
	return j, fs.Arg(0), nil
}

func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *config) job() (*job, error) {
	j := new(job)
	if len(c.Parents) == 0 {
		return nil, errors.New("no parent sizes")
	}
	for _, s := range c.Parents {
		p, err := parseParent(s)
		if err != nil {
			return nil, err
		}
		j.parents = append(j.parents, p)
	}
	var err error
	if j.opts.Scale, err = parsePair("scale", c.Scale); err != nil {
		return nil, err
	}
	if j.opts.Min, err = parsePair("min", c.Min); err != nil {
		return nil, err
	}
	if j.opts.Max, err = parsePair("max", c.Max); err != nil {
		return nil, err
	}
	if j.opts.Ratio, err = parseRatio(c.Ratio); err != nil {
		return nil, err
	}
	if c.LegacyScale {
		j.mode = size.ScaleLegacy
	}
	align, ok := layout.ParseDirection(c.Align)
	if !ok {
		return nil, fmt.Errorf("invalid alignment %q", c.Align)
	}
	j.align = align
	bg, ok := colornames.Map[strings.ToLower(c.Background)]
	if !ok {
		return nil, fmt.Errorf("unknown colour %q", c.Background)
	}
	j.bg = bg
	if c.PxPerDp < 0 || size.IsUndefined(c.PxPerDp) {
		return nil, fmt.Errorf("invalid pixel density %v", c.PxPerDp)
	}
	j.metric = unit.Metric{PxPerDp: c.PxPerDp}
	// Outputs are named after their canvas size.
	seen := make(map[image.Point]string)
	for i, p := range j.parents {
		space, err := canvasSize(p, j.metric)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[space]; dup {
			return nil, fmt.Errorf("parents %q and %q both render to %dx%d pixels", prev, c.Parents[i], space.X, space.Y)
		}
		seen[space] = c.Parents[i]
	}
	return j, nil
}

// parseSize parses a WxH size. If undef is set, an axis may be _.
func parseSize(s string, undef bool) (f32.Point, error) {
	ws, hs, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return f32.Point{}, fmt.Errorf("invalid size %q, want WxH", s)
	}
	var p f32.Point
	for i, v := range []string{ws, hs} {
		var f float32
		if v == "_" && undef {
			f = size.Undefined
		} else {
			x, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return f32.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
			}
			f = float32(x)
		}
		if i == 0 {
			p.X = f
		} else {
			p.Y = f
		}
	}
	return p, nil
}

func parseParent(s string) (f32.Point, error) {
	p, err := parseSize(s, false)
	if err != nil {
		return f32.Point{}, err
	}
	if px := p.Round(); px.X <= 0 || px.Y <= 0 {
		return f32.Point{}, fmt.Errorf("invalid parent size %q", s)
	}
	return p, nil
}

// parsePair parses the constraint named name. The empty string gives
// an unset constraint.
func parsePair(name, s string) (size.Pair, error) {
	if s == "" {
		return size.Pair{}, nil
	}
	p, err := parseSize(s, true)
	if err != nil {
		return size.Pair{}, fmt.Errorf("-%s: %w", name, err)
	}
	if p.X < 0 || p.Y < 0 {
		return size.Pair{}, fmt.Errorf("-%s: negative size %q", name, s)
	}
	return size.StaticPair(p), nil
}

// parseRatio parses a ratio written as a number or a fraction.
func parseRatio(s string) (size.Ratio, error) {
	if s == "" {
		return size.Ratio{}, nil
	}
	num, den, frac := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return size.Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	if frac {
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 32)
		if err != nil {
			return size.Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		if d == 0 {
			return size.Ratio{}, fmt.Errorf("invalid ratio %q: zero denominator", s)
		}
		n /= d
	}
	if n <= 0 {
		return size.Ratio{}, fmt.Errorf("invalid ratio %q: not positive", s)
	}
	return size.StaticRatio(float32(n)), nil
}
