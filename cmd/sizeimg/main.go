// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sizeimg: ")
	if err := mainErr(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "sizeimg: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(args []string) error {
	j, input, err := parseArgs(args)
	if err != nil {
		return err
	}
	img, err := loadImage(input)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(j.outDir, 0755); err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	_, err = renderAll(img, name, j)
	return err
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// renderAll renders img into every parent size of j and returns the
// paths written, in the order of the parents.
func renderAll(img image.Image, name string, j *job) ([]string, error) {
	paths := make([]string, len(j.parents))
	var renders errgroup.Group
	for i, p := range j.parents {
		i, p := i, p
		renders.Go(func() error {
			canvas, err := renderVariant(img, p, j)
			if err != nil {
				return fmt.Errorf("parent %v: %w", p, err)
			}
			b := canvas.Bounds()
			path := filepath.Join(j.outDir, fmt.Sprintf("%s_%dx%d.png", name, b.Dx(), b.Dy()))
			if err := gg.SavePNG(path, canvas); err != nil {
				return err
			}
			if j.verbose {
				log.Printf("wrote %s", path)
			}
			paths[i] = path
			return nil
		})
	}
	if err := renders.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
