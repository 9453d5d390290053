// seehuhn.de/go/shapes - synthetic image datasets of simple shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf generates reference images for the shape renderer.
// It draws every test case as vector graphics into a PDF file and renders
// the PDF to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapes/render"
	"seehuhn.de/go/shapes/testcases"
)

func main() {
	refDir := flag.String("d", "testdata/reference", "output directory")
	noPNG := flag.Bool("no-png", false, "only write PDF files")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	r, err := render.New(&tc.Render)
	if err != nil {
		return err
	}
	cfg := r.Config()
	g := r.Geometry()

	// one point per output pixel
	size := float64(cfg.CanvasSize)
	paper := &pdf.Rectangle{URx: size, URy: size}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(deviceRGB(r.Background()))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// PDF origin is bottom-left and the geometry uses the enlarged canvas
	// with y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size})
	page.Transform(matrix.Scale(1/float64(cfg.AntiAlias), 1/float64(cfg.AntiAlias)))

	page.SetFillColor(deviceRGB(g.Color(tc.Sample.Color)))
	for i, v := range g.Polygon(tc.Sample) {
		if i == 0 {
			page.MoveTo(v.X, v.Y)
		} else {
			page.LineTo(v.X, v.Y)
		}
	}
	page.ClosePath()
	page.Fill()

	return page.Close()
}

func deviceRGB(c interface{ RGBA() (r, g, b, a uint32) }) color.Color {
	r, g, b, _ := c.RGBA()
	return color.DeviceRGB{float64(r) / 0xFFFF, float64(g) / 0xFFFF, float64(b) / 0xFFFF}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
