package render_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/draw"

	"seehuhn.de/go/shapes/render"
	"seehuhn.de/go/shapes/testcases"
)

// TestAgainstReference compares every test case with the Ghostscript
// rendering written by "go generate" into testdata/reference.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadRGBA(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skipf("no reference image, run \"go generate\" first")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				r, err := render.New(&tc.Render)
				if err != nil {
					t.Fatal(err)
				}
				actual, err := r.Render(tc.Sample)
				if err != nil {
					t.Fatal(err)
				}

				if err := compareImages(name, ref, actual); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	res := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Bounds(), img, b.Min, draw.Src)
	return res, nil
}

// compareImages fails if more than 10% of the color channel values differ
// by more than 2.  Whenever any value differs, a diff image is written to
// the debug directory.
func compareImages(name string, expected, actual *image.RGBA) error {
	const tolerance = 2
	const maxDiffPercent = 10

	if expected.Bounds() != actual.Bounds() {
		return fmt.Errorf("image size %v, reference has %v",
			actual.Bounds().Size(), expected.Bounds().Size())
	}

	total := 0
	diffCount := 0
	hasDiff := false
	for i := range expected.Pix {
		if i%4 == 3 {
			continue
		}
		total++
		diff := int(expected.Pix[i]) - int(actual.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			hasDiff = true
			if diff > tolerance {
				diffCount++
			}
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if diffCount > maxAllowed || hasDiff {
		writeDiffImage(name, expected, actual)
	}
	if diffCount > maxAllowed {
		return fmt.Errorf("%d channel values differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

// writeDiffImage stores the actual image, the difference and the reference
// side by side.  In the middle panel, green marks pixels which are darker
// than the reference and red marks pixels which are lighter.
func writeDiffImage(name string, expected, actual *image.RGBA) {
	os.MkdirAll("debug", 0755)

	w, h := expected.Bounds().Dx(), expected.Bounds().Dy()
	img := image.NewRGBA(image.Rect(0, 0, 3*w, h))
	draw.Draw(img, image.Rect(0, 0, w, h), actual, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(2*w, 0, 3*w, h), expected, image.Point{}, draw.Src)
	for y := range h {
		for x := range w {
			e, a := expected.RGBAAt(x, y), actual.RGBAAt(x, y)
			d := (int(a.R) + int(a.G) + int(a.B)) - (int(e.R) + int(e.G) + int(e.B))
			c := color.RGBA{A: 255}
			if d < 0 {
				c.G = uint8(min(-d, 255))
			} else {
				c.R = uint8(min(d, 255))
			}
			img.SetRGBA(w+x, y, c)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
