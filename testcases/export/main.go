// Command export writes the test cases, together with their computed
// geometry, to JSON for use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/shapes/render"
	"seehuhn.de/go/shapes/testcases"
)

func main() {
	outName := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outName), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	CanvasSize int         `json:"canvas_size"`
	AntiAlias  int         `json:"anti_alias"`
	Background string      `json:"background"`
	Shape      string      `json:"shape"`
	Sides      int         `json:"sides"`
	Center     []float64   `json:"center"`
	Width      float64     `json:"width"`
	Radius     float64     `json:"radius"`
	Color      string      `json:"color"`
	Vertices   [][]float64 `json:"vertices"`
}

// toJSON describes a test case in the coordinates of the enlarged canvas.
func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	r, err := render.New(&tc.Render)
	if err != nil {
		return jsonTestCase{}, err
	}
	cfg := r.Config()
	g := r.Geometry()
	s := tc.Sample
	c := g.Center(s.X, s.Y)

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		CanvasSize: cfg.CanvasSize,
		AntiAlias:  cfg.AntiAlias,
		Background: hex(r.Background()),
		Shape:      s.Shape.String(),
		Sides:      s.Shape.Sides(),
		Center:     []float64{c.X, c.Y},
		Width:      g.Width(s.Size),
		Radius:     g.Radius(s.Size),
		Color:      hex(g.Color(s.Color)),
	}
	for _, v := range g.Polygon(s) {
		jtc.Vertices = append(jtc.Vertices, []float64{v.X, v.Y})
	}
	return jtc, nil
}

func hex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
