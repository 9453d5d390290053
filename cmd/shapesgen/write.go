package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/dataset"
	"seehuhn.de/go/shapes/render"
)

// latentsFile is the JSON document written next to the images.
type latentsFile struct {
	Factors []shapes.Factor       `json:"factors"`
	Seed    uint64                `json:"seed"`
	Render  render.Config         `json:"render"`
	Images  []string              `json:"images"`
	Latents [][]float64           `json:"latents"`
	Samples []shapes.SampleConfig `json:"samples"`
}

// writeDataset stores the images as PNG files in dir and records the
// latent vectors of the generator in dir/latents.json.
func writeDataset(dir string, g *dataset.Generator, images *dataset.ImageArray, seed uint64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	samples, err := g.SampleConfigs()
	if err != nil {
		return err
	}
	out := latentsFile{
		Factors: g.Schema().Factors(),
		Seed:    seed,
		Render:  g.RenderConfig(),
		Images:  make([]string, images.N),
		Latents: rows(g.Latents(), images.N),
		Samples: samples,
	}

	for i := range images.N {
		name := fmt.Sprintf("%06d.png", i)
		if err := writePNG(filepath.Join(dir, name), images, i); err != nil {
			return err
		}
		out.Images[i] = name
	}

	f, err := os.Create(filepath.Join(dir, "latents.json"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(path string, images *dataset.ImageArray, i int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, images.Image(i)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// rows converts the latent matrix into n rows. A matrix without columns
// gives n empty rows.
func rows(m *mat.Dense, n int) [][]float64 {
	res := make([][]float64, n)
	for i := range res {
		res[i] = []float64{}
		if m != nil && !m.IsEmpty() {
			res[i] = mat.Row(nil, i, m)
		}
	}
	return res
}
