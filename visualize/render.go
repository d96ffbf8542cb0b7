// Package visualize renders a Solution's routes as a 2-D plot, using
// gonum.org/v1/plot the way the gonum toolkit's own command-line tools
// do (see dsp/window/cmd/leakage in the gonum source tree): build a
// *plot.Plot, add one plotter.Line per route plus a depot scatter, and
// save to an image file. This is an optional, driver-facing extra: no
// part of the search engine depends on it.
package visualize

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arnoldf/kgls-vrp/datastructure"
)

// palette cycles route colors; repeats past len(palette) routes.
var palette = []color.RGBA{
	{R: 0xd6, G: 0x28, B: 0x28, A: 0xff},
	{R: 0x28, G: 0x6a, B: 0xd6, A: 0xff},
	{R: 0x28, G: 0xa0, B: 0x45, A: 0xff},
	{R: 0xd6, G: 0x8a, B: 0x28, A: 0xff},
	{R: 0x8a, G: 0x28, B: 0xd6, A: 0xff},
}

// RenderSolution draws every route in solution as a closed polyline
// (depot → customers → depot) in its own color, with depots marked by a
// black scatter point, and saves the result to path at widthCm × heightCm
// centimeters. The file format is inferred from path's extension (.svg,
// .png, .pdf, ...), per plot.Plot.Save.
func RenderSolution(solution *datastructure.Solution, widthCm, heightCm float64, path string) error {
	p := plot.New()
	p.Title.Text = "CVRP solution"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	var depots plotter.XYs

	for i, route := range solution.Routes {
		if route.Size == 0 {
			continue
		}

		points := make(plotter.XYs, 0, route.Size+2)
		cur := route.Depot
		for {
			points = append(points, plotter.XY{X: cur.X, Y: cur.Y})
			cur = cur.Next
			if cur == route.Depot {
				break
			}
		}
		points = append(points, plotter.XY{X: route.Depot.X, Y: route.Depot.Y})

		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = palette[i%len(palette)]
		p.Add(line)

		depots = append(depots, plotter.XY{X: route.Depot.X, Y: route.Depot.Y})
	}

	if len(depots) > 0 {
		scatter, err := plotter.NewScatter(depots)
		if err != nil {
			return err
		}
		scatter.Color = color.Black
		scatter.Shape = plotter.SquareGlyph{}
		p.Add(scatter)
	}

	return p.Save(vg.Length(widthCm)*vg.Centimeter, vg.Length(heightCm)*vg.Centimeter, path)
}
