package curve

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Title is the heading of the rendered curve.
const Title = "Learning Curve: Training Size vs. Accuracy"

// Plot renders accuracy against training size to path.
func Plot(points []Point, path string) error {
	if len(points) == 0 {
		return ErrEmptyInput
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Size)
		xys[i].Y = pt.Accuracy
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = "Training Size"
	p.Y.Label.Text = "Accuracy"
	p.Add(plotter.NewGrid())

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	p.Add(line, marks)
	p.Legend.Add("Accuracy", line, marks)

	if err = p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("curve: save %s: %w", path, err)
	}

	return nil
}
