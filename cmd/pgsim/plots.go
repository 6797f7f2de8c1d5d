package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func plotHistogram(samples []float64, bins int, file string) error {
	h, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)

	p := plot.New()
	p.Title.Text = "Sample histogram"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"
	p.Add(h)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

func plotRunningMean(means []float64, file string) error {
	pts := make(plotter.XYs, len(means))
	for i, m := range means {
		pts[i].X = float64(i + 1)
		pts[i].Y = m
	}

	p := plot.New()
	p.Title.Text = "Running mean"
	p.X.Label.Text = "draws"
	p.Y.Label.Text = "mean"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
