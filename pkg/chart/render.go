package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

// RenderROC draws one ROC curve per split plus the chance diagonal as a PNG.
func RenderROC(w io.Writer, curves []*Curve) error {
	var series []gochart.Series
	for i, c := range curves {
		series = append(series, gochart.ContinuousSeries{
			Name:    fmt.Sprintf("%s (AUC=%.3f)", c.Name, c.AUC()),
			XValues: c.FPR,
			YValues: c.TPR,
			Style: gochart.Style{
				Show:        true,
				StrokeColor: gochart.GetAlternateColor(i),
			},
		})
	}
	series = append(series, gochart.ContinuousSeries{
		Name:    "chance",
		XValues: []float64{0, 1},
		YValues: []float64{0, 1},
		Style: gochart.Style{
			Show:            true,
			StrokeColor:     drawing.ColorBlack,
			StrokeDashArray: []float64{5, 5},
		},
	})

	graph := gochart.Chart{
		Title:      "ROC Curve",
		TitleStyle: gochart.StyleShow(),
		XAxis: gochart.XAxis{
			Name:      "False positive rate",
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
		},
		YAxis: gochart.YAxis{
			Name:      "True positive rate",
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{
		gochart.Legend(&graph),
	}
	return graph.Render(gochart.PNG, w)
}

// RenderKS draws the cumulative true and false positive rates against the score of each threshold.
func RenderKS(w io.Writer, c *Curve, cfg ScoreConfig) error {
	ks, threshold := c.KS()
	scores := cfg.Scores(c.Thresholds)

	graph := gochart.Chart{
		Title:      fmt.Sprintf("K-S Curve (KS=%.0f at score %.0f)", ks*100, cfg.Score(threshold)),
		TitleStyle: gochart.StyleShow(),
		XAxis: gochart.XAxis{
			Name:      "Risk score",
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
		},
		YAxis: gochart.YAxis{
			Name:      "Cumulative rate",
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Positive cumulative response",
				XValues: scores,
				YValues: c.TPR,
				Style:   gochart.Style{Show: true, StrokeColor: gochart.GetAlternateColor(0)},
			},
			gochart.ContinuousSeries{
				Name:    "Negative cumulative response",
				XValues: scores,
				YValues: c.FPR,
				Style:   gochart.Style{Show: true, StrokeColor: gochart.GetAlternateColor(1)},
			},
		},
	}
	graph.Elements = []gochart.Renderable{
		gochart.Legend(&graph),
	}
	return graph.Render(gochart.PNG, w)
}

func RenderScoreDistribution(w io.Writer, d Distribution) error {
	centers := d.Centers()
	graph := gochart.Chart{
		Title:      "Risk Score Distribution",
		TitleStyle: gochart.StyleShow(),
		XAxis: gochart.XAxis{
			Name:      "Risk score",
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
		},
		YAxis: gochart.YAxis{
			Name:      "Proportion",
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Class positive",
				XValues: centers,
				YValues: d.Positive,
				Style:   gochart.Style{Show: true, StrokeColor: drawing.ColorRed},
			},
			gochart.ContinuousSeries{
				Name:    "Class negative",
				XValues: centers,
				YValues: d.Negative,
				Style:   gochart.Style{Show: true, StrokeColor: drawing.ColorGreen},
			},
		},
	}
	graph.Elements = []gochart.Renderable{
		gochart.Legend(&graph),
	}
	return graph.Render(gochart.PNG, w)
}
