package pkg

import (
	"fmt"
	gio "io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"scorecard/pkg/chart"
	"scorecard/pkg/io"
)

type PlotParameters struct {
	PredictionsFile string
	OutputDir       string

	// Split selects the predictions used for the KS and score distribution charts, the first split when empty
	Split string
	Bins  int
	Score chart.ScoreConfig
}

const (
	rocFileName   = "roc.png"
	ksFileName    = "ks.png"
	scoreFileName = "score_dist.png"
)

// Plot renders the ROC curve of every split and the KS curve and score distribution of one split.
func Plot(p PlotParameters) error {
	if err := p.Score.Validate(); err != nil {
		return fmt.Errorf("invalid score parameters: %w", err)
	}
	if p.Bins < 1 {
		return fmt.Errorf("histogram bins must be positive, got %d", p.Bins)
	}
	predictions, err := io.LoadPredictions(p.PredictionsFile)
	if err != nil {
		return err
	}
	if len(predictions) == 0 {
		return fmt.Errorf("no predictions in %s", p.PredictionsFile)
	}
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("error creating output dir %s: %w", p.OutputDir, err)
	}

	splits, groups := io.GroupBySplit(predictions)
	curves := make([]*chart.Curve, 0, len(splits))
	curveBySplit := map[string]*chart.Curve{}
	for _, split := range splits {
		labels, probabilities := columns(groups[split])
		curve, err := chart.ROC(split, labels, probabilities)
		if err != nil {
			return err
		}
		ks, _ := curve.KS()
		log.Info().Str("split", split).Int("rows", len(labels)).Float64("AUC", curve.AUC()).
			Float64("KS", ks).Msg("")
		curves = append(curves, curve)
		curveBySplit[split] = curve
	}

	split := p.Split
	if split == "" {
		split = splits[0]
	}
	curve, ok := curveBySplit[split]
	if !ok {
		return fmt.Errorf("unknown split %s", split)
	}
	labels, probabilities := columns(groups[split])
	distribution := chart.ScoreDistribution(labels, p.Score.Scores(probabilities), p.Bins)

	if err := renderFile(filepath.Join(p.OutputDir, rocFileName), func(w gio.Writer) error {
		return chart.RenderROC(w, curves)
	}); err != nil {
		return err
	}
	if err := renderFile(filepath.Join(p.OutputDir, ksFileName), func(w gio.Writer) error {
		return chart.RenderKS(w, curve, p.Score)
	}); err != nil {
		return err
	}
	return renderFile(filepath.Join(p.OutputDir, scoreFileName), func(w gio.Writer) error {
		return chart.RenderScoreDistribution(w, distribution)
	})
}

func columns(predictions []*io.Prediction) ([]int, []float64) {
	labels := make([]int, len(predictions))
	probabilities := make([]float64, len(predictions))
	for i, p := range predictions {
		labels[i] = p.Label
		probabilities[i] = p.Probability
	}
	return labels, probabilities
}

func renderFile(fileName string, render func(gio.Writer) error) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", fileName, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return fmt.Errorf("error rendering %s: %w", fileName, err)
	}
	log.Info().Str("file", fileName).Msg("Wrote chart")
	return nil
}
