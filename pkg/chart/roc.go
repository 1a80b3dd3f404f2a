package chart

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Curve holds the ROC points of one dataset split.
type Curve struct {
	Name       string
	FPR        []float64
	TPR        []float64
	Thresholds []float64
}

// ROC computes the ROC curve of probabilities against labels, label 1 being the positive class. The
// curve always starts at (0, 0) and ends at (1, 1).
func ROC(name string, labels []int, probabilities []float64) (*Curve, error) {
	if len(labels) != len(probabilities) {
		return nil, fmt.Errorf("got %d labels but %d probabilities", len(labels), len(probabilities))
	}
	positives := 0
	for _, l := range labels {
		positives += l
	}
	if positives == 0 || positives == len(labels) {
		return nil, fmt.Errorf("split %s needs both classes to compute a ROC curve", name)
	}

	y := make([]float64, len(probabilities))
	copy(y, probabilities)
	classes := make([]bool, len(labels))
	for i, l := range labels {
		classes[i] = l == 1
	}
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, thresholds := stat.ROC(nil, y, classes, nil)

	if fpr[0] != 0 || tpr[0] != 0 {
		fpr = append([]float64{0}, fpr...)
		tpr = append([]float64{0}, tpr...)
		thresholds = append([]float64{floats.Max(y)}, thresholds...)
	}
	if last := len(fpr) - 1; fpr[last] != 1 || tpr[last] != 1 {
		fpr = append(fpr, 1)
		tpr = append(tpr, 1)
		thresholds = append(thresholds, floats.Min(y))
	}
	return &Curve{Name: name, FPR: fpr, TPR: tpr, Thresholds: thresholds}, nil
}

// AUC is the area under the curve by the trapezoidal rule.
func (c *Curve) AUC() float64 {
	return integrate.Trapezoidal(c.FPR, c.TPR)
}

// KS is the largest gap between the true and false positive rates and the threshold it occurs at.
func (c *Curve) KS() (ks float64, threshold float64) {
	diff := make([]float64, len(c.TPR))
	floats.SubTo(diff, c.TPR, c.FPR)
	i := floats.MaxIdx(diff)
	return diff[i], c.Thresholds[i]
}
