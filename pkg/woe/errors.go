package woe

import "fmt"

// TooManyValuesError reports a feature skipped because of its distinct value count.
type TooManyValuesError struct {
	Feature  string
	Distinct int
	Cap      int
}

func (e *TooManyValuesError) Error() string {
	if e.Feature == "" {
		return fmt.Sprintf("contains too many different values: %d > %d", e.Distinct, e.Cap)
	}
	return fmt.Sprintf("%s contains too many different values: %d > %d", e.Feature, e.Distinct, e.Cap)
}

// InvalidMergeError means the bin table bookkeeping went wrong; the feature must not be encoded.
type InvalidMergeError struct {
	Key    string
	Reason string
}

func (e *InvalidMergeError) Error() string {
	return fmt.Sprintf("invalid merge of bin %q: %s", e.Key, e.Reason)
}

type DegenerateDistributionError struct {
	Good float64
	Bad  float64
}

func (e *DegenerateDistributionError) Error() string {
	return fmt.Sprintf("degenerate label distribution: good total %g, bad total %g", e.Good, e.Bad)
}
