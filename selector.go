package id3

import (
	"github.com/pbanos/id3/dataset"
)

// Error is the type of the sentinel errors in this package.
type Error string

// ErrNoCandidates is returned when there is no attribute left to choose from.
const ErrNoCandidates = Error("no candidate attributes")

func (e Error) Error() string {
	return string(e)
}

/*
ChooseBestAttribute takes a non-empty dataset, a slice of candidate
attribute names and the target attribute, and returns the candidate whose
partition of the dataset yields the highest information gain on the target,
along with that gain.

The target is excluded from the candidates if present; the given slice is
never modified. Candidates are evaluated in order and the first one is kept
unless a later one has a strictly greater gain, so ties go to the earliest
candidate. When no candidate is informative (all gains are 0) the first
candidate is returned.

It returns ErrNoCandidates if no candidate is left after excluding the
target and dataset.ErrEmptyDataset for an empty dataset.
*/
func ChooseBestAttribute(ds dataset.Dataset, candidates []string, target string) (string, float64, error) {
	candidates = without(candidates, target)
	if len(candidates) == 0 {
		return "", 0.0, ErrNoCandidates
	}
	if len(ds) == 0 {
		return "", 0.0, dataset.ErrEmptyDataset
	}
	var (
		best     string
		bestGain float64
	)
	for i, a := range candidates {
		gain, err := dataset.InformationGain(ds, a, target)
		if err != nil {
			return "", 0.0, err
		}
		if i == 0 || gain > bestGain {
			best, bestGain = a, gain
		}
	}
	return best, bestGain, nil
}

// without returns a new slice with the elements of attributes other than excluded.
func without(attributes []string, excluded string) []string {
	result := make([]string, 0, len(attributes))
	for _, a := range attributes {
		if a != excluded {
			result = append(result, a)
		}
	}
	return result
}
