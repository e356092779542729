package tree

import (
	"errors"
	"fmt"

	"github.com/pbanos/id3/dataset"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrUnknownValue is wrapped by the error Classify returns when a record
holds a value for a node's attribute that has no branch on the node, so the
tree cannot make a prediction for that kind of record.
*/
const ErrUnknownValue = PredictionError("no branch for value")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Classify descends the tree following the record's value for the attribute
of every node it reaches and returns the value of the leaf it ends on.

It returns a *dataset.MissingAttributeError if the record lacks one of the
attributes asked about, and an error wrapping ErrUnknownValue if the record
holds a value for which a node has no branch.
*/
func Classify(t Tree, r dataset.Record) (string, error) {
	return Predict(t, r.ValueFor)
}

/*
Predict descends the tree asking valueFor for the value of the attribute of
every node it reaches, and returns the value of the leaf it ends on. Only
the attributes on the path taken are asked about, each one once.

Errors returned by valueFor are returned as is. A value for which a node has
no branch makes it return an error wrapping ErrUnknownValue.
*/
func Predict(t Tree, valueFor func(attribute string) (string, error)) (string, error) {
	for {
		switch n := t.(type) {
		case *Leaf:
			return n.Value, nil
		case *Node:
			v, err := valueFor(n.Attribute)
			if err != nil {
				return "", err
			}
			st, ok := n.Child(v)
			if !ok {
				return "", fmt.Errorf("%w %q of attribute %q", ErrUnknownValue, v, n.Attribute)
			}
			t = st
		default:
			return "", fmt.Errorf("cannot classify with tree of type %T", t)
		}
	}
}

/*
Result holds the outcome of testing a tree against a dataset: the number of
records tested, the number correctly classified, and the number the tree
could not classify because of values it has no branch for.
*/
type Result struct {
	Total        int
	Correct      int
	Unclassified int
}

// Accuracy returns the rate of correctly classified records, 0 for an empty result.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0.0
	}
	return float64(r.Correct) / float64(r.Total)
}

/*
Test classifies every record of the dataset with the tree and compares the
prediction with the record's value for the target attribute. Records the
tree cannot classify because of unknown values are counted as unclassified;
any other error aborts the test and is returned.
*/
func Test(t Tree, ds dataset.Dataset, target string) (Result, error) {
	res := Result{Total: len(ds)}
	for i, r := range ds {
		want, err := r.ValueFor(target)
		if err != nil {
			return Result{}, &dataset.MissingAttributeError{Attribute: target, Index: i}
		}
		got, err := Classify(t, r)
		if err != nil {
			if errors.Is(err, ErrUnknownValue) {
				res.Unclassified++
				continue
			}
			var mae *dataset.MissingAttributeError
			if errors.As(err, &mae) {
				return Result{}, &dataset.MissingAttributeError{Attribute: mae.Attribute, Index: i}
			}
			return Result{}, err
		}
		if got == want {
			res.Correct++
		}
	}
	return res, nil
}
