/*
Package id3 induces decision trees from labeled, categorical datasets with
the ID3 algorithm: the dataset is recursively partitioned on the attribute
with the highest information gain on the target attribute until every
partition is pure or no attribute is left to split on.
*/
package id3

import (
	"io"
	"log/slog"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

type config struct {
	logger *slog.Logger
}

// Option configures BuildDecisionTree.
type Option func(*config)

/*
WithLogger makes BuildDecisionTree log every decision it takes on the given
logger at debug level.
*/
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

/*
BuildDecisionTree takes a dataset, the attributes of its records and the
target attribute, and returns the decision tree that predicts the target
from the other attributes.

The attributes may include the target, which is never split on. Their order
decides which attribute is chosen when several have the same information
gain. Neither the dataset nor the attributes slice are modified.

At every level the tree is:
  - a leaf with the majority target value when there are no attributes left
    to split on,
  - a leaf with the target value when every record shares it,
  - a node splitting on the best attribute (see ChooseBestAttribute) with a
    subtree for each value of it observed in the records, in order of first
    occurrence, otherwise.

An empty dataset makes it return dataset.ErrEmptyDataset, as there is no
majority value to fall back on. A record lacking one of the attributes makes
it return a *dataset.MissingAttributeError.

The recursion is as deep as the number of attributes other than the
target, which bounds stack use for any realistic schema.
*/
func BuildDecisionTree(ds dataset.Dataset, attributes []string, target string, opts ...Option) (tree.Tree, error) {
	c := &config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(c)
	}
	if len(ds) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	b := &builder{target: target, logger: c.logger}
	return b.build(ds, without(attributes, target), nil, 0)
}

type builder struct {
	target string
	logger *slog.Logger
}

/*
build grows the subtree for ds using the given candidates, which never
include the target. parentDefault is the majority target value of the
parent's records, used when ds is empty; it is nil for the root.
*/
func (b *builder) build(ds dataset.Dataset, candidates []string, parentDefault *string, depth int) (tree.Tree, error) {
	if len(ds) == 0 {
		if parentDefault == nil {
			return nil, dataset.ErrEmptyDataset
		}
		b.logger.Debug("empty subset, using parent majority", "depth", depth, "value", *parentDefault)
		return tree.NewLeaf(*parentDefault), nil
	}
	freqs, err := dataset.ValueFrequencies(ds, b.target)
	if err != nil {
		return nil, err
	}
	def, _ := freqs.Majority()
	if len(candidates) == 0 {
		b.logger.Debug("no attributes left, using majority", "depth", depth, "records", len(ds), "value", def)
		return tree.NewLeaf(def), nil
	}
	if freqs.Len() == 1 {
		b.logger.Debug("pure subset", "depth", depth, "records", len(ds), "value", def)
		return tree.NewLeaf(def), nil
	}
	best, gain, err := ChooseBestAttribute(ds, candidates, b.target)
	if err != nil {
		return nil, err
	}
	values, err := dataset.Values(ds, best)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("splitting", "depth", depth, "records", len(ds), "attribute", best, "gain", gain, "values", len(values))
	remaining := without(candidates, best)
	n := tree.NewNode(best)
	for _, v := range values {
		subset, err := dataset.Subset(ds, best, v)
		if err != nil {
			return nil, err
		}
		st, err := b.build(subset, remaining, &def, depth+1)
		if err != nil {
			return nil, err
		}
		if err = n.Add(v, st); err != nil {
			return nil, err
		}
	}
	return n, nil
}
