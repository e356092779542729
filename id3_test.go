package id3

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weatherAttributes = []string{"outlook", "temperature", "humidity", "windy", "play"}

func weather() dataset.Dataset {
	rows := [][5]string{
		{"sunny", "hot", "high", "false", "no"},
		{"sunny", "hot", "high", "true", "no"},
		{"overcast", "hot", "high", "false", "yes"},
		{"rainy", "mild", "high", "false", "yes"},
		{"rainy", "cool", "normal", "false", "yes"},
		{"rainy", "cool", "normal", "true", "no"},
		{"overcast", "cool", "normal", "true", "yes"},
		{"sunny", "mild", "high", "false", "no"},
		{"sunny", "cool", "normal", "false", "yes"},
		{"rainy", "mild", "normal", "false", "yes"},
		{"sunny", "mild", "normal", "true", "yes"},
		{"overcast", "mild", "high", "true", "yes"},
		{"overcast", "hot", "normal", "false", "yes"},
		{"rainy", "mild", "high", "true", "no"},
	}
	ds := make(dataset.Dataset, 0, len(rows))
	for _, r := range rows {
		rec := dataset.Record{}
		for i, a := range weatherAttributes {
			rec[a] = r[i]
		}
		ds = append(ds, rec)
	}
	return ds
}

func TestBuildDecisionTree_Weather(t *testing.T) {
	got, err := BuildDecisionTree(weather(), weatherAttributes, "play")
	require.NoError(t, err)

	want := &tree.Node{Attribute: "outlook", Branches: []tree.Branch{
		{Value: "sunny", Subtree: &tree.Node{Attribute: "humidity", Branches: []tree.Branch{
			{Value: "high", Subtree: tree.NewLeaf("no")},
			{Value: "normal", Subtree: tree.NewLeaf("yes")},
		}}},
		{Value: "overcast", Subtree: tree.NewLeaf("yes")},
		{Value: "rainy", Subtree: &tree.Node{Attribute: "windy", Branches: []tree.Branch{
			{Value: "false", Subtree: tree.NewLeaf("yes")},
			{Value: "true", Subtree: tree.NewLeaf("no")},
		}}},
	}}
	assert.True(t, tree.Equal(want, got), "got:\n%s", tree.String(got))

	res, err := tree.Test(got, weather(), "play")
	require.NoError(t, err)
	assert.Equal(t, 14, res.Correct)
}

func TestBuildDecisionTree_SplitsOnOnlyAttribute(t *testing.T) {
	ds := dataset.Dataset{
		{"outlook": "sunny", "play": "no"},
		{"outlook": "sunny", "play": "no"},
		{"outlook": "rainy", "play": "yes"},
		{"outlook": "rainy", "play": "yes"},
	}
	got, err := BuildDecisionTree(ds, []string{"outlook", "play"}, "play")
	require.NoError(t, err)

	n, ok := got.(*tree.Node)
	require.True(t, ok, "expected a node, got %T", got)
	assert.Equal(t, "outlook", n.Attribute)
	require.Len(t, n.Branches, 2)
	assert.Equal(t, tree.Branch{Value: "sunny", Subtree: tree.NewLeaf("no")}, n.Branches[0])
	assert.Equal(t, tree.Branch{Value: "rainy", Subtree: tree.NewLeaf("yes")}, n.Branches[1])
}

func TestBuildDecisionTree_PureDataset(t *testing.T) {
	ds := dataset.Dataset{
		{"a": "x", "play": "yes"},
		{"a": "y", "play": "yes"},
	}
	got, err := BuildDecisionTree(ds, []string{"a", "play"}, "play")
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("yes"), got)
}

func TestBuildDecisionTree_PureDatasetIgnoresOtherAttributes(t *testing.T) {
	ds := weather()
	for _, r := range ds {
		r["play"] = "maybe"
	}
	got, err := BuildDecisionTree(ds, weatherAttributes, "play")
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("maybe"), got)
}

func TestBuildDecisionTree_EmptyDataset(t *testing.T) {
	_, err := BuildDecisionTree(dataset.Dataset{}, []string{"a", "play"}, "play")
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)

	_, err = BuildDecisionTree(nil, nil, "play")
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestBuildDecisionTree_NoAttributesGivesMajority(t *testing.T) {
	got, err := BuildDecisionTree(weather(), []string{"play"}, "play")
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("yes"), got)

	got, err = BuildDecisionTree(weather(), nil, "play")
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("yes"), got)
}

func TestBuildDecisionTree_ExhaustedAttributesGiveMajorityLeaves(t *testing.T) {
	ds := dataset.Dataset{
		{"a": "x", "play": "yes"},
		{"a": "x", "play": "no"},
		{"a": "x", "play": "no"},
		{"a": "y", "play": "yes"},
		{"a": "z", "play": "no"},
		{"a": "z", "play": "yes"},
	}
	got, err := BuildDecisionTree(ds, []string{"a", "play"}, "play")
	require.NoError(t, err)

	want := &tree.Node{Attribute: "a", Branches: []tree.Branch{
		{Value: "x", Subtree: tree.NewLeaf("no")},
		{Value: "y", Subtree: tree.NewLeaf("yes")},
		{Value: "z", Subtree: tree.NewLeaf("no")},
	}}
	assert.True(t, tree.Equal(want, got), "got:\n%s", tree.String(got))
}

func TestBuildDecisionTree_UninformativeAttributeStillSplits(t *testing.T) {
	ds := dataset.Dataset{
		{"a": "x", "play": "yes"},
		{"a": "y", "play": "yes"},
		{"a": "x", "play": "no"},
		{"a": "y", "play": "no"},
	}
	got, err := BuildDecisionTree(ds, []string{"a", "play"}, "play")
	require.NoError(t, err)

	want := &tree.Node{Attribute: "a", Branches: []tree.Branch{
		{Value: "x", Subtree: tree.NewLeaf("yes")},
		{Value: "y", Subtree: tree.NewLeaf("yes")},
	}}
	assert.True(t, tree.Equal(want, got), "got:\n%s", tree.String(got))
}

func TestBuildDecisionTree_DoesNotMutateInputs(t *testing.T) {
	ds := weather()
	original := ds.Clone()
	attributes := []string{"outlook", "temperature", "humidity", "windy", "play"}
	originalAttributes := append([]string(nil), attributes...)

	_, err := BuildDecisionTree(ds, attributes, "play")
	require.NoError(t, err)

	assert.Equal(t, original, ds)
	assert.Equal(t, originalAttributes, attributes)
}

func TestBuildDecisionTree_Idempotent(t *testing.T) {
	t1, err := BuildDecisionTree(weather(), weatherAttributes, "play")
	require.NoError(t, err)
	t2, err := BuildDecisionTree(weather(), weatherAttributes, "play")
	require.NoError(t, err)
	assert.True(t, tree.Equal(t1, t2))
}

func TestBuildDecisionTree_MissingAttribute(t *testing.T) {
	ds := weather()
	delete(ds[9], "windy")

	_, err := BuildDecisionTree(ds, weatherAttributes, "play")
	var mae *dataset.MissingAttributeError
	require.ErrorAs(t, err, &mae)
	assert.Equal(t, "windy", mae.Attribute)
}

func TestBuildDecisionTree_LogsDecisions(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := BuildDecisionTree(weather(), weatherAttributes, "play", WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "attribute=outlook")
	assert.Contains(t, buf.String(), "pure subset")
}

func TestBuilder_EmptySubsetUsesParentDefault(t *testing.T) {
	b := &builder{target: "play", logger: slog.Default()}
	def := "no"

	got, err := b.build(dataset.Dataset{}, []string{"a"}, &def, 1)
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("no"), got)

	_, err = b.build(dataset.Dataset{}, []string{"a"}, nil, 0)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestChooseBestAttribute(t *testing.T) {
	best, gain, err := ChooseBestAttribute(weather(), weatherAttributes, "play")
	require.NoError(t, err)
	assert.Equal(t, "outlook", best)
	assert.InDelta(t, 0.246750, gain, 1e-6)
}

func TestChooseBestAttribute_TieGoesToFirstCandidate(t *testing.T) {
	ds := dataset.Dataset{
		{"a": "x", "b": "p", "play": "yes"},
		{"a": "y", "b": "q", "play": "no"},
	}
	best, _, err := ChooseBestAttribute(ds, []string{"b", "a", "play"}, "play")
	require.NoError(t, err)
	assert.Equal(t, "b", best)

	best, _, err = ChooseBestAttribute(ds, []string{"a", "b"}, "play")
	require.NoError(t, err)
	assert.Equal(t, "a", best)
}

func TestChooseBestAttribute_AllZeroGainPicksFirst(t *testing.T) {
	ds := dataset.Dataset{
		{"a": "x", "b": "p", "play": "yes"},
		{"a": "x", "b": "p", "play": "no"},
	}
	best, gain, err := ChooseBestAttribute(ds, []string{"play", "b", "a"}, "play")
	require.NoError(t, err)
	assert.Equal(t, "b", best)
	assert.Equal(t, 0.0, gain)
}

func TestChooseBestAttribute_DoesNotMutateCandidates(t *testing.T) {
	candidates := []string{"play", "outlook", "windy"}
	_, _, err := ChooseBestAttribute(weather(), candidates, "play")
	require.NoError(t, err)
	assert.Equal(t, []string{"play", "outlook", "windy"}, candidates)
}

func TestChooseBestAttribute_Errors(t *testing.T) {
	_, _, err := ChooseBestAttribute(weather(), []string{"play"}, "play")
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, _, err = ChooseBestAttribute(nil, []string{"outlook"}, "play")
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}
