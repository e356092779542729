package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	jsontree "github.com/pbanos/id3/tree/json"
	"github.com/spf13/cobra"
)

const predictionAttribute = "prediction"

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput string
	input     *storeConfig
	output    *storeConfig
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{
		rootCmdConfig: rootConfig,
		input:         &storeConfig{rootCmdConfig: rootConfig, purpose: "records to classify"},
		output:        &storeConfig{rootCmdConfig: rootConfig, purpose: "classified records"},
	}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a set of records with a tree",
		Long:  `Use a tree to predict the target of every record in a set, writing them back with a prediction attribute`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := loadTree(config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			records, attributes, err := config.input.read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			classified, attributes, unclassified := classify(t, records, attributes, config.input.undefinedValue)
			config.Logf("Classified %d records, %d could not be classified", len(classified)-unclassified, unclassified)
			err = config.output.write(cmd.Context(), cmd.OutOrStdout(), classified, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cmd.Flags().StringVar(&(config.treeInput), "tree", "", "path to a file from which the tree will be read and parsed as JSON (required)")
	config.input.addInputFlags(cmd)
	config.output.addOutputFlags(cmd)
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if err := ccc.input.Validate(); err != nil {
		return err
	}
	return ccc.output.Validate()
}

/*
classify returns a copy of the records with the tree's prediction set on
the prediction attribute, along with the attributes of the copies and the
number of records that could not be classified, which get undefinedValue as
prediction.
*/
func classify(t tree.Tree, records dataset.Dataset, attributes []string, undefinedValue string) (dataset.Dataset, []string, int) {
	classified := make(dataset.Dataset, 0, len(records))
	var unclassified int
	for _, r := range records {
		c := r.Clone()
		prediction, err := tree.Classify(t, r)
		if err != nil {
			prediction = undefinedValue
			unclassified++
		}
		c[predictionAttribute] = prediction
		classified = append(classified, c)
	}
	for _, attr := range attributes {
		if attr == predictionAttribute {
			return classified, attributes, unclassified
		}
	}
	out := make([]string, len(attributes), len(attributes)+1)
	copy(out, attributes)
	return classified, append(out, predictionAttribute), unclassified
}

func loadTree(filepath string) (tree.Tree, error) {
	t, err := jsontree.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("loading tree: %w", err)
	}
	return t, nil
}
