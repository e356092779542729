package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput string
	target    string
	input     *storeConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{
		rootCmdConfig: rootConfig,
		input:         &storeConfig{rootCmdConfig: rootConfig, purpose: "testing set"},
	}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
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
			testingSet, _, err := config.input.read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Testing tree against testing set with %d records...", len(testingSet))
			result, err := tree.Test(t, testingSet, config.target)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			printResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&(config.treeInput), "tree", "", "path to a file from which the tree to test will be read and parsed as JSON (required)")
	cmd.Flags().StringVarP(&(config.target), "target", "t", "", "name of the attribute the tree predicts (required)")
	config.input.addInputFlags(cmd)
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if tcc.target == "" {
		return fmt.Errorf("required target flag was not set")
	}
	return tcc.input.Validate()
}

func printResult(w io.Writer, r tree.Result) {
	fmt.Fprintf(w, "%f success rate on %d records, failed to make a prediction for %d records\n", r.Accuracy(), r.Total, r.Unclassified)
}
