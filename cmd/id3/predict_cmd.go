package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput      string
	metadataInput  string
	undefinedValue string
}

// writerValueRequester asks for values by writing questions onto a writer.
type writerValueRequester struct {
	w              io.Writer
	undefinedValue string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a value for a record answering questions",
		Long:  `Use a tree to predict the target value for a record answering only the questions about its attributes the tree needs`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			var schema *feature.Schema
			if config.metadataInput != "" {
				schema, err = yaml.ReadSchemaFromFile(config.metadataInput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
			}
			t, err := loadTree(config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			requester := &writerValueRequester{w: cmd.OutOrStdout(), undefinedValue: config.undefinedValue}
			sample := inputsample.New(cmd.InOrStdin(), schema, requester, config.undefinedValue)
			prediction, err := tree.Predict(t, sample.ValueFor)
			if err != nil {
				fmt.Fprintf(os.Stderr, "making a prediction: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Predicted from %v", sample.Record())
			fmt.Fprintf(cmd.OutOrStdout(), "Predicted value is %s\n", prediction)
		},
	}
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the schema of records, used to validate the answers")
	cmd.Flags().StringVar(&(config.treeInput), "tree", "", "path to a file from which the tree will be read and parsed as JSON (required)")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a record's value for an attribute as undefined")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (wvr *writerValueRequester) RequestValueFor(attribute string, values []string) error {
	var err error
	if len(values) == 0 {
		_, err = fmt.Fprintf(wvr.w, "Please provide the record's %s:\n(or %s if undefined)\n", attribute, wvr.undefinedValue)
	} else {
		_, err = fmt.Fprintf(wvr.w, "Please provide the record's %s:\n(valid values are %v or %s if undefined)\n", attribute, values, wvr.undefinedValue)
	}
	return err
}

func (wvr *writerValueRequester) RejectValueFor(attribute, value string, values []string) error {
	_, err := fmt.Fprintf(wvr.w, "%v is not a valid value for the record's %s. Please provide one of %v or %s if undefined.\n", value, attribute, values, wvr.undefinedValue)
	return err
}
