package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/dot"
	jsontree "github.com/pbanos/id3/tree/json"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	input         *storeConfig
	metadataInput string
	target        string
	where         string
	format        string
	output        string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{
		rootCmdConfig: rootConfig,
		input:         &storeConfig{rootCmdConfig: rootConfig, purpose: "training set"},
	}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict a certain attribute.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			var schema *feature.Schema
			if config.metadataInput != "" {
				config.Logf("Reading schema from metadata at %s...", config.metadataInput)
				schema, err = yaml.ReadSchemaFromFile(config.metadataInput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
			}
			trainingSet, attributes, err := config.input.read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			attributes, target, err := config.attributesAndTarget(schema, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			if schema != nil {
				if err = schema.Validate(trainingSet); err != nil {
					fmt.Fprintf(os.Stderr, "validating training set: %v\n", err)
					os.Exit(5)
				}
			}
			if config.where != "" {
				trainingSet, err = dataset.Filter(trainingSet, config.where)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				config.Logf("%d records match %s", len(trainingSet), config.where)
			}
			config.Logf("Growing tree from a set with %d records and %d attributes to predict %s ...", len(trainingSet), len(attributes)-1, target)
			t, err := id3.BuildDecisionTree(trainingSet, attributes, target, id3.WithLogger(config.Logger()))
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(7)
			}
			config.Logf("Done, grown a tree with depth %d and %d leaves", tree.Depth(t), tree.Leaves(t))
			err = outputTree(config.output, config.format, target, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
		},
	}
	config.input.addInputFlags(cmd)
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the schema of the input records: their features in order, the values they may take and the target")
	cmd.Flags().StringVarP(&(config.target), "target", "t", "", "name of the attribute the generated tree should predict (required unless given by the metadata)")
	cmd.Flags().StringVar(&(config.where), "where", "", `expression records must satisfy to be used to grow the tree, like 'outlook != "overcast"'`)
	cmd.Flags().StringVarP(&(config.format), "format", "f", "json", "format of the generated tree: json, text or dot")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" && gcc.target == "" {
		return fmt.Errorf("required target flag was not set and no metadata was given")
	}
	if err := validateTreeFormat(gcc.format, "json", "text", "dot"); err != nil {
		return err
	}
	return gcc.input.Validate()
}

/*
attributesAndTarget decides the attributes to grow the tree with and its
target. A schema provides both, though the target flag takes precedence.
Without one, the attributes are the ones found on the input.
*/
func (gcc *growCmdConfig) attributesAndTarget(schema *feature.Schema, inputAttributes []string) ([]string, string, error) {
	attributes := inputAttributes
	target := gcc.target
	if schema != nil {
		attributes = schema.Names()
		if target == "" {
			target = schema.Target
		}
		if schema.Lookup(target) == nil {
			return nil, "", fmt.Errorf("target %q is not defined on the schema", target)
		}
		return attributes, target, nil
	}
	for _, attr := range attributes {
		if attr == target {
			return attributes, target, nil
		}
	}
	return nil, "", fmt.Errorf("target %q is not an attribute of the input records", target)
}

func validateTreeFormat(format string, valid ...string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return fmt.Errorf("unknown tree format %q, valid formats are %v", format, valid)
}

func outputTree(outputPath, format, name string, t tree.Tree) error {
	var f *os.File
	var err error
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return writeTree(f, format, name, t)
}

func writeTree(w io.Writer, format, name string, t tree.Tree) error {
	switch format {
	case "text":
		_, err := fmt.Fprint(w, tree.String(t))
		return err
	case "dot":
		return dot.Write(w, t, name)
	default:
		return jsontree.Write(w, t)
	}
}
