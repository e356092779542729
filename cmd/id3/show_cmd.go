package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	treeInput string
	format    string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a tree",
		Long:  `Render a tree stored as JSON as indented text or as a Graphviz DOT graph`,
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
			err = writeTree(cmd.OutOrStdout(), config.format, graphName(config.treeInput), t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	cmd.Flags().StringVar(&(config.treeInput), "tree", "", "path to a file from which the tree to show will be read and parsed as JSON (required)")
	cmd.Flags().StringVarP(&(config.format), "format", "f", "text", "format to render the tree in: text or dot")
	return cmd
}

func (scc *showCmdConfig) Validate() error {
	if scc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return validateTreeFormat(scc.format, "text", "dot")
}

// graphName derives a graph name from the tree file name, like weather for weather.json.
func graphName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
