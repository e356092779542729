package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose   bool
	logFormat string
	logger    logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cliParser().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees",
		Long:  `A tool to grow decision trees from categorical data with the ID3 algorithm, test them, and use them to classify records`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setupLogger(os.Stderr)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log every step taken, including every decision taken while growing trees")
	rootCmd.PersistentFlags().StringVar(&(config.logFormat), "log-format", "text", "format of the log lines written to STDERR: text or json")
	rootCmd.AddCommand(versionCmd(), growCmd(config), classifyCmd(config), testCmd(config), predictCmd(config), showCmd(config))
	return rootCmd
}
