// Command report prints per-device statistics for an export written by fetch.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"go-tweetlab/analysis"
	"go-tweetlab/export"
	"go-tweetlab/logging"
	"go-tweetlab/report"
)

func newRootCmd() *cobra.Command {
	minCount := 1
	cmd := &cobra.Command{
		Use:          "report <file.csv>",
		Short:        "Summarize an exported account by posting device",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tweets, err := export.ReadFile(args[0])
			if err != nil {
				return err
			}
			r := report.Build(tweets, analysis.DefaultSourceLabeler(), minCount)
			return r.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&minCount, "min-count", minCount, "only list hashtags and mentions seen more often than this")
	return cmd
}

func main() {
	closeLogger, err := logging.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	err = newRootCmd().Execute()
	closeLogger()
	if err != nil {
		os.Exit(1)
	}
}
