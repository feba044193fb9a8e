// Command fetch downloads an account's history and writes it to
// data/<account>.csv.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-tweetlab/bluesky"
	"go-tweetlab/credentials"
	"go-tweetlab/errs"
	"go-tweetlab/export"
	"go-tweetlab/logging"
	"go-tweetlab/twitter"
	"go-tweetlab/types"
)

const defaultAccount = "realDonaldTrump"

type options struct {
	source          string
	credentialsPath string
	outDir          string
	asciiOnly       bool
	blueskyHost     string
	max             int
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	asciiOnly, _ := strconv.ParseBool(os.Getenv("TWEETLAB_ASCII_ONLY"))
	opts := options{
		source:          envOr("TWEETLAB_SOURCE", "twitter"),
		credentialsPath: envOr("TWEETLAB_CREDENTIALS", credentials.DefaultPath),
		outDir:          "data",
		asciiOnly:       asciiOnly,
		blueskyHost:     os.Getenv("BLUESKY_HOST"),
		max:             twitter.PageSize * twitter.MaxPages,
	}

	cmd := &cobra.Command{
		Use:   "fetch [account]",
		Short: "Fetch an account's tweets into a CSV file (all flags optional)",
		Long: `Fetch an account's tweets into data/<account>.csv.

The account defaults to realDonaldTrump. Every flag is optional; without any,
the timeline is read from Twitter with the credentials file named by
TWEETLAB_CREDENTIALS and written to data/ with the default columns.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			account := defaultAccount
			if len(args) == 1 && args[0] != "" {
				account = args[0]
			}
			_, err := run(cmd.Context(), account, opts)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "source", opts.source, "where to read from: twitter or bluesky")
	flags.StringVar(&opts.credentialsPath, "credentials", opts.credentialsPath, "credentials YAML file")
	flags.StringVar(&opts.outDir, "out-dir", opts.outDir, "directory the CSV file is written to")
	flags.BoolVar(&opts.asciiOnly, "ascii", opts.asciiOnly, "drop non-ASCII characters from the export")
	flags.StringVar(&opts.blueskyHost, "bluesky-host", opts.blueskyHost, "Bluesky AppView host")
	flags.IntVar(&opts.max, "max", opts.max, "cap on posts read when --source is bluesky (optional)")
	return cmd
}

// run fetches account and returns the path of the written file.
func run(ctx context.Context, account string, opts options) (string, error) {
	zap.S().Infof("Looking at %s account on %s", account, opts.source)

	var (
		tweets []types.Tweet
		err    error
	)
	switch opts.source {
	case "twitter":
		var creds *credentials.Credentials
		creds, err = credentials.Load(opts.credentialsPath)
		if err != nil {
			return "", err
		}
		tweets, err = twitter.NewClient(creds).UserTimeline(ctx, account)
	case "bluesky":
		tweets, err = bluesky.NewClient(opts.blueskyHost, nil).FetchTweets(ctx, account, opts.max)
	default:
		return "", errs.Configuration("unknown source %q (want twitter or bluesky)", opts.source)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(opts.outDir, account+".csv")
	if err := export.WriteFile(path, tweets, export.DefaultFields, export.Options{ASCIIOnly: opts.asciiOnly}); err != nil {
		return "", err
	}
	return path, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	closeLogger, err := logging.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	err = newRootCmd().ExecuteContext(context.Background())
	closeLogger()
	if err != nil {
		os.Exit(1)
	}
}
