// Package cmd contains the CLI command for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/preocts/daystats/internal/domain"
	"github.com/preocts/daystats/internal/gateway"
	"github.com/preocts/daystats/internal/render"
	"github.com/preocts/daystats/internal/usecase"
)

var opts struct {
	markdown bool
	year     int
	month    int
	day      int
	url      string
	token    string
	debug    bool
}

var rootCmd = &cobra.Command{
	Use:   "daystats <loginname>",
	Short: "Pull a single day of GitHub contribution stats.",
	Long: `daystats queries the GitHub GraphQL API for one user's contribution
activity within a single UTC day and prints a summary table plus a
per-pull-request breakdown, rendered as aligned text or Markdown.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.Warn("debug logging dumps raw requests, access token included")
	}

	var conf Config
	if err := envconfig.Process("daystats", &conf); err != nil {
		return fmt.Errorf("reading environment config: %w", err)
	}
	if opts.token != "" {
		conf.Token = opts.token
	}
	if opts.url != "" {
		conf.URL = opts.url
	}

	// Date validation happens before the gateway is built, so a bad date
	// never reaches the network.
	window, err := domain.NewWindow(time.Now(), opts.year, opts.month, opts.day)
	if err != nil {
		return err
	}

	githubGateway, err := gateway.NewGitHubGateway(gateway.Config{
		Token:    conf.Token,
		Endpoint: conf.URL,
		Timeout:  conf.Timeout,
		Debug:    opts.debug,
	}, logger)
	if err != nil {
		return err
	}

	reporter := usecase.NewReporter(githubGateway, logger)
	report, err := reporter.BuildReport(cmd.Context(), args[0], window)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Report(report, opts.markdown))
	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&opts.markdown, "markdown", false, "Render the report as Markdown tables")
	flags.IntVar(&opts.year, "year", 0, "Year to query (default: today)")
	flags.IntVar(&opts.month, "month", 0, "Month of the year to query (default: today)")
	flags.IntVar(&opts.day, "day", 0, "Day of the month to query (default: today)")
	flags.StringVar(&opts.url, "url", "", "Override the GraphQL API url (default: "+gateway.DefaultEndpoint+")")
	flags.StringVar(&opts.token, "token", "", "Access token; overrides the DAYSTATS_TOKEN environment variable")
	flags.BoolVar(&opts.debug, "debug", false, "Verbose logging; request dumps include the token")
}
