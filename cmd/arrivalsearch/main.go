package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/radutopala/arrivalsearch/internal/arrivals"
	"github.com/radutopala/arrivalsearch/internal/movements"
	"github.com/radutopala/arrivalsearch/internal/search"
	"github.com/radutopala/arrivalsearch/internal/source"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	dataPath string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "arrivalsearch",
		Short: "Search recent arrivals and match them to prisoner records",
		Long: `arrivalsearch ranks recent arrivals against a free-text query and finds
existing prisoner records an arrival may belong to.

Records are read from a JSON file with "movements" and "prisoners" arrays.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", "movements.json", "path to the JSON dataset")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newSearchCmd(opts), newMatchCmd(opts))
	return rootCmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) load(cmd *cobra.Command, logger *slog.Logger) (*source.Dataset, error) {
	src := source.NewFileSource(o.dataPath, logger)
	defer src.Close()

	return src.Load(cmd.Context())
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var showRelevance bool
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search recent arrivals by prison number or name",
		Long: `Search recent arrivals by prison number, first name or last name.

Small spelling mistakes are tolerated. Without a query every arrival is listed
in file order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)

			dataset, err := opts.load(cmd, logger)
			if err != nil {
				return err
			}

			var query *string
			if len(args) > 0 {
				query = search.Some(strings.Join(args, " "))
			}

			results := movements.NewSearcher(search.WithLogger(logger)).SearchWithRelevance(query, dataset.Movements)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			writeMovements(cmd.OutOrStdout(), results, showRelevance)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showRelevance, "relevance", "r", false, "show the relevance of each result")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (0 = all)")
	return cmd
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	var arrival arrivals.Arrival

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Find prisoner records an arrival may belong to",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(arrival.PrisonNumber) == "" && strings.TrimSpace(arrival.PNCNumber) == "" {
				return fmt.Errorf("--prison-number or --pnc-number is required")
			}

			logger := opts.logger(cmd)

			dataset, err := opts.load(cmd, logger)
			if err != nil {
				return err
			}

			results := arrivals.NewMatcher(logger).PotentialMatches(arrival, dataset.Prisoners)
			writePrisoners(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVar(&arrival.PrisonNumber, "prison-number", "", "prison number of the arrival")
	cmd.Flags().StringVar(&arrival.PNCNumber, "pnc-number", "", "PNC number of the arrival")
	return cmd
}

func writeMovements(w io.Writer, results search.Results[movements.Movement], showRelevance bool) {
	header := []string{"Prison number", "First name", "Last name", "Date of birth", "From", "To", "Arrived"}
	if showRelevance {
		header = append(header, "Relevance")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, r := range results {
		m := r.Item
		row := []string{m.PrisonNumber, m.FirstName, m.LastName, m.DateOfBirth, m.FromLocation, m.ToLocation, formatTime(m)}
		if showRelevance {
			row = append(row, r.Relevance.String())
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintf(w, "%d result(s)\n", len(results))
}

func writePrisoners(w io.Writer, results search.Results[arrivals.PrisonerDetails]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Prison number", "PNC number", "First name", "Last name", "Date of birth", "Location", "Relevance"})
	for _, r := range results {
		p := r.Item
		table.Append([]string{p.PrisonNumber, p.PNCNumber, p.FirstName, p.LastName, p.DateOfBirth, p.Location, r.Relevance.String()})
	}
	table.Render()

	fmt.Fprintf(w, "%d potential match(es)\n", len(results))
}

func formatTime(m movements.Movement) string {
	if m.MovementTime.IsZero() {
		return ""
	}
	return m.MovementTime.Format("2006-01-02 15:04")
}
