package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"winnow/internal/distribution"
	"winnow/internal/report"
)

func newOverviewCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview [report.json]",
		Short: "Show scan stats and TV distribution for a report",
		Long: `Print the scan statistics of a duplicate report together with a table
mapping each show's duplicated episodes across storage roots. Without an
argument the newest duplicate report in the configured output directory
is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			reportPath, err := resolveReportPath(cfg, args)
			if err != nil {
				return err
			}
			rpt, err := report.Load(reportPath)
			if err != nil {
				return fmt.Errorf("load report %s: %w", reportPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report: %s (scanned %s)\n\n", reportPath, rpt.ScanTimestamp)
			printReportStats(out, rpt)
			printDistribution(out, rpt)
			return nil
		},
	}

	return cmd
}

func printReportStats(out io.Writer, rpt *report.Report) {
	stats := rpt.ScanStats
	rows := [][]string{
		{"Files scanned", strconv.Itoa(stats.TotalFiles)},
		{"Video files", strconv.Itoa(stats.VideoFiles)},
		{"Audio files", strconv.Itoa(stats.AudioFiles)},
		{"Movie duplicate groups", strconv.Itoa(stats.MovieGroups)},
		{"TV duplicate groups", strconv.Itoa(stats.TVGroups)},
		{"Duplicate files", strconv.Itoa(stats.TotalDuplicates)},
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
}

// printDistribution renders where each show's duplicated episodes live, one
// row per show and storage root.
func printDistribution(out io.Writer, rpt *report.Report) {
	agg := distribution.Build(rpt.Duplicates.TVSeries)
	if agg.Empty() {
		fmt.Fprintln(out, "No TV duplicates to map across storage roots.")
		return
	}

	rows := make([][]string, 0, 8)
	for _, row := range agg.Overview() {
		rows = append(rows, []string{
			row.Show,
			row.Root,
			formatSeasonTallies(row.Seasons),
			strconv.Itoa(row.Total),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Show", "Root", "Seasons", "Episodes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	))
}

func formatSeasonTallies(tallies []distribution.SeasonTally) string {
	parts := make([]string, 0, len(tallies))
	for _, tally := range tallies {
		parts = append(parts, fmt.Sprintf("%s: %d", formatSeason(tally.Season), tally.Episodes))
	}
	return strings.Join(parts, ", ")
}

func formatSeason(season string) string {
	if n, err := strconv.Atoi(season); err == nil {
		return fmt.Sprintf("S%02d", n)
	}
	return "S" + season
}
