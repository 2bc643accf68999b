package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tidy/internal/logging"
	"tidy/internal/sorter"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run [directory]",
		Short: "Sort files and folders into category directories",
		Long: "Sort the direct children of a directory into category folders. " +
			"Files are placed by filename prefix or extension; subfolders are placed " +
			"by the majority category of their contents. Defaults to the current directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			summary, err := sorter.New(cfg, logger).Run(cmd.Context(), dir)
			if err != nil {
				// Top-level failures end the run gracefully: log and absorb.
				logger.Error("run failed", logging.Error(err))
				return nil
			}

			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func printSummary(out io.Writer, summary *sorter.Summary) {
	rows := summaryRows(summary)
	if len(rows) > 0 {
		if useTable(out) {
			fmt.Fprintln(out, renderTable(
				[]string{"Entry", "Category", "Outcome", "Detail"},
				rows,
				nil,
			))
		} else {
			for _, row := range rows {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
			}
		}
	}
	fmt.Fprintf(out, "moved %d, collisions %d, already placed %d, failures %d\n",
		summary.Moved, summary.Collisions, summary.AlreadyPlaced, summary.Failures)
}

func summaryRows(summary *sorter.Summary) [][]string {
	rows := make([][]string, 0, len(summary.Results))
	for _, res := range summary.Results {
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		rows = append(rows, []string{res.Name, res.Category, res.Disposition.String(), detail})
	}
	sortRows(rows, 1, 0)
	return rows
}

func useTable(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
