package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the effective category rule table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			table := cfg.RuleTable()
			rows := make([][]string, 0, len(table.Categories))
			for _, cat := range table.Categories {
				rows = append(rows, []string{
					cat.Name,
					strings.Join(cat.Extensions, ", "),
					strings.Join(cat.Prefixes, ", "),
				})
			}

			out := cmd.OutOrStdout()
			if useTable(out) {
				fmt.Fprintln(out, renderTable([]string{"Category", "Extensions", "Prefixes"}, rows, nil))
			} else {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\n", row[0], row[1], row[2])
				}
			}
			fmt.Fprintf(out, "default category: %s\n", table.Default)

			for _, amb := range table.Ambiguities() {
				fmt.Fprintf(out, "warning: extension %q claimed by %s and %s; %s wins\n",
					amb.Extension, amb.Shadowed, amb.Kept, amb.Kept)
			}
			return nil
		},
	}
}
