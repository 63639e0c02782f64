package cmd

import (
	"github.com/gregorybchris/typogenetics/config"
	"github.com/gregorybchris/typogenetics/internal/search"
	"github.com/gregorybchris/typogenetics/internal/typo"
	"github.com/spf13/cobra"
)

// searchCmd is for finding edits of a strand whose enzyme keeps its function
var searchCmd = &cobra.Command{
	Use:     "search [strand] [apply-strand]",
	Short:   "Search for edited strands with the same function",
	Example: "  typogenetics search CGGATACTAAACCGA CGGATACTAAACCGA --depth 5 --edits 20",
	Args:    cobra.ExactArgs(2),
	Long: `Search for strands, a few random edits away from the initial strand,
whose enzymes do the same thing as the initial strand's.

A strand's function is the longest strand its longest enzyme makes when
applied to the apply strand. Edits (80% point mutations, 10% insertions,
10% deletions) that keep that function are edited again, breadth first,
until the search depth is reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		initial, err := typo.ParseStrand(args[0])
		if err != nil {
			return err
		}
		apply, err := typo.ParseStrand(args[1])
		if err != nil {
			return err
		}

		conf, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		results, err := search.SearchTrials(cmd.Context(), initial, apply, conf.Depth, conf.Edits, search.Trials{
			Count: conf.Trials,
			Seed:  conf.Seed,
			Log:   logger,
		})
		if err != nil {
			return err
		}

		report := search.NewSearchReport(initial.String(), apply.String(), search.Params{
			Depth:  conf.Depth,
			Edits:  conf.Edits,
			Seed:   conf.Seed,
			Trials: conf.Trials,
		}, results, conf.PrintStrands)
		return writeReport(cmd.OutOrStdout(), report, "Valid strands:", conf)
	},
}

func init() {
	searchCmd.Flags().Int("depth", config.DefaultDepth, "number of edits away from the initial strand to search")
	searchCmd.Flags().Int("edits", config.DefaultEdits, "number of edits to try on each strand")
	searchCmd.Flags().Int64("seed", 0, seedHelp)
	searchCmd.Flags().Int("trials", config.DefaultTrials, "number of independent searches to run in parallel")
	searchCmd.Flags().Bool("print-strands", false, "write out every valid strand")
	searchCmd.Flags().StringP("out", "o", "", outHelp)

	RootCmd.AddCommand(searchCmd)
}
