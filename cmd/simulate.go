package cmd

import (
	"fmt"
	"io"

	"github.com/gregorybchris/typogenetics/config"
	"github.com/gregorybchris/typogenetics/internal/search"
	"github.com/gregorybchris/typogenetics/internal/typo"
	"github.com/spf13/cobra"
)

var (
	seedHelp = `seed for the random source. Trial i is seeded seed+i.
0 seeds from the clock`

	outHelp = `file to write a report to <JSON, YAML>`
)

// simulateCmd is for growing a pool of strands from an initial strand
var simulateCmd = &cobra.Command{
	Use:     "simulate [strand]",
	Short:   "Simulate random enzyme activity on a pool of strands",
	Example: "  typogenetics simulate CGGATACTAAACCGA --iter 10000 --seed 42",
	Args:    cobra.ExactArgs(1),
	Long: `Grow a pool of strands, starting from a single strand.

Every iteration picks a random strand in the pool, translates it, and applies
one of its enzymes to another random strand of the pool. New strands join the
pool. The number of distinct strands found is written out at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		initial, err := typo.ParseStrand(args[0])
		if err != nil {
			return err
		}

		conf, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		results, err := search.SimulateTrials(cmd.Context(), initial, conf.Iterations, search.Trials{
			Count: conf.Trials,
			Seed:  conf.Seed,
			Log:   logger,
		})
		if err != nil {
			return err
		}

		report := search.NewSimulateReport(initial.String(), search.Params{
			Iterations: conf.Iterations,
			Seed:       conf.Seed,
			Trials:     conf.Trials,
		}, results, conf.PrintStrands)
		return writeReport(cmd.OutOrStdout(), report, "Unique strands:", conf)
	},
}

// writeReport writes the strand listing (if asked for) and the summary, and saves
// the report when an output file is set.
func writeReport(w io.Writer, report *search.Report, heading string, conf *config.Config) error {
	if conf.PrintStrands {
		fmt.Fprintln(w, heading)
		for _, s := range report.Strands {
			fmt.Fprintf(w, "- %s\n", s)
		}
	}
	fmt.Fprintln(w, report.Summary())

	if conf.Out != "" {
		if _, err := search.WriteReport(conf.Out, report); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	simulateCmd.Flags().Int("iter", config.DefaultIterations, "number of iterations to simulate")
	simulateCmd.Flags().Int64("seed", 0, seedHelp)
	simulateCmd.Flags().Int("trials", config.DefaultTrials, "number of independent simulations to run in parallel")
	simulateCmd.Flags().Bool("print-strands", false, "write out every strand discovered")
	simulateCmd.Flags().StringP("out", "o", "", outHelp)

	RootCmd.AddCommand(simulateCmd)
}
