package cmd

import (
	"fmt"

	"github.com/gregorybchris/typogenetics/internal/typo"
	"github.com/spf13/cobra"
)

// rewriteCmd is for applying an enzyme to a strand
var rewriteCmd = &cobra.Command{
	Use:     "rewrite [enzyme] [strand]",
	Short:   "Rewrite a strand with an enzyme",
	Example: "  typogenetics rewrite cop-ina-rpy-off CGGATACTAAACCGA",
	Args:    cobra.ExactArgs(2),
	Long: `Bind an enzyme to a strand and run its amino acids against it,
writing out every strand made.

An enzyme that cannot bind to the strand leaves it as it was.
Use --debug to trace each amino acid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enzyme, err := typo.ParseEnzyme(args[0])
		if err != nil {
			return err
		}
		strand, err := typo.ParseStrand(args[1])
		if err != nil {
			return err
		}

		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		res := typo.NewRewriter(logger).Rewrite(enzyme, strand)
		fmt.Fprintln(cmd.OutOrStdout(), "New strands:")
		for _, s := range res.Strands {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rewriteCmd)
}
