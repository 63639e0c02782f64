package cmd

import (
	"fmt"

	"github.com/gregorybchris/typogenetics/internal/typo"
	"github.com/spf13/cobra"
)

// foldCmd is for showing which base an enzyme binds to, and where
var foldCmd = &cobra.Command{
	Use:     "fold [enzyme] [strand]",
	Short:   "Fold an enzyme and find its binding site",
	Example: "  typogenetics fold cop-ina-rpy-off CGGATACTAAACCGA",
	Args:    cobra.RangeArgs(1, 2),
	Long: `Fold an enzyme and write out its orientation and the base it binds to.
If a strand is passed, also write out the index the enzyme binds to on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enzyme, err := typo.ParseEnzyme(args[0])
		if err != nil {
			return err
		}

		orientation := typo.Fold(enzyme)
		fmt.Fprintf(cmd.OutOrStdout(), "orientation: %s\n", orientation)
		fmt.Fprintf(cmd.OutOrStdout(), "binds: %s\n", typo.BindingAffinity(orientation))
		if len(args) < 2 {
			return nil
		}

		strand, err := typo.ParseStrand(args[1])
		if err != nil {
			return err
		}
		if site, ok := typo.BindingSite(enzyme, strand); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "site: %d\n", site)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "site: none")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(foldCmd)
}
