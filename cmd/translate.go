package cmd

import (
	"fmt"

	"github.com/gregorybchris/typogenetics/internal/typo"
	"github.com/spf13/cobra"
)

// translateCmd is for reading a strand into its enzymes
var translateCmd = &cobra.Command{
	Use:     "translate [strand]",
	Short:   "Translate a strand into enzymes",
	Example: "  typogenetics translate CGGATACTAAACCGA",
	Args:    cobra.ExactArgs(1),
	Long: `Translate a strand into the enzymes it codes for, one per line.

Each duplet of the strand codes for an amino acid, except AA, which ends an enzyme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, err := typo.ParseStrand(args[0])
		if err != nil {
			return err
		}

		for _, e := range typo.Translate(strand) {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(translateCmd)
}
