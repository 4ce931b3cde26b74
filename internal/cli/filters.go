package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adriansahlman/resample/filter"
)

func newFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the available resampling filters",
		Args:  cobra.NoArgs,
		// Listing needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSUPPORT")
			for _, kind := range filter.Kinds() {
				k := filter.Resolve(kind)
				support := "point"
				if !k.IsPoint() {
					support = strconv.FormatFloat(k.Support, 'g', -1, 64)
				}
				fmt.Fprintf(tw, "%s\t%s\n", kind, support)
			}
			return tw.Flush()
		},
	}
}
