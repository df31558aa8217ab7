package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/spline"
)

// newBoundCommand creates the "bound" subcommand that prints the maximum
// number of points a flatten call can produce.
func newBoundCommand() *cobra.Command {
	var (
		points   int
		steps    int
		modeName string
	)

	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Print the maximum number of points flattening can produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFromContext(cmd.Context())
			mode := cfg.Mode
			if cmd.Flags().Changed("mode") {
				var err error
				mode, err = spline.ParseMode(modeName)
				if err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("steps") {
				steps = cfg.Steps
			}
			if points < 0 {
				return fmt.Errorf("points must not be negative, got %d", points)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), spline.Bound(mode, points, steps))
			return err
		},
	}

	cmd.Flags().IntVarP(&points, "points", "n", 0, "Number of knots")
	cmd.Flags().IntVarP(&steps, "steps", "s", 12, "Number of points per curve segment")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "fitted", "Knot interpretation (fitted, raw)")
	_ = cmd.MarkFlagRequired("points")
	return cmd
}
