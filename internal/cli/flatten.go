package cli

import (
	"github.com/spf13/cobra"

	"honnef.co/go/spline"
)

// newFlattenCommand creates the "flatten" subcommand that turns knots into a polyline.
func newFlattenCommand() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "flatten [flags] [--] [x0 y0 x1 y1 ...]",
		Short: "Flatten knots into a polyline",
		Long: "Flatten interprets the coordinates as knots of a fitted spline or a raw Bézier chain " +
			"and prints the resulting polyline. Use -- before the coordinates if any of them is negative.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			req, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}

			out, err := spline.Flatten(req.Steps, req.Coords, req.Mode)
			if err != nil {
				return err
			}
			logger.Debug("flattened curve",
				"mode", req.Mode,
				"steps", req.Steps,
				"knots", len(req.Coords)/2,
				"points", len(out)/2,
				"bound", spline.Bound(req.Mode, len(req.Coords)/2, req.Steps))

			if req.Transform != spline.Identity {
				pts, err := spline.PointsFromCoords(out)
				if err != nil {
					return err
				}
				out = spline.AppendCoords(out[:0], spline.AppendTransformed(pts[:0], pts, req.Transform))
			}

			return writePolyline(cmd.OutOrStdout(), req, out)
		},
	}

	flags.register(cmd, "list, json, yaml, svg")
	return cmd
}
