package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
)

// segmentDoc is the yaml form of a single segment.
type segmentDoc struct {
	Points    []float64 `yaml:"points,flow"`
	Collapsed bool      `yaml:"collapsed,omitempty"`
}

// newSegmentsCommand creates the "segments" subcommand that prints the Bézier
// segments of a curve without flattening it.
func newSegmentsCommand() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "segments [flags] [--] [x0 y0 x1 y1 ...]",
		Short: "Print the cubic Bézier segments of a curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			req, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			// Validate with a single step; segments do not depend on the step count.
			if _, err := spline.Flatten(1, req.Coords, req.Mode); err != nil {
				return err
			}
			knots, err := spline.PointsFromCoords(req.Coords)
			if err != nil {
				return err
			}

			segs := slices.Collect(spline.Transform(spline.Segments(knots, req.Mode), req.Transform))
			knots = spline.AppendTransformed(knots[:0], knots, req.Transform)
			logger.Debug("built segments", "mode", req.Mode, "knots", len(knots), "segments", len(segs))
			return writeSegments(cmd.OutOrStdout(), req, knots, segs)
		},
	}

	flags.register(cmd, "list, yaml, svg")
	return cmd
}

func writeSegments(w io.Writer, req request, knots []spline.Point, segs []spline.Segment) error {
	switch req.Format {
	case formatList:
		var sb strings.Builder
		for _, seg := range segs {
			b := seg.Bez
			for i, pt := range [4]spline.Point{b.P0, b.P1, b.P2, b.P3} {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(formatCoord(pt.X, req.Precision))
				sb.WriteByte(' ')
				sb.WriteString(formatCoord(pt.Y, req.Precision))
			}
			if seg.Collapsed {
				sb.WriteString(" collapsed")
			}
			sb.WriteByte('\n')
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case formatYAML:
		docs := make([]segmentDoc, len(segs))
		for i, seg := range segs {
			b := seg.Bez
			docs[i] = segmentDoc{
				Points:    roundCoords(spline.AppendCoords(nil, []spline.Point{b.P0, b.P1, b.P2, b.P3}), req.Precision),
				Collapsed: seg.Collapsed,
			}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	case formatSVG:
		return writeSVGDocument(w, spline.SegmentPath(slices.Values(segs)), knots, req.Precision)
	default:
		return fmt.Errorf("unknown output format %q (want list, yaml or svg)", req.Format)
	}
}
