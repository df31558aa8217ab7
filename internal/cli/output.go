package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
)

const (
	formatList = "list"
	formatJSON = "json"
	formatYAML = "yaml"
	formatSVG  = "svg"
)

// polyline is the structured form of a flattened curve in json and yaml
// output.
type polyline struct {
	Mode   spline.Mode `json:"mode" yaml:"mode"`
	Steps  int         `json:"steps" yaml:"steps"`
	Count  int         `json:"count" yaml:"count"`
	Points []float64   `json:"points" yaml:"points,flow"`
}

// formatCoord formats a coordinate with at most precision decimals, or in
// the shortest exact form if precision is 0. Negative zero is printed as 0.
func formatCoord(v float64, precision int) string {
	if v == 0 {
		v = 0
	}
	if precision <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// roundCoords returns coords rounded to precision decimals.
func roundCoords(coords []float64, precision int) []float64 {
	if precision <= 0 {
		return coords
	}
	out := make([]float64, len(coords))
	for i, v := range coords {
		out[i], _ = strconv.ParseFloat(formatCoord(v, precision), 64)
	}
	return out
}

// writeList writes coords as a whitespace-separated list, one x-y pair per
// line.
func writeList(w io.Writer, coords []float64, precision int) error {
	var sb strings.Builder
	for i := 0; i+1 < len(coords); i += 2 {
		sb.WriteString(formatCoord(coords[i], precision))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(coords[i+1], precision))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writePolyline writes a flattened curve in the requested format.
func writePolyline(w io.Writer, req request, coords []float64) error {
	switch req.Format {
	case formatList:
		return writeList(w, coords, req.Precision)
	case formatJSON, formatYAML:
		doc := polyline{
			Mode:   req.Mode,
			Steps:  req.Steps,
			Count:  len(coords) / 2,
			Points: roundCoords(coords, req.Precision),
		}
		if req.Format == formatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case formatSVG:
		pts, err := spline.PointsFromCoords(coords)
		if err != nil {
			return err
		}
		return writeSVGDocument(w, spline.Polyline(pts), pts, req.Precision)
	default:
		return fmt.Errorf("unknown output format %q (want list, json, yaml or svg)", req.Format)
	}
}

// writeSVGDocument writes a standalone SVG document drawing path. The view
// box is the bounding box of pts with a margin of 5%.
func writeSVGDocument(w io.Writer, path iter.Seq[spline.PathElement], pts []spline.Point, precision int) error {
	box, ok := spline.BoundingBox(pts)
	if !ok {
		return fmt.Errorf("nothing to draw")
	}
	margin := max(box.Width(), box.Height()) * 0.05
	if margin == 0 {
		margin = 1
	}
	box = box.Inflate(margin, margin)
	opts := spline.SVGOptions{MaxPrecision: precision}

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	writef(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		formatCoord(box.X0, precision), formatCoord(box.Y0, precision),
		formatCoord(box.Width(), precision), formatCoord(box.Height(), precision))
	writef(`  <path fill="none" stroke="black" stroke-width="%s" d="`, formatCoord(margin/5, precision))
	if err != nil {
		return err
	}
	if err := spline.WriteSVG(w, path, opts); err != nil {
		return err
	}
	writef("\"/>\n</svg>\n")
	return err
}
