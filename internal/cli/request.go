package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/config"
)

// request is the fully resolved input of a command: flags override the job
// file, which overrides the environment, which overrides the defaults.
type request struct {
	Steps     int
	Mode      spline.Mode
	Format    string
	Precision int
	Coords    []float64
	Transform spline.Affine
}

// requestFlags are the flags shared by commands that take knots.
type requestFlags struct {
	steps     int
	mode      string
	format    string
	precision int
	file      string
	scale     []float64
	translate []float64
	rotate    float64
}

func (f *requestFlags) register(cmd *cobra.Command, formats string) {
	cmd.Flags().IntVarP(&f.steps, "steps", "s", 12, "Number of points per curve segment")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "fitted", "Knot interpretation (fitted, raw)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "list", "Output format ("+formats+")")
	cmd.Flags().IntVar(&f.precision, "precision", 0, "Decimals per coordinate (0 for shortest exact form)")
	cmd.Flags().StringVar(&f.file, "file", "", "Read mode, steps and points from a YAML job file")
	cmd.Flags().Float64SliceVar(&f.scale, "scale", nil, "Scale the output by sx[,sy]")
	cmd.Flags().Float64Var(&f.rotate, "rotate", 0, "Rotate the output by the given angle in degrees, after scaling")
	cmd.Flags().Float64SliceVar(&f.translate, "translate", nil, "Move the output by tx,ty, after scaling and rotating")
}

// transform builds the output transform from the scale, rotate and
// translate flags.
func (f *requestFlags) transform() (spline.Affine, error) {
	aff := spline.Identity
	switch len(f.scale) {
	case 0:
	case 1:
		aff = aff.ThenScale(f.scale[0], f.scale[0])
	case 2:
		aff = aff.ThenScale(f.scale[0], f.scale[1])
	default:
		return spline.Affine{}, fmt.Errorf("--scale takes one or two factors, got %d", len(f.scale))
	}
	if f.rotate != 0 {
		aff = aff.ThenRotate(f.rotate * math.Pi / 180)
	}
	switch len(f.translate) {
	case 0:
	case 2:
		aff = aff.ThenTranslate(f.translate[0], f.translate[1])
	default:
		return spline.Affine{}, fmt.Errorf("--translate takes two offsets, got %d", len(f.translate))
	}
	return aff, nil
}

// resolve merges the environment, the job file, the flags and the positional
// coordinates into a request.
func (f *requestFlags) resolve(cmd *cobra.Command, args []string) (request, error) {
	cfg := ConfigFromContext(cmd.Context())
	req := request{
		Steps:     cfg.Steps,
		Mode:      cfg.Mode,
		Format:    cfg.Format,
		Precision: cfg.Precision,
	}

	if f.file != "" {
		if len(args) > 0 {
			return request{}, fmt.Errorf("points given both as arguments and in %q", f.file)
		}
		job, err := config.LoadJob(f.file)
		if err != nil {
			return request{}, err
		}
		if job.Steps != 0 {
			req.Steps = job.Steps
		}
		if job.Mode != 0 {
			req.Mode = job.Mode
		}
		req.Coords = job.Points
	}

	flags := cmd.Flags()
	if flags.Changed("steps") {
		req.Steps = f.steps
	}
	if flags.Changed("mode") {
		mode, err := spline.ParseMode(f.mode)
		if err != nil {
			return request{}, err
		}
		req.Mode = mode
	}
	if flags.Changed("format") {
		req.Format = f.format
	}
	if flags.Changed("precision") {
		req.Precision = f.precision
	}
	if req.Precision < 0 {
		return request{}, fmt.Errorf("precision must not be negative, got %d", req.Precision)
	}

	aff, err := f.transform()
	if err != nil {
		return request{}, err
	}
	req.Transform = aff

	if len(args) > 0 {
		coords, err := parseCoords(args)
		if err != nil {
			return request{}, err
		}
		req.Coords = coords
	}
	if len(req.Coords) == 0 {
		return request{}, errors.New("no points given")
	}
	return req, nil
}

// parseCoords parses positional arguments as coordinates.
func parseCoords(args []string) ([]float64, error) {
	coords := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		coords = append(coords, v)
	}
	return coords, nil
}
