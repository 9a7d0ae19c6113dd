// Command fractal samples Mandelbrot, Julia and Newton fractals and writes
// them as colorized images.
//
// Usage:
//
//	fractal mandelbrot --center -0.5,0 --span 3,3 --resolution 800,800 -o mandelbrot.png
//	fractal julia --c -0.8,0.156 --threads 8 -o julia.tiff
//	fractal newton --coeffs -1,0,0,1 --max-iter 50 -o newton.bmp
//	fractal roots --coeffs -1,0,0,1
//	fractal render --config jobs.yaml --parallel 2
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/fractal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "fractal",
		Short:        "Sample and render escape-time and Newton fractals",
		SilenceUsage: true,
		Version:      fractal.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				fractal.SetLogger(nil)
				return
			}
			fractal.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress and timing")

	root.AddCommand(
		newSampleCmd(kindMandelbrot, "Render the Mandelbrot set", &verbose),
		newSampleCmd(kindJulia, "Render the Julia set of a constant c", &verbose),
		newSampleCmd(kindNewton, "Render the Newton fractal of a polynomial", &verbose),
		newRootsCmd(),
		newRenderCmd(&verbose),
	)
	return root
}

// newSampleCmd builds a subcommand rendering a single job of the given kind
// from flags. verbose points at the root command's --verbose flag.
func newSampleCmd(kind, short string, verbose *bool) *cobra.Command {
	j := job{Name: kind, Kind: kind}

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j.verbose = *verbose
			j.applyDefaults()
			if err := j.validate(); err != nil {
				return err
			}
			return j.run()
		},
	}

	defaultCenter := []float64{0, 0}
	defaultIter := 200
	if kind == kindMandelbrot {
		defaultCenter = []float64{-0.5, 0}
	}
	if kind == kindNewton {
		defaultIter = 50
	}

	f := cmd.Flags()
	f.Float64SliceVar(&j.Center, "center", defaultCenter, "centre of the region as re,im")
	f.Float64SliceVar(&j.Span, "span", []float64{3, 3}, "width and height of the region")
	f.IntSliceVar(&j.Resolution, "resolution", []int{800, 800}, "output size in pixels as x,y")
	f.IntVar(&j.MaxIter, "max-iter", defaultIter, "iteration cap per pixel")
	f.IntVarP(&j.Threads, "threads", "t", 1, "number of row bands sampled concurrently")
	f.IntVar(&j.Scale, "scale", 1, "supersampling factor applied before downscaling")
	f.StringVarP(&j.Output, "output", "o", kind+".png", "output image (.png, .bmp, .tif, .tiff)")

	switch kind {
	case kindJulia:
		f.Float64SliceVar(&j.C, "c", []float64{-0.8, 0.156}, "Julia constant as re,im")
	case kindNewton:
		f.Float64SliceVar(&j.Coeffs, "coeffs", []float64{-1, 0, 0, 1}, "polynomial coefficients, lowest power first")
		f.Float64Var(&j.Tolerance, "tolerance", fractal.DefaultTolerance, "convergence tolerance on |p(x)|")
	}
	return cmd
}

func newRootsCmd() *cobra.Command {
	var coeffs []float64

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Print the complex roots of a polynomial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := fractal.NewPolynomial(coeffs...)
			if err != nil {
				return err
			}
			roots, err := p.Roots()
			if err != nil {
				return err
			}
			for _, r := range roots {
				fmt.Fprintf(cmd.OutOrStdout(), "%.12g %+.12gi\n", real(r), imag(r))
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", []float64{-1, 0, 0, 1}, "polynomial coefficients, lowest power first")
	return cmd
}

func newRenderCmd(verbose *bool) *cobra.Command {
	var (
		config   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every job in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := loadJobs(config)
			if err != nil {
				return err
			}
			return runJobs(jobs, parallel, *verbose)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "jobs.yaml", "job file")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of jobs rendered at once")
	return cmd
}

// runJobs renders jobs with at most limit running at once and returns the
// first error.
func runJobs(jobs []job, limit int, verbose bool) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range jobs {
		j := &jobs[i]
		j.verbose = verbose
		g.Go(j.run)
	}
	return g.Wait()
}
