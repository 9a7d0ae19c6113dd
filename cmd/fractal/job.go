package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/fractal"
)

// Job kinds.
const (
	kindMandelbrot = "mandelbrot"
	kindJulia      = "julia"
	kindNewton     = "newton"
)

// errInvalidJob is returned for job descriptions that cannot be rendered.
var errInvalidJob = errors.New("fractal: invalid job")

// job describes one rendering: what to sample, where, and where to write it.
type job struct {
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"`
	Center     []float64 `yaml:"center"`
	Span       []float64 `yaml:"span"`
	Resolution []int     `yaml:"resolution"`
	MaxIter    int       `yaml:"max_iter"`
	Threads    int       `yaml:"threads"`
	Scale      int       `yaml:"scale"`
	Output     string    `yaml:"output"`

	// C is the Julia constant as [re, im].
	C []float64 `yaml:"c"`
	// Coeffs are the Newton polynomial coefficients, lowest power first.
	Coeffs []float64 `yaml:"coeffs"`
	// Tolerance overrides the Newton convergence tolerance.
	Tolerance float64 `yaml:"tolerance"`

	verbose bool
}

// jobFile is the top-level layout of a render configuration file.
type jobFile struct {
	Jobs []job `yaml:"jobs"`
}

// loadJobs reads and validates a YAML job file.
func loadJobs(path string) ([]job, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("fractal: read job file: %w", err)
	}
	return parseJobs(data)
}

// parseJobs decodes a YAML job document, applies defaults and validates every
// job.
func parseJobs(data []byte) ([]job, error) {
	var f jobFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fractal: parse job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("%w: no jobs defined", errInvalidJob)
	}

	for i := range f.Jobs {
		j := &f.Jobs[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i+1)
		}
		j.applyDefaults()
		if err := j.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", j.Name, err)
		}
	}
	return f.Jobs, nil
}

func (j *job) applyDefaults() {
	if j.Kind == "" {
		j.Kind = kindMandelbrot
	}
	if len(j.Center) == 0 {
		j.Center = []float64{-0.5, 0}
		if j.Kind != kindMandelbrot {
			j.Center = []float64{0, 0}
		}
	}
	if len(j.Span) == 0 {
		j.Span = []float64{3, 3}
	}
	if len(j.Resolution) == 0 {
		j.Resolution = []int{800, 800}
	}
	if j.MaxIter == 0 {
		j.MaxIter = 200
		if j.Kind == kindNewton {
			j.MaxIter = 50
		}
	}
	if j.Threads == 0 {
		j.Threads = 1
	}
	if j.Scale == 0 {
		j.Scale = 1
	}
	if j.Tolerance == 0 {
		j.Tolerance = fractal.DefaultTolerance
	}
	if j.Output == "" {
		j.Output = j.Name + ".png"
	}
}

func (j *job) validate() error {
	switch j.Kind {
	case kindMandelbrot:
	case kindJulia:
		if len(j.C) != 2 {
			return fmt.Errorf("%w: julia needs c as [re, im]", errInvalidJob)
		}
	case kindNewton:
		if _, err := fractal.NewPolynomial(j.Coeffs...); err != nil {
			return fmt.Errorf("%w: %w", errInvalidJob, err)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", errInvalidJob, j.Kind)
	}
	if len(j.Center) != 2 || len(j.Span) != 2 || len(j.Resolution) != 2 {
		return fmt.Errorf("%w: center, span and resolution need two values each", errInvalidJob)
	}
	if j.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1", errInvalidJob)
	}
	if _, err := j.viewport(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJob, err)
	}
	return nil
}

// viewport returns the sampled region at the supersampled resolution.
func (j *job) viewport() (fractal.Viewport, error) {
	return fractal.CenteredViewport(
		complex(j.Center[0], j.Center[1]),
		j.Span[0], j.Span[1],
		j.Resolution[0]*j.Scale, j.Resolution[1]*j.Scale,
	)
}

func (j *job) options() []fractal.SampleOption {
	return []fractal.SampleOption{
		fractal.WithThreads(j.Threads),
		fractal.WithVerbose(j.verbose),
		fractal.WithTolerance(j.Tolerance),
	}
}

// render samples the job and colorizes the result.
func (j *job) render() (*image.RGBA, error) {
	vp, err := j.viewport()
	if err != nil {
		return nil, err
	}

	switch j.Kind {
	case kindJulia:
		buf := fractal.NewGrid[int](vp.XRes, vp.YRes)
		if err := fractal.SampleJulia(buf, complex(j.C[0], j.C[1]), vp, j.MaxIter, j.options()...); err != nil {
			return nil, err
		}
		return colorizeEscape(buf, j.MaxIter), nil

	case kindNewton:
		return j.renderNewton(vp)

	default:
		buf := fractal.NewGrid[int](vp.XRes, vp.YRes)
		if err := fractal.SampleMandelbrot(buf, vp, j.MaxIter, j.options()...); err != nil {
			return nil, err
		}
		return colorizeEscape(buf, j.MaxIter), nil
	}
}

func (j *job) renderNewton(vp fractal.Viewport) (*image.RGBA, error) {
	p, err := fractal.NewPolynomial(j.Coeffs...)
	if err != nil {
		return nil, err
	}
	roots, err := p.Roots()
	if err != nil {
		return nil, err
	}

	out := fractal.NewNewtonBuffers(vp.XRes, vp.YRes)
	if err := fractal.SampleNewton(out, p, vp, j.MaxIter, j.options()...); err != nil {
		return nil, err
	}

	basins := fractal.NewGrid[int](vp.XRes, vp.YRes)
	if err := fractal.AssignRoots(basins, out.Re, out.Im, roots); err != nil {
		return nil, err
	}
	if err := fractal.MaskUnconverged(basins, out.Iterations, out.Limit); err != nil {
		return nil, err
	}
	return colorizeBasins(basins, out.Iterations, len(roots)), nil
}

// run renders the job and writes it to its output path.
func (j *job) run() error {
	img, err := j.render()
	if err != nil {
		return fmt.Errorf("%s: %w", j.Name, err)
	}
	if err := saveImage(j.Output, img, j.Scale); err != nil {
		return fmt.Errorf("%s: %w", j.Name, err)
	}
	fractal.Logger().Info("image written", "job", j.Name, "output", j.Output)
	return nil
}
