package fractal

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal/internal/parallel"
)

// progressInterval is the number of rows between progress records.
const progressInterval = 100

// progress reports per-row progress for one band. It is only enabled when a
// single band covers the whole viewport, so records never interleave.
type progress struct {
	enabled bool
	xres    int
	total   int
	printer *message.Printer
	log     *slog.Logger
}

// row records that sampling reached the given row.
func (p *progress) row(row int) {
	if !p.enabled || row%progressInterval != 0 || row == 0 {
		return
	}
	p.log.Info("sampling progress",
		"processed", grouped(p.printer, row*p.xres),
		"total", grouped(p.printer, p.total))
}

// grouped formats n with the printer's digit grouping, e.g. 2,500.
func grouped(p *message.Printer, n int) string {
	return p.Sprintf("%d", n)
}

// bandFunc samples every pixel of one band.
type bandFunc func(band parallel.Band, p *progress)

// runBands partitions the viewport rows, runs fn once per band on its own
// goroutine and waits for all of them. It owns the verbose reporting shared by
// all samplers.
func runBands(name string, vp Viewport, o sampleOptions, fn bandFunc) error {
	bands, err := parallel.Bands(o.threads, vp.YRes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	log := Logger().With("sampler", name)
	printer := message.NewPrinter(language.English)
	total := vp.Points()

	workerProgress := o.verbose && o.threads == 1

	if o.verbose {
		log.Info("sampling started", "points", grouped(printer, total), "threads", o.threads)
	}

	start := time.Now()
	parallel.ForEachBand(bands, func(b parallel.Band) {
		p := &progress{
			enabled: workerProgress,
			xres:    vp.XRes,
			total:   total,
			printer: printer,
			log:     log,
		}
		fn(b, p)
	})
	elapsed := time.Since(start)

	if o.verbose {
		log.Info("sampling finished", "points", grouped(printer, total), "elapsed", elapsed)
	}
	return nil
}

func checkMaxIterations(maxItr int) error {
	if maxItr < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidArgument, maxItr)
	}
	return nil
}
