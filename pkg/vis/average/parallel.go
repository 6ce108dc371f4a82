package average

import (
	"context"
	"runtime"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/MWATelescope/mwa-go-core/pkg/util"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
)

// Averager runs the block reduction fanned out across baselines. Every
// block reads a disjoint input slice and writes a disjoint output cell,
// so workers share nothing but the read-only inputs.
type Averager struct {
	workers  int
	logger   zerolog.Logger
	writeAPI api.WriteAPI
}

type AveragerOption func(a *Averager)

func WithWorkers(n int) AveragerOption {
	return func(a *Averager) {
		if n > 0 {
			a.workers = n
		}
	}
}

func WithLogger(logger zerolog.Logger) AveragerOption {
	return func(a *Averager) {
		a.logger = logger
	}
}

func WithMetrics(writeAPI api.WriteAPI) AveragerOption {
	return func(a *Averager) {
		a.writeAPI = writeAPI
	}
}

func NewAverager(opts ...AveragerOption) *Averager {
	a := &Averager{
		workers:  runtime.NumCPU(),
		logger:   log.Logger,
		writeAPI: &util.MockWriteAPI{}, // overwritten with option
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Average is the concurrent equivalent of AverageVisibilities and
// produces identical output. The context is only consulted between
// baselines; a cancelled run returns the context error and its partial
// output must be discarded.
func (a *Averager) Average(ctx context.Context, vis *cube.JonesCube, weights *cube.FloatCube, flags *cube.FlagCube, timeFactor, freqFactor int) (*cube.JonesCube, *cube.FloatCube, *cube.FlagCube, error) {
	avgVis, avgWeights, avgFlags, err := validateAndAllocate(vis, weights, flags, timeFactor, freqFactor, "Averager.Average")
	if err != nil {
		return nil, nil, nil, err
	}

	numTimesteps, numChannels, numBaselines := vis.Dims()
	timeRanges := cube.Chunks(numTimesteps, timeFactor)
	freqRanges := cube.Chunks(numChannels, freqFactor)

	workers := a.workers
	if workers > numBaselines {
		workers = numBaselines
	}
	if workers < 1 {
		workers = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	perWorker := cube.NumChunks(numBaselines, workers)
	if perWorker < 1 {
		perWorker = 1
	}

	elapsedMicros := util.TimeOperationMicroseconds(func() {
		for _, br := range cube.Chunks(numBaselines, perWorker) {
			thisRange := br
			eg.Go(func() error {
				for b := thisRange.Lo; b < thisRange.Hi; b++ {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					averageBaselineRange(vis, weights, flags, avgVis, avgWeights, avgFlags,
						timeRanges, freqRanges, b, b+1)
				}
				return nil
			})
		}
		err = eg.Wait()
	})
	if err != nil {
		return nil, nil, nil, err
	}

	numBlocks := len(timeRanges) * len(freqRanges) * numBaselines
	a.logger.Debug().
		Int("baselines", numBaselines).
		Int("blocks", numBlocks).
		Int("workers", workers).
		Int64("duration_us", elapsedMicros).
		Msg("averaged visibilities")

	go a.writeAPI.WritePoint(influxdb2.NewPoint("vis.average",
		map[string]string{},
		map[string]interface{}{
			"baselines":     numBaselines,
			"blocks":        numBlocks,
			"input_samples": numTimesteps * numChannels * numBaselines,
			"duration_us":   elapsedMicros,
		}, time.Now()))

	return avgVis, avgWeights, avgFlags, nil
}
