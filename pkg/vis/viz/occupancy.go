package viz

import (
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
)

// OccupancyPlotter plots the flagged fraction per channel across all
// timesteps, baselines and polarizations.
type OccupancyPlotter struct {
	mu          sync.Mutex
	name        string
	flags       *cube.FlagCube
	plotOptions []PlotOptions
}

func NewOccupancyPlotter(name string) *OccupancyPlotter {
	return &OccupancyPlotter{name: name}
}

func (op *OccupancyPlotter) Name() string {
	return op.name
}

func (op *OccupancyPlotter) AddPlotOption(opt PlotOptions) {
	op.plotOptions = append(op.plotOptions, opt)
}

func (op *OccupancyPlotter) Update(flags *cube.FlagCube) {
	op.mu.Lock()
	op.flags = flags
	op.mu.Unlock()
}

func (op *OccupancyPlotter) GetImage() *ImageContainer {
	op.mu.Lock()
	flags := op.flags
	op.mu.Unlock()
	if flags == nil {
		return nil
	}

	p := plotWithDefaults()
	p.Title.Text = op.name
	p.X.Label.Text = "Channel"
	p.Y.Label.Text = "Flagged fraction"
	p.Y.Min = 0
	p.Y.Max = 1

	for _, opt := range op.plotOptions {
		opt(p)
	}
	p.Add(plotter.NewGrid())

	occ := flagOccupancy(flags)
	xys := make(plotter.XYs, len(occ))
	for f, frac := range occ {
		xys[f] = plotter.XY{X: float64(f), Y: frac}
	}
	plotutil.AddLines(p, "flagged", xys)

	return renderPNG(p, op.name)
}

// flagOccupancy returns the fraction of flagged samples in each channel.
func flagOccupancy(flags *cube.FlagCube) []float64 {
	numTimesteps, numChannels, numBaselines, numPols := flags.Dims()

	occ := make([]float64, numChannels)
	cell := make([]float64, 0, numTimesteps*numBaselines*numPols)
	for f := 0; f < numChannels; f++ {
		cell = cell[:0]
		for t := 0; t < numTimesteps; t++ {
			for b := 0; b < numBaselines; b++ {
				for p := 0; p < numPols; p++ {
					if flags.At(t, f, b, p) {
						cell = append(cell, 1)
					} else {
						cell = append(cell, 0)
					}
				}
			}
		}
		occ[f] = stat.Mean(cell, nil)
	}
	return occ
}
