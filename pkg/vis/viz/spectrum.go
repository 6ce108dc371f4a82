package viz

import (
	"bytes"
	"math/cmplx"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/jones"
)

var polLabels = [jones.NumPols]string{"XX", "XY", "YX", "YY"}

// SpectrumPlotter plots the time-averaged visibility amplitude per
// channel for one baseline, one line per polarization.
type SpectrumPlotter struct {
	mu          sync.Mutex
	name        string
	baseline    int
	vis         *cube.JonesCube
	plotOptions []PlotOptions
}

func NewSpectrumPlotter(name string, baseline int) *SpectrumPlotter {
	return &SpectrumPlotter{
		name:     name,
		baseline: baseline,
	}
}

func (sp *SpectrumPlotter) Name() string {
	return sp.name
}

func (sp *SpectrumPlotter) AddPlotOption(opt PlotOptions) {
	sp.plotOptions = append(sp.plotOptions, opt)
}

// Update replaces the cube rendered by the next GetImage call.
func (sp *SpectrumPlotter) Update(vis *cube.JonesCube) {
	sp.mu.Lock()
	sp.vis = vis
	sp.mu.Unlock()
}

func (sp *SpectrumPlotter) GetImage() *ImageContainer {
	sp.mu.Lock()
	vis := sp.vis
	sp.mu.Unlock()
	if vis == nil {
		return nil
	}

	p := plotWithDefaults()
	p.Title.Text = sp.name
	p.X.Label.Text = "Channel"
	p.Y.Label.Text = "Amplitude"

	for _, opt := range sp.plotOptions {
		opt(p)
	}
	p.Add(plotter.NewGrid())

	amps := bandpassAmplitudes(vis, sp.baseline)
	for pol := 0; pol < jones.NumPols; pol++ {
		xys := make(plotter.XYs, len(amps[pol]))
		for f, a := range amps[pol] {
			xys[f] = plotter.XY{X: float64(f), Y: a}
		}
		plotutil.AddLines(p, polLabels[pol], xys)
	}

	return renderPNG(p, sp.name)
}

// bandpassAmplitudes returns the mean-over-time visibility amplitude
// per channel and polarization for one baseline.
func bandpassAmplitudes(vis *cube.JonesCube, baseline int) [jones.NumPols][]float64 {
	numTimesteps, numChannels, _ := vis.Dims()

	var amps [jones.NumPols][]float64
	for pol := range amps {
		amps[pol] = make([]float64, numChannels)
	}
	if numTimesteps == 0 {
		return amps
	}

	for f := 0; f < numChannels; f++ {
		for t := 0; t < numTimesteps; t++ {
			v := vis.At(t, f, baseline)
			for pol := 0; pol < jones.NumPols; pol++ {
				amps[pol][f] += cmplx.Abs(complex128(v[pol]))
			}
		}
		for pol := 0; pol < jones.NumPols; pol++ {
			amps[pol][f] /= float64(numTimesteps)
		}
	}
	return amps
}

func renderPNG(p *plot.Plot, name string) *ImageContainer {
	var imageData bytes.Buffer
	w, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		panic(err)
	}
	w.WriteTo(&imageData)
	return &ImageContainer{name: name, data: imageData.Bytes()}
}
