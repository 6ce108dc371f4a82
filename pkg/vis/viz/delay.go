package viz

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/window"
)

// DelayPlotter plots the delay power spectrum of one baseline: the
// time-averaged XX spectrum is tapered along frequency and Fourier
// transformed into the delay domain.
type DelayPlotter struct {
	mu          sync.Mutex
	name        string
	baseline    int
	winType     window.Type
	vis         *cube.JonesCube
	plotOptions []PlotOptions
}

func NewDelayPlotter(name string, baseline int, winType window.Type) *DelayPlotter {
	return &DelayPlotter{
		name:     name,
		baseline: baseline,
		winType:  winType,
	}
}

func (dp *DelayPlotter) Name() string {
	return dp.name
}

func (dp *DelayPlotter) AddPlotOption(opt PlotOptions) {
	dp.plotOptions = append(dp.plotOptions, opt)
}

func (dp *DelayPlotter) Update(vis *cube.JonesCube) {
	dp.mu.Lock()
	dp.vis = vis
	dp.mu.Unlock()
}

func (dp *DelayPlotter) GetImage() *ImageContainer {
	dp.mu.Lock()
	vis := dp.vis
	dp.mu.Unlock()
	if vis == nil {
		return nil
	}

	power := delayPower(vis, dp.baseline, dp.winType)

	p := plotWithDefaults()
	p.Title.Text = dp.name
	p.X.Label.Text = "Delay bin"
	p.Y.Label.Text = "Power (dB)"

	for _, opt := range dp.plotOptions {
		opt(p)
	}
	p.Add(plotter.NewGrid())

	half := len(power) / 2
	xys := make(plotter.XYs, len(power))
	for i, pw := range power {
		xys[i] = plotter.XY{X: float64(i - half), Y: pw}
	}
	plotutil.AddLines(p, "delay", xys)

	return renderPNG(p, dp.name)
}

// delayPower computes the shifted delay power spectrum in dB of the
// time-averaged XX visibilities for one baseline.
func delayPower(vis *cube.JonesCube, baseline int, winType window.Type) []float64 {
	numTimesteps, numChannels, _ := vis.Dims()
	if numChannels == 0 || numTimesteps == 0 {
		return nil
	}

	spectrum := make([]complex128, numChannels)
	for f := 0; f < numChannels; f++ {
		var sum complex128
		for t := 0; t < numTimesteps; t++ {
			sum += complex128(vis.At(t, f, baseline)[0])
		}
		spectrum[f] = sum / complex(float64(numTimesteps), 0)
	}

	taper := window.ForType(winType, numChannels)
	for i := range spectrum {
		spectrum[i] *= complex(taper[i], 0)
	}

	coeffs := fft.FFT(spectrum)
	power := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mag := cmplx.Abs(c)
		if mag < 1e-12 {
			mag = 1e-12
		}
		power[i] = 20 * math.Log10(mag)
	}
	return fftshift(power)
}

func fftshift(freqs []float64) []float64 {
	midpoint := len(freqs) / 2
	if len(freqs)%2 == 0 {
		midpoint--
	}

	ret := make([]float64, 0, len(freqs))
	ret = append(ret, freqs[midpoint+1:]...)
	ret = append(ret, freqs[0:midpoint+1]...)
	return ret
}
