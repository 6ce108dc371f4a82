// Package simulate produces synthetic visibility cubes for tests,
// benchmarks and the demo binary. No real telescope data is involved.
package simulate

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/jones"
)

// Ramp synthesizes a deterministic cube whose values encode their own
// indices: the visibility imaginary parts carry the timestep, channel
// and baseline indices, weights count up from 1, and the only flags set
// are the even polarizations of cell (0, 0, 0).
func Ramp(timesteps, channels, baselines int) (*cube.JonesCube, *cube.FloatCube, *cube.FlagCube) {
	vis := cube.NewJonesCube(timesteps, channels, baselines)
	weights := cube.NewFloatCube(timesteps, channels, baselines, jones.NumPols)
	flags := cube.NewFlagCube(timesteps, channels, baselines, jones.NumPols)

	for t := 0; t < timesteps; t++ {
		for f := 0; f < channels; f++ {
			for b := 0; b < baselines; b++ {
				vis.Set(t, f, b, jones.Matrix{
					complex(0, float32(t)),
					complex(0, float32(f)),
					complex(0, float32(b)),
					complex(0, 1),
				})
				for p := 0; p < jones.NumPols; p++ {
					ramp := t*timesteps*channels*baselines +
						f*timesteps*channels +
						b*timesteps
					weights.Set(t, f, b, p, float32(ramp+p+1))
					flags.Set(t, f, b, p, ramp+p%2 == 0)
				}
			}
		}
	}

	return vis, weights, flags
}

// PointSource synthesizes an unresolved source of the given flux at
// phase center: every visibility is flux on the parallel hands plus
// complex gaussian noise, weights are unity, nothing is flagged.
func PointSource(timesteps, channels, baselines int, flux, noiseSigma float64, seed int64) (*cube.JonesCube, *cube.FloatCube, *cube.FlagCube) {
	vis := cube.NewJonesCube(timesteps, channels, baselines)
	weights := cube.NewFloatCube(timesteps, channels, baselines, jones.NumPols)
	flags := cube.NewFlagCube(timesteps, channels, baselines, jones.NumPols)

	rng := rand.New(rand.NewSource(seed))
	noise := func() complex64 {
		return complex(float32(rng.NormFloat64()*noiseSigma), float32(rng.NormFloat64()*noiseSigma))
	}

	for t := 0; t < timesteps; t++ {
		for f := 0; f < channels; f++ {
			for b := 0; b < baselines; b++ {
				fc := complex(float32(flux), 0)
				vis.Set(t, f, b, jones.Matrix{
					fc + noise(),
					noise(),
					noise(),
					fc + noise(),
				})
			}
		}
	}
	weights.Fill(1)

	return vis, weights, flags
}

// WeightSummary returns the mean and standard deviation of a weight
// cube, for log output.
func WeightSummary(weights *cube.FloatCube) (mean, stddev float64) {
	data := weights.Data()
	wide := make([]float64, len(data))
	for i, w := range data {
		wide[i] = float64(w)
	}
	return stat.MeanStdDev(wide, nil)
}
