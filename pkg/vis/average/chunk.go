// Package average reduces visibility cubes over blocks of timesteps and
// channels, Cotter-style: unflagged weights are summed, the averaged
// visibility is the weighted mean of the unflagged samples, and a chunk
// whose samples are all flagged falls back to the unweighted mean with
// zero weight and its output flag set.
package average

import (
	"fmt"
	"math"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/jones"
)

const jonesNumPols = jones.NumPols

// AverageChunkPols reduces one chunk of samples to a single averaged
// visibility, one weight per polarization, and one combined flag, with
// weights and flags supplied at per-polarization granularity.
//
// vis holds the chunk's samples ordered by timestep then channel;
// weights and flags hold the matching length-4 per-polarization values
// for each sample. Accumulation is done in double precision.
//
// A sample's polarization contributes to the weighted sum when its flag
// is unset and its weight is non-negative; a weight of exactly zero is
// still admitted. If no polarization of any sample contributes, the
// result is the unweighted mean of all samples, every output weight is
// zero, and the combined flag is set. The flag is chunk-wide: one
// contributing polarization anywhere unflags all four outputs.
func AverageChunkPols(vis []jones.Matrix, weights [][]float32, flags [][]bool) (jones.Matrix, [jonesNumPols]float32, bool) {
	if len(weights) != len(vis) || len(flags) != len(vis) {
		panic(fmt.Errorf("jones, weight and flag chunks must have the same length (%d, %d, %d)",
			len(vis), len(weights), len(flags)))
	}

	chunkSize := len(vis)

	var weightSum [jonesNumPols]float64
	jonesSum := jones.Zero64()
	weightedSum := jones.Zero64()
	allFlagged := true

	for i, v := range vis {
		v64 := v.To64()
		jonesSum.AddAssign(v64)

		sampleWeights := weights[i]
		sampleFlags := flags[i]
		for p := 0; p < jonesNumPols; p++ {
			if !sampleFlags[p] && sampleWeights[p] >= 0 {
				w := float64(sampleWeights[p])
				weightedSum[p] += v64[p] * complex(w, 0)
				weightSum[p] += w
				allFlagged = false
			}
		}
	}

	var avg jones.Matrix64
	var avgWeights [jonesNumPols]float32
	for p := 0; p < jonesNumPols; p++ {
		if !allFlagged {
			avg[p] = weightedSum[p] / complex(weightSum[p], 0)
		} else {
			avg[p] = jonesSum[p] / complex(float64(chunkSize), 0)
		}
		avgWeights[p] = float32(weightSum[p])
	}

	return avg.To32(), avgWeights, allFlagged
}

// AverageChunkScalar reduces one chunk of samples with a single scalar
// weight per (timestep, channel) sample rather than per polarization,
// returning the averaged visibility, the summed weight magnitude, and a
// flag covering the whole chunk.
//
// Unlike AverageChunkPols, a weight of exactly zero excludes its sample:
// the scalar weight is an already-aggregated quantity, so zero means
// nothing contributed. This asymmetry with the per-polarization variant
// is deliberate; do not unify the two inclusion tests.
func AverageChunkScalar(vis []jones.Matrix, weights []float32) (jones.Matrix, float32, bool) {
	if len(weights) != len(vis) {
		panic(fmt.Errorf("jones and weight chunks must have the same length (%d, %d)",
			len(vis), len(weights)))
	}

	chunkSize := float64(len(vis))

	var weightSum float64
	jonesSum := jones.Zero64()
	weightedSum := jones.Zero64()
	flagged := true

	for i, v := range vis {
		v64 := v.To64()
		jonesSum.AddAssign(v64)

		w := weights[i]
		if w >= 0 && math.Abs(float64(w)) > 0 {
			wAbs := math.Abs(float64(w))
			weightSum += wAbs
			flagged = false
			weightedSum.AddAssign(v64.Scale(wAbs))
		}
	}

	var avg jones.Matrix64
	if !flagged {
		avg = weightedSum.Div(weightSum)
	} else {
		avg = jonesSum.Div(chunkSize)
	}

	return avg.To32(), float32(weightSum), flagged
}
