package average

import (
	"fmt"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/jones"
)

// AverageVisibilities averages a visibility cube in time and frequency
// by the given factors.
//
// vis has dimensions (timestep, channel, baseline); weights and flags
// both have dimensions (timestep, channel, baseline, 4). The outputs
// have their time and channel axes reduced by ceiling division and the
// baseline axis preserved. When a factor does not divide its axis, the
// trailing chunk is averaged from only the samples present.
//
// Averaging is validated against Cotter: each timeFactor x freqFactor
// chunk is reduced with AverageChunkPols.
func AverageVisibilities(vis *cube.JonesCube, weights *cube.FloatCube, flags *cube.FlagCube, timeFactor, freqFactor int) (*cube.JonesCube, *cube.FloatCube, *cube.FlagCube, error) {
	avgVis, avgWeights, avgFlags, err := validateAndAllocate(vis, weights, flags, timeFactor, freqFactor, "AverageVisibilities")
	if err != nil {
		return nil, nil, nil, err
	}

	numTimesteps, numChannels, numBaselines := vis.Dims()
	timeRanges := cube.Chunks(numTimesteps, timeFactor)
	freqRanges := cube.Chunks(numChannels, freqFactor)

	averageBaselineRange(vis, weights, flags, avgVis, avgWeights, avgFlags,
		timeRanges, freqRanges, 0, numBaselines)

	return avgVis, avgWeights, avgFlags, nil
}

func validateAndAllocate(vis *cube.JonesCube, weights *cube.FloatCube, flags *cube.FlagCube, timeFactor, freqFactor int, function string) (*cube.JonesCube, *cube.FloatCube, *cube.FlagCube, error) {
	if timeFactor < 1 || freqFactor < 1 {
		return nil, nil, nil, fmt.Errorf("averaging factors must be positive, got time %d frequency %d", timeFactor, freqFactor)
	}

	numTimesteps, numChannels, numBaselines := vis.Dims()

	if wt, wf, wb, wp := weights.Dims(); wt != numTimesteps || wf != numChannels || wb != numBaselines || wp != jonesNumPols {
		return nil, nil, nil, badPolCubeShape("weights", function,
			numTimesteps, numChannels, numBaselines, wt, wf, wb, wp)
	}
	if ft, ff, fb, fp := flags.Dims(); ft != numTimesteps || ff != numChannels || fb != numBaselines || fp != jonesNumPols {
		return nil, nil, nil, badPolCubeShape("flags", function,
			numTimesteps, numChannels, numBaselines, ft, ff, fb, fp)
	}

	avgTimesteps := cube.NumChunks(numTimesteps, timeFactor)
	avgChannels := cube.NumChunks(numChannels, freqFactor)

	avgVis := cube.NewJonesCube(avgTimesteps, avgChannels, numBaselines)
	avgWeights := cube.NewFloatCube(avgTimesteps, avgChannels, numBaselines, jonesNumPols)
	avgFlags := cube.NewFlagCube(avgTimesteps, avgChannels, numBaselines, jonesNumPols)
	return avgVis, avgWeights, avgFlags, nil
}

// scratch holds the reusable chunk-gather buffers for one goroutine.
type scratch struct {
	vis     []jones.Matrix
	weights [][]float32
	flags   [][]bool
}

func newScratch(chunkCap int) *scratch {
	return &scratch{
		vis:     make([]jones.Matrix, 0, chunkCap),
		weights: make([][]float32, 0, chunkCap),
		flags:   make([][]bool, 0, chunkCap),
	}
}

// gather collects one (time range, channel range, baseline) block into
// the scratch buffers, samples ordered by timestep then channel. The
// weight and flag entries are views into the input cubes.
func (s *scratch) gather(vis *cube.JonesCube, weights *cube.FloatCube, flags *cube.FlagCube, tr, fr cube.Range, b int) {
	s.vis = s.vis[:0]
	s.weights = s.weights[:0]
	s.flags = s.flags[:0]
	for t := tr.Lo; t < tr.Hi; t++ {
		for f := fr.Lo; f < fr.Hi; f++ {
			s.vis = append(s.vis, vis.At(t, f, b))
			s.weights = append(s.weights, weights.Pols(t, f, b))
			s.flags = append(s.flags, flags.Pols(t, f, b))
		}
	}
}

// averageBaselineRange reduces every (time chunk, channel chunk) block
// for baselines [bLo, bHi), writing each result into its reduced
// coordinate cell. Each call touches a disjoint output region, so
// concurrent calls over disjoint baseline ranges need no locking.
func averageBaselineRange(vis *cube.JonesCube, weights *cube.FloatCube, flags *cube.FlagCube,
	avgVis *cube.JonesCube, avgWeights *cube.FloatCube, avgFlags *cube.FlagCube,
	timeRanges, freqRanges []cube.Range, bLo, bHi int) {

	maxChunk := 0
	if len(timeRanges) > 0 && len(freqRanges) > 0 {
		maxChunk = timeRanges[0].Len() * freqRanges[0].Len()
	}
	sc := newScratch(maxChunk)

	for b := bLo; b < bHi; b++ {
		for ti, tr := range timeRanges {
			for fi, fr := range freqRanges {
				sc.gather(vis, weights, flags, tr, fr, b)
				avgJones, avgWeight, flagged := AverageChunkPols(sc.vis, sc.weights, sc.flags)

				avgVis.Set(ti, fi, b, avgJones)
				copy(avgWeights.Pols(ti, fi, b), avgWeight[:])
				flagPols := avgFlags.Pols(ti, fi, b)
				for p := range flagPols {
					flagPols[p] = flagged
				}
			}
		}
	}
}
