package average

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/cube"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/simulate"
)

func TestAveragerMatchesSequential(t *testing.T) {
	vis, weights, flags := simulate.Ramp(10, 24, 28)

	wantVis, wantWeights, wantFlags, err := AverageVisibilities(vis, weights, flags, 4, 5)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 7, 64} {
		a := NewAverager(WithWorkers(workers))
		gotVis, gotWeights, gotFlags, err := a.Average(context.Background(), vis, weights, flags, 4, 5)
		require.NoError(t, err)

		assert.Equal(t, wantVis.Data(), gotVis.Data(), "vis, workers=%d", workers)
		assert.Equal(t, wantWeights.Data(), gotWeights.Data(), "weights, workers=%d", workers)
		assert.Equal(t, wantFlags.Data(), gotFlags.Data(), "flags, workers=%d", workers)
	}
}

func TestAveragerBadShape(t *testing.T) {
	vis, weights, _ := simulate.Ramp(4, 4, 2)
	flagsWrong := cube.NewFlagCube(4, 4, 2, 3)

	a := NewAverager()
	_, _, _, err := a.Average(context.Background(), vis, weights, flagsWrong, 2, 2)
	require.Error(t, err)

	var shapeErr *BadArrayShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "flags", shapeErr.Argument)
	assert.Equal(t, "Averager.Average", shapeErr.Function)
}

func TestAveragerCancelledContext(t *testing.T) {
	vis, weights, flags := simulate.Ramp(6, 6, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAverager(WithWorkers(2))
	_, _, _, err := a.Average(ctx, vis, weights, flags, 2, 2)
	require.ErrorIs(t, err, context.Canceled)
}
