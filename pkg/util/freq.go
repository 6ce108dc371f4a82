package util

import (
	"fmt"
	"math"
)

// MWA coarse channels are 1.28 MHz wide.
const CoarseChannelWidthHz = 1280000

func MHzToString(hz int) string {
	return fmt.Sprintf("%0.4f MHz", float64(hz)/1e6)
}

func FrequencyRange(freqs ...int) (low, high int) {
	low = math.MaxInt
	high = math.MinInt

	for _, freq := range freqs {
		if freq < low {
			low = freq
		}
		if freq > high {
			high = freq
		}
	}

	return
}

func CenterFrequency(low, high int) int {
	return (low + high) / 2
}

// FineChannelFrequencies returns the center frequency of each of n fine
// channels evenly dividing a coarse channel centered on coarseCenterHz.
func FineChannelFrequencies(coarseCenterHz, n int) []int {
	fineWidth := CoarseChannelWidthHz / n
	first := coarseCenterHz - CoarseChannelWidthHz/2 + fineWidth/2

	freqs := make([]int, n)
	for i := 0; i < n; i++ {
		freqs[i] = first + i*fineWidth
	}
	return freqs
}
