// Package window provides the spectral taper functions applied along
// the frequency axis before delay transforms.
package window

import (
	"errors"
	"math"
)

type Func func(int) []float64

type Type int

const (
	Hamming        Type = 0
	Hann           Type = 1
	BlackmanHarris Type = 2
	Blackman       Type = 3
)

var windowFuncs = map[Type]Func{
	Hamming:  HammingWindow,
	Hann:     HannWindow,
	Blackman: BlackmanWindow,
}

// ForType returns the taper of the given type and length. The
// Blackman-Harris taper uses the 92 dB coefficient set.
func ForType(winType Type, n int) []float64 {
	if winType == BlackmanHarris {
		return BlackmanHarrisWindow(n, 92)
	}
	f, ok := windowFuncs[winType]
	if !ok {
		panic(errors.New("unspecified window type"))
	}
	return f(n)
}

func cosWindow1(n int, c0, c1, c2 float64) []float64 {
	ret := make([]float64, n)
	M := float64(n - 1)

	for i := 0; i < n; i++ {
		fi := float64(i)
		ret[i] = c0 - c1*math.Cos((2*math.Pi*fi)/M) +
			c2*math.Cos((4*math.Pi*fi)/M)
	}
	return ret
}

func cosWindow2(n int, c0, c1, c2, c3 float64) []float64 {
	ret := make([]float64, n)
	M := float64(n - 1)

	for i := 0; i < n; i++ {
		fi := float64(i)
		ret[i] = c0 - c1*math.Cos((2*math.Pi*fi)/M) +
			c2*math.Cos((4*math.Pi*fi)/M) -
			c3*math.Cos((6*math.Pi*fi)/M)
	}
	return ret
}

func BlackmanHarrisWindow(n, atten int) []float64 {
	switch atten {
	case 61:
		return cosWindow1(n, 0.42323, 0.49755, 0.07922)
	case 67:
		return cosWindow1(n, 0.44959, 0.49364, 0.05677)
	case 74:
		return cosWindow2(n, 0.40271, 0.49703, 0.09392, 0.00183)
	case 92:
		return cosWindow2(n, 0.35875, 0.48829, 0.14128, 0.01168)
	default:
		panic(errors.New("blackman harris window must have attenuation value 61, 67, 74, 92"))
	}
}

func BlackmanWindow(n int) []float64 {
	return cosWindow1(n, 0.42, 0.5, 0.08)
}

func HammingWindow(n int) []float64 {
	ret := make([]float64, n)
	M := float64(n - 1)

	for i := 0; i < n; i++ {
		ret[i] = 0.54 - 0.46*math.Cos((2.0*math.Pi*float64(i))/M)
	}

	return ret
}

func HannWindow(n int) []float64 {
	ret := make([]float64, n)
	M := float64(n - 1)
	for i := 0; i < n; i++ {
		ret[i] = 0.5 - 0.5*math.Cos((2*math.Pi*float64(i))/M)
	}
	return ret
}
