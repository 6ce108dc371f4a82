// Package cube provides the dense strided containers used for
// visibility data: a 3-d cube of Jones matrices indexed by
// (timestep, channel, baseline), and 4-d cubes of per-polarization
// weights and flags with the same leading axes.
package cube

import (
	"github.com/MWATelescope/mwa-go-core/pkg/vis/jones"
)

// JonesCube is a row-major (timestep, channel, baseline) array of Jones
// matrices.
type JonesCube struct {
	data []jones.Matrix
	t    int
	f    int
	b    int
}

func NewJonesCube(timesteps, channels, baselines int) *JonesCube {
	return &JonesCube{
		data: make([]jones.Matrix, timesteps*channels*baselines),
		t:    timesteps,
		f:    channels,
		b:    baselines,
	}
}

func (c *JonesCube) Dims() (t, f, b int) {
	return c.t, c.f, c.b
}

func (c *JonesCube) index(t, f, b int) int {
	return (t*c.f+f)*c.b + b
}

func (c *JonesCube) At(t, f, b int) jones.Matrix {
	return c.data[c.index(t, f, b)]
}

func (c *JonesCube) Set(t, f, b int, v jones.Matrix) {
	c.data[c.index(t, f, b)] = v
}

func (c *JonesCube) Fill(v jones.Matrix) {
	for i := range c.data {
		c.data[i] = v
	}
}

// Data returns the backing slice in row-major order. Mutations are
// visible to the cube.
func (c *JonesCube) Data() []jones.Matrix {
	return c.data
}

// FloatCube is a row-major (timestep, channel, baseline, pol) array of
// float32, used for visibility weights.
type FloatCube struct {
	data []float32
	t    int
	f    int
	b    int
	p    int
}

func NewFloatCube(timesteps, channels, baselines, pols int) *FloatCube {
	return &FloatCube{
		data: make([]float32, timesteps*channels*baselines*pols),
		t:    timesteps,
		f:    channels,
		b:    baselines,
		p:    pols,
	}
}

func (c *FloatCube) Dims() (t, f, b, p int) {
	return c.t, c.f, c.b, c.p
}

func (c *FloatCube) index(t, f, b, p int) int {
	return ((t*c.f+f)*c.b+b)*c.p + p
}

func (c *FloatCube) At(t, f, b, p int) float32 {
	return c.data[c.index(t, f, b, p)]
}

func (c *FloatCube) Set(t, f, b, p int, v float32) {
	c.data[c.index(t, f, b, p)] = v
}

func (c *FloatCube) Fill(v float32) {
	for i := range c.data {
		c.data[i] = v
	}
}

// Pols returns the contiguous per-polarization values for one
// (timestep, channel, baseline) cell as a view into the cube.
func (c *FloatCube) Pols(t, f, b int) []float32 {
	i := c.index(t, f, b, 0)
	return c.data[i : i+c.p : i+c.p]
}

func (c *FloatCube) Data() []float32 {
	return c.data
}

// FlagCube is a row-major (timestep, channel, baseline, pol) array of
// booleans, true meaning the sample is known bad.
type FlagCube struct {
	data []bool
	t    int
	f    int
	b    int
	p    int
}

func NewFlagCube(timesteps, channels, baselines, pols int) *FlagCube {
	return &FlagCube{
		data: make([]bool, timesteps*channels*baselines*pols),
		t:    timesteps,
		f:    channels,
		b:    baselines,
		p:    pols,
	}
}

func (c *FlagCube) Dims() (t, f, b, p int) {
	return c.t, c.f, c.b, c.p
}

func (c *FlagCube) index(t, f, b, p int) int {
	return ((t*c.f+f)*c.b+b)*c.p + p
}

func (c *FlagCube) At(t, f, b, p int) bool {
	return c.data[c.index(t, f, b, p)]
}

func (c *FlagCube) Set(t, f, b, p int, v bool) {
	c.data[c.index(t, f, b, p)] = v
}

func (c *FlagCube) Fill(v bool) {
	for i := range c.data {
		c.data[i] = v
	}
}

func (c *FlagCube) Pols(t, f, b int) []bool {
	i := c.index(t, f, b, 0)
	return c.data[i : i+c.p : i+c.p]
}

// Any reports whether any flag in the cube is set.
func (c *FlagCube) Any() bool {
	for _, v := range c.data {
		if v {
			return true
		}
	}
	return false
}

func (c *FlagCube) Data() []bool {
	return c.data
}
