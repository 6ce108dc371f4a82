package cube

import (
	"reflect"
	"testing"

	"github.com/MWATelescope/mwa-go-core/pkg/vis/jones"
)

func TestJonesCubeIndexing(t *testing.T) {
	c := NewJonesCube(2, 3, 4)
	if ts, f, b := c.Dims(); ts != 2 || f != 3 || b != 4 {
		t.Fatalf("Dims() = (%d, %d, %d), want (2, 3, 4)", ts, f, b)
	}
	c.Set(1, 2, 3, jones.Identity())
	if got := c.At(1, 2, 3); got != jones.Identity() {
		t.Errorf("At(1, 2, 3) = %v, want identity", got)
	}
	// last cell maps to the last backing element
	if got := c.Data()[len(c.Data())-1]; got != jones.Identity() {
		t.Errorf("backing element = %v, want identity", got)
	}
}

func TestFloatCubePolsView(t *testing.T) {
	c := NewFloatCube(2, 2, 2, 4)
	c.Set(1, 0, 1, 2, 7)
	pols := c.Pols(1, 0, 1)
	if len(pols) != 4 {
		t.Fatalf("len(Pols) = %d, want 4", len(pols))
	}
	if pols[2] != 7 {
		t.Errorf("pols[2] = %v, want 7", pols[2])
	}
	pols[3] = 9
	if c.At(1, 0, 1, 3) != 9 {
		t.Errorf("Pols is not a view into the cube")
	}
}

func TestFlagCubeAny(t *testing.T) {
	c := NewFlagCube(2, 2, 1, 4)
	if c.Any() {
		t.Errorf("fresh cube reports flags set")
	}
	c.Set(1, 1, 0, 3, true)
	if !c.Any() {
		t.Errorf("Any() = false after Set")
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want []Range
	}{{
		"exact", 4, 2,
		[]Range{{0, 2}, {2, 4}},
	}, {
		"ragged", 5, 2,
		[]Range{{0, 2}, {2, 4}, {4, 5}},
	}, {
		"oversize", 3, 7,
		[]Range{{0, 3}},
	}, {
		"unit", 3, 1,
		[]Range{{0, 1}, {1, 2}, {2, 3}},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chunks(tt.n, tt.size); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunks(%d, %d) = %v, want %v", tt.n, tt.size, got, tt.want)
			}
			if got := NumChunks(tt.n, tt.size); got != len(tt.want) {
				t.Errorf("NumChunks(%d, %d) = %d, want %d", tt.n, tt.size, got, len(tt.want))
			}
		})
	}
}
