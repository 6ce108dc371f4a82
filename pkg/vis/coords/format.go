package coords

import (
	"fmt"
	"math"
)

func formatDegreePair(a, b float64) string {
	return fmt.Sprintf("(%.4f°, %.4f°)", a*180/math.Pi, b*180/math.Pi)
}
