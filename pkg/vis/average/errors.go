package average

import "fmt"

// BadArrayShapeError reports a weight or flag cube whose shape does not
// match the shape implied by the visibility cube.
type BadArrayShapeError struct {
	Argument string
	Function string
	Expected string
	Received string
}

func (e *BadArrayShapeError) Error() string {
	return fmt.Sprintf("bad array shape supplied to argument %s of function %s. expected %s, received %s",
		e.Argument, e.Function, e.Expected, e.Received)
}

func badPolCubeShape(argument, function string, t, f, b int, rt, rf, rb, rp int) *BadArrayShapeError {
	return &BadArrayShapeError{
		Argument: argument,
		Function: function,
		Expected: fmt.Sprintf("(%d, %d, %d, %d)", t, f, b, jonesNumPols),
		Received: fmt.Sprintf("(%d, %d, %d, %d)", rt, rf, rb, rp),
	}
}
