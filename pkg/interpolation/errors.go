package interpolation

import (
	"fmt"

	"github.com/xaionaro-go/sensorday/pkg/zerorun"
)

// MalformedRunError is returned when a zero run does not fit the value slice
// it is supposed to describe. It never happens with runs returned by zerorun.Find.
type MalformedRunError struct {
	Run    zerorun.Run
	Length int
}

func (e *MalformedRunError) Error() string {
	return fmt.Sprintf("zero run %s does not fit a sequence of length %d", e.Run, e.Length)
}
