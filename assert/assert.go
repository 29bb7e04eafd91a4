//go:build !release

package assert

import (
	"fmt"

	"github.com/bloeys/glpractice/logging"
)

// T panics with the formatted message if check is false.
// Builds with the 'release' tag compile this to a no-op.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	logging.ErrLog.Panicln("Assert failed: " + fmt.Sprintf(msg, args...))
}
