//go:build !release

package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {

	require.NotPanics(t, func() { T(true, "never shown") })
	require.Panics(t, func() { T(false, "value was %d", 5) })
}
