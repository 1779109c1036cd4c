//go:build reducedebug

package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiple(t *testing.T) {
	require.NotPanics(t, func() { Multiple(64, 32, "length") })
	require.Panics(t, func() { Multiple(33, 32, "length") })
	require.Panics(t, func() { Multiple(0, 32, "length") }, "zero is not a positive multiple")
}

func TestEqual(t *testing.T) {
	require.NotPanics(t, func() { Equal(8, 8, "lanes") })
	require.Panics(t, func() { Equal(8, 4, "lanes") })
}

func TestDivides(t *testing.T) {
	require.NotPanics(t, func() { Divides(96, 32, "matrix") })
	require.NotPanics(t, func() { Divides(0, 32, "matrix") })
	require.Panics(t, func() { Divides(97, 32, "matrix") })
	require.Panics(t, func() { Divides(97, 0, "matrix") })
}
