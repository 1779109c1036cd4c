package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchLevelString(t *testing.T) {
	assert.Equal(t, "scalar", DispatchScalar.String())
	assert.Equal(t, "sse2", DispatchSSE2.String())
	assert.Equal(t, "avx2", DispatchAVX2.String())
	assert.Equal(t, "avx512", DispatchAVX512.String())
	assert.Equal(t, "unknown", DispatchLevel(99).String())
}

func TestCurrentLevelConsistent(t *testing.T) {
	level := CurrentLevel()
	require.GreaterOrEqual(t, level, DispatchScalar)
	require.LessOrEqual(t, level, DispatchAVX512)
	assert.Equal(t, level.String(), CurrentName())
}

func TestCurrentWidth(t *testing.T) {
	width := CurrentWidth()
	require.Contains(t, []int{16, 32, 64}, width)

	switch CurrentLevel() {
	case DispatchAVX512:
		assert.Equal(t, 64, width)
	case DispatchAVX2:
		assert.Equal(t, 32, width)
	default:
		assert.Equal(t, 16, width)
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()
	assert.Equal(t, width/4, MaxLanes[float32]())
	assert.Equal(t, width/8, MaxLanes[float64]())
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("REDUCE_NO_SIMD", "")
	assert.False(t, NoSimdEnv())

	t.Setenv("REDUCE_NO_SIMD", "1")
	assert.True(t, NoSimdEnv())

	t.Setenv("REDUCE_NO_SIMD", "true")
	assert.True(t, NoSimdEnv())

	t.Setenv("REDUCE_NO_SIMD", "0")
	assert.False(t, NoSimdEnv())

	// Unparseable values still opt out of SIMD.
	t.Setenv("REDUCE_NO_SIMD", "yes")
	assert.True(t, NoSimdEnv())
}
