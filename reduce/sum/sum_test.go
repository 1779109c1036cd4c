package sum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Lengths covering every remainder tier: block-only, 4/8-wide tail with
// no scalar remainder, scalar remainder of 1-3, and sub-block inputs.
var sumLengths = []int{0, 1, 3, 4, 31, 32, 131, 132, 768, 1021}

func samples64(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	return x
}

func samples32(n int) []float32 {
	rng := rand.New(rand.NewSource(42))
	x := make([]float32, n)
	for i := range x {
		x[i] = rng.Float32()
	}
	return x
}

func seqSum64(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v
	}
	return total
}

func seqSum32(x []float32) float32 {
	var total float32
	for _, v := range x {
		total += v
	}
	return total
}

// requireClose compares at a relative error bound that absorbs the
// grouping differences between the kernel order and left-to-right order.
func requireClose(t *testing.T, want, got float64) {
	t.Helper()
	if want == 0 {
		require.InDelta(t, want, got, 1e-12)
		return
	}
	require.InEpsilon(t, want, got, 1e-9)
}

func requireClose32(t *testing.T, want, got float32) {
	t.Helper()
	if want == 0 {
		require.InDelta(t, want, got, 1e-5)
		return
	}
	require.InEpsilon(t, want, got, 1e-4)
}

func TestSum64MatchesSequential(t *testing.T) {
	for _, n := range sumLengths {
		x := samples64(n)
		requireClose(t, seqSum64(x), Sum64(x))
	}
}

func TestSum32MatchesSequential(t *testing.T) {
	for _, n := range sumLengths {
		x := samples32(n)
		requireClose32(t, seqSum32(x), Sum(x))
	}
}

func TestSum64MatchesVek(t *testing.T) {
	x := samples64(768)
	requireClose(t, vek.Sum(x), Sum64(x))

	x = samples64(131)
	requireClose(t, vek.Sum(x), Sum64(x))
}

func TestSum32MatchesVek(t *testing.T) {
	x := samples32(768)
	requireClose32(t, vek32.Sum(x), Sum(x))

	x = samples32(131)
	requireClose32(t, vek32.Sum(x), Sum(x))
}

func TestSumAligned64(t *testing.T) {
	// 768 divides every block size, so the arbitrary and aligned paths run
	// the same kernel and must agree bit-for-bit.
	x := samples64(768)
	require.Equal(t, Sum64(x), SumAligned64(x))

	// 32 satisfies only the narrower blocks; the two entry points may pick
	// different register widths, so agreement is up to rounding.
	x = samples64(32)
	requireClose(t, Sum64(x), SumAligned64(x))
}

func TestSumAligned32(t *testing.T) {
	x := samples32(768)
	require.Equal(t, Sum(x), SumAligned(x))

	x = samples32(64)
	requireClose32(t, Sum(x), SumAligned(x))
}

func TestSumEmpty(t *testing.T) {
	assert.Zero(t, Sum64(nil))
	assert.Zero(t, Sum64([]float64{}))
	assert.Zero(t, Sum(nil))
}

func TestSumIdempotent(t *testing.T) {
	x := samples64(537)
	first := Sum64(x)
	second := Sum64(x)
	require.Equal(t, first, second, "repeated calls must be bit-identical")

	y := samples32(537)
	require.Equal(t, Sum(y), Sum(y))
}

func TestSumNaNPropagates(t *testing.T) {
	x := samples64(131)
	x[67] = math.NaN()
	assert.True(t, math.IsNaN(Sum64(x)))

	x = samples64(131)
	x[5] = math.Inf(1)
	assert.True(t, math.IsInf(Sum64(x), 1))
}

func TestSumNegativeAndCancellation(t *testing.T) {
	x := make([]float64, 200)
	for i := range x {
		if i%2 == 0 {
			x[i] = float64(i)
		} else {
			x[i] = -float64(i - 1)
		}
	}
	// Pairs cancel exactly; integral values keep this representable.
	assert.Equal(t, 0.0, Sum64(x))
}

func BenchmarkSum64(b *testing.B) {
	x := samples64(4096)
	b.SetBytes(int64(len(x) * 8))
	for i := 0; i < b.N; i++ {
		Sum64(x)
	}
}

func BenchmarkSum32(b *testing.B) {
	x := samples32(4096)
	b.SetBytes(int64(len(x) * 4))
	for i := 0; i < b.N; i++ {
		Sum(x)
	}
}
