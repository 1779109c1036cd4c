package sum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Vertical kernels add rows to each column in row order, exactly like a
// sequential per-column loop, so results are compared bit-for-bit.

func seqSumVertical64(matrix []float64, dims int) []float64 {
	out := make([]float64, dims)
	for j := 0; j < len(matrix); j += dims {
		for i := 0; i < dims; i++ {
			out[i] += matrix[j+i]
		}
	}
	return out
}

func seqSumVertical32(matrix []float32, dims int) []float32 {
	out := make([]float32, dims)
	for j := 0; j < len(matrix); j += dims {
		for i := 0; i < dims; i++ {
			out[i] += matrix[j+i]
		}
	}
	return out
}

func TestSumVertical64(t *testing.T) {
	for _, dims := range []int{512, 537, 539, 5, 32, 3, 1} {
		matrix := samples64(25 * dims)
		out := make([]float64, dims)
		SumVertical64(matrix, out)
		require.Equal(t, seqSumVertical64(matrix, dims), out, "dims=%d", dims)
	}
}

func TestSumVertical32(t *testing.T) {
	for _, dims := range []int{512, 537, 539, 64, 5, 1} {
		matrix := samples32(25 * dims)
		out := make([]float32, dims)
		SumVertical(matrix, out)
		require.Equal(t, seqSumVertical32(matrix, dims), out, "dims=%d", dims)
	}
}

func TestSumVerticalAligned64(t *testing.T) {
	for _, dims := range []int{32, 512} {
		matrix := samples64(25 * dims)
		out := make([]float64, dims)
		SumVerticalAligned64(matrix, out)
		require.Equal(t, seqSumVertical64(matrix, dims), out, "dims=%d", dims)
	}
}

func TestSumVerticalAligned32(t *testing.T) {
	for _, dims := range []int{64, 512} {
		matrix := samples32(25 * dims)
		out := make([]float32, dims)
		SumVerticalAligned(matrix, out)
		require.Equal(t, seqSumVertical32(matrix, dims), out, "dims=%d", dims)
	}
}

// Output slots must be overwritten, never read. Prefill with garbage and
// check the result is unaffected.
func TestSumVerticalOverwritesOutput(t *testing.T) {
	for _, dims := range []int{512, 537, 5} {
		matrix := samples64(3 * dims)
		out := make([]float64, dims)
		for i := range out {
			out[i] = 1e30
		}
		SumVertical64(matrix, out)
		require.Equal(t, seqSumVertical64(matrix, dims), out, "dims=%d", dims)
	}
}

func TestSumVerticalZeroRows(t *testing.T) {
	out := make([]float64, 64)
	for i := range out {
		out[i] = 1e30
	}
	SumVertical64(nil, out)
	require.Equal(t, make([]float64, 64), out, "zero rows must write zeros")

	out32 := make([]float32, 67)
	for i := range out32 {
		out32[i] = 1e30
	}
	SumVertical(nil, out32)
	require.Equal(t, make([]float32, 67), out32)
}

func TestSumVerticalEmptyDims(t *testing.T) {
	// dims == 0 is a no-op, never a division panic.
	SumVertical64(nil, nil)
	SumVertical(nil, []float32{})
}

func TestSumVerticalSingleRow(t *testing.T) {
	matrix := samples64(537)
	out := make([]float64, 537)
	SumVertical64(matrix, out)
	require.Equal(t, matrix, out, "single-row vertical sum is the identity")
}

func BenchmarkSumVertical64(b *testing.B) {
	const dims = 512
	matrix := samples64(25 * dims)
	out := make([]float64, dims)
	b.SetBytes(int64(len(matrix) * 8))
	for i := 0; i < b.N; i++ {
		SumVertical64(matrix, out)
	}
}
