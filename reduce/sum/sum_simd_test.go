//go:build amd64 && goexperiment.simd

package sum

import (
	"simd/archsimd"
	"testing"

	"github.com/stretchr/testify/require"
)

// Direct kernel tests. These bypass the dispatch layer and exercise each
// exported kernel against the portable implementation, so a routing bug
// cannot mask a kernel bug.

func TestKernelsAVX2F64(t *testing.T) {
	if !archsimd.X86.AVX2() {
		t.Skip("AVX2 not available")
	}

	for _, n := range []int{768, 131, 132, 32, 31, 4, 3, 1} {
		x := samples64(n)
		requireClose(t, sumGeneric64(x), Sum_AVX2_F64x4(x))
	}

	x := samples64(768)
	require.Equal(t, sumGeneric64(x), SumAligned_AVX2_F64x4(x),
		"aligned kernel shares the portable grouping order")
}

func TestKernelsAVX2F32(t *testing.T) {
	if !archsimd.X86.AVX2() {
		t.Skip("AVX2 not available")
	}

	for _, n := range []int{768, 131, 132, 64, 63, 8, 7, 1} {
		x := samples32(n)
		requireClose32(t, sumGeneric32(x), Sum_AVX2_F32x8(x))
	}

	x := samples32(768)
	require.Equal(t, sumGeneric32(x), SumAligned_AVX2_F32x8(x))
}

func TestKernelsAVX512F64(t *testing.T) {
	if !archsimd.X86.AVX512() {
		t.Skip("AVX-512 not available")
	}

	for _, n := range []int{768, 131, 132, 64, 63, 8, 7, 1} {
		x := samples64(n)
		requireClose(t, sumGeneric64(x), Sum_AVX512_F64x8(x))
	}
}

func TestKernelsAVX512F32(t *testing.T) {
	if !archsimd.X86.AVX512() {
		t.Skip("AVX-512 not available")
	}

	for _, n := range []int{768, 131, 132, 128, 127, 16, 15, 1} {
		x := samples32(n)
		requireClose32(t, sumGeneric32(x), Sum_AVX512_F32x16(x))
	}
}

func TestKernelsVerticalAVX2(t *testing.T) {
	if !archsimd.X86.AVX2() {
		t.Skip("AVX2 not available")
	}

	for _, dims := range []int{512, 537, 539, 5} {
		matrix := samples64(25 * dims)
		out := make([]float64, dims)
		SumVertical_AVX2_F64x4(matrix, out)
		require.Equal(t, seqSumVertical64(matrix, dims), out, "dims=%d", dims)
	}

	for _, dims := range []int{512, 537, 5} {
		matrix := samples32(25 * dims)
		out := make([]float32, dims)
		SumVertical_AVX2_F32x8(matrix, out)
		require.Equal(t, seqSumVertical32(matrix, dims), out, "dims=%d", dims)
	}

	matrix := samples64(25 * 512)
	out := make([]float64, 512)
	SumVerticalAligned_AVX2_F64x4(matrix, out)
	require.Equal(t, seqSumVertical64(matrix, 512), out)
}

func TestKernelsVerticalAVX512(t *testing.T) {
	if !archsimd.X86.AVX512() {
		t.Skip("AVX-512 not available")
	}

	for _, dims := range []int{512, 537, 539, 5} {
		matrix := samples64(25 * dims)
		out := make([]float64, dims)
		SumVertical_AVX512_F64x8(matrix, out)
		require.Equal(t, seqSumVertical64(matrix, dims), out, "dims=%d", dims)
	}

	matrix := samples32(25 * 512)
	out := make([]float32, 512)
	SumVerticalAligned_AVX512_F32x16(matrix, out)
	require.Equal(t, seqSumVertical32(matrix, 512), out)
}

// The AVX2 f64 kernel and the portable path share block size, lane count,
// and rollup order, so block-aligned inputs must agree exactly.
func TestKernelGroupingMatchesGeneric(t *testing.T) {
	if !archsimd.X86.AVX2() {
		t.Skip("AVX2 not available")
	}

	for _, n := range []int{32, 160, 768} {
		x := samples64(n)
		require.Equal(t, sumGeneric64(x), Sum_AVX2_F64x4(x), "n=%d", n)
	}
}
