// Package sum provides SIMD-accelerated horizontal and vertical sum
// reductions over float32 and float64 slices.
//
// Horizontal kernels collapse one vector into a single scalar. Vertical
// kernels treat a flat slice as N equal-length rows laid out row-major and
// produce the per-column sums. Both come in an arbitrary-length form and an
// "aligned" form that requires the dimension to be a multiple of the block
// size and skips all tail handling.
//
// The kernels accumulate into eight independent register groups to break
// the serial dependency chain of floating-point addition, so results match
// the grouping order of that scheme rather than a naive left-to-right sum.
// Calling a kernel twice on the same input yields bit-identical results.
package sum

//go:generate go run ../../cmd/sumgen -type float64 -target avx2 -output sum_avx2_f64.go
//go:generate go run ../../cmd/sumgen -type float32 -target avx2 -output sum_avx2_f32.go
//go:generate go run ../../cmd/sumgen -type float64 -target avx512 -output sum_avx512_f64.go
//go:generate go run ../../cmd/sumgen -type float32 -target avx512 -output sum_avx512_f32.go

const (
	// BlockLen32 is the float32 block size: the aligned entry points
	// require dimensions that are positive multiples of it.
	BlockLen32 = 64

	// BlockLen64 is the float64 block size for the aligned entry points.
	BlockLen64 = 32
)

// Sum returns the sum of all elements of x. Any length is handled;
// an empty slice sums to 0.
func Sum(x []float32) float32 {
	if len(x) == 0 {
		return 0
	}

	return sumImpl32(x)
}

// Sum64 returns the sum of all elements of x. Any length is handled;
// an empty slice sums to 0.
func Sum64(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return sumImpl64(x)
}

// SumAligned returns the sum of all elements of x.
//
// len(x) must be a positive multiple of BlockLen32. The precondition is
// checked only in reducedebug builds; violating it in a release build is
// undefined behavior (out-of-bounds reads).
func SumAligned(x []float32) float32 {
	return sumAlignedImpl32(x)
}

// SumAligned64 returns the sum of all elements of x.
//
// len(x) must be a positive multiple of BlockLen64. The precondition is
// checked only in reducedebug builds; violating it in a release build is
// undefined behavior (out-of-bounds reads).
func SumAligned64(x []float64) float64 {
	return sumAlignedImpl64(x)
}

// SumVertical writes the per-column sums of matrix into out.
//
// matrix holds len(matrix)/len(out) rows of len(out) elements each, laid
// out row-major; len(matrix) must be an exact multiple of len(out). Every
// slot of out is overwritten, so a zero-row matrix writes zeros. A zero
// dimension writes nothing.
func SumVertical(matrix, out []float32) {
	if len(out) == 0 {
		return
	}

	sumVerticalImpl32(matrix, out)
}

// SumVertical64 writes the per-column sums of matrix into out.
//
// matrix holds len(matrix)/len(out) rows of len(out) elements each, laid
// out row-major; len(matrix) must be an exact multiple of len(out). Every
// slot of out is overwritten, so a zero-row matrix writes zeros. A zero
// dimension writes nothing.
func SumVertical64(matrix, out []float64) {
	if len(out) == 0 {
		return
	}

	sumVerticalImpl64(matrix, out)
}

// SumVerticalAligned writes the per-column sums of matrix into out.
//
// len(out) must be a positive multiple of BlockLen32 and len(matrix) an
// exact multiple of len(out). Checked only in reducedebug builds.
func SumVerticalAligned(matrix, out []float32) {
	sumVerticalAlignedImpl32(matrix, out)
}

// SumVerticalAligned64 writes the per-column sums of matrix into out.
//
// len(out) must be a positive multiple of BlockLen64 and len(matrix) an
// exact multiple of len(out). Checked only in reducedebug builds.
func SumVerticalAligned64(matrix, out []float64) {
	sumVerticalAlignedImpl64(matrix, out)
}
