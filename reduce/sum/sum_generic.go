package sum

import "github.com/ajroetker/go-reduce/internal/assert"

// Portable implementations. These carry the same 8-accumulator-group
// structure as the register kernels so the block/lane/scalar grouping
// order is identical on every platform: each of the block's slots has its
// own partial sum, the 4-wide (f64) or 8-wide (f32) tail folds into lane
// group 0, and the final 0-3 (f64) or 0-7 (f32) elements go through a
// scalar carry.

const (
	lanesGenericF64 = BlockLen64 / 8
	lanesGenericF32 = BlockLen32 / 8
)

func sumGeneric64(x []float64) float64 {
	n := len(x)
	offset := n % BlockLen64

	var acc [BlockLen64]float64
	i := 0
	for ; i < n-offset; i += BlockLen64 {
		for j, v := range x[i : i+BlockLen64] {
			acc[j] += v
		}
	}

	var extra float64
	if offset != 0 {
		tail := offset % lanesGenericF64
		for ; i < n-tail; i += lanesGenericF64 {
			for j, v := range x[i : i+lanesGenericF64] {
				acc[j] += v
			}
		}
		for ; i < n; i++ {
			extra += x[i]
		}
	}

	return extra + rollupGeneric64(&acc)
}

func sumAlignedGeneric64(x []float64) float64 {
	assert.Multiple(len(x), BlockLen64, "aligned vector length")

	var acc [BlockLen64]float64
	for i := 0; i < len(x); i += BlockLen64 {
		for j, v := range x[i : i+BlockLen64] {
			acc[j] += v
		}
	}
	return rollupGeneric64(&acc)
}

// rollupGeneric64 combines the accumulator groups pairwise (8 -> 4 -> 2
// -> 1) and then the lanes of the surviving group, mirroring the register
// rollup.
func rollupGeneric64(acc *[BlockLen64]float64) float64 {
	const l = lanesGenericF64
	var lanes [l]float64
	for k := 0; k < l; k++ {
		a01 := acc[k] + acc[l+k]
		a23 := acc[2*l+k] + acc[3*l+k]
		a45 := acc[4*l+k] + acc[5*l+k]
		a67 := acc[6*l+k] + acc[7*l+k]
		lanes[k] = (a01 + a23) + (a45 + a67)
	}
	return (lanes[0] + lanes[1]) + (lanes[2] + lanes[3])
}

func sumVerticalGeneric64(matrix, out []float64) {
	dims := len(out)
	assert.Divides(len(matrix), dims, "matrix")

	offset := dims % BlockLen64
	i := 0
	for ; i < dims-offset; i += BlockLen64 {
		sumVerticalBlockGeneric64(matrix, out, i, dims)
	}

	if offset != 0 {
		tail := offset % lanesGenericF64
		for ; i < dims-tail; i += lanesGenericF64 {
			var acc [lanesGenericF64]float64
			for j := 0; j < len(matrix); j += dims {
				for k, v := range matrix[j+i : j+i+lanesGenericF64] {
					acc[k] += v
				}
			}
			copy(out[i:i+lanesGenericF64], acc[:])
		}
		for ; i < dims; i++ {
			var total float64
			for j := 0; j < len(matrix); j += dims {
				total += matrix[j+i]
			}
			out[i] = total
		}
	}
}

func sumVerticalAlignedGeneric64(matrix, out []float64) {
	dims := len(out)
	assert.Multiple(dims, BlockLen64, "aligned dimension")
	assert.Divides(len(matrix), dims, "matrix")

	for i := 0; i < dims; i += BlockLen64 {
		sumVerticalBlockGeneric64(matrix, out, i, dims)
	}
}

// sumVerticalBlockGeneric64 sums the 32-column block starting at col
// across all rows and stores the partials straight into out, one slot per
// column.
func sumVerticalBlockGeneric64(matrix, out []float64, col, dims int) {
	var acc [BlockLen64]float64
	for j := 0; j < len(matrix); j += dims {
		for k, v := range matrix[j+col : j+col+BlockLen64] {
			acc[k] += v
		}
	}
	copy(out[col:col+BlockLen64], acc[:])
}

func sumGeneric32(x []float32) float32 {
	n := len(x)
	offset := n % BlockLen32

	var acc [BlockLen32]float32
	i := 0
	for ; i < n-offset; i += BlockLen32 {
		for j, v := range x[i : i+BlockLen32] {
			acc[j] += v
		}
	}

	var extra float32
	if offset != 0 {
		tail := offset % lanesGenericF32
		for ; i < n-tail; i += lanesGenericF32 {
			for j, v := range x[i : i+lanesGenericF32] {
				acc[j] += v
			}
		}
		for ; i < n; i++ {
			extra += x[i]
		}
	}

	return extra + rollupGeneric32(&acc)
}

func sumAlignedGeneric32(x []float32) float32 {
	assert.Multiple(len(x), BlockLen32, "aligned vector length")

	var acc [BlockLen32]float32
	for i := 0; i < len(x); i += BlockLen32 {
		for j, v := range x[i : i+BlockLen32] {
			acc[j] += v
		}
	}
	return rollupGeneric32(&acc)
}

func rollupGeneric32(acc *[BlockLen32]float32) float32 {
	const l = lanesGenericF32
	var lanes [l]float32
	for k := 0; k < l; k++ {
		a01 := acc[k] + acc[l+k]
		a23 := acc[2*l+k] + acc[3*l+k]
		a45 := acc[4*l+k] + acc[5*l+k]
		a67 := acc[6*l+k] + acc[7*l+k]
		lanes[k] = (a01 + a23) + (a45 + a67)
	}
	return ((lanes[0] + lanes[1]) + (lanes[2] + lanes[3])) +
		((lanes[4] + lanes[5]) + (lanes[6] + lanes[7]))
}

func sumVerticalGeneric32(matrix, out []float32) {
	dims := len(out)
	assert.Divides(len(matrix), dims, "matrix")

	offset := dims % BlockLen32
	i := 0
	for ; i < dims-offset; i += BlockLen32 {
		sumVerticalBlockGeneric32(matrix, out, i, dims)
	}

	if offset != 0 {
		tail := offset % lanesGenericF32
		for ; i < dims-tail; i += lanesGenericF32 {
			var acc [lanesGenericF32]float32
			for j := 0; j < len(matrix); j += dims {
				for k, v := range matrix[j+i : j+i+lanesGenericF32] {
					acc[k] += v
				}
			}
			copy(out[i:i+lanesGenericF32], acc[:])
		}
		for ; i < dims; i++ {
			var total float32
			for j := 0; j < len(matrix); j += dims {
				total += matrix[j+i]
			}
			out[i] = total
		}
	}
}

func sumVerticalAlignedGeneric32(matrix, out []float32) {
	dims := len(out)
	assert.Multiple(dims, BlockLen32, "aligned dimension")
	assert.Divides(len(matrix), dims, "matrix")

	for i := 0; i < dims; i += BlockLen32 {
		sumVerticalBlockGeneric32(matrix, out, i, dims)
	}
}

func sumVerticalBlockGeneric32(matrix, out []float32, col, dims int) {
	var acc [BlockLen32]float32
	for j := 0; j < len(matrix); j += dims {
		for k, v := range matrix[j+col : j+col+BlockLen32] {
			acc[k] += v
		}
	}
	copy(out[col:col+BlockLen32], acc[:])
}
