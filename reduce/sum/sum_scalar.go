//go:build !amd64 || !goexperiment.simd

package sum

// Scalar-only bindings. The portable implementations in sum_generic.go
// serve every entry point when no SIMD backend is compiled in.

func sumImpl32(x []float32) float32 {
	return sumGeneric32(x)
}

func sumImpl64(x []float64) float64 {
	return sumGeneric64(x)
}

func sumAlignedImpl32(x []float32) float32 {
	return sumAlignedGeneric32(x)
}

func sumAlignedImpl64(x []float64) float64 {
	return sumAlignedGeneric64(x)
}

func sumVerticalImpl32(matrix, out []float32) {
	sumVerticalGeneric32(matrix, out)
}

func sumVerticalImpl64(matrix, out []float64) {
	sumVerticalGeneric64(matrix, out)
}

func sumVerticalAlignedImpl32(matrix, out []float32) {
	sumVerticalAlignedGeneric32(matrix, out)
}

func sumVerticalAlignedImpl64(matrix, out []float64) {
	sumVerticalAlignedGeneric64(matrix, out)
}
