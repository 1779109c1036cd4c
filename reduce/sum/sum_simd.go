//go:build amd64 && goexperiment.simd

package sum

import "github.com/ajroetker/go-reduce/reduce"

// SIMD bindings. The dispatch level is detected once by the reduce
// package; the kernels themselves never branch on capability, so routing
// here is the only place a missing extension is kept from executing.
//
// The aligned entry points document a BlockLen32/BlockLen64 multiple
// contract. The AVX-512 kernels need twice that, so they are only chosen
// when the length happens to satisfy the wider block; AVX2 serves the
// rest without tightening the public contract.

func sumImpl32(x []float32) float32 {
	switch reduce.CurrentLevel() {
	case reduce.DispatchAVX512:
		return Sum_AVX512_F32x16(x)
	case reduce.DispatchAVX2:
		return Sum_AVX2_F32x8(x)
	default:
		return sumGeneric32(x)
	}
}

func sumImpl64(x []float64) float64 {
	switch reduce.CurrentLevel() {
	case reduce.DispatchAVX512:
		return Sum_AVX512_F64x8(x)
	case reduce.DispatchAVX2:
		return Sum_AVX2_F64x4(x)
	default:
		return sumGeneric64(x)
	}
}

func sumAlignedImpl32(x []float32) float32 {
	switch level := reduce.CurrentLevel(); {
	case level == reduce.DispatchAVX512 && len(x)%blockAVX512F32 == 0:
		return SumAligned_AVX512_F32x16(x)
	case level >= reduce.DispatchAVX2:
		return SumAligned_AVX2_F32x8(x)
	default:
		return sumAlignedGeneric32(x)
	}
}

func sumAlignedImpl64(x []float64) float64 {
	switch level := reduce.CurrentLevel(); {
	case level == reduce.DispatchAVX512 && len(x)%blockAVX512F64 == 0:
		return SumAligned_AVX512_F64x8(x)
	case level >= reduce.DispatchAVX2:
		return SumAligned_AVX2_F64x4(x)
	default:
		return sumAlignedGeneric64(x)
	}
}

func sumVerticalImpl32(matrix, out []float32) {
	switch reduce.CurrentLevel() {
	case reduce.DispatchAVX512:
		SumVertical_AVX512_F32x16(matrix, out)
	case reduce.DispatchAVX2:
		SumVertical_AVX2_F32x8(matrix, out)
	default:
		sumVerticalGeneric32(matrix, out)
	}
}

func sumVerticalImpl64(matrix, out []float64) {
	switch reduce.CurrentLevel() {
	case reduce.DispatchAVX512:
		SumVertical_AVX512_F64x8(matrix, out)
	case reduce.DispatchAVX2:
		SumVertical_AVX2_F64x4(matrix, out)
	default:
		sumVerticalGeneric64(matrix, out)
	}
}

func sumVerticalAlignedImpl32(matrix, out []float32) {
	switch level := reduce.CurrentLevel(); {
	case level == reduce.DispatchAVX512 && len(out)%blockAVX512F32 == 0:
		SumVerticalAligned_AVX512_F32x16(matrix, out)
	case level >= reduce.DispatchAVX2:
		SumVerticalAligned_AVX2_F32x8(matrix, out)
	default:
		sumVerticalAlignedGeneric32(matrix, out)
	}
}

func sumVerticalAlignedImpl64(matrix, out []float64) {
	switch level := reduce.CurrentLevel(); {
	case level == reduce.DispatchAVX512 && len(out)%blockAVX512F64 == 0:
		SumVerticalAligned_AVX512_F64x8(matrix, out)
	case level >= reduce.DispatchAVX2:
		SumVerticalAligned_AVX2_F64x4(matrix, out)
	default:
		sumVerticalAlignedGeneric64(matrix, out)
	}
}
