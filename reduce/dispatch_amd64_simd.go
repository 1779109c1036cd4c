//go:build amd64 && goexperiment.simd

package reduce

import "simd/archsimd"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Use actual CPU detection from the archsimd package.
	if archsimd.X86.AVX512() {
		currentLevel = DispatchAVX512
		currentWidth = 64
	} else if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
	} else {
		// SSE2 is baseline for amd64. Plain AVX without AVX2 is also
		// treated as SSE2: the kernels only ship AVX2 and AVX-512 paths.
		currentLevel = DispatchSSE2
		currentWidth = 16
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
