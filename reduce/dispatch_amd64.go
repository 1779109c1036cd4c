//go:build amd64 && !goexperiment.simd

package reduce

// Fallback for when GOEXPERIMENT=simd is not enabled. Without the
// experiment the kernel packages compile their scalar implementations,
// so detection only records the baseline the build can actually use.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Without GOEXPERIMENT=simd we cannot reach archsimd for CPU
	// detection, and no SIMD kernel is compiled in anyway. SSE2 is
	// baseline for all amd64 CPUs.
	currentLevel = DispatchSSE2
	currentWidth = 16
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
