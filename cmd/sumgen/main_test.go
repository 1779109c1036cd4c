package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKernelConfig(t *testing.T) {
	cfg, err := newKernelConfig("float64", "avx2")
	require.NoError(t, err)
	assert.Equal(t, "F64", cfg.Short)
	assert.Equal(t, "AVX2", cfg.Target)
	assert.Equal(t, "Float64x4", cfg.Vec)
	assert.Equal(t, 4, cfg.Lanes)
	assert.Equal(t, 32, cfg.Block)
	assert.Equal(t, 16, cfg.ChunkLen)

	cfg, err = newKernelConfig("float32", "avx512")
	require.NoError(t, err)
	assert.Equal(t, "Float32x16", cfg.Vec)
	assert.Equal(t, "AVX-512", cfg.TargetDoc)
	assert.Equal(t, 16, cfg.Lanes)
	assert.Equal(t, 128, cfg.Block)

	_, err = newKernelConfig("float16", "avx2")
	assert.Error(t, err)
	_, err = newKernelConfig("float64", "neon")
	assert.Error(t, err)
}

func TestGenerateParses(t *testing.T) {
	for _, tc := range []struct{ elem, target string }{
		{"float64", "avx2"},
		{"float32", "avx2"},
		{"float64", "avx512"},
		{"float32", "avx512"},
	} {
		cfg, err := newKernelConfig(tc.elem, tc.target)
		require.NoError(t, err)

		src, err := generate(cfg, "kernel_test_output.go")
		require.NoError(t, err, "%s/%s", tc.elem, tc.target)

		fset := token.NewFileSet()
		_, err = parser.ParseFile(fset, "kernel_test_output.go", src, parser.ParseComments)
		require.NoError(t, err, "%s/%s must be valid Go", tc.elem, tc.target)
	}
}

func TestGenerateEmitsKernelSet(t *testing.T) {
	cfg, err := newKernelConfig("float64", "avx2")
	require.NoError(t, err)

	src, err := generate(cfg, "sum_avx2_f64.go")
	require.NoError(t, err)

	text := string(src)
	for _, symbol := range []string{
		"Sum_AVX2_F64x4",
		"SumAligned_AVX2_F64x4",
		"SumVertical_AVX2_F64x4",
		"SumVerticalAligned_AVX2_F64x4",
		"rollupAVX2F64",
		"blockAVX2F64 = 8 * lanesAVX2F64",
	} {
		assert.True(t, strings.Contains(text, symbol), "missing %s", symbol)
	}
	assert.True(t, strings.Contains(text, "DO NOT EDIT"))
}
