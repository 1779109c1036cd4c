// Copyright 2026 go-reduce Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sumgen generates the per-target sum kernel files in reduce/sum.
//
// The four kernels (AVX2/AVX-512 x float32/float64) share one structure and
// differ only in lane count, block size, and vector type. Keeping them as a
// single template means a fix to the block loop or the rollup lands in all
// four at once. Invoked via go:generate from sum_base.go:
//
//	sumgen -type float64 -target avx2 -output sum_avx2_f64.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

type kernelConfig struct {
	// ElemType is the Go element type: "float64" or "float32".
	ElemType string

	// Short is the identifier suffix used in helper names: "F64" or "F32".
	Short string

	// Target is the uppercase ISA name used in exported kernel names:
	// "AVX2" or "AVX512".
	Target string

	// TargetDoc is the human-readable ISA name for doc comments:
	// "AVX2" or "AVX-512".
	TargetDoc string

	// Vec is the archsimd vector type: "Float64x4", "Float32x16", ...
	Vec string

	// Lanes is the element count of one register.
	Lanes int

	// Block is the element count of one 8-accumulator block.
	Block int

	// ChunkLen is the element count of a four-register chunk (half a
	// block); the addressing helper hands out one chunk per call.
	ChunkLen int

	// TailMax is the largest scalar-carry length, one below Lanes.
	TailMax int
}

// targetWidths maps a target name to its register width in bytes.
var targetWidths = map[string]int{
	"avx2":   32,
	"avx512": 64,
}

var elemSizes = map[string]int{
	"float32": 4,
	"float64": 8,
}

// newKernelConfig derives the full configuration from the element type and
// target name. The vector type name is the title-cased element type plus
// the lane count, matching the archsimd naming scheme.
func newKernelConfig(elemType, target string) (kernelConfig, error) {
	width, ok := targetWidths[target]
	if !ok {
		return kernelConfig{}, fmt.Errorf("unknown target %q (want avx2 or avx512)", target)
	}
	size, ok := elemSizes[elemType]
	if !ok {
		return kernelConfig{}, fmt.Errorf("unknown type %q (want float32 or float64)", elemType)
	}

	lanes := width / size
	titled := cases.Title(language.English).String(elemType)

	cfg := kernelConfig{
		ElemType:  elemType,
		Short:     "F" + strings.TrimPrefix(elemType, "float"),
		Target:    strings.ToUpper(target),
		TargetDoc: strings.ToUpper(target),
		Vec:       fmt.Sprintf("%sx%d", titled, lanes),
		Lanes:     lanes,
		Block:     8 * lanes,
		ChunkLen:  4 * lanes,
		TailMax:   lanes - 1,
	}
	if target == "avx512" {
		cfg.TargetDoc = "AVX-512"
	}
	return cfg, nil
}

func main() {
	elemType := flag.String("type", "", "element type: float32 or float64")
	target := flag.String("target", "", "instruction set: avx2 or avx512")
	output := flag.String("output", "", "output file path")
	flag.Parse()

	if *elemType == "" || *target == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := newKernelConfig(*elemType, *target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sumgen: %v\n", err)
		os.Exit(1)
	}

	src, err := generate(cfg, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sumgen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "sumgen: %v\n", err)
		os.Exit(1)
	}
}

// generate renders the kernel template and runs the result through
// goimports so the emitted file matches what gofmt would produce.
func generate(cfg kernelConfig, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := kernelTemplate.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", filename, err)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return src, nil
}

var kernelTemplate = template.Must(template.New("kernel").Parse(`//go:build amd64 && goexperiment.simd

// Code generated by sumgen. DO NOT EDIT.

package sum

import (
	"simd/archsimd"

	"github.com/ajroetker/go-reduce/internal/assert"
)

// {{.TargetDoc}} {{.ElemType}} kernels: 8 accumulators x {{.Lanes}} lanes, {{.Block}}-element blocks.

const (
	lanes{{.Target}}{{.Short}} = {{.Lanes}}
	block{{.Target}}{{.Short}} = 8 * lanes{{.Target}}{{.Short}}
)

// chunk{{.Target}}{{.Short}} returns the four lane-group slices needed to load the
// {{.ChunkLen}}-element chunk starting at x[chunk*{{.ChunkLen}}] into four registers. Pure
// addressing; the caller guarantees all {{.ChunkLen}} elements are in bounds.
func chunk{{.Target}}{{.Short}}(x []{{.ElemType}}, chunk int) ([]{{.ElemType}}, []{{.ElemType}}, []{{.ElemType}}, []{{.ElemType}}) {
	base := chunk * 4 * lanes{{.Target}}{{.Short}}
	return x[base:],
		x[base+lanes{{.Target}}{{.Short}}:],
		x[base+2*lanes{{.Target}}{{.Short}}:],
		x[base+3*lanes{{.Target}}{{.Short}}:]
}

// sumBlock{{.Target}}{{.Short}} loads the {{.Block}} elements at x[0:{{.Block}}] as eight lane
// groups and adds each group into its accumulator. The accumulators persist
// across calls; no rollup happens here.
func sumBlock{{.Target}}{{.Short}}(x []{{.ElemType}}, acc *[8]archsimd.{{.Vec}}) {
	x1, x2, x3, x4 := chunk{{.Target}}{{.Short}}(x, 0)
	x5, x6, x7, x8 := chunk{{.Target}}{{.Short}}(x, 1)

	acc[0] = acc[0].Add(archsimd.Load{{.Vec}}Slice(x1))
	acc[1] = acc[1].Add(archsimd.Load{{.Vec}}Slice(x2))
	acc[2] = acc[2].Add(archsimd.Load{{.Vec}}Slice(x3))
	acc[3] = acc[3].Add(archsimd.Load{{.Vec}}Slice(x4))
	acc[4] = acc[4].Add(archsimd.Load{{.Vec}}Slice(x5))
	acc[5] = acc[5].Add(archsimd.Load{{.Vec}}Slice(x6))
	acc[6] = acc[6].Add(archsimd.Load{{.Vec}}Slice(x7))
	acc[7] = acc[7].Add(archsimd.Load{{.Vec}}Slice(x8))
}

// rollup{{.Target}}{{.Short}} pairwise-sums the eight accumulators down to one
// register (8 -> 4 -> 2 -> 1), then adds the surviving register's lanes
// into one scalar. This is the only place the parallel state collapses.
func rollup{{.Target}}{{.Short}}(acc *[8]archsimd.{{.Vec}}) {{.ElemType}} {
	a01 := acc[0].Add(acc[1])
	a23 := acc[2].Add(acc[3])
	a45 := acc[4].Add(acc[5])
	a67 := acc[6].Add(acc[7])

	a0123 := a01.Add(a23)
	a4567 := a45.Add(a67)
	v := a0123.Add(a4567)

	var lanes [lanes{{.Target}}{{.Short}}]{{.ElemType}}
	v.StoreSlice(lanes[:])
{{- if eq .Lanes 4}}
	return (lanes[0] + lanes[1]) + (lanes[2] + lanes[3])
{{- else if eq .Lanes 8}}
	return ((lanes[0] + lanes[1]) + (lanes[2] + lanes[3])) +
		((lanes[4] + lanes[5]) + (lanes[6] + lanes[7]))
{{- else}}
	var total {{.ElemType}}
	for l := 0; l < lanes{{.Target}}{{.Short}}; l += 4 {
		total += (lanes[l] + lanes[l+1]) + (lanes[l+2] + lanes[l+3])
	}
	return total
{{- end}}
}

func newAcc{{.Target}}{{.Short}}() [8]archsimd.{{.Vec}} {
	zero := archsimd.Broadcast{{.Vec}}(0)
	return [8]archsimd.{{.Vec}}{zero, zero, zero, zero, zero, zero, zero, zero}
}

// Sum_{{.Target}}_{{.Short}}x{{.Lanes}} sums all elements of x using {{.TargetDoc}}. Any length is
// handled: {{.Block}}-element blocks, then {{.Lanes}}-element groups into accumulator 0,
// then a scalar carry for the final 0-{{.TailMax}} elements.
func Sum_{{.Target}}_{{.Short}}x{{.Lanes}}(x []{{.ElemType}}) {{.ElemType}} {
	n := len(x)
	offset := n % block{{.Target}}{{.Short}}

	acc := newAcc{{.Target}}{{.Short}}()
	i := 0
	for ; i < n-offset; i += block{{.Target}}{{.Short}} {
		sumBlock{{.Target}}{{.Short}}(x[i:], &acc)
	}

	var extra {{.ElemType}}
	if offset != 0 {
		tail := offset % lanes{{.Target}}{{.Short}}
		for ; i < n-tail; i += lanes{{.Target}}{{.Short}} {
			acc[0] = acc[0].Add(archsimd.Load{{.Vec}}Slice(x[i:]))
		}
		for ; i < n; i++ {
			extra += x[i]
		}
	}

	return extra + rollup{{.Target}}{{.Short}}(&acc)
}

// SumAligned_{{.Target}}_{{.Short}}x{{.Lanes}} sums all elements of x using {{.TargetDoc}}.
//
// len(x) must be a positive multiple of {{.Block}}; there is no tail handling
// and violating the precondition reads out of bounds in release builds.
func SumAligned_{{.Target}}_{{.Short}}x{{.Lanes}}(x []{{.ElemType}}) {{.ElemType}} {
	assert.Multiple(len(x), block{{.Target}}{{.Short}}, "aligned vector length")

	acc := newAcc{{.Target}}{{.Short}}()
	for i := 0; i < len(x); i += block{{.Target}}{{.Short}} {
		sumBlock{{.Target}}{{.Short}}(x[i:], &acc)
	}
	return rollup{{.Target}}{{.Short}}(&acc)
}

// sumVerticalBlock{{.Target}}{{.Short}} accumulates the {{.Block}}-column block starting at
// col across every row of matrix, then stores the eight accumulators
// straight into out[col:col+{{.Block}}]. Each output slot is exactly one lane of
// one accumulator, so no rollup is needed.
func sumVerticalBlock{{.Target}}{{.Short}}(matrix, out []{{.ElemType}}, col, dims int) {
	acc := newAcc{{.Target}}{{.Short}}()
	for j := 0; j < len(matrix); j += dims {
		sumBlock{{.Target}}{{.Short}}(matrix[j+col:], &acc)
	}
	for k := range acc {
		acc[k].StoreSlice(out[col+k*lanes{{.Target}}{{.Short}}:])
	}
}

// SumVertical_{{.Target}}_{{.Short}}x{{.Lanes}} writes the per-column sums of matrix into out
// using {{.TargetDoc}}. The dimension is len(out); len(matrix) must be an exact
// multiple of it. Every output slot is overwritten.
func SumVertical_{{.Target}}_{{.Short}}x{{.Lanes}}(matrix, out []{{.ElemType}}) {
	dims := len(out)
	assert.Divides(len(matrix), dims, "matrix")

	offset := dims % block{{.Target}}{{.Short}}
	i := 0
	for ; i < dims-offset; i += block{{.Target}}{{.Short}} {
		sumVerticalBlock{{.Target}}{{.Short}}(matrix, out, i, dims)
	}

	if offset != 0 {
		tail := offset % lanes{{.Target}}{{.Short}}
		for ; i < dims-tail; i += lanes{{.Target}}{{.Short}} {
			acc := archsimd.Broadcast{{.Vec}}(0)
			for j := 0; j < len(matrix); j += dims {
				acc = acc.Add(archsimd.Load{{.Vec}}Slice(matrix[j+i:]))
			}
			acc.StoreSlice(out[i:])
		}
		for ; i < dims; i++ {
			var total {{.ElemType}}
			for j := 0; j < len(matrix); j += dims {
				total += matrix[j+i]
			}
			out[i] = total
		}
	}
}

// SumVerticalAligned_{{.Target}}_{{.Short}}x{{.Lanes}} writes the per-column sums of matrix
// into out using {{.TargetDoc}}.
//
// len(out) must be a positive multiple of {{.Block}} and len(matrix) an exact
// multiple of len(out); no tail handling.
func SumVerticalAligned_{{.Target}}_{{.Short}}x{{.Lanes}}(matrix, out []{{.ElemType}}) {
	dims := len(out)
	assert.Multiple(dims, block{{.Target}}{{.Short}}, "aligned dimension")
	assert.Divides(len(matrix), dims, "matrix")

	for i := 0; i < dims; i += block{{.Target}}{{.Short}} {
		sumVerticalBlock{{.Target}}{{.Short}}(matrix, out, i, dims)
	}
}
`))
