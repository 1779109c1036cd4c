package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-reduce/reduce"
	"github.com/ajroetker/go-reduce/reduce/sum"
)

// selftest lengths hit every remainder tier: whole blocks, a lane-width
// tail, and a scalar carry of 1-3 elements.
var selftestLengths = []int{768, 131, 132, 64, 32, 31, 5, 1}

// selftestDims are the vertical dimensions; 512 also exercises the aligned
// entry points.
var selftestDims = []int{512, 537, 5}

func newSelftestCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the dispatched kernels against a portable reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch level: %s\n", reduce.CurrentLevel())

			rng := rand.New(rand.NewSource(seed))
			st := &selftest{out: out, rng: rng}

			st.horizontal64()
			st.horizontal32()
			st.vertical64()
			st.vertical32()

			if st.failures > 0 {
				return fmt.Errorf("selftest: %d kernel(s) disagree with the reference", st.failures)
			}
			fmt.Fprintln(out, "all kernels agree with the reference")
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "seed for the generated test vectors")
	return cmd
}

type selftest struct {
	out      io.Writer
	rng      *rand.Rand
	failures int
}

func (st *selftest) check(ok bool, format string, args ...any) {
	if ok {
		fmt.Fprintf(st.out, "ok   "+format+"\n", args...)
		return
	}
	st.failures++
	fmt.Fprintf(st.out, "FAIL "+format+"\n", args...)
}

func (st *selftest) horizontal64() {
	for _, n := range selftestLengths {
		x := make([]float64, n)
		for i := range x {
			x[i] = st.rng.Float64()
		}

		var want float64
		for _, v := range x {
			want += v
		}
		st.check(close64(want, sum.Sum64(x)), "sum float64 n=%d", n)

		if n%sum.BlockLen64 == 0 {
			st.check(close64(want, sum.SumAligned64(x)), "sum aligned float64 n=%d", n)
		}
	}
}

func (st *selftest) horizontal32() {
	for _, n := range selftestLengths {
		x := make([]float32, n)
		for i := range x {
			x[i] = st.rng.Float32()
		}

		var want float32
		for _, v := range x {
			want += v
		}
		st.check(close32(want, sum.Sum(x)), "sum float32 n=%d", n)

		if n%sum.BlockLen32 == 0 {
			st.check(close32(want, sum.SumAligned(x)), "sum aligned float32 n=%d", n)
		}
	}
}

func (st *selftest) vertical64() {
	const rows = 25
	for _, dims := range selftestDims {
		matrix := make([]float64, rows*dims)
		for i := range matrix {
			matrix[i] = st.rng.Float64()
		}

		want := make([]float64, dims)
		for j := 0; j < len(matrix); j += dims {
			for i := 0; i < dims; i++ {
				want[i] += matrix[j+i]
			}
		}

		got := make([]float64, dims)
		sum.SumVertical64(matrix, got)
		st.check(equal64(want, got), "vertical float64 dims=%d", dims)

		if dims%sum.BlockLen64 == 0 {
			aligned := make([]float64, dims)
			sum.SumVerticalAligned64(matrix, aligned)
			st.check(equal64(want, aligned), "vertical aligned float64 dims=%d", dims)
		}
	}
}

func (st *selftest) vertical32() {
	const rows = 25
	for _, dims := range selftestDims {
		matrix := make([]float32, rows*dims)
		for i := range matrix {
			matrix[i] = st.rng.Float32()
		}

		want := make([]float32, dims)
		for j := 0; j < len(matrix); j += dims {
			for i := 0; i < dims; i++ {
				want[i] += matrix[j+i]
			}
		}

		got := make([]float32, dims)
		sum.SumVertical(matrix, got)
		st.check(equal32(want, got), "vertical float32 dims=%d", dims)

		if dims%sum.BlockLen32 == 0 {
			aligned := make([]float32, dims)
			sum.SumVerticalAligned(matrix, aligned)
			st.check(equal32(want, aligned), "vertical aligned float32 dims=%d", dims)
		}
	}
}

// close64 compares a kernel result with the left-to-right reference sum.
// The kernels use a different association order, so allow a small relative
// error. Vertical results add rows in reference order and are compared
// exactly.
func close64(want, got float64) bool {
	if want == got {
		return true
	}
	diff := math.Abs(want - got)
	return diff <= 1e-9*math.Max(math.Abs(want), math.Abs(got))
}

func close32(want, got float32) bool {
	if want == got {
		return true
	}
	w, g := float64(want), float64(got)
	return math.Abs(w-g) <= 1e-4*math.Max(math.Abs(w), math.Abs(g))
}

func equal64(want, got []float64) bool {
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

func equal32(want, got []float32) bool {
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
