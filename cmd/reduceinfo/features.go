package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-reduce/reduce"
)

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print the dispatch decision and detected CPU features",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
			fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "NumCPU: %d\n", runtime.NumCPU())
			fmt.Fprintln(out)

			fmt.Fprintf(out, "Dispatch level: %s\n", reduce.CurrentLevel())
			fmt.Fprintf(out, "Dispatch width: %d bytes\n", reduce.CurrentWidth())
			fmt.Fprintf(out, "Lanes float32: %d\n", reduce.MaxLanes[float32]())
			fmt.Fprintf(out, "Lanes float64: %d\n", reduce.MaxLanes[float64]())
			fmt.Fprintf(out, "REDUCE_NO_SIMD: %v\n", reduce.NoSimdEnv())
			fmt.Fprintln(out)

			switch runtime.GOARCH {
			case "amd64":
				printAMD64Features(cmd)
			case "arm64":
				printARM64Features(cmd)
			}
			return nil
		},
	}
}

func printAMD64Features(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(out, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(out, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(out, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(out, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(out, "  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Fprintf(out, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Fprintf(out, "  HasFMA:      %v\n", cpu.X86.HasFMA)
}

func printARM64Features(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(out, "  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(out, "  HasFP:    %v\n", cpu.ARM64.HasFP)
	fmt.Fprintf(out, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(out, "  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
}
