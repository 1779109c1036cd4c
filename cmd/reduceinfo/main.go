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

// Command reduceinfo inspects the runtime SIMD dispatch decision and checks
// the reduction kernels against a portable reference on the current CPU.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reduceinfo",
		Short: "Diagnostics for the go-reduce SIMD dispatch and kernels",
		Long: `reduceinfo prints the SIMD level selected at startup, the CPU features
it was derived from, and can run the reduction kernels against a portable
reference implementation on this machine.

Set REDUCE_NO_SIMD=1 to force the scalar fallback and compare.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newFeaturesCmd())
	rootCmd.AddCommand(newSelftestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
