//go:build reducedebug

// Package assert provides contract checks for the reduction kernels that
// compile to nothing in release builds. Build with -tags reducedebug to
// turn violations into panics instead of out-of-bounds behavior.
package assert

import "fmt"

// Multiple panics unless n is a positive multiple of m.
func Multiple(n, m int, what string) {
	if n <= 0 || n%m != 0 {
		panic(fmt.Sprintf("reduce: %s must be a positive multiple of %d, got %d", what, m, n))
	}
}

// Equal panics unless got equals want.
func Equal(got, want int, what string) {
	if got != want {
		panic(fmt.Sprintf("reduce: %s must be %d, got %d", what, want, got))
	}
}

// Divides panics unless n is an exact multiple of m (zero included).
func Divides(n, m int, what string) {
	if m == 0 || n%m != 0 {
		panic(fmt.Sprintf("reduce: %s length %d must be an exact multiple of %d", what, n, m))
	}
}
