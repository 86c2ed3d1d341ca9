// Package cpufeature detects, once at process start, whether the current
// CPU supports the vector instructions that node16's key-byte compare can
// use to find a lane without a branch per candidate byte.
package cpufeature

import "github.com/klauspost/cpuid/v2"

var haveSSE2 bool

func init() {
	haveSSE2 = cpuid.CPU.Supports(cpuid.SSE2)
}

// HaveSSE2 reports whether the branchless 16-lane compare used by
// node16.findChild may assume SSE2-equivalent semantics. On platforms
// without it, callers fall back to a portable scan.
func HaveSSE2() bool {
	return haveSSE2
}
