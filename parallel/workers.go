package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Workers reports the number of workers to use on this machine: the logical
// core count, capped by GOMAXPROCS. Can't return 0.
func Workers() int {
	n := cpuid.CPU.LogicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if procs := runtime.GOMAXPROCS(0); procs < n {
		n = procs
	}
	if n < 1 {
		n = 1
	}
	return n
}
