package main

import "os"
import "runtime/pprof"

import "github.com/pkg/errors"

// startProfile collects CPU profile data into path until stop is called.
// The file can be fed to the compiler as default.pgo.
func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "start profile")
	}
	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}
