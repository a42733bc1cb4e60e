//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// DupOutErr uses unix.Dup3 to direct the stdout and stderr streams to
// base.out and base.log
func DupOutErr(base string) error {
	// https://github.com/golang/go/issues/325
	outfile, err := os.Create(base + ".out")
	if err != nil {
		return err
	}
	errfile, err := os.Create(base + ".log")
	if err != nil {
		return err
	}
	if err := unix.Dup3(int(outfile.Fd()), unix.Stdout, 0); err != nil {
		return err
	}
	return unix.Dup3(int(errfile.Fd()), unix.Stderr, 0)
}
