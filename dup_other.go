//go:build !linux

package main

func DupOutErr(base string) error {
	return ErrRedirectUnsupported
}
