//go:build linux || darwin || freebsd || netbsd || dragonfly

// Package os forwards the descriptor control primitives of the host
// operating system without touching their arguments or results.
package os

import (
	"golang.org/x/sys/unix"
)

// Fcntl calls fcntl(2) with fd, cmd and arg exactly as given.
//
// The raw result is returned verbatim, which is -1 when the call failed; the
// error is then the unix.Errno the kernel reported. Nothing is validated, an
// invalid or closed descriptor goes straight to the kernel.
func Fcntl(fd, cmd, arg int) (int, error) {
	return unix.FcntlInt(uintptr(fd), cmd, arg)
}
