//go:build linux || darwin || freebsd || netbsd || dragonfly

package sockctl

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Errno returns the kernel error code carried by err, which may have been
// wrapped any number of times on its way up.
func Errno(err error) (unix.Errno, bool) {
	var e unix.Errno
	if err == nil || !errors.As(err, &e) {
		return 0, false
	}
	return e, true
}

func IsAgain(err error) bool {
	e, ok := Errno(err)
	return ok && (e == unix.EAGAIN || e == unix.EWOULDBLOCK)
}

func IsBadDescriptor(err error) bool {
	e, ok := Errno(err)
	return ok && e == unix.EBADF
}

// Temporary reports whether retrying the same call may succeed.
func Temporary(err error) bool {
	e, ok := Errno(err)
	return ok && e.Temporary()
}
