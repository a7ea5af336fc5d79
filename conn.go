//go:build linux || darwin || freebsd || netbsd || dragonfly

package sockctl

import (
	"syscall"

	"github.com/pkg/errors"
)

// Control runs fn against the descriptor behind c (a *net.TCPConn, *os.File
// and so on). The descriptor is only guaranteed to stay open while fn runs;
// it is not duplicated and its blocking mode is not touched.
func Control(c syscall.Conn, fn func(d *Descriptor) error) error {
	raw, err := c.SyscallConn()
	if err != nil {
		return errors.Wrap(err, "syscall conn")
	}
	var ferr error
	if err := raw.Control(func(fd uintptr) {
		ferr = fn(NewDescriptor(int(fd)))
	}); err != nil {
		return errors.Wrap(err, "control")
	}
	return ferr
}
