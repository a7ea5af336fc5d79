//go:build linux || darwin || freebsd || netbsd || dragonfly

// Package sockctl exposes named descriptor flag operations composed from the
// raw fcntl/ioctl forwarders in the os subpackage.
package sockctl

import (
	"github.com/sirupsen/logrus"

	sockos "github.com/mymmsc/sockctl/os"
)

// INVALID is the descriptor value the kernel never hands out.
const INVALID = -1

var log = logrus.WithField("module", "sockctl")

// SetLogger replaces the entry used for debug output. A nil entry is
// ignored.
func SetLogger(entry *logrus.Entry) {
	if entry == nil {
		return
	}
	log = entry
}

// Controller issues descriptor control calls. System talks to the kernel,
// tests plug in their own.
type Controller interface {
	Fcntl(fd, cmd, arg int) (int, error)
	Ioctl(fd int, req uint, arg *int32) (int, error)
}

// System forwards straight to the operating system.
type System struct{}

func (System) Fcntl(fd, cmd, arg int) (int, error) {
	return sockos.Fcntl(fd, cmd, arg)
}

func (System) Ioctl(fd int, req uint, arg *int32) (int, error) {
	return sockos.Ioctl(fd, req, arg)
}
