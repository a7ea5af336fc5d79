//go:build linux || darwin || freebsd || netbsd || dragonfly

package sockctl

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	sockos "github.com/mymmsc/sockctl/os"
)

// Descriptor is a caller-owned file descriptor. It never opens or closes fd.
type Descriptor struct {
	fd  int
	ctl Controller
}

func NewDescriptor(fd int) *Descriptor {
	return NewDescriptorWith(fd, System{})
}

func NewDescriptorWith(fd int, ctl Controller) *Descriptor {
	return &Descriptor{fd: fd, ctl: ctl}
}

func (d *Descriptor) Fd() int {
	return d.fd
}

// Valid reports whether fd refers to an open file.
func (d *Descriptor) Valid() bool {
	if d.fd < 0 {
		return false
	}
	r, err := d.ctl.Fcntl(d.fd, unix.F_GETFD, 0)
	return err == nil && r != -1
}

// Flags returns the file status flags (F_GETFL).
func (d *Descriptor) Flags() (int, error) {
	flags, err := d.ctl.Fcntl(d.fd, unix.F_GETFL, 0)
	if err != nil {
		return flags, errors.Wrapf(err, "fcntl(%d, F_GETFL)", d.fd)
	}
	return flags, nil
}

// SetFlags replaces the file status flags (F_SETFL).
func (d *Descriptor) SetFlags(flags int) error {
	if _, err := d.ctl.Fcntl(d.fd, unix.F_SETFL, flags); err != nil {
		return errors.Wrapf(err, "fcntl(%d, F_SETFL, %#x)", d.fd, flags)
	}
	log.WithFields(logrus.Fields{"fd": d.fd, "flags": flags}).Debug("status flags set")
	return nil
}

func (d *Descriptor) Blocking() (bool, error) {
	flags, err := d.Flags()
	if err != nil {
		return false, err
	}
	return flags&unix.O_NONBLOCK == 0, nil
}

// SetBlocking clears or sets O_NONBLOCK, leaving the other status flags as
// they are.
func (d *Descriptor) SetBlocking(blocking bool) error {
	flags, err := d.Flags()
	if err != nil {
		return err
	}
	next := flags | unix.O_NONBLOCK
	if blocking {
		next = flags &^ unix.O_NONBLOCK
	}
	if next == flags {
		return nil
	}
	return d.SetFlags(next)
}

func (d *Descriptor) CloseOnExec() (bool, error) {
	flags, err := d.ctl.Fcntl(d.fd, unix.F_GETFD, 0)
	if err != nil {
		return false, errors.Wrapf(err, "fcntl(%d, F_GETFD)", d.fd)
	}
	return flags&unix.FD_CLOEXEC != 0, nil
}

func (d *Descriptor) SetCloseOnExec(on bool) error {
	flags, err := d.ctl.Fcntl(d.fd, unix.F_GETFD, 0)
	if err != nil {
		return errors.Wrapf(err, "fcntl(%d, F_GETFD)", d.fd)
	}
	next := flags &^ unix.FD_CLOEXEC
	if on {
		next = flags | unix.FD_CLOEXEC
	}
	if next == flags {
		return nil
	}
	if _, err = d.ctl.Fcntl(d.fd, unix.F_SETFD, next); err != nil {
		return errors.Wrapf(err, "fcntl(%d, F_SETFD, %#x)", d.fd, next)
	}
	log.WithFields(logrus.Fields{"fd": d.fd, "cloexec": on}).Debug("descriptor flags set")
	return nil
}

// Available returns the number of bytes that can be read without blocking
// (FIONREAD).
func (d *Descriptor) Available() (int, error) {
	var n int32
	if _, err := d.ctl.Ioctl(d.fd, sockos.FIONREAD, &n); err != nil {
		return 0, errors.Wrapf(err, "ioctl(%d, FIONREAD)", d.fd)
	}
	return int(n), nil
}
