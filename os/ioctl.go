//go:build linux || darwin || freebsd || netbsd || dragonfly

package os

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Ioctl calls ioctl(2) with fd, req and the address of arg.
//
// arg is the C int slot used by int-valued requests; the kernel may read it,
// write it, or both. The caller owns the slot, Ioctl does not keep the pointer
// once it returns. A nil arg is passed as NULL.
//
// The raw result is returned verbatim, -1 on failure together with the
// unix.Errno the kernel reported.
func Ioctl(fd int, req uint, arg *int32) (int, error) {
	r, _, e := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(arg)))
	if e != 0 {
		return int(r), e
	}
	return int(r), nil
}
