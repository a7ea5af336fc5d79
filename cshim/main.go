//go:build linux || darwin || freebsd || netbsd || dragonfly

// Command cshim is the C-ABI face of the forwarders, for host runtimes that
// cannot call fcntl(2) or ioctl(2) themselves. Build it as a shared library:
//
//	go build -buildmode=c-shared -o libsockctl.so ./cshim
//
// which also writes libsockctl.h with:
//
//	int sockctl_fcntl(int fildes, int cmd, int val);
//	int sockctl_ioctl(int fildes, unsigned long request, int *val);
//
// Both return the system call result unchanged and leave the error code in
// the calling thread's errno.
package main

import "C"

import (
	"unsafe"
)

//export sockctl_fcntl
func sockctl_fcntl(fildes, cmd, val C.int) C.int {
	r, e := forwardFcntl(int(fildes), int(cmd), int(val))
	return result(r, e)
}

//export sockctl_ioctl
func sockctl_ioctl(fildes C.int, request C.ulong, val *C.int) C.int {
	r, e := forwardIoctl(int(fildes), uint(request), (*int32)(unsafe.Pointer(val)))
	return result(r, e)
}

func main() {}
