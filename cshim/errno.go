//go:build linux || darwin || freebsd || netbsd || dragonfly

package main

/*
#include <errno.h>

static void sockctl_set_errno(int e) {
	errno = e;
}

static int sockctl_get_errno(void) {
	return errno;
}
*/
import "C"

// result hands r back to C, storing e in errno first when the call failed.
func result(r, e int) C.int {
	if e != 0 {
		C.sockctl_set_errno(C.int(e))
	}
	return C.int(r)
}

// errno and setErrno reach the calling thread's C errno. Callers must hold
// the thread with runtime.LockOSThread for the value to mean anything.
func errno() int {
	return int(C.sockctl_get_errno())
}

func setErrno(e int) {
	C.sockctl_set_errno(C.int(e))
}
