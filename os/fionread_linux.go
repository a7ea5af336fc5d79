package os

import "golang.org/x/sys/unix"

// FIONREAD asks for the number of bytes waiting to be read. Linux calls it
// TIOCINQ.
const FIONREAD = unix.TIOCINQ
