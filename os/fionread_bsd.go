//go:build darwin || freebsd || netbsd || dragonfly

package os

// FIONREAD is _IOR('f', 127, int).
const FIONREAD = 0x4004667f
