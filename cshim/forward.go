//go:build linux || darwin || freebsd || netbsd || dragonfly

package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mymmsc/sockctl"
	sockos "github.com/mymmsc/sockctl/os"
)

const traceEnv = "SOCKCTL_TRACE"

var tracer = newTracer(os.Getenv(traceEnv))

// newTracer builds the logger for SOCKCTL_TRACE. Unset or unknown values keep
// tracing off.
func newTracer(mode string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "1", "true", "debug":
		l.SetLevel(logrus.DebugLevel)
	case "json":
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}

func errnoOf(err error) int {
	e, ok := sockctl.Errno(err)
	if !ok {
		return 0
	}
	return int(e)
}

func forwardFcntl(fd, cmd, val int) (int, int) {
	r, err := sockos.Fcntl(fd, cmd, val)
	e := errnoOf(err)
	if tracer.IsLevelEnabled(logrus.DebugLevel) {
		tracer.WithFields(logrus.Fields{
			"fd":     fd,
			"cmd":    cmd,
			"val":    val,
			"result": r,
			"errno":  e,
		}).Debug("fcntl")
	}
	return r, e
}

func forwardIoctl(fd int, req uint, val *int32) (int, int) {
	r, err := sockos.Ioctl(fd, req, val)
	e := errnoOf(err)
	if tracer.IsLevelEnabled(logrus.DebugLevel) {
		fields := logrus.Fields{
			"fd":      fd,
			"request": req,
			"result":  r,
			"errno":   e,
		}
		if val != nil {
			fields["val"] = *val
		}
		tracer.WithFields(fields).Debug("ioctl")
	}
	return r, e
}
