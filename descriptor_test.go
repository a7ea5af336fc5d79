//go:build linux || darwin || freebsd || netbsd || dragonfly

package sockctl

import (
	"testing"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	sockos "github.com/mymmsc/sockctl/os"
)

type fcntlCall struct {
	Fd, Cmd, Arg int
}

// mockController records fcntl calls and answers from canned functions.
type mockController struct {
	calls     []fcntlCall
	fcntlFunc func(fd, cmd, arg int) (int, error)
	ioctlFunc func(fd int, req uint, arg *int32) (int, error)
}

func (m *mockController) Fcntl(fd, cmd, arg int) (int, error) {
	m.calls = append(m.calls, fcntlCall{fd, cmd, arg})
	return m.fcntlFunc(fd, cmd, arg)
}

func (m *mockController) Ioctl(fd int, req uint, arg *int32) (int, error) {
	return m.ioctlFunc(fd, req, arg)
}

func pipe(t *testing.T) (r, w int) {
	t.Helper()
	var p [2]int
	assert.NilError(t, unix.Pipe(p[:]))
	t.Cleanup(func() {
		unix.Close(p[0])
		unix.Close(p[1])
	})
	return p[0], p[1]
}

func TestDescriptorValid(t *testing.T) {
	r, _ := pipe(t)
	assert.Check(t, NewDescriptor(r).Valid())
	assert.Check(t, !NewDescriptor(INVALID).Valid())

	var p [2]int
	assert.NilError(t, unix.Pipe(p[:]))
	unix.Close(p[0])
	unix.Close(p[1])
	assert.Check(t, !NewDescriptor(p[0]).Valid())
}

func TestDescriptorBlockingRoundTrip(t *testing.T) {
	r, _ := pipe(t)
	d := NewDescriptor(r)

	assert.NilError(t, d.SetBlocking(false))
	blocking, err := d.Blocking()
	assert.NilError(t, err)
	assert.Check(t, !blocking)

	flags, err := sockos.Fcntl(r, unix.F_GETFL, 0)
	assert.NilError(t, err)
	assert.Check(t, flags&unix.O_NONBLOCK != 0)

	assert.NilError(t, d.SetBlocking(true))
	blocking, err = d.Blocking()
	assert.NilError(t, err)
	assert.Check(t, blocking)
}

func TestDescriptorSetBlockingKeepsOtherFlags(t *testing.T) {
	m := &mockController{
		fcntlFunc: func(fd, cmd, arg int) (int, error) {
			if cmd == unix.F_GETFL {
				return unix.O_APPEND, nil
			}
			return 0, nil
		},
	}
	d := NewDescriptorWith(9, m)

	assert.NilError(t, d.SetBlocking(false))
	assert.Check(t, is.DeepEqual(m.calls, []fcntlCall{
		{9, unix.F_GETFL, 0},
		{9, unix.F_SETFL, unix.O_APPEND | unix.O_NONBLOCK},
	}))
}

func TestDescriptorSetBlockingNoChange(t *testing.T) {
	m := &mockController{
		fcntlFunc: func(fd, cmd, arg int) (int, error) {
			return 0, nil
		},
	}
	assert.NilError(t, NewDescriptorWith(3, m).SetBlocking(true))
	assert.Check(t, is.Len(m.calls, 1))
}

func TestDescriptorCloseOnExecRoundTrip(t *testing.T) {
	r, _ := pipe(t)
	d := NewDescriptor(r)

	assert.NilError(t, d.SetCloseOnExec(true))
	on, err := d.CloseOnExec()
	assert.NilError(t, err)
	assert.Check(t, on)

	assert.NilError(t, d.SetCloseOnExec(false))
	on, err = d.CloseOnExec()
	assert.NilError(t, err)
	assert.Check(t, !on)

	flags, err := sockos.Fcntl(r, unix.F_GETFD, 0)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(flags&unix.FD_CLOEXEC, 0))
}

func TestDescriptorAvailable(t *testing.T) {
	r, w := pipe(t)
	d := NewDescriptor(r)

	n, err := d.Available()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(n, 0))

	_, err = unix.Write(w, []byte("Hello World\n"))
	assert.NilError(t, err)
	n, err = d.Available()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(n, 12))
}

func TestDescriptorAvailableUsesZeroSlot(t *testing.T) {
	m := &mockController{
		ioctlFunc: func(fd int, req uint, arg *int32) (int, error) {
			assert.Check(t, is.Equal(req, uint(sockos.FIONREAD)))
			assert.Check(t, is.Equal(*arg, int32(0)))
			*arg = 77
			return 0, nil
		},
	}
	n, err := NewDescriptorWith(4, m).Available()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(n, 77))
}

func TestDescriptorErrorsKeepErrno(t *testing.T) {
	d := NewDescriptor(INVALID)

	_, err := d.Flags()
	assert.Check(t, is.ErrorIs(err, unix.EBADF))
	assert.Check(t, is.ErrorContains(err, "F_GETFL"))

	_, err = d.Blocking()
	assert.Check(t, IsBadDescriptor(err))

	assert.Check(t, IsBadDescriptor(d.SetBlocking(false)))
	assert.Check(t, IsBadDescriptor(d.SetCloseOnExec(true)))

	_, err = d.Available()
	assert.Check(t, IsBadDescriptor(err))
	assert.Check(t, is.ErrorContains(err, "FIONREAD"))
}
