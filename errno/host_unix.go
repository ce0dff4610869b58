//go:build linux || darwin || freebsd

package errno

import (
	"errors"

	"golang.org/x/sys/unix"
)

// FromErrno classifies a host errno.
func FromErrno(e unix.Errno) (Code, bool) {
	if e == 0 {
		return 0, false
	}

	return fromHost(e)
}

// Errno converts c to the host errno. It reports false when c is unassigned
// or the host has no equivalent condition.
func (c Code) Errno() (unix.Errno, bool) {
	if !c.Valid() {
		return 0, false
	}

	return toHost(c)
}

// As lets errors.As convert a Code into a host errno
// (*unix.Errno, which is *syscall.Errno).
func (c Code) As(target any) bool {
	p, ok := target.(*unix.Errno)
	if !ok {
		return false
	}

	e, ok := c.Errno()
	if ok {
		*p = e
	}

	return ok
}

func isHost(c Code, target error) bool {
	e, ok := target.(unix.Errno)
	if !ok {
		return false
	}

	h, ok := c.Errno()

	return ok && h == e
}

func fromHostError(err error) (Code, bool) {
	var e unix.Errno
	if !errors.As(err, &e) {
		return 0, false
	}

	return FromErrno(e)
}
