package errno

import (
	"errors"
	"fmt"
	"os"

	"github.com/next-trace/scg-errno/contract"
)

// Code is an OS error condition.
type Code int32

// compile-time guarantee that Code implements contract.Describer
var _ contract.Describer = Code(0)

// FromCode looks up the code assigned to n. It reports false for zero,
// negative and unassigned numbers.
func FromCode(n int32) (Code, bool) {
	c := Code(n)
	if !c.Valid() {
		return 0, false
	}

	return c, true
}

// FromError returns the code carried by err. A nil err, or one without an
// errno in its chain, reports false, as does an errno with no assigned code.
//
// The errno must come from the error returned by the failing call; there is
// no ambient register to fall back on.
func FromError(err error) (Code, bool) {
	if err == nil {
		return 0, false
	}

	var c Code
	if errors.As(err, &c) && c.Valid() {
		return c, true
	}

	return fromHostError(err)
}

// All returns every assigned code in ascending order.
func All() []Code {
	out := make([]Code, 0, len(table))

	for i := range table {
		if c := Code(i); c.Valid() {
			out = append(out, c)
		}
	}

	return out
}

// Valid reports whether c is an assigned code.
func (c Code) Valid() bool {
	return c > 0 && int(c) < len(table) && table[c].name != ""
}

// String returns the symbolic name, e.g. "ENOENT".
func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", int32(c))
	}

	return table[c].name
}

// Description returns the explanatory text for c, or "" if c is unassigned.
func (c Code) Description() string {
	if !c.Valid() {
		return ""
	}

	return table[c].desc
}

// Error renders "NAME: description".
func (c Code) Error() string {
	if !c.Valid() {
		return c.String()
	}

	return c.String() + ": " + c.Description()
}

// Is matches the portable sentinels from os and errors, and the host errno
// for c where a host mapping exists.
func (c Code) Is(target error) bool {
	switch target {
	case os.ErrPermission:
		return c == EACCES || c == EPERM
	case os.ErrExist:
		return c == EEXIST || c == ENOTEMPTY
	case os.ErrNotExist:
		return c == ENOENT
	case errors.ErrUnsupported:
		return c == ENOSYS || c == EOPNOTSUPP
	}

	return isHost(c, target)
}

// Temporary reports whether the condition is usually transient.
func (c Code) Temporary() bool {
	return c == EINTR || c == EMFILE || c == ENFILE || c.Timeout()
}

// Timeout reports whether the condition is a timeout.
func (c Code) Timeout() bool {
	return c == EAGAIN || c == ETIMEDOUT
}
