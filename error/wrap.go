package error

import (
	"errors"
	"io/fs"
	"os"

	"github.com/next-trace/scg-errno/contract"
	"github.com/next-trace/scg-errno/errno"
)

// Wrap attaches text as detail to err.
//
// Behavior:
//   - nil input => nil output
//   - if err carries a known errno => Wrapper[errno.Code]; when text is empty
//     the operation and path of a *fs.PathError, *os.LinkError or
//     *os.SyscallError in err become the detail instead
//   - otherwise => Wrapper[error] around err itself
func Wrap(err error, text string) error {
	if err == nil {
		return nil
	}

	if c, ok := errno.FromError(err); ok {
		if text == "" {
			text = location(err)
		}

		return New(c, WithDetail(text))
	}

	return New(err, WithDetail(text))
}

// location describes where an OS call failed, e.g. "open /etc/app.toml".
func location(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Op + " " + pe.Path
	}

	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Op + " " + le.Old + " " + le.New
	}

	var se *os.SyscallError
	if errors.As(err, &se) {
		return se.Syscall
	}

	return ""
}

// Ensure lifts err into a wrapper without detail.
//
// Behavior:
//   - nil input => nil output
//   - if err already has a contract.Detailed in its chain => returned as-is
//   - if err carries a known errno => Wrapper[errno.Code]
//   - otherwise => Wrapper[error] around err
func Ensure(err error) error {
	if err == nil {
		return nil
	}

	var d contract.Detailed
	if errors.As(err, &d) {
		return err
	}

	if c, ok := errno.FromError(err); ok {
		return From(c)
	}

	return From(err)
}
