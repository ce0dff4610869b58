// Package error provides Wrapper, a generic error type that pairs an error kind
// with optional free-text detail.
//
// Key characteristics:
//   - Kind() is a read-only projection of the wrapped kind
//   - Unwrap() returns the kind, so errors.Is / errors.As match through the wrapper
//   - Error() and Description() delegate to the kind; detail stays out of them
//   - Detail() reports absence explicitly with a second return value
//   - Converting through errors.As (e.g. to syscall.Errno) discards the detail
//
// Construction is via New with WithDetail / WithDetailf options, or From for
// the detail-less case. Wrap and Ensure adapt arbitrary errors, classifying
// OS errno values into errno.Code on the way.
package error
