// Package contract exposes the minimal error interfaces used by other packages.
//
// Implementations must support errors.Unwrap where they carry another error so
// that errors.Is / errors.As keep working across package boundaries.
package contract

// Describer is an error that can explain itself in a sentence or two.
//
// Description is meant for logs and diagnostics only; the text is not a
// stable contract and must never be parsed.
type Describer interface {
	error
	Description() string
}

// Detailed is an error that may carry call-site context on top of its kind.
//
// Implementations must:
//   - Report absence with ok == false, never with a sentinel string.
//   - Keep Detail out of Error(); Error() describes the kind only.
//   - Expose the kind via Unwrap() so it can be matched with errors.Is / errors.As.
type Detailed interface {
	Describer
	Detail() (detail string, ok bool)
	Unwrap() error
}
