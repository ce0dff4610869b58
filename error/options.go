package error

import "fmt"

// Option configures a Wrapper during construction via New().
type Option func(*detail)

// WithDetail sets the detail. An empty string still counts as set.
func WithDetail(text string) Option {
	return func(d *detail) { *d = detail{text: text, set: true} }
}

// WithDetailf sets the detail from a format string.
func WithDetailf(format string, args ...any) Option {
	return WithDetail(fmt.Sprintf(format, args...))
}
