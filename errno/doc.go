// Package errno classifies operating-system error numbers into a closed set of
// named codes.
//
// Codes follow the FreeBSD numbering, which covers both the POSIX conditions
// and the BSD extensions (RPC, capability mode, robust mutexes). Each Code
// carries a fixed description and implements error, so it can be returned,
// wrapped and matched with errors.Is / errors.As like any other error.
//
// Lookup is total: numbers with no assigned code report absence through the
// second return value instead of panicking or guessing a nearby code.
//
// Go has no thread-local errno register. A failing system call hands its
// errno back as a syscall.Errno inside the returned error, and FromError is
// the single place that reads it. Call it on the error returned by the failing
// call itself; later calls carry their own errors.
package errno
