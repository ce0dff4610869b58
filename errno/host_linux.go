package errno

import "golang.org/x/sys/unix"

// Linux has none of the BSD-only conditions.
var platformCodes map[Code]unix.Errno
