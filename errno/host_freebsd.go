package errno

import "golang.org/x/sys/unix"

// Code numbering is the FreeBSD numbering, so the bridge is the identity.

func fromHost(e unix.Errno) (Code, bool) {
	if uint64(e) >= uint64(len(table)) {
		return 0, false
	}

	return FromCode(int32(e))
}

func toHost(c Code) (unix.Errno, bool) {
	return unix.Errno(c), true
}
