package errno

import "golang.org/x/sys/unix"

// Darwin keeps the BSD RPC and authentication conditions. ENOATTR sits at a
// different number than on FreeBSD.
var platformCodes = map[Code]unix.Errno{
	EPROCLIM:      unix.EPROCLIM,
	EBADRPC:       unix.EBADRPC,
	ERPCMISMATCH:  unix.ERPCMISMATCH,
	EPROGUNAVAIL:  unix.EPROGUNAVAIL,
	EPROGMISMATCH: unix.EPROGMISMATCH,
	EPROCUNAVAIL:  unix.EPROCUNAVAIL,
	EFTYPE:        unix.EFTYPE,
	EAUTH:         unix.EAUTH,
	ENEEDAUTH:     unix.ENEEDAUTH,
	ENOATTR:       unix.ENOATTR,
}
