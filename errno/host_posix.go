//go:build linux || darwin

package errno

import "golang.org/x/sys/unix"

// sharedCodes holds the conditions linux and darwin both share with the code
// table. Each host adds its own extras through platformCodes.
var sharedCodes = map[Code]unix.Errno{
	EPERM:           unix.EPERM,
	ENOENT:          unix.ENOENT,
	ESRCH:           unix.ESRCH,
	EINTR:           unix.EINTR,
	EIO:             unix.EIO,
	ENXIO:           unix.ENXIO,
	E2BIG:           unix.E2BIG,
	ENOEXEC:         unix.ENOEXEC,
	EBADF:           unix.EBADF,
	ECHILD:          unix.ECHILD,
	EDEADLK:         unix.EDEADLK,
	ENOMEM:          unix.ENOMEM,
	EACCES:          unix.EACCES,
	EFAULT:          unix.EFAULT,
	ENOTBLK:         unix.ENOTBLK,
	EBUSY:           unix.EBUSY,
	EEXIST:          unix.EEXIST,
	EXDEV:           unix.EXDEV,
	ENODEV:          unix.ENODEV,
	ENOTDIR:         unix.ENOTDIR,
	EISDIR:          unix.EISDIR,
	EINVAL:          unix.EINVAL,
	ENFILE:          unix.ENFILE,
	EMFILE:          unix.EMFILE,
	ENOTTY:          unix.ENOTTY,
	ETXTBSY:         unix.ETXTBSY,
	EFBIG:           unix.EFBIG,
	ENOSPC:          unix.ENOSPC,
	ESPIPE:          unix.ESPIPE,
	EROFS:           unix.EROFS,
	EMLINK:          unix.EMLINK,
	EPIPE:           unix.EPIPE,
	EDOM:            unix.EDOM,
	ERANGE:          unix.ERANGE,
	EAGAIN:          unix.EAGAIN,
	EINPROGRESS:     unix.EINPROGRESS,
	EALREADY:        unix.EALREADY,
	ENOTSOCK:        unix.ENOTSOCK,
	EDESTADDRREQ:    unix.EDESTADDRREQ,
	EMSGSIZE:        unix.EMSGSIZE,
	EPROTOTYPE:      unix.EPROTOTYPE,
	ENOPROTOOPT:     unix.ENOPROTOOPT,
	EPROTONOSUPPORT: unix.EPROTONOSUPPORT,
	ESOCKTNOSUPPORT: unix.ESOCKTNOSUPPORT,
	EOPNOTSUPP:      unix.EOPNOTSUPP,
	EPFNOSUPPORT:    unix.EPFNOSUPPORT,
	EAFNOSUPPORT:    unix.EAFNOSUPPORT,
	EADDRINUSE:      unix.EADDRINUSE,
	EADDRNOTAVAIL:   unix.EADDRNOTAVAIL,
	ENETDOWN:        unix.ENETDOWN,
	ENETUNREACH:     unix.ENETUNREACH,
	ENETRESET:       unix.ENETRESET,
	ECONNABORTED:    unix.ECONNABORTED,
	ECONNRESET:      unix.ECONNRESET,
	ENOBUFS:         unix.ENOBUFS,
	EISCONN:         unix.EISCONN,
	ENOTCONN:        unix.ENOTCONN,
	ESHUTDOWN:       unix.ESHUTDOWN,
	ETIMEDOUT:       unix.ETIMEDOUT,
	ECONNREFUSED:    unix.ECONNREFUSED,
	ELOOP:           unix.ELOOP,
	ENAMETOOLONG:    unix.ENAMETOOLONG,
	EHOSTDOWN:       unix.EHOSTDOWN,
	EHOSTUNREACH:    unix.EHOSTUNREACH,
	ENOTEMPTY:       unix.ENOTEMPTY,
	EUSERS:          unix.EUSERS,
	EDQUOT:          unix.EDQUOT,
	ESTALE:          unix.ESTALE,
	ENOLCK:          unix.ENOLCK,
	ENOSYS:          unix.ENOSYS,
	EIDRM:           unix.EIDRM,
	ENOMSG:          unix.ENOMSG,
	EOVERFLOW:       unix.EOVERFLOW,
	ECANCELED:       unix.ECANCELED,
	EILSEQ:          unix.EILSEQ,
	EBADMSG:         unix.EBADMSG,
	EMULTIHOP:       unix.EMULTIHOP,
	ENOLINK:         unix.ENOLINK,
	EPROTO:          unix.EPROTO,
	ENOTRECOVERABLE: unix.ENOTRECOVERABLE,
	EOWNERDEAD:      unix.EOWNERDEAD,
}

var (
	hostCodes  = merge(sharedCodes, platformCodes)
	hostErrnos = invert(hostCodes)
)

func merge(a, b map[Code]unix.Errno) map[Code]unix.Errno {
	out := make(map[Code]unix.Errno, len(a)+len(b))
	for c, e := range a {
		out[c] = e
	}

	for c, e := range b {
		out[c] = e
	}

	return out
}

func invert(m map[Code]unix.Errno) map[unix.Errno]Code {
	out := make(map[unix.Errno]Code, len(m))
	for c, e := range m {
		out[e] = c
	}

	return out
}

func fromHost(e unix.Errno) (Code, bool) {
	c, ok := hostErrnos[e]
	return c, ok
}

func toHost(c Code) (unix.Errno, bool) {
	e, ok := hostCodes[c]
	return e, ok
}
