package errno

// Assigned codes, numbered as on FreeBSD. 59 (ETOOMANYREFS) and 71 (EREMOTE)
// are intentionally left unassigned.
const (
	EPERM           Code = 1
	ENOENT          Code = 2
	ESRCH           Code = 3
	EINTR           Code = 4
	EIO             Code = 5
	ENXIO           Code = 6
	E2BIG           Code = 7
	ENOEXEC         Code = 8
	EBADF           Code = 9
	ECHILD          Code = 10
	EDEADLK         Code = 11
	ENOMEM          Code = 12
	EACCES          Code = 13
	EFAULT          Code = 14
	ENOTBLK         Code = 15
	EBUSY           Code = 16
	EEXIST          Code = 17
	EXDEV           Code = 18
	ENODEV          Code = 19
	ENOTDIR         Code = 20
	EISDIR          Code = 21
	EINVAL          Code = 22
	ENFILE          Code = 23
	EMFILE          Code = 24
	ENOTTY          Code = 25
	ETXTBSY         Code = 26
	EFBIG           Code = 27
	ENOSPC          Code = 28
	ESPIPE          Code = 29
	EROFS           Code = 30
	EMLINK          Code = 31
	EPIPE           Code = 32
	EDOM            Code = 33
	ERANGE          Code = 34
	EAGAIN          Code = 35
	EINPROGRESS     Code = 36
	EALREADY        Code = 37
	ENOTSOCK        Code = 38
	EDESTADDRREQ    Code = 39
	EMSGSIZE        Code = 40
	EPROTOTYPE      Code = 41
	ENOPROTOOPT     Code = 42
	EPROTONOSUPPORT Code = 43
	ESOCKTNOSUPPORT Code = 44
	EOPNOTSUPP      Code = 45
	EPFNOSUPPORT    Code = 46
	EAFNOSUPPORT    Code = 47
	EADDRINUSE      Code = 48
	EADDRNOTAVAIL   Code = 49
	ENETDOWN        Code = 50
	ENETUNREACH     Code = 51
	ENETRESET       Code = 52
	ECONNABORTED    Code = 53
	ECONNRESET      Code = 54
	ENOBUFS         Code = 55
	EISCONN         Code = 56
	ENOTCONN        Code = 57
	ESHUTDOWN       Code = 58
	ETIMEDOUT       Code = 60
	ECONNREFUSED    Code = 61
	ELOOP           Code = 62
	ENAMETOOLONG    Code = 63
	EHOSTDOWN       Code = 64
	EHOSTUNREACH    Code = 65
	ENOTEMPTY       Code = 66
	EPROCLIM        Code = 67
	EUSERS          Code = 68
	EDQUOT          Code = 69
	ESTALE          Code = 70
	EBADRPC         Code = 72
	ERPCMISMATCH    Code = 73
	EPROGUNAVAIL    Code = 74
	EPROGMISMATCH   Code = 75
	EPROCUNAVAIL    Code = 76
	ENOLCK          Code = 77
	ENOSYS          Code = 78
	EFTYPE          Code = 79
	EAUTH           Code = 80
	ENEEDAUTH       Code = 81
	EIDRM           Code = 82
	ENOMSG          Code = 83
	EOVERFLOW       Code = 84
	ECANCELED       Code = 85
	EILSEQ          Code = 86
	ENOATTR         Code = 87
	EDOOFUS         Code = 88
	EBADMSG         Code = 89
	EMULTIHOP       Code = 90
	ENOLINK         Code = 91
	EPROTO          Code = 92
	ENOTCAPABLE     Code = 93
	ECAPMODE        Code = 94
	ENOTRECOVERABLE Code = 95
	EOWNERDEAD      Code = 96
)

type entry struct {
	name string
	desc string
}

// table is indexed by code; unassigned slots have an empty name.
var table = [...]entry{
	EPERM: {"EPERM", "Operation not permitted. An attempt was made to perform an operation limited to processes " +
		"with appropriate privileges or to the owner of a file or other resources."},
	ENOENT: {"ENOENT", "No such file or directory. A component of a specified pathname did not exist, " +
		"or the pathname was an empty string."},
	ESRCH: {"ESRCH", "No such process. No process could be found corresponding to that specified by the given ID."},
	EINTR: {"EINTR", "Interrupted system call. An asynchronous signal (such as SIGINT or SIGQUIT) was caught by " +
		"the process during the execution of an interruptible function. If the signal handler performs a normal " +
		"return, the interrupted system call will seem to have returned the error condition."},
	EIO: {"EIO", "Input/output error. Some physical input or output error occurred. This error will not be " +
		"reported until a subsequent operation on the same file descriptor and may be lost (over written) by " +
		"any subsequent errors."},
	ENXIO: {"ENXIO", "Device not configured. Input or output on a special file referred to a device that did not " +
		"exist, or made a request beyond the limits of the device. This error may also occur when, for example, " +
		"a tape drive is not online or no disk pack is loaded on a drive."},
	E2BIG: {"E2BIG", "Argument list too long. The number of bytes used for the argument and environment list of " +
		"the new process exceeded the current limit (NCARGS in <sys/param.h>)."},
	ENOEXEC: {"ENOEXEC", "Exec format error. A request was made to execute a file that, although it has the " +
		"appropriate permissions, was not in the format required for an executable file."},
	EBADF: {"EBADF", "Bad file descriptor. A file descriptor argument was out of range, referred to no open file, " +
		"or a read (write) request was made to a file that was only open for writing (reading)."},
	ECHILD: {"ECHILD", "No child processes. A wait(2) or waitpid(2) function was executed by a process that had " +
		"no existing or unwaited-for child processes."},
	EDEADLK: {"EDEADLK", "Resource deadlock avoided. An attempt was made to lock a system resource that would " +
		"have resulted in a deadlock situation."},
	ENOMEM: {"ENOMEM", "Cannot allocate memory. The new process image required more memory than was allowed by " +
		"the hardware or by system-imposed memory management constraints. A lack of swap space is normally " +
		"temporary; however, a lack of core is not. Soft limits may be increased to their corresponding hard limits."},
	EACCES: {"EACCES", "Permission denied. An attempt was made to access a file in a way forbidden by its file " +
		"access permissions."},
	EFAULT:  {"EFAULT", "Bad address. The system detected an invalid address in attempting to use an argument of a call."},
	ENOTBLK: {"ENOTBLK", "Block device required. A block device operation was attempted on a non-block device or file."},
	EBUSY: {"EBUSY", "Device busy. An attempt to use a system resource which was in use at the time in a manner " +
		"which would have conflicted with the request."},
	EEXIST: {"EEXIST", "File exists. An existing file was mentioned in an inappropriate context, for instance, " +
		"as the new link name in a link(2) system call."},
	EXDEV: {"EXDEV", "Cross-device link. A hard link to a file on another file system was attempted."},
	ENODEV: {"ENODEV", "Operation not supported by device. An attempt was made to apply an inappropriate function " +
		"to a device, for example, trying to read a write-only device such as a printer."},
	ENOTDIR: {"ENOTDIR", "Not a directory. A component of the specified pathname existed, but it was not a " +
		"directory, when a directory was expected."},
	EISDIR: {"EISDIR", "Is a directory. An attempt was made to open a directory with write mode specified."},
	EINVAL: {"EINVAL", "Invalid argument. Some invalid argument was supplied. (For example, specifying an " +
		"undefined signal to a signal(3) function or a kill(2) system call)."},
	ENFILE: {"ENFILE", "Too many open files in system. Maximum number of open files allowable on the system has " +
		"been reached and requests for an open cannot be satisfied until at least one has been closed."},
	EMFILE: {"EMFILE", "Too many open files. Maximum number of file descriptors allowable in the process has been " +
		"reached and requests for an open cannot be satisfied until at least one has been closed. The " +
		"getdtablesize(2) system call will obtain the current limit."},
	ENOTTY: {"ENOTTY", "Inappropriate ioctl for device. A control function (see ioctl(2)) was attempted for a " +
		"file or special device for which the operation was inappropriate."},
	ETXTBSY: {"ETXTBSY", "Text file busy. The new process was a pure procedure (shared text) file which was open " +
		"for writing by another process, or while the pure procedure file was being executed an open(2) call " +
		"requested write access."},
	EFBIG: {"EFBIG", "File too large. The size of a file exceeded the maximum."},
	ENOSPC: {"ENOSPC", "No space left on device. A write(2) to an ordinary file, the creation of a directory or " +
		"symbolic link, or the creation of a directory entry failed because no more disk blocks were available " +
		"on the file system, or the allocation of an inode for a newly created file failed because no more " +
		"inodes were available on the file system."},
	ESPIPE: {"ESPIPE", "Illegal seek. An lseek(2) system call was issued on a socket, pipe or FIFO."},
	EROFS: {"EROFS", "Read-only file system. An attempt was made to modify a file or directory on a file system " +
		"that was read-only at the time."},
	EMLINK: {"EMLINK", "Too many links. Maximum allowable hard links to a single file has been exceeded (limit " +
		"of 32767 hard links per file)."},
	EPIPE: {"EPIPE", "Broken pipe. A write on a pipe, socket or FIFO for which there is no process to read the data."},
	EDOM: {"EDOM", "Numerical argument out of domain. A numerical input argument was outside the defined domain " +
		"of the mathematical function."},
	ERANGE: {"ERANGE", "Result too large. A numerical result of the function was too large to fit in the " +
		"available space (perhaps exceeded precision)."},
	EAGAIN: {"EAGAIN", "Resource temporarily unavailable. This is a temporary condition and later calls to the " +
		"same routine may complete normally."},
	EINPROGRESS: {"EINPROGRESS", "Operation now in progress. An operation that takes a long time to complete " +
		"(such as a connect(2)) was attempted on a non-blocking object (see fcntl(2))."},
	EALREADY: {"EALREADY", "Operation already in progress. An operation was attempted on a non-blocking object " +
		"that already had an operation in progress."},
	ENOTSOCK: {"ENOTSOCK", "Socket operation on non-socket. Self-explanatory."},
	EDESTADDRREQ: {"EDESTADDRREQ", "Destination address required. A required address was omitted from an " +
		"operation on a socket."},
	EMSGSIZE: {"EMSGSIZE", "Message too long. A message sent on a socket was larger than the internal message " +
		"buffer or some other network limit."},
	EPROTOTYPE: {"EPROTOTYPE", "Protocol wrong type for socket. A protocol was specified that does not support " +
		"the semantics of the socket type requested. For example, you cannot use the ARPA Internet UDP protocol " +
		"with type SOCK_STREAM."},
	ENOPROTOOPT: {"ENOPROTOOPT", "Protocol not available. A bad option or level was specified in a " +
		"getsockopt(2) or setsockopt(2) call."},
	EPROTONOSUPPORT: {"EPROTONOSUPPORT", "Protocol not supported. The protocol has not been configured into the " +
		"system or no implementation for it exists."},
	ESOCKTNOSUPPORT: {"ESOCKTNOSUPPORT", "Socket type not supported. The support for the socket type has not " +
		"been configured into the system or no implementation for it exists."},
	EOPNOTSUPP: {"EOPNOTSUPP", "Operation not supported. The attempted operation is not supported for the type " +
		"of object referenced. Usually this occurs when a file descriptor refers to a file or socket that cannot " +
		"support this operation, for example, trying to accept a connection on a datagram socket."},
	EPFNOSUPPORT: {"EPFNOSUPPORT", "Protocol family not supported. The protocol family has not been configured " +
		"into the system or no implementation for it exists."},
	EAFNOSUPPORT: {"EAFNOSUPPORT", "Address family not supported by protocol family. An address incompatible " +
		"with the requested protocol was used. For example, you should not necessarily expect to be able to use " +
		"NS addresses with ARPA Internet protocols."},
	EADDRINUSE: {"EADDRINUSE", "Address already in use. Only one usage of each address is normally permitted."},
	EADDRNOTAVAIL: {"EADDRNOTAVAIL", "Can't assign requested address. Normally results from an attempt to " +
		"create a socket with an address not on this machine."},
	ENETDOWN:    {"ENETDOWN", "Network is down. A socket operation encountered a dead network."},
	ENETUNREACH: {"ENETUNREACH", "Network is unreachable. A socket operation was attempted to an unreachable network."},
	ENETRESET:   {"ENETRESET", "Network dropped connection on reset. The host you were connected to crashed and rebooted."},
	ECONNABORTED: {"ECONNABORTED", "Software caused connection abort. A connection abort was caused internal " +
		"to your host machine."},
	ECONNRESET: {"ECONNRESET", "Connection reset by peer. A connection was forcibly closed by a peer. This " +
		"normally results from a loss of the connection on the remote socket due to a timeout or a reboot."},
	ENOBUFS: {"ENOBUFS", "No buffer space available. An operation on a socket or pipe was not performed because " +
		"the system lacked sufficient buffer space or because a queue was full."},
	EISCONN: {"EISCONN", "Socket is already connected. A connect(2) request was made on an already connected " +
		"socket; or, a sendto(2) or sendmsg(2) request on a connected socket specified a destination when " +
		"already connected."},
	ENOTCONN: {"ENOTCONN", "Socket is not connected. An request to send or receive data was disallowed because " +
		"the socket was not connected and (when sending on a datagram socket) no address was supplied."},
	ESHUTDOWN: {"ESHUTDOWN", "Can't send after socket shutdown. A request to send data was disallowed because " +
		"the socket had already been shut down with a previous shutdown(2) call."},
	ETIMEDOUT: {"ETIMEDOUT", "Operation timed out. A connect(2) or send(2) request failed because the connected " +
		"party did not properly respond after a period of time. (The timeout period is dependent on the " +
		"communication protocol.)"},
	ECONNREFUSED: {"ECONNREFUSED", "Connection refused. No connection could be made because the target machine " +
		"actively refused it. This usually results from trying to connect to a service that is inactive on the " +
		"foreign host."},
	ELOOP: {"ELOOP", "Too many levels of symbolic links. A path name lookup involved more than 32 (MAXSYMLINKS) " +
		"symbolic links."},
	ENAMETOOLONG: {"ENAMETOOLONG", "File name too long. A component of a path name exceeded {NAME_MAX} " +
		"characters, or an entire path name exceeded {PATH_MAX} characters. (See also the description of " +
		"_PC_NO_TRUNC in pathconf(2).)"},
	EHOSTDOWN:    {"EHOSTDOWN", "Host is down. A socket operation failed because the destination host was down."},
	EHOSTUNREACH: {"EHOSTUNREACH", "No route to host. A socket operation was attempted to an unreachable host."},
	ENOTEMPTY: {"ENOTEMPTY", "Directory not empty. A directory with entries other than `.' and `..' was supplied " +
		"to a remove directory or rename call."},
	EPROCLIM: {"EPROCLIM", "Too many processes."},
	EUSERS:   {"EUSERS", "Too many users. The quota system ran out of table entries."},
	EDQUOT: {"EDQUOT", "Disc quota exceeded. A write(2) to an ordinary file, the creation of a directory or " +
		"symbolic link, or the creation of a directory entry failed because the user's quota of disk blocks " +
		"was exhausted, or the allocation of an inode for a newly created file failed because the user's quota " +
		"of inodes was exhausted."},
	ESTALE: {"ESTALE", "Stale NFS file handle. An attempt was made to access an open file (on an NFS file system) " +
		"which is now unavailable as referenced by the file descriptor. This may indicate the file was deleted " +
		"on the NFS server or some other catastrophic event occurred."},
	EBADRPC: {"EBADRPC", "RPC struct is bad. Exchange of RPC information was unsuccessful."},
	ERPCMISMATCH: {"ERPCMISMATCH", "RPC version wrong. The version of RPC on the remote peer is not compatible " +
		"with the local version."},
	EPROGUNAVAIL: {"EPROGUNAVAIL", "RPC prog. not avail. The requested program is not registered on the remote host."},
	EPROGMISMATCH: {"EPROGMISMATCH", "Program version wrong. The requested version of the program is not " +
		"available on the remote host (RPC)."},
	EPROCUNAVAIL: {"EPROCUNAVAIL", "Bad procedure for program. An RPC call was attempted for a procedure which " +
		"does not exist in the remote program."},
	ENOLCK: {"ENOLCK", "No locks available. A system-imposed limit on the number of simultaneous file locks " +
		"was reached."},
	ENOSYS: {"ENOSYS", "Function not implemented. Attempted a system call that is not available on this system."},
	EFTYPE: {"EFTYPE", "Inappropriate file type or format. The file was the wrong type for the operation, or a " +
		"data file had the wrong format."},
	EAUTH: {"EAUTH", "Authentication error. Attempted to use an invalid authentication ticket to mount a NFS " +
		"file system."},
	ENEEDAUTH: {"ENEEDAUTH", "Need authenticator. An authentication ticket must be obtained before the given NFS " +
		"file system may be mounted."},
	EIDRM: {"EIDRM", "Identifier removed. An IPC identifier was removed while the current process was waiting on it."},
	ENOMSG: {"ENOMSG", "No message of desired type. An IPC message queue does not contain a message of the " +
		"desired type, or a message catalog does not contain the requested message."},
	EOVERFLOW: {"EOVERFLOW", "Value too large to be stored in data type. A numerical result of the function was " +
		"too large to be stored in the caller provided space."},
	ECANCELED: {"ECANCELED", "Operation canceled. The scheduled operation was canceled."},
	EILSEQ: {"EILSEQ", "Illegal byte sequence. While decoding a multibyte character the function came along an " +
		"invalid or an incomplete sequence of bytes or the given wide character is invalid."},
	ENOATTR: {"ENOATTR", "Attribute not found. The specified extended attribute does not exist."},
	EDOOFUS: {"EDOOFUS", "Programming error. A function or API is being abused in a way which could only be " +
		"detected at run-time."},
	EBADMSG: {"EBADMSG", "Bad message. A corrupted message was detected."},
	EMULTIHOP: {"EMULTIHOP", "Multihop attempted. This error code is unused, but present for compatibility with " +
		"other systems."},
	ENOLINK: {"ENOLINK", "Link has been severed. This error code is unused, but present for compatibility with " +
		"other systems."},
	EPROTO: {"EPROTO", "Protocol error. A device or socket encountered an unrecoverable protocol error."},
	ENOTCAPABLE: {"ENOTCAPABLE", "Capabilities insufficient. An operation on a capability file descriptor " +
		"requires greater privilege than the capability allows."},
	ECAPMODE: {"ECAPMODE", "Not permitted in capability mode. The system call or operation is not permitted for " +
		"capability mode processes."},
	ENOTRECOVERABLE: {"ENOTRECOVERABLE", "State not recoverable. The state protected by a robust mutex is not " +
		"recoverable."},
	EOWNERDEAD: {"EOWNERDEAD", "Previous owner died. The owner of a robust mutex terminated while holding the " +
		"mutex lock."},
}
