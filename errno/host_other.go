//go:build !linux && !darwin && !freebsd

package errno

// No host bridge: only codes already present in an error chain are found.

func isHost(Code, error) bool { return false }

func fromHostError(error) (Code, bool) { return 0, false }
