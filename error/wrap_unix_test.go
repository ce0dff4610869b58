//go:build linux || darwin || freebsd

package error_test

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errno/errno"
	scgError "github.com/next-trace/scg-errno/error"
)

func TestWrap_FailedOpen(t *testing.T) {
	t.Parallel()

	_, err := os.Open(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)

	err = scgError.Wrap(err, "config.toml missing")
	require.ErrorIs(t, err, os.ErrNotExist)

	var w scgError.Wrapper[errno.Code]
	require.ErrorAs(t, err, &w)
	require.Equal(t, errno.ENOENT, w.Kind())

	d, _ := w.Detail()
	require.Equal(t, "config.toml missing", d)
}

func TestWrap_EmptyTextKeepsLocation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.toml")
	_, err := os.Open(path)
	require.Error(t, err)

	var w scgError.Wrapper[errno.Code]
	require.ErrorAs(t, scgError.Wrap(err, ""), &w)
	require.Equal(t, errno.ENOENT, w.Kind())

	d, ok := w.Detail()
	require.True(t, ok)
	require.Equal(t, "open "+path, d)

	// Caller text wins over the location.
	require.ErrorAs(t, scgError.Wrap(err, "no config"), &w)
	d, _ = w.Detail()
	require.Equal(t, "no config", d)
}

// Converting to a host errno keeps the kind and drops the detail.
func TestConvert_ToHostErrno(t *testing.T) {
	t.Parallel()

	w := scgError.New(errno.ECONNREFUSED, scgError.WithDetail("127.0.0.1:5432"))

	var e syscall.Errno
	require.True(t, errors.As(w, &e))
	require.Equal(t, syscall.ECONNREFUSED, e)
	require.NotContains(t, e.Error(), "5432")

	_, err := os.Stat(filepath.Join(t.TempDir(), "missing"))
	require.True(t, errors.As(scgError.Ensure(err), &e))
	require.Equal(t, syscall.ENOENT, e)
}
