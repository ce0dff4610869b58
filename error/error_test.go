package error_test

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errno/errno"
	scgError "github.com/next-trace/scg-errno/error"
)

// wat is a kind with its own description, distinct from Error().
type wat int

func (wat) Error() string       { return "wat" }
func (wat) Description() string { return "wat happened" }

var allFields = cmp.Exporter(func(reflect.Type) bool { return true })

func TestNew_Detail(t *testing.T) {
	t.Parallel()

	w := scgError.New(errno.EIO)
	if d, ok := w.Detail(); ok || d != "" {
		t.Fatalf("Detail()=(%q, %v) want=(\"\", false)", d, ok)
	}

	w = scgError.New(errno.EIO, scgError.WithDetail("x"))
	d, ok := w.Detail()
	require.True(t, ok)
	require.Equal(t, "x", d)

	// An empty detail is still a detail.
	w = scgError.New(errno.EIO, scgError.WithDetail(""))
	d, ok = w.Detail()
	require.True(t, ok)
	require.Empty(t, d)

	w = scgError.New(errno.ENOSPC, scgError.WithDetailf("writing %s (%d bytes)", "cache.db", 4096))
	d, _ = w.Detail()
	require.Equal(t, "writing cache.db (4096 bytes)", d)

	// Last option wins.
	w = scgError.New(errno.EIO, scgError.WithDetail("a"), scgError.WithDetail("b"))
	d, _ = w.Detail()
	require.Equal(t, "b", d)
}

func TestFrom_NoDetail(t *testing.T) {
	t.Parallel()

	for _, c := range errno.All() {
		w := scgError.From(c)
		if _, ok := w.Detail(); ok {
			t.Fatalf("From(%s) carries a detail", c.String())
		}

		if w.Kind() != c {
			t.Fatalf("Kind()=%s want=%s", w.Kind().String(), c.String())
		}
	}

	require.Equal(t, scgError.New(errno.EINTR), scgError.From(errno.EINTR))
}

func TestDescription_DelegatesToKind(t *testing.T) {
	t.Parallel()

	for _, c := range errno.All() {
		w := scgError.New(c, scgError.WithDetail("ctx"))
		if got, want := w.Description(), c.Description(); got != want {
			t.Fatalf("Description()=%q want=%q", got, want)
		}
	}

	require.Equal(t, "wat happened", scgError.From(wat(1)).Description())

	plain := errors.New("boom")
	require.Equal(t, "boom", scgError.From(plain).Description())
}

func TestError_ExcludesDetail(t *testing.T) {
	t.Parallel()

	w := scgError.New(errno.EACCES, scgError.WithDetail("/etc/shadow"))
	msg := w.Error()

	assert.Equal(t, w.Description(), msg)
	assert.False(t, strings.Contains(msg, "/etc/shadow"), "Error() leaked detail: %q", msg)
}

func TestEquality(t *testing.T) {
	t.Parallel()

	a := scgError.New(errno.ENOENT, scgError.WithDetail("a"))
	b := scgError.New(errno.ENOENT, scgError.WithDetail("a"))
	c := scgError.New(errno.ENOENT, scgError.WithDetail("b"))
	d := scgError.From(errno.ENOENT)
	e := scgError.New(errno.EIO, scgError.WithDetail("a"))

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.False(t, a == d)
	assert.False(t, a == e)
	assert.False(t, d == scgError.New(errno.ENOENT, scgError.WithDetail("")))

	if diff := cmp.Diff(a, b, allFields); diff != "" {
		t.Fatalf("equal wrappers differ (-a +b):\n%s", diff)
	}

	if cmp.Equal(a, c, allFields) {
		t.Fatalf("wrappers with different detail compared equal")
	}
}

func TestKind_ReadOnlyProjection(t *testing.T) {
	t.Parallel()

	w := scgError.New(errno.EBUSY, scgError.WithDetail("device"))

	k := w.Kind()
	k = errno.EIO
	require.Equal(t, errno.EIO, k)
	require.Equal(t, errno.EBUSY, w.Kind())

	switch w.Kind() {
	case errno.EBUSY:
	default:
		t.Fatalf("Kind()=%s want=EBUSY", w.Kind().String())
	}
}

func TestWithDetail_ReturnsCopy(t *testing.T) {
	t.Parallel()

	orig := scgError.From(errno.EPIPE)
	next := orig.WithDetail("peer went away")

	_, ok := orig.Detail()
	require.False(t, ok, "original wrapper mutated")

	d, ok := next.Detail()
	require.True(t, ok)
	require.Equal(t, "peer went away", d)
	require.Equal(t, orig.Kind(), next.Kind())
}

func TestIsAs_ThroughWrapper(t *testing.T) {
	t.Parallel()

	w := scgError.New(errno.ENOENT, scgError.WithDetail("config.toml missing"))
	wrapped := fmt.Errorf("load config: %w", w)

	assert.ErrorIs(t, w, errno.ENOENT)
	assert.ErrorIs(t, wrapped, errno.ENOENT)
	assert.ErrorIs(t, wrapped, os.ErrNotExist)
	assert.NotErrorIs(t, wrapped, errno.EIO)

	var c errno.Code
	require.ErrorAs(t, wrapped, &c)
	require.Equal(t, errno.ENOENT, c)

	var out scgError.Wrapper[errno.Code]
	require.ErrorAs(t, wrapped, &out)
	require.Equal(t, w, out)

	got, ok := errno.FromError(wrapped)
	require.True(t, ok)
	require.Equal(t, errno.ENOENT, got)
}

func TestCause_DelegatesToKind(t *testing.T) {
	t.Parallel()

	require.NoError(t, scgError.From(errno.EIO).Cause())

	base := errors.New("disk unplugged")
	kind := fmt.Errorf("flush: %w", base)
	w := scgError.New(kind, scgError.WithDetail("journal"))

	require.Equal(t, base, w.Cause())
	require.ErrorIs(t, w, base)
}

func TestNested(t *testing.T) {
	t.Parallel()

	inner := scgError.New(errno.EIO, scgError.WithDetail("inner"))
	outer := scgError.New(inner, scgError.WithDetail("outer"))

	require.Equal(t, errno.EIO.Description(), outer.Description())
	require.ErrorIs(t, outer, errno.EIO)

	d, _ := outer.Detail()
	require.Equal(t, "outer", d)

	d, _ = outer.Kind().Detail()
	require.Equal(t, "inner", d)
}

func TestNilKind(t *testing.T) {
	t.Parallel()

	w := scgError.New[error](nil, scgError.WithDetail("nothing"))

	require.Equal(t, "<nil>", w.Error())
	require.NoError(t, w.Cause())
	require.NoError(t, w.Unwrap())
}

func TestConfigMissing_EndToEnd(t *testing.T) {
	t.Parallel()

	c, ok := errno.FromCode(2)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(c.Description(), "No such file or directory."))

	w := scgError.New(c, scgError.WithDetail("config.toml missing"))

	d, ok := w.Detail()
	require.True(t, ok)
	require.Equal(t, "config.toml missing", d)
	require.Equal(t, c.Description(), w.Description())
}
