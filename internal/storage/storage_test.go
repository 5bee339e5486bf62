package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutOpenDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	n, err := store.Put("20250601090000_ab12cd34_report.pdf", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	f, err := store.Open("20250601090000_ab12cd34_report.pdf")
	require.NoError(t, err)
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hello", string(b))

	require.NoError(t, store.Delete("20250601090000_ab12cd34_report.pdf"))
	_, err = store.Open("20250601090000_ab12cd34_report.pdf")
	assert.ErrorIs(t, err, ErrNoObject)

	assert.NoError(t, store.Delete("20250601090000_ab12cd34_report.pdf"))
}

func TestLocalStoreNeverOverwrites(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put("a.txt", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = store.Put("a.txt", strings.NewReader("second"))
	assert.ErrorIs(t, err, ErrExists)
}

func TestLocalStoreRejectsPathEscape(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../etc/passwd", "sub/a.txt", `..\a.txt`} {
		_, err := store.Put(name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)
		_, err = store.Open(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}
