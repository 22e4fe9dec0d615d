package textstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetrental/infras/textstore"
)

func TestReadLinesMissingFile(t *testing.T) {
	store, err := textstore.New(t.TempDir())
	require.NoError(t, err)

	lines, err := store.ReadLines("customers.csv")
	assert.NoError(t, err)
	assert.Nil(t, lines)
}

func TestWriteThenRead(t *testing.T) {
	store, err := textstore.New(t.TempDir())
	require.NoError(t, err)

	in := []string{
		"1,Ahmed Ali,ahmed@gmail.com,ahmed,secret,c",
		"2,Administrator,admin@fleetrental.local,admin,secret,A",
	}

	require.NoError(t, store.WriteLines("customers.csv", in))

	out, err := store.ReadLines("customers.csv")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	store, err := textstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.WriteLines("vehicles.csv", []string{"old"}))
	require.NoError(t, store.WriteLines("vehicles.csv", []string{"new-1", "new-2"}))

	out, err := store.ReadLines("vehicles.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"new-1", "new-2"}, out)

	// No temp files may be left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path("vehicles.csv")))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBlankAndCRLFLinesAreDropped(t *testing.T) {
	dir := t.TempDir()
	store, err := textstore.New(dir)
	require.NoError(t, err)

	raw := "1,a,b\r\n\r\n2,c,d\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.csv"), []byte(raw), 0o644))

	out, err := store.ReadLines("bookings.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,a,b", "2,c,d"}, out)
}
