package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# sample dictionary
apple	A red fruit
application	A software program

apply	To make a request
banana	A yellow fruit
kiwi
`

func newSample(t *testing.T) *Dictionary {
	d := New(zerolog.Nop())
	require.NoError(t, d.Load(strings.NewReader(sample)))
	return d
}

func TestLoad(t *testing.T) {
	d := newSample(t)

	assert.Equal(t, 5, d.Len())

	e, ok := d.Lookup("apple")
	require.True(t, ok)
	assert.Equal(t, "A red fruit", e.Description)

	e, ok = d.Lookup("kiwi")
	require.True(t, ok)
	assert.Equal(t, "kiwi", e.Description)

	_, ok = d.Lookup("app")
	assert.False(t, ok)
	assert.True(t, d.HasPrefix("ban"))
	assert.False(t, d.HasPrefix("cherry"))
}

func TestComplete(t *testing.T) {
	d := newSample(t)

	keys := func(entries []Entry) []string {
		ks := make([]string, 0, len(entries))
		for _, e := range entries {
			ks = append(ks, e.Key)
		}
		return ks
	}

	assert.Equal(t, []string{"apple", "application", "apply"}, keys(d.Complete("app", 0)))
	assert.Equal(t, []string{"apple", "application"}, keys(d.Complete("app", 2)))
	assert.Equal(t, []string{"apple", "application", "apply", "banana", "kiwi"}, keys(d.Complete("", 0)))
	assert.Empty(t, d.Complete("z", 0))
	assert.Empty(t, d.Complete("z", 3))
}

func TestAddUpdatesInPlace(t *testing.T) {
	d := New(zerolog.Nop())
	d.Add("go", "a language")
	d.Add("go", "a verb")

	assert.Equal(t, 1, d.Len())
	e, ok := d.Lookup("go")
	require.True(t, ok)
	assert.Equal(t, "a verb", e.Description)
}

func TestRemove(t *testing.T) {
	d := newSample(t)

	assert.True(t, d.Remove("apple"))
	assert.False(t, d.Remove("apple"))
	assert.False(t, d.Remove("app"))
	assert.Equal(t, 4, d.Len())
	assert.True(t, d.HasPrefix("appl"))

	assert.True(t, d.Remove("application"))
	assert.True(t, d.Remove("apply"))
	assert.False(t, d.HasPrefix("a"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	d := New(zerolog.Nop())
	require.NoError(t, d.LoadFile(path))
	assert.Equal(t, 5, d.Len())

	assert.Error(t, d.LoadFile(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestLoadKeyset(t *testing.T) {
	d := New(zerolog.Nop())
	require.NoError(t, d.LoadKeyset("1mvl5_10"))
	assert.Greater(t, d.Len(), 0)
	assert.Contains(t, Keysets(), "1mvl5_10")

	assert.Error(t, New(zerolog.Nop()).LoadKeyset("no-such-keyset"))
}
