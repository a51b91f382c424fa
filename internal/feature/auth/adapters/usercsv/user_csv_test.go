package usercsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_backend/internal/feature/auth/domain"
)

func writeUsersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	path := writeUsersFile(t, "Username,Password\nalice,aaaa\nbob,bbbb\n")
	store := NewStore(path)
	require.NoError(t, store.LoadAll())

	hash, ok := store.Lookup("alice")
	assert.True(t, ok)
	assert.Equal(t, "aaaa", hash)

	hash, ok = store.Lookup("bob")
	assert.True(t, ok)
	assert.Equal(t, "bbbb", hash)

	_, ok = store.Lookup("carol")
	assert.False(t, ok)
}

func TestLoadAll_HeaderOnly(t *testing.T) {
	t.Parallel()

	store := NewStore(writeUsersFile(t, "Username,Password\n"))
	require.NoError(t, store.LoadAll())

	_, ok := store.Lookup("alice")
	assert.False(t, ok)
}

func TestLoadAll_BadFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "wrong header", content: "User,Hash\nalice,aaaa\n"},
		{name: "swapped columns", content: "Password,Username\naaaa,alice\n"},
		{name: "row with extra column", content: "Username,Password\nalice,aaaa,extra\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore(writeUsersFile(t, tt.content))
			assert.ErrorIs(t, store.LoadAll(), domain.ErrDataFormat)
		})
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "absent.csv"))
	err := store.LoadAll()
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDataFormat)
}

// A reload replaces the map, it does not merge into it.
func TestLoadAll_Replaces(t *testing.T) {
	t.Parallel()

	path := writeUsersFile(t, "Username,Password\nalice,aaaa\n")
	store := NewStore(path)
	require.NoError(t, store.LoadAll())

	require.NoError(t, os.WriteFile(path, []byte("Username,Password\nbob,bbbb\n"), 0o644))
	require.NoError(t, store.LoadAll())

	_, ok := store.Lookup("alice")
	assert.False(t, ok)
	_, ok = store.Lookup("bob")
	assert.True(t, ok)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	path := writeUsersFile(t, "Username,Password\nalice,aaaa\n")
	store := NewStore(path)
	require.NoError(t, store.LoadAll())

	require.NoError(t, store.Register("bob", "bbbb"))

	hash, ok := store.Lookup("bob")
	assert.True(t, ok)
	assert.Equal(t, "bbbb", hash)

	// Exactly one line is appended, the earlier content is untouched.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Username,Password\nalice,aaaa\nbob,bbbb\n", string(content))
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	path := writeUsersFile(t, "Username,Password\nalice,aaaa\n")
	store := NewStore(path)
	require.NoError(t, store.LoadAll())

	err := store.Register("alice", "cccc")
	assert.ErrorIs(t, err, domain.ErrUserExists)

	// Nothing was written and the stored hash is unchanged.
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, 1, strings.Count(string(content), "alice"))

	hash, _ := store.Lookup("alice")
	assert.Equal(t, "aaaa", hash)
}

// A registered user survives a reload, since Register appends to the same file
// LoadAll reads.
func TestRegister_PersistsAcrossReload(t *testing.T) {
	t.Parallel()

	path := writeUsersFile(t, "Username,Password\n")
	store := NewStore(path)
	require.NoError(t, store.LoadAll())
	require.NoError(t, store.Register("dave", "dddd"))

	fresh := NewStore(path)
	require.NoError(t, fresh.LoadAll())
	hash, ok := fresh.Lookup("dave")
	assert.True(t, ok)
	assert.Equal(t, "dddd", hash)
}
