package api

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meufuturo/futuro/internal/common"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	store := NewTokenStoreAt(filepath.Join(t.TempDir(), "nested", "auth.json"))

	_, err := store.Token()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	require.NoError(t, store.Save("abc123"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())
	_, err = store.Token()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}
