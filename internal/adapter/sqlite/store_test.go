package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "lesehilfe.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_GetMissingSlot(t *testing.T) {
	t.Parallel()

	s, _ := openTestStore(t)

	_, err := s.Get(context.Background(), "savedTexts")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "savedTexts", []byte(`["eins"]`)))
	require.NoError(t, s.Put(ctx, "savedTexts", []byte(`["eins","zwei"]`)))

	got, err := s.Get(ctx, "savedTexts")
	require.NoError(t, err)
	assert.JSONEq(t, `["eins","zwei"]`, string(got))
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	s, path := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "savedTexts", []byte(`["Größe","Straße"]`)))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "savedTexts")
	require.NoError(t, err)
	assert.Equal(t, `["Größe","Straße"]`, string(got))
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()

	s, _ := openTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
