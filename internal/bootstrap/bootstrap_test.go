package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instalike/internal/bootstrap"
	"instalike/internal/platform/config"
	"instalike/internal/platform/logging"
)

func TestBackendsShareTheSessionContract(t *testing.T) {
	t.Parallel()
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		dir := t.TempDir()
		cfg := config.Config{
			StateDir:       dir,
			SessionBackend: backend,
			DBPath:         filepath.Join(dir, "instalike.db"),
		}
		ctx := context.Background()

		app, err := bootstrap.New(cfg, logging.Discard())
		require.NoError(t, err, backend)
		_, err = app.SessionCLI.Login(ctx, "abc", "")
		require.NoError(t, err, backend)
		require.NoError(t, app.Close())

		reopened, err := bootstrap.New(cfg, logging.Discard())
		require.NoError(t, err, backend)
		s, ok := reopened.SessionCLI.Current(ctx).Get()
		assert.True(t, ok, backend)
		assert.Equal(t, "abc", s.Username, backend)

		feed, err := reopened.CatalogTUI.Feed(ctx)
		require.NoError(t, err)
		assert.Len(t, feed, 2)
		require.NoError(t, reopened.Close())
	}
}

func TestCatalogOverrideIsValidated(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed: [{id: 1, bogus: true}]\n"), 0o600))

	app, err := bootstrap.New(config.Config{StateDir: dir, SessionBackend: config.BackendFile, CatalogPath: path}, logging.Discard())
	require.NoError(t, err)
	_, err = app.CatalogTUI.Feed(context.Background())
	assert.Error(t, err)
}
