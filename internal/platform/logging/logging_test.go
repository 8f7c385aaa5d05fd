package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instalike/internal/platform/logging"
)

func TestNewWritesFieldsAtLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logging.New(&buf, "debug")

	log.WithField("route", "home").Debug("navigated")
	out := buf.String()
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "msg=navigated")
	assert.Contains(t, out, "route=home")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()
	log := logging.New(&bytes.Buffer{}, "chatty")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "instalike.log")

	log, closer, err := logging.OpenFile(path, "info")
	require.NoError(t, err)
	log.Info("first")
	require.NoError(t, closer.Close())

	log, closer, err = logging.OpenFile(path, "info")
	require.NoError(t, err)
	log.Info("second")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=first")
	assert.Contains(t, string(b), "msg=second")
}
