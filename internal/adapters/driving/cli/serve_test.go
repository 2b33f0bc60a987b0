package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

func TestServeCmd_RequiresToken(t *testing.T) {
	_, cfg := testEnv(t)
	t.Setenv(file.EnvAllowedIDs, "42")

	_, err := executeCommand(t, "--config", cfg, "serve")

	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "token")
}

func TestServeCmd_RequiresAllowedUsers(t *testing.T) {
	_, cfg := testEnv(t)
	t.Setenv(file.EnvBotToken, "123:secret")

	_, err := executeCommand(t, "--config", cfg, "serve")

	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "allowed user")
}

func TestServeCmd_RejectsBadAllowList(t *testing.T) {
	_, cfg := testEnv(t)
	t.Setenv(file.EnvBotToken, "123:secret")
	t.Setenv(file.EnvAllowedIDs, "42,abc")

	_, err := executeCommand(t, "--config", cfg, "serve")

	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestServeCmd_MaxUploadFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("max-upload-mb")
	require.NotNil(t, flag)
	assert.Equal(t, "20", flag.DefValue)
}

func TestInstanceLock(t *testing.T) {
	dir := t.TempDir()

	first := newInstanceLock(dir)
	require.NoError(t, first.Acquire())

	second := newInstanceLock(dir)
	err := second.Acquire()
	assert.ErrorIs(t, err, errAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, second.Acquire())
	require.NoError(t, second.Release())

	assert.NoError(t, second.Release(), "releasing an unheld lock is a no-op")
}

func TestInstanceLock_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/config"

	lock := newInstanceLock(dir)
	require.NoError(t, lock.Acquire())
	assert.FileExists(t, dir+"/"+serveLockFile)
	require.NoError(t, lock.Release())
}

func TestRunUntilDone(t *testing.T) {
	t.Run("cancellation is a clean stop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runUntilDone(ctx, func(context.Context) error { return errors.New("poll aborted") })

		assert.NoError(t, err)
	})

	t.Run("errors propagate while running", func(t *testing.T) {
		err := runUntilDone(context.Background(), func(context.Context) error { return errors.New("boom") })

		assert.EqualError(t, err, "boom")
	})
}
