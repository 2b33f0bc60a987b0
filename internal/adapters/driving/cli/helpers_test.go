package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

// executeCommand runs the root command with fresh flag state and returns
// everything written to its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	searchJSON, browseJSON = false, false
	configDir, verbose = "", false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		logger.SetVerbose(false)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// testEnv points the documents directory at a fresh temp dir, clears the
// other environment overrides and returns the documents dir and a config dir.
func testEnv(t *testing.T) (docsDir, cfgDir string) {
	t.Helper()

	docsDir = t.TempDir()
	cfgDir = t.TempDir()
	t.Setenv(file.EnvDocuments, docsDir)
	t.Setenv(file.EnvBotToken, "")
	t.Setenv(file.EnvPublicURL, "")
	t.Setenv(file.EnvAllowedIDs, "")
	return docsDir, cfgDir
}

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
