package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

func TestIndexCmd_ListsRecords(t *testing.T) {
	docs, cfg := testEnv(t)
	writeDoc(t, docs, "notes.txt", "meeting minutes")
	writeDoc(t, docs, "scan.bin", "\x00\x01")

	out, err := executeCommand(t, "--config", cfg, "index")

	require.NoError(t, err)
	assert.Contains(t, out, domain.Fingerprint("notes.txt"))
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "scan.bin")
	assert.Contains(t, out, "local")
	assert.Contains(t, out, "2 document(s), 1 with text")
}

func TestIndexCmd_ReadsConfigFile(t *testing.T) {
	_, cfg := testEnv(t)
	t.Setenv(file.EnvDocuments, "")

	docs := filepath.Join(t.TempDir(), "corpus")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	writeDoc(t, docs, "handbook.txt", "welcome aboard")

	config := "[documents]\npath = " + `"` + filepath.ToSlash(docs) + `"` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg, "config.toml"), []byte(config), 0o600))

	out, err := executeCommand(t, "--config", cfg, "index")

	require.NoError(t, err)
	assert.Contains(t, out, "handbook.txt")
}

func TestIndexCmd_InvalidConfig(t *testing.T) {
	_, cfg := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg, "config.toml"), []byte("not = [valid"), 0o600))

	_, err := executeCommand(t, "--config", cfg, "index")

	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}
