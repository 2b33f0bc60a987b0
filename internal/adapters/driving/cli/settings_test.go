package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/config/file"
)

func TestSettingsCmd_MasksToken(t *testing.T) {
	docs, cfg := testEnv(t)
	t.Setenv(file.EnvBotToken, "123456:very-secret")
	t.Setenv(file.EnvAllowedIDs, "42, 7")

	out, err := executeCommand(t, "--config", cfg, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "123456:****")
	assert.NotContains(t, out, "very-secret")
	assert.Contains(t, out, docs)
	assert.Contains(t, out, "42, 7")
	assert.NotContains(t, out, "Not ready to serve")
}

func TestSettingsCmd_ReportsMissingToken(t *testing.T) {
	_, cfg := testEnv(t)

	out, err := executeCommand(t, "--config", cfg, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")
	assert.Contains(t, out, "Not ready to serve")
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "", want: "(not set)"},
		{token: "123:abc", want: "123:****"},
		{token: "opaque", want: "****"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, maskToken(tt.token))
		})
	}
}

func TestFormatIDs(t *testing.T) {
	assert.Equal(t, "(none)", formatIDs(nil))
	assert.Equal(t, "1, 2", formatIDs([]int64{1, 2}))
}
