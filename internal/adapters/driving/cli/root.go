// Package cli provides the sercha-bot command line: the bot server, one-shot
// search and browse commands, index inspection and the MCP server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bot/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "sercha-bot",
	Short: "Document search bot",
	Long: `sercha-bot indexes documents from a local folder and a public
Yandex.Disk folder, extracts their text and lets allow-listed Telegram
users search them by name or content, browse by category, download
files and upload new ones.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.sercha-bot)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
