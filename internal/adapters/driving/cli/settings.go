package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show effective settings",
	Long: `Prints the settings after merging defaults, the config file, .env and
environment variables. The bot token is masked.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	cmd.Println(headerStyle.Render("Settings"))
	cmd.Printf("  Config dir:       %s\n", dir)
	cmd.Printf("  Bot token:        %s\n", maskToken(settings.BotToken))
	cmd.Printf("  Documents:        %s\n", settings.DocumentsPath)
	cmd.Printf("  Public folder:    %s\n", orNone(settings.PublicFolderURL))
	cmd.Printf("  Remote API:       %s\n", settings.RemoteAPIBaseURL)
	cmd.Printf("  Download workers: %d\n", settings.DownloadWorkers)
	cmd.Printf("  Request timeout:  %s\n", settings.RequestTimeout)
	cmd.Printf("  Allowed users:    %s\n", formatIDs(settings.AllowedUserIDs))

	if err := settings.ValidateForBot(); err != nil {
		cmd.Println()
		cmd.Println(emptyStyle.Render(fmt.Sprintf("Not ready to serve: %v", err)))
	}
	return nil
}

// maskToken keeps the bot ID prefix of a token and hides the secret.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	id, _, found := strings.Cut(token, ":")
	if !found {
		return "****"
	}
	return id + ":****"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func formatIDs(ids []int64) string {
	if len(ids) == 0 {
		return "(none)"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
