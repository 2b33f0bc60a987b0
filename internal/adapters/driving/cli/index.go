package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load every source and list the index",
	Long: `Runs a full load of the local folder and, if configured, the public
folder, then prints every record with its origin and extracted text size.
Useful for checking which files yield searchable text.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	report, err := a.index.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	docs, err := a.index.Documents(ctx)
	if err != nil {
		return err
	}

	cmd.Println(headerStyle.Render(fmt.Sprintf("%-8s  %-6s  %8s  %s", "ID", "ORIGIN", "TEXT", "NAME")))
	for i := range docs {
		origin := fmt.Sprintf("%-6s", docs[i].Origin)
		cmd.Printf("%s  %s  %8d  %s\n",
			fingerprintStyle.Render(docs[i].Fingerprint),
			originStyle(docs[i].Origin).Render(origin),
			len(docs[i].Content),
			docs[i].Name,
		)
	}

	cmd.Println()
	cmd.Println(summaryStyle.Render(fmt.Sprintf("%d document(s), %d with text, from %v in %s",
		len(docs), report.Extracted, report.Sources, report.Duration.Round(time.Millisecond))))
	for _, e := range report.Errors {
		cmd.Println(emptyStyle.Render("  ! " + e.Error()))
	}
	return nil
}
