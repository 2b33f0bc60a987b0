package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

var (
	searchJSON bool
	browseJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed documents",
	Long: `Loads every source and searches by file name first, then by content.
A name matches when it contains the query or closely resembles it; otherwise
a document matches when its text contains any word of the query.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var browseCmd = &cobra.Command{
	Use:       "browse [category]",
	Short:     "List documents in a category",
	Long:      `Loads every source and lists documents of one category: documents, tables or pdf.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: categoryNames(),
	RunE:      runBrowse,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
}

func categoryNames() []string {
	names := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		names = append(names, c.String())
	}
	return names
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	results, err := a.search.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}
	outputResultsTable(cmd, results)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	category := domain.Category(strings.ToLower(args[0]))
	if !category.IsValid() {
		return fmt.Errorf("%w: unknown category %q (want one of %s)",
			domain.ErrInvalidInput, args[0], strings.Join(categoryNames(), ", "))
	}

	a, err := setup()
	if err != nil {
		return err
	}

	results, err := a.search.SearchByCategory(cmd.Context(), category)
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	if browseJSON {
		return outputResultsJSON(cmd, results)
	}
	outputResultsTable(cmd, results)
	return nil
}

// resultJSON is the --json shape of one result.
type resultJSON struct {
	Fingerprint string `json:"fingerprint"`
	Name        string `json:"name"`
}

func outputResultsJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		out[i] = resultJSON{Fingerprint: r.Fingerprint, Name: r.Name}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println(emptyStyle.Render("Nothing found."))
		return
	}

	cmd.Println(headerStyle.Render(fmt.Sprintf("Found %d document(s):", len(results))))
	for _, r := range results {
		cmd.Printf("  %s  %s\n", fingerprintStyle.Render(r.Fingerprint), nameStyle.Render(r.Name))
	}
}
