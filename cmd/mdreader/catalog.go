// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdreader/internal/catalog"
	"github.com/pdiddy/mdreader/pkg/types"
)

// --- index subcommand ---

var indexCmd = &cobra.Command{
	Use:   "index <directory>",
	Short: "Index Markdown documents into the section catalog",
	Long: `Index parses every .md file under a directory and stores its sections
in a SQLite catalog with FTS5 indexing. Unchanged files are skipped on
subsequent runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.IndexDir(context.Background(), args[0], os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the section catalog",
	Long: `Search queries the catalog using FTS5 full-text search over section
names and content, structural filters (document, section name, level), or
a combination of both.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --document, --section, or --level")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(os.Stdout, results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-50s  %s\n",
		"Rank", "Section", "Content", "Document")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range results {
		content := truncate(strings.ReplaceAll(r.Content, "\n", " "), 50)
		id := r.ID
		if runes := []rune(id); len(runes) > 40 {
			id = "..." + string(runes[len(runes)-37:])
		}
		fmt.Fprintf(w, "%-4d  %-40s  %-50s  %s\n",
			i+1, id, content, r.DocumentPath)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// --- catalog export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "catalog-export",
	Short: "Export the section catalog to YAML or JSON",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	if catalogDir == "" {
		catalogDir = viper.GetString("catalog.catalog_dir")
	}
	if catalogDir == "" {
		catalogDir = "catalog"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	docPath, _ := cmd.Flags().GetString("document")
	name, _ := cmd.Flags().GetString("section")
	level, _ := cmd.Flags().GetInt("level")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Document:   docPath,
		Name:       name,
		Level:      level,
		MaxResults: limit,
	}
}

func init() {
	for _, c := range []*cobra.Command{indexCmd, searchCmd, catalogExportCmd} {
		c.Flags().String("catalog-dir", "", "base directory for the catalog (contains index/)")
		c.Flags().Int("max-results", 20, "maximum number of query results")
	}

	searchCmd.Flags().String("query", "", "full-text search query")
	searchCmd.Flags().String("document", "", "filter by document path")
	searchCmd.Flags().String("section", "", "filter by section name")
	searchCmd.Flags().Int("level", 0, "filter by heading level")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("document", "", "filter by document path")
	catalogExportCmd.Flags().String("section", "", "filter by section name")
	catalogExportCmd.Flags().Int("level", 0, "filter by heading level")
	catalogExportCmd.Flags().Int("limit", 0, "maximum entries to export (0 = all)")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(catalogExportCmd)
}
