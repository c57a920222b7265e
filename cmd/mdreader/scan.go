// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdreader/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Snapshot a directory tree into a Markdown document",
	Long: `Scan walks a directory breadth-first and writes a structure document:
directories become sections, files become sections with their contents in
fenced code blocks. Images and PDFs become links. The document gets a
"Directory Structure" table of contents whose anchors are relative paths.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	include, _ := cmd.Flags().GetStringSlice("include")

	if len(exclude) == 0 {
		exclude = viper.GetStringSlice("scan.exclude")
	}
	if len(include) == 0 {
		include = viper.GetStringSlice("scan.include")
	}

	doc, err := scan.Scan(args[0], scan.Options{
		Output:  output,
		Exclude: exclude,
		Include: include,
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d sections)\n", doc.Path, doc.Sections())
	return nil
}

func init() {
	scanCmd.Flags().String("output", "", "snapshot path (default <dir>_structure.md)")
	scanCmd.Flags().StringSlice("exclude", nil, "glob patterns to skip")
	scanCmd.Flags().StringSlice("include", nil, "glob patterns to keep (files only)")
	rootCmd.AddCommand(scanCmd)
}
