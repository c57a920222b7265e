// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreader/internal/document"
)

var tocCmd = &cobra.Command{
	Use:   "toc <file.md>",
	Short: "Regenerate the table of contents",
	Long: `Toc rebuilds the table-of-contents section as the first child of the
document header: a nested bullet list of all sections linking to their
GitHub-style anchors. An existing TOC section is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		doc, err := document.Open(args[0])
		if err != nil {
			return err
		}
		if name != "" {
			doc.TOCName = name
		}
		if err := doc.SaveTOC(nil); err != nil {
			return err
		}

		fmt.Printf("wrote %s with %d sections\n", doc.Path, doc.Sections())
		return nil
	},
}

func init() {
	tocCmd.Flags().String("name", "", "table-of-contents section name (default \"Content\")")
	rootCmd.AddCommand(tocCmd)
}
