// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreader/internal/document"
)

var templateCmd = &cobra.Command{
	Use:   "template <file.md>",
	Short: "Apply a document template",
	Long: `Template scaffolds a document. The llm template seeds a request
placeholder plus Context, RAG, CAG, System Prompt and History sections.
Existing sections are kept unless --replace or --clear is given. The file
is created when it does not exist.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	replace, _ := cmd.Flags().GetBool("replace")
	clear, _ := cmd.Flags().GetBool("clear")

	doc, err := document.Open(args[0])
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if doc, err = document.Create(args[0]); err != nil {
			return err
		}
	}

	onExist := document.OnExistError
	if replace {
		onExist = document.OnExistReplace
	}

	if err := doc.ApplyTemplate(document.Template(kind), onExist, clear); err != nil {
		return err
	}

	fmt.Printf("applied %s template to %s\n", kind, doc.Path)
	return nil
}

func init() {
	templateCmd.Flags().String("kind", "llm", "template kind")
	templateCmd.Flags().Bool("replace", false, "replace existing template sections")
	templateCmd.Flags().Bool("clear", false, "drop all existing sections first")
	rootCmd.AddCommand(templateCmd)
}
