// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreader/internal/document"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add, delete, or show sections of a document",
}

// --- add subcommand ---

var sectionAddCmd = &cobra.Command{
	Use:   "add <file.md> <name>",
	Short: "Add or update a section",
	Long: `Add creates a section under the given parent (the document header by
default). Content comes from --content or, with --stdin, from standard
input. Headings embedded in the content are demoted to emphasis unless
--keep-headings is set.`,
	Args: cobra.ExactArgs(2),
	RunE: runSectionAdd,
}

func runSectionAdd(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]
	content, _ := cmd.Flags().GetString("content")
	parentName, _ := cmd.Flags().GetString("parent")
	onExist, _ := cmd.Flags().GetString("on-exist")
	keepHeadings, _ := cmd.Flags().GetBool("keep-headings")
	fromStdin, _ := cmd.Flags().GetBool("stdin")

	if fromStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		content = string(data)
	}

	doc, err := document.Open(path)
	if err != nil {
		return err
	}

	parent := doc.Header()
	if parentName != "" {
		if parent = doc.Section(parentName); parent == nil {
			return fmt.Errorf("no section named %q in %s", parentName, path)
		}
	}

	section, err := parent.AddSection(name, content, document.AddOptions{
		OnExist:      document.OnExist(onExist),
		KeepHeadings: keepHeadings,
	})
	if err != nil {
		return err
	}
	if err := doc.Save(); err != nil {
		return err
	}

	fmt.Printf("added %s\n", section.Path())
	return nil
}

// --- delete subcommand ---

var sectionDeleteCmd = &cobra.Command{
	Use:   "delete <file.md> <name>",
	Short: "Delete a section and its subtree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Open(args[0])
		if err != nil {
			return err
		}
		if err := doc.DeleteSection(args[1]); err != nil {
			return err
		}
		return doc.Save()
	},
}

// --- show subcommand ---

var sectionShowCmd = &cobra.Command{
	Use:   "show <file.md> [name]",
	Short: "Show the section tree, or one section's content and links",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSectionShow,
}

func runSectionShow(cmd *cobra.Command, args []string) error {
	doc, err := document.Open(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		printTree(doc.Header())
		return nil
	}

	s := doc.Section(args[1])
	if s == nil {
		return fmt.Errorf("no section named %q in %s", args[1], args[0])
	}

	fmt.Println(s.Path())
	if text := s.Text(); text != "" {
		fmt.Println()
		fmt.Println(text)
	}
	if images := s.Images(); len(images) > 0 {
		fmt.Println("\nImages:")
		for _, img := range images {
			fmt.Println("  " + img)
		}
	}
	if links := s.Resources(); len(links) > 0 {
		fmt.Println("\nLinks:")
		for _, l := range links {
			kind := "url"
			if l.IsFile {
				kind = "file"
			}
			fmt.Printf("  [%s] %s (%s)\n", l.Name, l.Target, kind)
		}
	}
	return nil
}

func printTree(s *document.Section) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", s.Level-1), s.Name)
	for _, c := range s.Children() {
		printTree(c)
	}
}

func init() {
	sectionAddCmd.Flags().String("content", "", "section content")
	sectionAddCmd.Flags().Bool("stdin", false, "read section content from standard input")
	sectionAddCmd.Flags().String("parent", "", "parent section name (default: the header)")
	sectionAddCmd.Flags().String("on-exist", "update", "collision behavior: update, replace, or error")
	sectionAddCmd.Flags().Bool("keep-headings", false, "do not demote headings embedded in the content")

	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionDeleteCmd)
	sectionCmd.AddCommand(sectionShowCmd)

	rootCmd.AddCommand(sectionCmd)
}
