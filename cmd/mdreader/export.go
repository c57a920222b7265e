// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdreader/internal/document"
	"github.com/pdiddy/mdreader/internal/export"
	"github.com/pdiddy/mdreader/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.md>",
	Short: "Export a document to HTML and PDF",
	Long: `Export renders the document to standalone HTML (with the bundled or a
custom stylesheet inlined) and prints that HTML to PDF. Both artifacts are
written next to the source file unless redirected. The PDF engine is
wkhtmltopdf when available, headless Chrome otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	htmlPath, _ := cmd.Flags().GetString("html")
	pdfPath, _ := cmd.Flags().GetString("pdf")
	cssPath, _ := cmd.Flags().GetString("css")
	engineName, _ := cmd.Flags().GetString("engine")
	pageSize, _ := cmd.Flags().GetString("page-size")
	margin, _ := cmd.Flags().GetString("margin")
	skipPDF, _ := cmd.Flags().GetBool("html-only")

	cfg := exportConfig()
	if cssPath == "" {
		cssPath = cfg.CSSPath
	}
	if engineName == "" {
		engineName = string(cfg.Engine)
	}
	if pageSize == "" {
		pageSize = cfg.PageSize
	}
	if margin == "" {
		margin = cfg.Margin
	}

	doc, err := document.Open(args[0])
	if err != nil {
		return err
	}

	css, err := export.LoadCSS(cssPath)
	if err != nil {
		return err
	}

	opts := export.Options{
		HTMLPath: htmlPath,
		PDFPath:  pdfPath,
		CSS:      css,
		Page:     export.PageOptions{Size: pageSize, Margin: margin},
		SkipPDF:  skipPDF,
	}
	if !skipPDF {
		if opts.Engine, err = export.NewEngine(types.PDFEngine(engineName)); err != nil {
			return err
		}
	}

	res, err := export.Export(context.Background(), doc, opts)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", res.HTMLPath)
	if res.PDFPath != "" {
		fmt.Printf("wrote %s\n", res.PDFPath)
	}
	return nil
}

// exportConfig reads the export section of the config file.
func exportConfig() types.ExportConfig {
	return types.ExportConfig{
		Engine:   types.PDFEngine(viper.GetString("export.engine")),
		CSSPath:  viper.GetString("export.css_path"),
		PageSize: viper.GetString("export.page_size"),
		Margin:   viper.GetString("export.margin"),
	}
}

func init() {
	exportCmd.Flags().String("html", "", "HTML output path (default <stem>.html)")
	exportCmd.Flags().String("pdf", "", "PDF output path (default <stem>.pdf)")
	exportCmd.Flags().String("css", "", "stylesheet path (default: bundled export.css)")
	exportCmd.Flags().String("engine", "", "PDF engine: wkhtmltopdf or chrome (default: auto-detect)")
	exportCmd.Flags().String("page-size", "", "paper size (default A4)")
	exportCmd.Flags().String("margin", "", "uniform page margin (default 10mm)")
	exportCmd.Flags().Bool("html-only", false, "skip the PDF step")
	rootCmd.AddCommand(exportCmd)
}
