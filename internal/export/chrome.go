// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromeBinaries lists binary names probed by Available, in order.
var chromeBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// ChromeEngine renders PDFs with headless Chrome over the DevTools
// protocol.
type ChromeEngine struct{}

// NewChromeEngine creates a Chrome-backed engine.
func NewChromeEngine() *ChromeEngine { return &ChromeEngine{} }

func (e *ChromeEngine) Name() string { return "chrome" }

// Available reports whether a known Chrome binary exists on PATH.
func (e *ChromeEngine) Available() bool {
	for _, bin := range chromeBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

// Render loads htmlPath in a headless browser and prints it to pdfPath.
func (e *ChromeEngine) Render(ctx context.Context, htmlPath, pdfPath string, page PageOptions) error {
	page = page.withDefaults()
	width, height, err := paperSize(page.Size)
	if err != nil {
		return err
	}
	margin, err := parseLength(page.Margin)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := cdppage.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(margin).
				WithMarginRight(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("printing with chrome: %w", err)
	}

	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
