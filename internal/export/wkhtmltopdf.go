// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os/exec"
)

const binWkhtmltopdf = "wkhtmltopdf"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(ctx context.Context, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

var defaultExec executor = &osExecutor{}

// WkhtmltopdfEngine renders PDFs by invoking the wkhtmltopdf binary, the
// same renderer pdfkit wraps.
type WkhtmltopdfEngine struct {
	exec executor
}

// NewWkhtmltopdfEngine creates an engine using the system wkhtmltopdf.
func NewWkhtmltopdfEngine() *WkhtmltopdfEngine {
	return &WkhtmltopdfEngine{exec: defaultExec}
}

func (e *WkhtmltopdfEngine) Name() string { return binWkhtmltopdf }

// Available reports whether wkhtmltopdf exists on PATH and answers a
// version query.
func (e *WkhtmltopdfEngine) Available() bool {
	if _, err := e.exec.LookPath(binWkhtmltopdf); err != nil {
		return false
	}
	return e.exec.RunSilent(context.Background(), binWkhtmltopdf, "--version") == nil
}

// Render converts htmlPath to pdfPath. Page options are passed as the
// wkhtmltopdf flags pdfkit would emit: --page-size, --margin-*, --encoding.
func (e *WkhtmltopdfEngine) Render(ctx context.Context, htmlPath, pdfPath string, page PageOptions) error {
	page = page.withDefaults()
	if _, _, err := paperSize(page.Size); err != nil {
		return err
	}

	args := []string{
		"--page-size", page.Size,
		"--margin-top", page.Margin,
		"--margin-right", page.Margin,
		"--margin-bottom", page.Margin,
		"--margin-left", page.Margin,
		"--encoding", "UTF-8",
		"--enable-local-file-access",
		htmlPath,
		pdfPath,
	}
	if err := e.exec.RunSilent(ctx, binWkhtmltopdf, args...); err != nil {
		return fmt.Errorf("running %s: %w", binWkhtmltopdf, err)
	}
	return nil
}
