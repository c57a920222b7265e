// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsutil provides small filesystem helpers shared across packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GeneratePath returns a path that does not collide with an existing file.
// If path is free it is returned unchanged; otherwise a numeric suffix is
// appended before the extension: report.md, report_1.md, report_2.md, ...
func GeneratePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// RequireMarkdown verifies that path carries a .md extension.
func RequireMarkdown(path string) error {
	if filepath.Ext(path) != ".md" {
		return fmt.Errorf("%s: markdown documents must use the .md extension", path)
	}
	return nil
}
