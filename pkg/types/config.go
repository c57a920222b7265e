// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and record structs shared between the
// mdreader library packages and the CLI.
package types

// PDFEngine identifies the HTML-to-PDF rendering backend.
type PDFEngine string

const (
	EngineWkhtmltopdf PDFEngine = "wkhtmltopdf"
	EngineChrome      PDFEngine = "chrome"
)

// ExportConfig holds settings for HTML and PDF export.
type ExportConfig struct {
	// Engine selects the PDF backend: wkhtmltopdf or chrome.
	// Empty means auto-detect (wkhtmltopdf preferred).
	Engine PDFEngine `json:"engine,omitempty" yaml:"engine,omitempty"`

	// CSSPath overrides the bundled stylesheet. Empty uses the embedded
	// export.css.
	CSSPath string `json:"css_path,omitempty" yaml:"css_path,omitempty"`

	// PageSize is the paper size passed to the PDF engine (default "A4").
	PageSize string `json:"page_size" yaml:"page_size"`

	// Margin is the uniform page margin (default "10mm").
	Margin string `json:"margin" yaml:"margin"`
}

// ScanConfig holds settings for directory snapshots.
type ScanConfig struct {
	// Exclude lists glob patterns for paths to skip (doublestar syntax).
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Include lists glob patterns; when non-empty, only matching files
	// are snapshotted.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
}

// CatalogConfig holds settings for the section catalog.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all mdreader configuration sections.
type Config struct {
	Export  ExportConfig  `json:"export" yaml:"export"`
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
