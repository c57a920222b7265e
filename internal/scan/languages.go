// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

// languages maps file extensions to fenced-code-block language tags.
var languages = map[string]string{
	".py":       "python",
	".js":       "javascript",
	".ts":       "typescript",
	".json":     "json",
	".yml":      "yaml",
	".yaml":     "yaml",
	".ini":      "ini",
	".sql":      "sql",
	".html":     "html",
	".htm":      "html",
	".css":      "css",
	".scss":     "scss",
	".sass":     "sass",
	".md":       "markdown",
	".markdown": "markdown",
	".txt":      "text",
	".sh":       "bash",
	".bat":      "batch",
	".ps1":      "powershell",
	".php":      "php",
	".java":     "java",
	".c":        "c",
	".cpp":      "cpp",
	".h":        "c",
	".hpp":      "cpp",
	".swift":    "swift",
	".dart":     "dart",
	".go":       "go",
	".rb":       "ruby",
	".pl":       "perl",
	".lua":      "lua",
	".r":        "r",
	".toml":     "toml",
	".graphql":  "graphql",
	".gql":      "graphql",
}
