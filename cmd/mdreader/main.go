// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdreader CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdreader CLI.
var rootCmd = &cobra.Command{
	Use:   "mdreader",
	Short: "Work with structured Markdown documents",
	Long: `mdreader treats a Markdown file as a tree of named sections under YAML
frontmatter. It can add, delete and inspect sections, regenerate a table of
contents, apply document templates, export to HTML and PDF, snapshot a
directory tree into a document, and maintain a searchable section catalog.

Each operation is a subcommand: section, toc, template, export, scan,
index, and search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdreader.yaml or ~/.config/mdreader/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdreader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdreader"))
		}
	}

	viper.SetEnvPrefix("MDREADER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
