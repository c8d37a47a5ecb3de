package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Heuristic document outline extraction",
	Long: `Outliner extracts a title and a hierarchical outline (H1/H2/H3 headings
with page numbers) from PDF, DOCX, Markdown, and HTML documents.

Headings are detected heuristically from typography: font size relative to
the document average, boldness, numbering prefixes, position, and length.
No machine learning models or network calls are involved.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
