// Package reader opens documents and exposes them to the outline core as
// paged sequences of styled text fragments. Each format adapter implements
// outline.Document; the core never sees format-specific details.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Open reads a document from disk and returns its fragment view.
func Open(path string) (outline.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return FromBytes(data, filepath.Base(path))
}

// FromBytes builds a Document for raw file bytes, dispatching on the
// filename extension.
func FromBytes(data []byte, filename string) (outline.Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return newPDFDocument(data)
	case ".docx":
		return newDOCXDocument(data)
	case ".md", ".markdown":
		return newMarkdownDocument(data), nil
	case ".html", ".htm":
		return newHTMLDocument(data)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}
