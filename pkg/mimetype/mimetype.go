// Package mimetype maps file extensions to content types.
package mimetype

import (
	"path/filepath"
	"strings"
)

// Default is served for unknown or missing extensions.
const Default = "text/plain"

var byExtension = map[string]string{
	"html": "text/html",
	"css":  "text/css",
	"js":   "text/javascript",
	"jpg":  "image/jpeg",
	"md":   "text/markdown; charset=UTF-8",
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"wasm": "application/wasm",
}

// ForExtension maps a bare extension (no leading dot) to a content
// type. The lookup is case-sensitive; anything not in the table,
// including the empty extension, maps to Default. It never fails.
func ForExtension(ext string) string {
	if ct, ok := byExtension[ext]; ok {
		return ct
	}
	return Default
}

// ForPath maps a file path to a content type via its extension.
func ForPath(path string) string {
	return ForExtension(strings.TrimPrefix(filepath.Ext(path), "."))
}
