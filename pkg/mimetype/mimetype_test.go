package mimetype

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestForExtension(t *testing.T) {
	testCases := []struct {
		ext      string
		expected string
	}{
		{"html", "text/html"},
		{"css", "text/css"},
		{"js", "text/javascript"},
		{"jpg", "image/jpeg"},
		{"md", "text/markdown; charset=UTF-8"},
		{"png", "image/png"},
		{"svg", "image/svg+xml"},
		{"wasm", "application/wasm"},
		{"unknownext", "text/plain"},
		{"", "text/plain"},
		// The table is case-sensitive as given.
		{"HTML", "text/plain"},
		{"Jpg", "text/plain"},
	}
	for _, tc := range testCases {
		assert.Equal(t, ForExtension(tc.ext), tc.expected, "extension %q", tc.ext)
	}
}

func TestForPath(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"index.html", "text/html"},
		{"assets/app.js", "text/javascript"},
		{"deep/nested/img.png", "image/png"},
		{"README", "text/plain"},
		{"archive.tar.gz", "text/plain"},
		{"trailingdot.", "text/plain"},
	}
	for _, tc := range testCases {
		assert.Equal(t, ForPath(tc.path), tc.expected, "path %q", tc.path)
	}
}
