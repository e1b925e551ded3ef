package htmlpage

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestRenderTitle(t *testing.T) {
	out, err := Render("404 Not Found", "")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "<title>404 Not Found</title>"))
	assert.Check(t, is.Contains(out, "<h1>404 Not Found</h1>"))
}

func TestRenderTitleIsEscaped(t *testing.T) {
	out, err := Render("<script>", "")
	assert.NilError(t, err)
	assert.Check(t, !strings.Contains(out, "<title><script></title>"))
	assert.Check(t, is.Contains(out, "&lt;script&gt;"))
}

func TestRenderBodyIsTrustedHTML(t *testing.T) {
	out, err := Render("listing", "<ul><li>a</li></ul>")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "<ul><li>a</li></ul>"))
}
