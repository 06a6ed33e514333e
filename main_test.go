package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTreeMode(t *testing.T) {
	code, out, errOut := runCLI(t, "<p class=x>hi &amp; bye</p>")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "| <p>\n|   class=\"x\"\n|   \"hi \"\n|   &amp;\n|   \" bye\"\n", out)
}

func TestHTMLMode(t *testing.T) {
	code, out, errOut := runCLI(t, "<b>{{name}}</b>", "-mode", "html", "-stache")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "<b>{{name}}</b>\n", out)
}

func TestTokensMode(t *testing.T) {
	code, out, errOut := runCLI(t, "<br/>&lt;", "-mode", "tokens")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Tag <br> attrs=0 selfClosing=true\nCharRef &lt; [U+003C]\n", out)
}

func TestJSONMode(t *testing.T) {
	code, out, errOut := runCLI(t, "<a href=x>{{#if}}y{{/if}}</a>", "-mode", "json", "-stache")
	require.Equal(t, 0, code, errOut)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "element", got["type"])
	assert.Equal(t, "a", got["name"])
	assert.Equal(t, []any{map[string]any{"name": "href", "value": map[string]any{"type": "text", "value": "x"}}}, got["attrs"])

	children := got["children"].([]any)
	require.Len(t, children, 1)
	block := children[0].(map[string]any)
	assert.Equal(t, "{{#if}}", block["value"])
	assert.Equal(t, map[string]any{"type": "text", "value": "y"}, block["content"])
}

func TestTextModeFlag(t *testing.T) {
	code, out, errOut := runCLI(t, "<b>", "-text-mode", "string")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "| \"<b>\"\n", out)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.html")
	require.NoError(t, os.WriteFile(path, []byte("<i>x</i>"), 0o600))

	code, out, errOut := runCLI(t, "", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "| <i>\n|   \"x\"\n", out)

	code, _, errOut = runCLI(t, "", filepath.Join(t.TempDir(), "missing.html"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "reading")
}

func TestParseErrorExitCode(t *testing.T) {
	code, out, errOut := runCLI(t, "<div>")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `Expected "div" end tag (line 1, col 6)`)
}

func TestBadFlags(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-mode", "yaml")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown mode "yaml"`)

	code, _, errOut = runCLI(t, "", "-text-mode", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown text mode "xml"`)

	code, _, _ = runCLI(t, "", "a", "b")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "-h")
	assert.Equal(t, 0, code)
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "<p>x</p>", "-debug")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "[TOKEN]")
	assert.Contains(t, errOut, "component=tokenizer")
}
