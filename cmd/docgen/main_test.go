package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMarkdown(t *testing.T) {
	in := "# mdc\n" +
		"\n" +
		"```go\n" +
		"import \"github.com/go-drift/materialweb/pkg/mdc\"\n" +
		"```\n" +
		"\n" +
		"Package mdc provides components.\n" +
		"## Index\n" +
		"- [type Dialog](<#Dialog>)\n" +
		"## type Dialog\n" +
		"<details><summary>Example</summary>\n" +
		"<p>\n" +
		"body\n" +
		"</p>\n" +
		"</details>\n"

	want := "\n" +
		"\n" +
		"Package mdc provides components.\n" +
		"## type Dialog\n" +
		"\n" +
		"**Example:**\n" +
		"\n" +
		"body\n"

	assert.Equal(t, want, processMarkdown(in))
}

func TestBuildIndex(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "pkg", "demo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	src := "// Package demo shows widgets. It has more to say.\npackage demo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.go"), []byte(src), 0o644))

	index, err := buildIndex(root, []Package{{Name: "demo", Path: "pkg/demo", Title: "Demo"}})
	require.NoError(t, err)
	assert.Equal(t, "# API Reference\n\n- [Demo](demo.md) (`pkg/demo`): Package demo shows widgets.\n", index)
}
