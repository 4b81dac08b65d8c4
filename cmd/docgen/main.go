// Package main generates the API reference for materialweb. It renders each
// public package with gomarkdoc into docs/api and writes an index page built
// from the package synopses.
package main

import (
	"bytes"
	"fmt"
	"go/doc"
	"go/parser"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Package is a Go package to document.
type Package struct {
	Name  string
	Path  string
	Title string
}

// Packages to document, in reading order.
var packages = []Package{
	{Name: "mdc", Path: "pkg/mdc", Title: "Components"},
	{Name: "props", Path: "pkg/props", Title: "Props and cells"},
	{Name: "vdom", Path: "pkg/vdom", Title: "Element descriptions"},
	{Name: "core", Path: "pkg/core", Title: "Component runtime"},
	{Name: "lifecycle", Path: "pkg/lifecycle", Title: "Widget lifecycle"},
	{Name: "selection", Path: "pkg/selection", Title: "Controlled selection"},
	{Name: "widget", Path: "pkg/widget", Title: "Toolkit boundary"},
	{Name: "bootstrap", Path: "pkg/bootstrap", Title: "Auto-init"},
	{Name: "dom", Path: "pkg/dom", Title: "Document helpers"},
	{Name: "errors", Path: "pkg/errors", Title: "Errors"},
	{Name: "widgettest", Path: "pkg/widgettest", Title: "Testing"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root, err := findRepoRoot()
	if err != nil {
		return err
	}
	fmt.Printf("Repository root: %s\n", root)

	if err := ensureGomarkdoc(); err != nil {
		return fmt.Errorf("ensuring gomarkdoc: %w", err)
	}

	apiDir := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(apiDir, 0o755); err != nil {
		return err
	}

	var documented []Package
	for _, pkg := range packages {
		if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}
		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		ok, err := generatePackageDocs(root, pkg, apiDir)
		if err != nil {
			return fmt.Errorf("generating docs for %s: %w", pkg.Name, err)
		}
		if ok {
			documented = append(documented, pkg)
		}
	}

	index, err := buildIndex(root, documented)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(apiDir, "README.md"), []byte(index), 0o644); err != nil {
		return err
	}

	fmt.Printf("\nWrote %d package pages to %s\n", len(documented), apiDir)
	return nil
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func ensureGomarkdoc() error {
	if _, err := exec.LookPath("gomarkdoc"); err == nil {
		return nil
	}
	fmt.Println("Installing gomarkdoc...")
	cmd := exec.Command("go", "install", "github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// generatePackageDocs writes docs/api/<name>.md. It reports false when
// gomarkdoc produced nothing for the package.
func generatePackageDocs(root string, pkg Package, apiDir string) (bool, error) {
	cmd := exec.Command("gomarkdoc", "./"+pkg.Path)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return false, fmt.Errorf("gomarkdoc: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		fmt.Printf("  Warning: no documentation generated for %s\n", pkg.Name)
		return false, nil
	}

	content := "# " + pkg.Title + "\n\n" + processMarkdown(stdout.String())
	return true, os.WriteFile(filepath.Join(apiDir, pkg.Name+".md"), []byte(content), 0o644)
}

// buildIndex lists the documented packages with the first sentence of their
// package comment.
func buildIndex(root string, pkgs []Package) (string, error) {
	var sb strings.Builder
	sb.WriteString("# API Reference\n\n")
	for _, pkg := range pkgs {
		synopsis, err := packageSynopsis(filepath.Join(root, pkg.Path))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "- [%s](%s.md) (`%s`): %s\n", pkg.Title, pkg.Name, pkg.Path, synopsis)
	}
	return sb.String(), nil
}

func packageSynopsis(dir string) (string, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments|parser.PackageClauseOnly)
	if err != nil {
		return "", err
	}
	var p doc.Package
	for _, pkg := range pkgs {
		for _, f := range pkg.Files {
			if f.Doc != nil {
				return p.Synopsis(f.Doc.Text()), nil
			}
		}
	}
	return "", nil
}

// processMarkdown drops the parts of gomarkdoc output that the index page
// already covers: the title, the import block and the Index section.
func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inIndex := false
	inImport := false

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), "import ") {
			inImport = true
			continue
		}
		if inImport {
			if line == "```" {
				inImport = false
			}
			continue
		}

		if summary, ok := strings.CutPrefix(line, "<details><summary>"); ok && strings.HasSuffix(summary, "</summary>") {
			result = append(result, "", "**"+strings.TrimSuffix(summary, "</summary>")+":**", "")
			continue
		}
		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
