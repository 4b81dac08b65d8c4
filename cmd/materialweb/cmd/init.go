package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/materialweb/cmd/materialweb/internal/config"
	"github.com/go-drift/materialweb/pkg/bootstrap"
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a materialweb.yaml with the defaults",
		Long: `Write a materialweb.yaml holding the default toolkit version and
auto-init rules, ready to be edited.

The file is written to the given directory, or the current one. An existing
file is never overwritten.

Examples:
  materialweb init
  materialweb init ./site`,
		Usage: "materialweb init [directory]",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = filepath.Clean(args[0])
	}
	path, err := writeDefaultConfig(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

// writeDefaultConfig writes the default configuration into dir and returns
// the path of the new file.
func writeDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	cfg := config.Config{
		Toolkit:  config.ToolkitConfig{Version: config.DefaultToolkitVersion},
		AutoInit: config.AutoInitConfig{Rules: bootstrap.DefaultRules},
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", config.FileName, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
