package cmd

import (
	"fmt"

	"github.com/go-drift/materialweb/cmd/materialweb/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show the resolved configuration",
		Long: `Show the configuration resolved from materialweb.yaml and go.mod in the
project root: the required toolkit version and the auto-init rules.`,
		Usage: "materialweb status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	module := cfg.ModulePath
	if module == "" {
		module = "(no go.mod)"
	}
	fmt.Fprintf(stdout, "Project: %s\n", module)
	fmt.Fprintf(stdout, "Root:    %s\n", cfg.Root)
	fmt.Fprintf(stdout, "Toolkit: %s or newer\n", cfg.ToolkitVersion)
	fmt.Fprintln(stdout)

	if !cfg.AutoInit {
		fmt.Fprintln(stdout, "Auto-init: disabled")
		return nil
	}
	fmt.Fprintln(stdout, "Auto-init rules:")
	for _, rule := range cfg.Rules {
		suffix := ""
		if rule.First {
			suffix = " (first match)"
		}
		fmt.Fprintf(stdout, "  %-24s -> %s%s\n", rule.Selector, rule.Kind, suffix)
	}
	return nil
}
