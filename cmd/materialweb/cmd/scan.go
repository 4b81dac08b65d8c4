package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/materialweb/cmd/materialweb/internal/config"
	"github.com/go-drift/materialweb/pkg/bootstrap"
	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

func init() {
	RegisterCommand(&Command{
		Name:  "scan",
		Short: "List the widgets auto-init would bind in a page",
		Long: `Scan an HTML page with the auto-init rules and list every element a
widget would be constructed for.

Rules come from materialweb.yaml in the project root, or the defaults when
there is none. Elements inside data-mdc-auto-init="false" are skipped.

Examples:
  materialweb scan templates/index.html
  materialweb scan --toolkit v14.0.0 page.html`,
		Usage: "materialweb scan [--toolkit VERSION] <file.html>",
		Run:   runScan,
	})
}

func runScan(args []string) error {
	var file, toolkit string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--toolkit":
			if i+1 >= len(args) {
				return fmt.Errorf("--toolkit requires a version")
			}
			toolkit = args[i+1]
			i++
		case strings.HasPrefix(arg, "--toolkit="):
			toolkit = strings.TrimPrefix(arg, "--toolkit=")
		default:
			if file != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			file = arg
		}
	}
	if file == "" {
		return fmt.Errorf("file is required\n\nUsage: materialweb scan [--toolkit VERSION] <file.html>")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		root = filepath.Dir(file)
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	if toolkit != "" {
		if err := cfg.CheckToolkit(toolkit); err != nil {
			return err
		}
	}
	if !cfg.AutoInit {
		fmt.Fprintln(stdout, "auto-init is disabled in "+config.FileName)
		return nil
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	doc, err := dom.Parse(string(src))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}

	session, err := bootstrap.Init(doc, dryRunRegistry(), cfg.Rules)
	if err != nil {
		return err
	}
	defer bootstrap.Shutdown()

	for _, h := range session.Handles() {
		fmt.Fprintf(stdout, "%-20s %s\n", h.Kind(), describe(h.Element()))
	}
	fmt.Fprintf(stdout, "\n%d widgets, %d skipped, %d failed\n",
		session.Count(""), session.Skipped(), session.Failed())
	return nil
}

// dryRunRegistry constructs inert widgets so a scan has no effect.
func dryRunRegistry() *widget.Registry {
	r := widget.NewRegistry()
	r.Version = Version
	for _, kind := range widget.Kinds {
		r.RegisterFactory(widget.FactoryFunc{
			WidgetKind: kind,
			Fn: func(*html.Node) (widget.Widget, error) {
				return inert{}, nil
			},
		})
	}
	return r
}

type inert struct{}

func (inert) Destroy()                          {}
func (inert) Listen(string, func(widget.Event)) {}

// describe renders el as tag#id.class for listing.
func describe(el *html.Node) string {
	var sb strings.Builder
	sb.WriteString(el.Data)
	if id, ok := dom.Attr(el, "id"); ok && id != "" {
		sb.WriteString("#" + id)
	}
	if class, ok := dom.Attr(el, "class"); ok {
		for _, c := range strings.Fields(class) {
			sb.WriteString("." + c)
		}
	}
	return sb.String()
}
