// Package bootstrap constructs widgets for markup that was rendered without
// components, such as server-side templates. A page is scanned once per
// process: every element matching a rule gets a widget of the rule's kind.
//
//	session, err := bootstrap.Init(doc, registry, bootstrap.DefaultRules)
//
// Elements inside a container marked data-mdc-auto-init="false" are left
// alone. A widget that fails to construct is reported through
// errors.Report and skipped; the scan carries on with the next element.
package bootstrap

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/errors"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// OptOutAttr marks a subtree the scan must skip when set to "false".
const OptOutAttr = "data-mdc-auto-init"

// ErrAlreadyInitialized is returned by Init after the page was scanned.
var ErrAlreadyInitialized = stderrors.New("bootstrap: page already initialized")

// ErrNoRegistry is returned by Init when no widget registry is given.
var ErrNoRegistry = stderrors.New("bootstrap: no widget registry")

// Rule binds a selector to the widget kind constructed for each match.
type Rule struct {
	Selector string `yaml:"selector"`
	Kind     string `yaml:"kind"`
	// First limits the rule to the first match, for page singletons such as
	// the top app bar.
	First bool `yaml:"first,omitempty"`
}

// DefaultRules are the rules applied when a page does not configure its own.
var DefaultRules = []Rule{
	{Selector: ".mdc-button", Kind: widget.KindRipple},
	{Selector: ".mdc-icon-button", Kind: widget.KindRipple},
	{Selector: ".mdc-text-field", Kind: widget.KindTextField},
	{Selector: ".mdc-checkbox", Kind: widget.KindCheckbox},
	{Selector: ".mdc-form-field", Kind: widget.KindFormField},
	{Selector: ".mdc-top-app-bar", Kind: widget.KindTopAppBar, First: true},
	{Selector: ".mdc-data-table", Kind: widget.KindDataTable},
}

// Session holds the widgets constructed by one scan.
type Session struct {
	mu      sync.Mutex
	handles []*widget.Handle
	skipped int
	failed  int
}

// Handles returns the widgets constructed by the scan, in document order per
// rule.
func (s *Session) Handles() []*widget.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*widget.Handle(nil), s.handles...)
}

// Count returns the number of widgets of kind, or of all kinds for "".
func (s *Session) Count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.handles {
		if kind == "" || h.Kind() == kind {
			n++
		}
	}
	return n
}

// Skipped returns how many matches were inside an opted-out subtree.
func (s *Session) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped
}

// Failed returns how many matches failed to construct.
func (s *Session) Failed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

func (s *Session) destroy() error {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()

	var errs []error
	for i := len(handles) - 1; i >= 0; i-- {
		if err := handles[i].Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	mu      sync.Mutex
	current *Session
)

// Init scans doc and constructs a widget for every element matching rules.
// A nil rules slice means DefaultRules. Only the first call per process
// scans; later calls return the existing session and ErrAlreadyInitialized.
func Init(doc *html.Node, registry *widget.Registry, rules []Rule) (*Session, error) {
	if doc == nil {
		return nil, &errors.MountError{Op: "bootstrap.Init", Err: errors.ErrMissingElement}
	}
	if registry == nil {
		return nil, ErrNoRegistry
	}
	if rules == nil {
		rules = DefaultRules
	}

	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		return current, ErrAlreadyInitialized
	}

	s := &Session{}
	for _, rule := range rules {
		s.apply(doc, registry, rule)
	}
	current = s
	return s, nil
}

func (s *Session) apply(doc *html.Node, registry *widget.Registry, rule Rule) {
	matches := dom.Find(doc, rule.Selector)
	if rule.First {
		matches = matches.First()
	}
	matches.Each(func(_ int, sel *goquery.Selection) {
		el := sel.Get(0)
		if optedOut(sel) {
			s.skipped++
			return
		}
		h, err := registry.Construct(rule.Kind, el)
		if err != nil {
			s.failed++
			errors.Report(&errors.Error{
				Op:       "bootstrap.Init",
				Kind:     errors.KindBootstrap,
				Err:      fmt.Errorf("construct %s: %w", rule.Kind, err),
				Selector: rule.Selector,
			})
			return
		}
		s.handles = append(s.handles, h)
	})
}

// optedOut reports whether sel or one of its ancestors carries
// data-mdc-auto-init="false".
func optedOut(sel *goquery.Selection) bool {
	return sel.Closest(`[` + OptOutAttr + `="false"]`).Length() > 0
}

// Current returns the session of the process, or nil before Init.
func Current() *Session {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Shutdown destroys the widgets of the current session, newest first, and
// allows Init to scan again. It is meant for tests and for hosts that tear a
// page down.
func Shutdown() error {
	mu.Lock()
	s := current
	current = nil
	mu.Unlock()
	if s == nil {
		return nil
	}
	return s.destroy()
}
