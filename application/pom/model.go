package pom

import (
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"uitestframework/domain/interfaces"
)

// Routes maps URL paths (no scheme, host or port) to page constructors
type Routes map[string]PageConstructor

// Model tracks the page representing the browser's current location.
// Elements of the active page are reached through Get.
type Model struct {
	routes Routes
	logger logrus.FieldLogger

	mu         sync.RWMutex
	active     PageObject
	activePath string
}

// NewModel - creates a model owning a private copy of routes
func NewModel(routes Routes, logger logrus.FieldLogger) *Model {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	own := make(Routes, len(routes))
	for path, ctor := range routes {
		own[path] = ctor
	}
	return &Model{routes: own, logger: logger}
}

// SetActivePage - switches the active page to the one mapped to the url path.
// Unmapped paths are logged and leave the active page untouched.
func (m *Model) SetActivePage(rawURL string, driver interfaces.Driver) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse url %q: %w", rawURL, err)
	}

	ctor, ok := m.routes[u.Path]
	if !ok || ctor == nil {
		m.logger.WithField("path", u.Path).Info("No page found in routes")
		return nil
	}

	page, err := ctor(driver)
	if err != nil {
		return fmt.Errorf("failed to build page for %q: %w", u.Path, err)
	}

	m.mu.Lock()
	m.active = page
	m.activePath = u.Path
	m.mu.Unlock()

	m.logger.WithField("path", u.Path).Debug("Active page switched")
	return nil
}

// ActivePage - returns the active page, nil before any navigation resolved
func (m *Model) ActivePage() PageObject {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// ActivePath - returns the route path of the active page
func (m *Model) ActivePath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activePath
}

// Get - returns the element called name on the active page
func (m *Model) Get(name string) (Element, error) {
	page := m.ActivePage()
	if page == nil {
		return nil, fmt.Errorf("%w: %q (no active page)", ErrUnknownElement, name)
	}
	return page.Get(name)
}

// Click - clicks the named element of the active page
func (m *Model) Click(name string) error {
	el, err := m.Get(name)
	if err != nil {
		return err
	}
	return el.Click()
}

// Write - writes value into the named field of the active page
func (m *Model) Write(name, value string) error {
	el, err := m.Get(name)
	if err != nil {
		return err
	}
	field, ok := el.(Field)
	if !ok {
		return fmt.Errorf("element %q does not accept input", name)
	}
	return field.Write(value)
}

// Autofill - fills the form on the active page
func (m *Model) Autofill(values map[string]string) error {
	page := m.ActivePage()
	if page == nil {
		return fmt.Errorf("autofill: no active page")
	}
	form, ok := page.(Autofiller)
	if !ok {
		return fmt.Errorf("autofill: active page %T is not a form", page)
	}
	return form.Autofill(values)
}

// Paths - returns the registered paths, sorted
func (m *Model) Paths() []string {
	paths := make([]string, 0, len(m.routes))
	for p := range m.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
