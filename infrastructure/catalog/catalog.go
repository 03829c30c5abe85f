package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"uitestframework/application/pom"
	"uitestframework/domain/entities"
)

// ElementSpec declares one element of a page
type ElementSpec struct {
	Name    string `yaml:"name"`
	By      string `yaml:"by"` // locator strategy, id when empty
	Value   string `yaml:"value"`
	Field   bool   `yaml:"field"`
	Default string `yaml:"default"`
}

// PageSpec declares a page served under Path
type PageSpec struct {
	Path     string        `yaml:"path"`
	Form     bool          `yaml:"form"`
	Elements []ElementSpec `yaml:"elements"`
}

// Catalog is a set of pages declared in YAML
type Catalog struct {
	Pages []PageSpec `yaml:"pages"`
}

// Load - reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse - decodes and validates a catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks paths and element names are unique and strategies known
func (c *Catalog) Validate() error {
	paths := make(map[string]struct{}, len(c.Pages))
	for i, p := range c.Pages {
		if p.Path == "" {
			return fmt.Errorf("page %d: path is required", i)
		}
		if _, ok := paths[p.Path]; ok {
			return fmt.Errorf("page %s: duplicate path", p.Path)
		}
		paths[p.Path] = struct{}{}

		names := make(map[string]struct{}, len(p.Elements))
		for _, e := range p.Elements {
			if e.Name == "" {
				return fmt.Errorf("page %s: element name is required", p.Path)
			}
			if _, ok := names[e.Name]; ok {
				return fmt.Errorf("page %s: %w: %q", p.Path, pom.ErrDuplicateElement, e.Name)
			}
			names[e.Name] = struct{}{}
			if _, err := entities.ParseStrategy(e.By); err != nil {
				return fmt.Errorf("page %s, element %s: %w", p.Path, e.Name, err)
			}
		}
	}
	return nil
}

// Routes - builds page constructors for every catalog page
func (c *Catalog) Routes() pom.Routes {
	routes := make(pom.Routes, len(c.Pages))
	for _, p := range c.Pages {
		decl := declarer(p.Elements)
		if p.Form {
			routes[p.Path] = pom.FormOf(decl)
		} else {
			routes[p.Path] = pom.PageOf(decl)
		}
	}
	return routes
}

func declarer(specs []ElementSpec) pom.DeclareFunc {
	return func() []pom.Element {
		elements := make([]pom.Element, 0, len(specs))
		for _, s := range specs {
			// validated on load
			strategy, _ := entities.ParseStrategy(s.By)
			locator := entities.Locator{Strategy: strategy, Value: s.Value}
			if s.Field {
				elements = append(elements, pom.NewField(s.Name, locator, s.Default))
			} else {
				elements = append(elements, pom.NewElement(s.Name, locator))
			}
		}
		return elements
	}
}
