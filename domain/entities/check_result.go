package entities

// ElementCheck is the outcome of looking up one declared element
type ElementCheck struct {
	Name    string  `json:"name"`
	Locator Locator `json:"locator"`
	Found   bool    `json:"found"`
	Error   string  `json:"error,omitempty"`
}

// PageCheck contains the outcome of visiting one catalog page
type PageCheck struct {
	Path     string         `json:"path"`
	URL      string         `json:"url"`
	Resolved bool           `json:"resolved"` // active page switched to this path
	Elements []ElementCheck `json:"elements"`
	Error    string         `json:"error,omitempty"`
}

// OK reports whether the page resolved and every element was found.
func (p PageCheck) OK() bool {
	if !p.Resolved || p.Error != "" {
		return false
	}
	for _, e := range p.Elements {
		if !e.Found {
			return false
		}
	}
	return true
}

// Report is what gets stored next to a failure screenshot
type Report struct {
	Test   string   `json:"test"`
	URL    string   `json:"url"`
	Path   string   `json:"path"`
	Errors []string `json:"errors,omitempty"`
}
