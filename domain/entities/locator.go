package entities

import "fmt"

// Strategy represents how a locator value is matched against the DOM.
// Values are the WebDriver location strategy names.
type Strategy string

const (
	ByID              Strategy = "id"
	ByName            Strategy = "name"
	ByXPath           Strategy = "xpath"
	ByCSSSelector     Strategy = "css selector"
	ByClassName       Strategy = "class name"
	ByTagName         Strategy = "tag name"
	ByLinkText        Strategy = "link text"
	ByPartialLinkText Strategy = "partial link text"
)

var strategies = map[Strategy]struct{}{
	ByID:              {},
	ByName:            {},
	ByXPath:           {},
	ByCSSSelector:     {},
	ByClassName:       {},
	ByTagName:         {},
	ByLinkText:        {},
	ByPartialLinkText: {},
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, ok := strategies[s]
	return ok
}

// ParseStrategy - converts a strategy name into a Strategy, empty means ByID
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return ByID, nil
	}
	s := Strategy(name)
	if !s.Valid() {
		return "", fmt.Errorf("unknown locator strategy %q", name)
	}
	return s, nil
}

// Locator identifies a UI element in a live document.
type Locator struct {
	Strategy Strategy `json:"strategy" yaml:"by"`
	Value    string   `json:"value" yaml:"value"`
}

// ID - shorthand for a by-id locator
func ID(value string) Locator {
	return Locator{Strategy: ByID, Value: value}
}

// CSS - shorthand for a css selector locator
func CSS(value string) Locator {
	return Locator{Strategy: ByCSSSelector, Value: value}
}

// XPath - shorthand for an xpath locator
func XPath(value string) Locator {
	return Locator{Strategy: ByXPath, Value: value}
}

// Name - shorthand for a by-name locator
func Name(value string) Locator {
	return Locator{Strategy: ByName, Value: value}
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Value)
}
