package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBrowser     = errors.New("unknown browser")
	ErrUnsupportedBrowser = errors.New("browser not supported by backend")
	ErrUnknownBackend     = errors.New("unknown backend")
)

// Browser is a recognized browser identifier
type Browser string

const (
	BrowserChrome           Browser = "chrome"
	BrowserFirefox          Browser = "firefox"
	BrowserOpera            Browser = "opera"
	BrowserInternetExplorer Browser = "internet_explorer"
	BrowserSafari           Browser = "safari"
)

// Browsers lists every recognized identifier, default first.
var Browsers = []Browser{
	BrowserChrome,
	BrowserFirefox,
	BrowserOpera,
	BrowserInternetExplorer,
	BrowserSafari,
}

// ParseBrowser - resolves a browser identifier; empty selects chrome
func ParseBrowser(name string) (Browser, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BrowserChrome, nil
	}
	for _, b := range Browsers {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBrowser, name)
}

// Backend selects the automation library driving the browser
type Backend string

const (
	BackendSelenium   Backend = "selenium"
	BackendPlaywright Backend = "playwright"
	BackendChromedp   Backend = "chromedp"
)

var Backends = []Backend{BackendSelenium, BackendPlaywright, BackendChromedp}

// ParseBackend - resolves a backend name; empty selects selenium
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BackendSelenium, nil
	}
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
