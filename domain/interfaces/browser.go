package interfaces

import (
	"errors"

	"uitestframework/domain/entities"
)

// ErrNoSuchElement is returned by drivers when a locator matches nothing
var ErrNoSuchElement = errors.New("no such element")

// Node is a handle to a UI node found in the live DOM
type Node interface {
	// Click clicks on the node
	Click() error

	// SendKeys types keys into the node
	SendKeys(keys string) error

	// IsEnabled reports whether the node accepts interaction
	IsEnabled() (bool, error)
}

// Driver is the capability pages and elements need from a browser driver
type Driver interface {
	// FindElement finds the first node matching the locator.
	// Errors wrap ErrNoSuchElement when nothing matches.
	FindElement(locator entities.Locator) (Node, error)

	// CurrentURL returns the current page URL
	CurrentURL() (string, error)
}

// Session is a launched browser owned by one test case
type Session interface {
	Driver

	// Navigate navigates to a URL, firing the navigation listener first
	Navigate(url string) error

	// Screenshot takes a PNG screenshot of the current page
	Screenshot() ([]byte, error)

	// Quit closes the browser and stops any driver service
	Quit() error
}

// NavigationListener observes navigation events fired by a driver
type NavigationListener interface {
	// BeforeNavigateTo is called before the driver navigates to url
	BeforeNavigateTo(url string, driver Driver) error
}
