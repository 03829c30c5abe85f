package pom

import (
	"errors"
	"fmt"
	"net/url"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
)

// Element is a named control on a page.
// Custom element types embed *BaseElement to satisfy it.
type Element interface {
	Name() string
	Locator() entities.Locator
	Find() (interfaces.Node, error)
	Click() error

	attach(driver interfaces.Driver) error
}

// Field is an element that accepts user input
type Field interface {
	Element
	Write(value string) error
}

// BaseElement contains the operations available on any HTML element
type BaseElement struct {
	name    string
	locator entities.Locator
	driver  interfaces.Driver
}

// NewElement - creates an element; it is usable once its page attaches a driver
func NewElement(name string, locator entities.Locator) *BaseElement {
	return &BaseElement{name: name, locator: locator}
}

func (e *BaseElement) Name() string { return e.name }

func (e *BaseElement) Locator() entities.Locator { return e.locator }

// attach binds the element to its page's driver; an element belongs to one page
func (e *BaseElement) attach(driver interfaces.Driver) error {
	if e.driver != nil {
		return fmt.Errorf("%w: %q", ErrElementAttached, e.name)
	}
	e.driver = driver
	return nil
}

// Find - looks up the UI node matching the element locator.
// No waiting or retrying happens here; timeouts belong to the driver.
func (e *BaseElement) Find() (interfaces.Node, error) {
	if e.driver == nil {
		return nil, fmt.Errorf("find %s: %w", e.name, ErrNilDriver)
	}
	node, err := e.driver.FindElement(e.locator)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoSuchElement) {
			return nil, &NotFoundError{Locator: e.locator, Path: currentPath(e.driver), Err: err}
		}
		return nil, fmt.Errorf("find %s: %w", e.name, err)
	}
	return node, nil
}

// Click - clicks on the found UI node
func (e *BaseElement) Click() error {
	node, err := e.Find()
	if err != nil {
		return err
	}
	return node.Click()
}

func currentPath(driver interfaces.Driver) string {
	raw, err := driver.CurrentURL()
	if err != nil {
		return "<unknown>"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
