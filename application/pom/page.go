package pom

import (
	"errors"
	"fmt"

	"uitestframework/domain/interfaces"
)

// PageObject is a page of the application under test
type PageObject interface {
	Driver() interfaces.Driver
	Get(name string) (Element, error)
	Elements() []Element
}

// PageConstructor builds a page against a live driver
type PageConstructor func(driver interfaces.Driver) (PageObject, error)

// Declarer is the hook a concrete page implements to list its elements.
// It is called once per page instance, so returned elements must be fresh;
// an element already bound to another page yields ErrElementAttached.
type Declarer interface {
	DeclareElements() []Element
}

// DeclareFunc adapts a function to Declarer
type DeclareFunc func() []Element

func (f DeclareFunc) DeclareElements() []Element { return f() }

// Page is an ordered set of named elements bound to one driver
type Page struct {
	driver   interfaces.Driver
	elements map[string]Element
	order    []string
}

// NewPage - builds a page from the declared elements.
// A missing declaration fails with ErrNotImplemented.
func NewPage(driver interfaces.Driver, declarer Declarer) (*Page, error) {
	if !declared(declarer) {
		return nil, ErrNotImplemented
	}
	if driver == nil {
		return nil, ErrNilDriver
	}

	p := &Page{
		driver:   driver,
		elements: make(map[string]Element),
	}
	for _, el := range declarer.DeclareElements() {
		if el == nil {
			return nil, errors.New("declared element is nil")
		}
		name := el.Name()
		if _, ok := p.elements[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, name)
		}
		if err := el.attach(driver); err != nil {
			return nil, err
		}
		p.elements[name] = el
		p.order = append(p.order, name)
	}
	return p, nil
}

func declared(d Declarer) bool {
	if d == nil {
		return false
	}
	if f, ok := d.(DeclareFunc); ok && f == nil {
		return false
	}
	return true
}

func (p *Page) Driver() interfaces.Driver { return p.driver }

// Get - returns the element declared under name
func (p *Page) Get(name string) (Element, error) {
	el, ok := p.elements[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	return el, nil
}

// Elements - returns elements in declaration order
func (p *Page) Elements() []Element {
	out := make([]Element, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.elements[name])
	}
	return out
}

// PageOf - returns a constructor building plain pages from declarer
func PageOf(declarer Declarer) PageConstructor {
	return func(driver interfaces.Driver) (PageObject, error) {
		page, err := NewPage(driver, declarer)
		if err != nil {
			return nil, err
		}
		return page, nil
	}
}
