package pom

import (
	"errors"
	"fmt"

	"uitestframework/domain/entities"
)

var (
	// ErrNotImplemented is returned when a page is built without an element declaration
	ErrNotImplemented = errors.New("element declaration not implemented")

	// ErrUnknownElement is returned when a name does not resolve to an element
	ErrUnknownElement = errors.New("unknown element")

	// ErrDuplicateElement is returned when a page declares the same name twice
	ErrDuplicateElement = errors.New("duplicate element name")

	// ErrElementAttached is returned when a declarer hands out an element that already belongs to a page
	ErrElementAttached = errors.New("element already belongs to a page")

	// ErrNilDriver is returned when a page or element has no driver to query
	ErrNilDriver = errors.New("nil driver")
)

// NotFoundError reports a locator that matched nothing on the current page
type NotFoundError struct {
	Locator entities.Locator
	Path    string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element with locator %s not found in %s", e.Locator.Value, e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
