package pom

import (
	"uitestframework/domain/interfaces"
)

// Autofiller is implemented by pages holding a form
type Autofiller interface {
	Autofill(values map[string]string) error
}

// FormPage is a page whose fields belong to a form
type FormPage struct {
	*Page
}

// NewFormPage - builds a form page; a missing declaration fails with ErrNotImplemented
func NewFormPage(driver interfaces.Driver, declarer Declarer) (*FormPage, error) {
	page, err := NewPage(driver, declarer)
	if err != nil {
		return nil, err
	}
	return &FormPage{Page: page}, nil
}

// Autofill - writes values into the fields named by the map keys.
// Fields are filled in declaration order, unknown keys and non-field elements are ignored.
func (p *FormPage) Autofill(values map[string]string) error {
	for _, name := range p.order {
		value, ok := values[name]
		if !ok {
			continue
		}
		field, ok := p.elements[name].(Field)
		if !ok {
			continue
		}
		if err := field.Write(value); err != nil {
			return err
		}
	}
	return nil
}

// FormOf - returns a constructor building form pages from declarer
func FormOf(declarer Declarer) PageConstructor {
	return func(driver interfaces.Driver) (PageObject, error) {
		page, err := NewFormPage(driver, declarer)
		if err != nil {
			return nil, err
		}
		return page, nil
	}
}
