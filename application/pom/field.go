package pom

import (
	"uitestframework/domain/entities"
)

// FieldElement is an element that can receive user input
type FieldElement struct {
	*BaseElement
	Default string
}

// NewField - creates a field element; def is written when Write gets no value
func NewField(name string, locator entities.Locator, def string) *FieldElement {
	return &FieldElement{BaseElement: NewElement(name, locator), Default: def}
}

// Write - types value into the field, or the default when value is empty.
// Disabled fields are skipped without error.
func (f *FieldElement) Write(value string) error {
	node, err := f.Find()
	if err != nil {
		return err
	}

	enabled, err := node.IsEnabled()
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}

	keys := value
	if keys == "" {
		keys = f.Default
	}
	if keys == "" {
		return nil
	}
	return node.SendKeys(keys)
}
