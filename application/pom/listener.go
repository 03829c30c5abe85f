package pom

import (
	"uitestframework/domain/interfaces"
)

// Listener connects driver navigation events to a Model
type Listener struct {
	model *Model
}

func NewListener(model *Model) *Listener {
	return &Listener{model: model}
}

// BeforeNavigateTo switches the model's active page to the destination
func (l *Listener) BeforeNavigateTo(url string, driver interfaces.Driver) error {
	return l.model.SetActivePage(url, driver)
}

var _ interfaces.NavigationListener = (*Listener)(nil)
