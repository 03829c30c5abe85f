package pom

import (
	"fmt"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
)

type fakeNode struct {
	disabled bool
	clicks   int
	sent     []string
}

func (n *fakeNode) Click() error {
	n.clicks++
	return nil
}

func (n *fakeNode) SendKeys(keys string) error {
	n.sent = append(n.sent, keys)
	return nil
}

func (n *fakeNode) IsEnabled() (bool, error) {
	return !n.disabled, nil
}

type fakeDriver struct {
	url   string
	nodes map[entities.Locator]*fakeNode
	err   error
}

func newFakeDriver(url string) *fakeDriver {
	return &fakeDriver{url: url, nodes: make(map[entities.Locator]*fakeNode)}
}

func (d *fakeDriver) add(loc entities.Locator) *fakeNode {
	n := &fakeNode{}
	d.nodes[loc] = n
	return n
}

func (d *fakeDriver) FindElement(loc entities.Locator) (interfaces.Node, error) {
	if d.err != nil {
		return nil, d.err
	}
	n, ok := d.nodes[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchElement, loc)
	}
	return n, nil
}

func (d *fakeDriver) CurrentURL() (string, error) {
	return d.url, nil
}

func loginElements() []Element {
	return []Element{
		NewField("username", entities.ID("username"), "guest"),
		NewField("password", entities.ID("password"), ""),
		NewElement("submit", entities.CSS("button[type=submit]")),
	}
}
