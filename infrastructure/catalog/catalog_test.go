package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitestframework/application/pom"
	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
)

const sample = `
pages:
  - path: /login
    form: true
    elements:
      - name: username
        value: username
        field: true
        default: guest
      - name: submit
        by: css selector
        value: button[type=submit]
  - path: /home
    elements:
      - name: logout
        by: link text
        value: Log out
`

type nopDriver struct{}

func (nopDriver) FindElement(entities.Locator) (interfaces.Node, error) {
	return nil, interfaces.ErrNoSuchElement
}

func (nopDriver) CurrentURL() (string, error) { return "http://localhost/", nil }

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, c.Pages, 2)

	routes := c.Routes()
	require.Contains(t, routes, "/login")
	require.Contains(t, routes, "/home")

	login, err := routes["/login"](nopDriver{})
	require.NoError(t, err)
	require.IsType(t, &pom.FormPage{}, login)

	username, err := login.Get("username")
	require.NoError(t, err)
	field, ok := username.(*pom.FieldElement)
	require.True(t, ok)
	assert.Equal(t, "guest", field.Default)
	assert.Equal(t, entities.ID("username"), field.Locator())

	submit, err := login.Get("submit")
	require.NoError(t, err)
	assert.Equal(t, entities.CSS("button[type=submit]"), submit.Locator())
	_, isField := submit.(pom.Field)
	assert.False(t, isField)

	home, err := routes["/home"](nopDriver{})
	require.NoError(t, err)
	assert.IsType(t, &pom.Page{}, home)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing path", data: "pages: [{elements: []}]"},
		{name: "duplicate path", data: "pages: [{path: /a}, {path: /a}]"},
		{name: "unknown strategy", data: "pages: [{path: /a, elements: [{name: x, by: shadow, value: y}]}]"},
		{name: "duplicate element", data: "pages: [{path: /a, elements: [{name: x, value: y}, {name: x, value: z}]}]"},
		{name: "missing element name", data: "pages: [{path: /a, elements: [{value: y}]}]"},
		{name: "not yaml", data: "pages: [oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Routes(), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
