package checker

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitestframework/application/pom"
	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
)

type node struct{}

func (node) Click() error             { return nil }
func (node) SendKeys(string) error    { return nil }
func (node) IsEnabled() (bool, error) { return true, nil }

// fakeSession serves a fixed DOM per path and redirects /old to /login
type fakeSession struct {
	listener interfaces.NavigationListener
	url      string
	dom      map[string]map[entities.Locator]bool
	fail     map[string]error
}

func (s *fakeSession) Navigate(raw string) error {
	if err := s.fail[raw]; err != nil {
		return err
	}
	if err := s.listener.BeforeNavigateTo(raw, s); err != nil {
		return err
	}
	s.url = raw
	return nil
}

func (s *fakeSession) FindElement(loc entities.Locator) (interfaces.Node, error) {
	u, _ := url.Parse(s.url)
	if s.dom[u.Path][loc] {
		return node{}, nil
	}
	return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchElement, loc)
}

func (s *fakeSession) CurrentURL() (string, error) { return s.url, nil }
func (s *fakeSession) Screenshot() ([]byte, error) { return nil, nil }
func (s *fakeSession) Quit() error                 { return nil }

func setup(t *testing.T) (*Checker, *fakeSession) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()

	model := pom.NewModel(pom.Routes{
		"/login": pom.FormOf(pom.DeclareFunc(func() []pom.Element {
			return []pom.Element{
				pom.NewField("username", entities.ID("username"), ""),
				pom.NewElement("submit", entities.ID("submit")),
			}
		})),
		"/home": pom.PageOf(pom.DeclareFunc(func() []pom.Element {
			return []pom.Element{pom.NewElement("logout", entities.ID("logout"))}
		})),
	}, logger)

	session := &fakeSession{
		listener: pom.NewListener(model),
		dom: map[string]map[entities.Locator]bool{
			"/login": {entities.ID("username"): true},
			"/home":  {entities.ID("logout"): true},
		},
		fail: map[string]error{},
	}
	return NewChecker(session, model, logger), session
}

func TestCheckAll(t *testing.T) {
	c, _ := setup(t)

	results, err := c.CheckAll(context.Background(), "http://localhost:8000/")
	require.NoError(t, err)
	require.Len(t, results, 2)

	home := results[0]
	assert.Equal(t, "/home", home.Path)
	assert.Equal(t, "http://localhost:8000/home", home.URL)
	assert.True(t, home.OK())

	login := results[1]
	assert.Equal(t, "/login", login.Path)
	assert.True(t, login.Resolved)
	assert.False(t, login.OK())
	require.Len(t, login.Elements, 2)
	assert.True(t, login.Elements[0].Found)
	assert.False(t, login.Elements[1].Found)
	assert.Contains(t, login.Elements[1].Error, "element with locator submit not found in /login")
}

func TestCheckNavigationError(t *testing.T) {
	c, session := setup(t)
	session.fail["http://localhost/home"] = errors.New("net::ERR_CONNECTION_REFUSED")

	result := c.Check("http://localhost", "/home")
	assert.False(t, result.OK())
	assert.False(t, result.Resolved)
	assert.Contains(t, result.Error, "ERR_CONNECTION_REFUSED")
}

func TestCheckAllCanceled(t *testing.T) {
	c, _ := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := c.CheckAll(ctx, "http://localhost")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
