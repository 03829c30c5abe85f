// Package uitest wires a page object model into testify suites.
//
// Embed Suite, set the fixture fields and run it with suite.Run:
//
//	type LoginSuite struct {
//		uitest.Suite
//	}
//
//	func TestLogin(t *testing.T) {
//		suite.Run(t, &LoginSuite{Suite: uitest.Suite{
//			DriverPath: "/usr/local/bin/chromedriver",
//			POM:        pom.NewModel(routes, nil),
//		}})
//	}
//
// Every test gets a fresh browser session whose navigations switch the
// model's active page.
package uitest

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"uitestframework/application/pom"
	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
	"uitestframework/infrastructure/browser"
	"uitestframework/infrastructure/config"
	"uitestframework/infrastructure/storage"
)

var ErrMissingModel = errors.New("POM must be set for all suites embedding uitest.Suite")

// Suite launches a browser per test and routes its navigations to POM
type Suite struct {
	suite.Suite

	// DriverPath points to the WebDriver binary, e.g. chromedriver.
	// Drivers can be downloaded at https://www.selenium.dev/downloads/
	DriverPath string
	Browser    entities.Browser
	Options    []string
	POM        *pom.Model

	// Config is the base configuration, loaded from the environment when nil.
	// Fixture fields above take precedence over it.
	Config *config.Config

	Launcher browser.Launcher
	Logger   logrus.FieldLogger

	Session interfaces.Session

	artifacts interfaces.ArtifactStore
	errs      []string
}

// SetupTest validates the fixture and launches a session
func (s *Suite) SetupTest() {
	cfg, err := s.fixtureConfig()
	s.Require().NoError(err, "invalid uitest fixture")

	logger := s.Logger
	if logger == nil {
		logger, err = config.NewLogger(cfg.LogLevel, nil)
		s.Require().NoError(err)
	}

	if cfg.ArtifactsDir != "" {
		s.artifacts, err = storage.NewArtifactStore(cfg.ArtifactsDir)
		s.Require().NoError(err)
	}

	launch := s.Launcher
	if launch == nil {
		launch = browser.Launch
	}
	s.errs = nil
	s.Session, err = launch(cfg, pom.NewListener(s.POM), logger)
	s.Require().NoError(err, "failed to launch browser")
}

// TearDownTest saves failure artifacts and closes the session
func (s *Suite) TearDownTest() {
	if s.Session == nil {
		return
	}
	if s.T().Failed() && s.artifacts != nil {
		if _, err := s.SaveArtifacts(); err != nil {
			s.T().Logf("failed to save artifacts: %v", err)
		}
	}
	if err := s.Session.Quit(); err != nil {
		s.T().Logf("failed to quit browser: %v", err)
	}
	s.Session = nil
}

// fixtureConfig merges the fixture fields into the base configuration
func (s *Suite) fixtureConfig() (*config.Config, error) {
	if s.POM == nil {
		return nil, ErrMissingModel
	}

	var cfg config.Config
	if s.Config != nil {
		cfg = *s.Config
	} else {
		loaded, err := config.Load("")
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if s.DriverPath != "" {
		cfg.DriverPath = s.DriverPath
	}
	if s.Browser != "" {
		cfg.Browser = s.Browser
	}
	if s.Options != nil {
		cfg.Options = append([]string(nil), s.Options...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Navigate opens url, failing the test on error
func (s *Suite) Navigate(url string) {
	s.Require().NoError(s.record(s.Session.Navigate(url)))
}

// Element returns the named element of the active page, failing the test if missing
func (s *Suite) Element(name string) pom.Element {
	el, err := s.POM.Get(name)
	s.Require().NoError(s.record(err))
	return el
}

// Click clicks the named element of the active page
func (s *Suite) Click(name string) {
	s.Require().NoError(s.record(s.POM.Click(name)))
}

// Write writes value into the named field of the active page
func (s *Suite) Write(name, value string) {
	s.Require().NoError(s.record(s.POM.Write(name, value)))
}

// Autofill fills the form on the active page
func (s *Suite) Autofill(values map[string]string) {
	s.Require().NoError(s.record(s.POM.Autofill(values)))
}

func (s *Suite) record(err error) error {
	if err != nil {
		s.errs = append(s.errs, err.Error())
	}
	return err
}

// SaveArtifacts stores a screenshot and a report of the current test
func (s *Suite) SaveArtifacts() ([]string, error) {
	if s.artifacts == nil {
		return nil, fmt.Errorf("no artifacts directory configured")
	}
	test := s.T().Name()
	var paths []string

	report := entities.Report{Test: test, Path: s.POM.ActivePath(), Errors: s.errs}
	if current, err := s.Session.CurrentURL(); err == nil {
		report.URL = current
		if u, err := url.Parse(current); err == nil {
			report.Path = u.Path
		}
	}
	path, err := s.artifacts.SaveReport(report)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	png, err := s.Session.Screenshot()
	if err != nil {
		return paths, fmt.Errorf("failed to take screenshot: %w", err)
	}
	path, err = s.artifacts.SaveScreenshot(test, png)
	if err != nil {
		return paths, err
	}
	return append(paths, path), nil
}
