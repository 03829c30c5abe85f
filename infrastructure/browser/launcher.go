package browser

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
	"uitestframework/infrastructure/config"
)

// Launcher opens a browser session with listener installed
type Launcher func(cfg *config.Config, listener interfaces.NavigationListener, logger logrus.FieldLogger) (interfaces.Session, error)

// Launch - validates cfg and opens a session on the configured backend
func Launch(cfg *config.Config, listener interfaces.NavigationListener, logger logrus.FieldLogger) (interfaces.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithFields(logrus.Fields{
		"backend": cfg.Backend,
		"browser": cfg.Browser,
	})

	var (
		session interfaces.Session
		err     error
	)
	switch cfg.Backend {
	case entities.BackendSelenium:
		session, err = NewSeleniumController(cfg, listener, logger)
	case entities.BackendPlaywright:
		session, err = NewPlaywrightController(cfg, listener, logger)
	case entities.BackendChromedp:
		session, err = NewChromedpController(cfg, listener, logger)
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Supported - lists the browsers a backend can drive
func Supported(backend entities.Backend) []entities.Browser {
	switch backend {
	case entities.BackendSelenium:
		return entities.Browsers
	case entities.BackendPlaywright:
		return []entities.Browser{entities.BrowserChrome, entities.BrowserFirefox, entities.BrowserSafari}
	case entities.BackendChromedp:
		return []entities.Browser{entities.BrowserChrome}
	}
	return nil
}

func checkSupported(backend entities.Backend, browser entities.Browser) error {
	if browser == "" {
		browser = entities.BrowserChrome
	}
	for _, b := range Supported(backend) {
		if b == browser {
			return nil
		}
	}
	if _, err := entities.ParseBrowser(string(browser)); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s cannot drive %s", entities.ErrUnsupportedBrowser, backend, browser)
}
