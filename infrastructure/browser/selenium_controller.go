package browser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
	"uitestframework/infrastructure/config"
)

// SeleniumController drives a browser through a WebDriver server.
// Navigate fires the navigation listener before the browser moves.
type SeleniumController struct {
	wd       selenium.WebDriver
	service  *selenium.Service
	listener interfaces.NavigationListener
	logger   logrus.FieldLogger
}

// NewSeleniumController - starts the driver service (unless a remote hub is
// configured) and opens a session for the configured browser
func NewSeleniumController(cfg *config.Config, listener interfaces.NavigationListener, logger logrus.FieldLogger) (*SeleniumController, error) {
	caps, err := seleniumCapabilities(cfg, logger)
	if err != nil {
		return nil, err
	}

	urlPrefix := cfg.RemoteURL
	var service *selenium.Service
	if urlPrefix == "" {
		if !config.LocalDriver(cfg.Browser) {
			return nil, fmt.Errorf("%w: %s", config.ErrRemoteOnly, cfg.Browser)
		}
		logger.Infof("Using driver at: %s", cfg.DriverPath)
		if cfg.Browser == entities.BrowserFirefox {
			service, err = selenium.NewGeckoDriverService(cfg.DriverPath, cfg.DriverPort)
			urlPrefix = fmt.Sprintf("http://localhost:%d", cfg.DriverPort)
		} else {
			service, err = selenium.NewChromeDriverService(cfg.DriverPath, cfg.DriverPort)
			urlPrefix = fmt.Sprintf("http://localhost:%d/wd/hub", cfg.DriverPort)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to start driver service: %w", err)
		}
	}

	wd, err := selenium.NewRemote(caps, urlPrefix)
	if err != nil {
		if service != nil {
			service.Stop()
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	s := WrapSelenium(wd, listener, logger)
	s.service = service
	return s, nil
}

// WrapSelenium - wraps an existing WebDriver so navigation goes through listener
func WrapSelenium(wd selenium.WebDriver, listener interfaces.NavigationListener, logger logrus.FieldLogger) *SeleniumController {
	return &SeleniumController{
		wd:       wd,
		listener: listener,
		logger:   logger,
	}
}

// seleniumCapabilities - builds capabilities with the options applied to the browser's options object
func seleniumCapabilities(cfg *config.Config, logger logrus.FieldLogger) (selenium.Capabilities, error) {
	args := append([]string(nil), cfg.Options...)

	switch cfg.Browser {
	case entities.BrowserChrome, "":
		caps := selenium.Capabilities{"browserName": "chrome"}
		if cfg.Headless {
			args = appendMissing(args, "--headless")
		}
		chromeCaps := chrome.Capabilities{Args: args}
		if cfg.BinaryPath != "" {
			chromeCaps.Path = cfg.BinaryPath
		}
		caps.AddChrome(chromeCaps)
		return caps, nil

	case entities.BrowserFirefox:
		caps := selenium.Capabilities{"browserName": "firefox"}
		if cfg.Headless {
			args = appendMissing(args, "-headless")
		}
		ffCaps := firefox.Capabilities{Args: args}
		if cfg.BinaryPath != "" {
			ffCaps.Binary = cfg.BinaryPath
		}
		caps.AddFirefox(ffCaps)
		return caps, nil

	case entities.BrowserOpera:
		if cfg.Headless {
			logger.Warn("Opera has no headless mode, starting a visible window")
		}
		opera := map[string]interface{}{"args": args}
		if cfg.BinaryPath != "" {
			opera["binary"] = cfg.BinaryPath
		}
		return selenium.Capabilities{
			"browserName":  "opera",
			"operaOptions": opera,
		}, nil

	case entities.BrowserInternetExplorer:
		ie := map[string]interface{}{}
		if len(args) > 0 {
			ie["ie.browserCommandLineSwitches"] = strings.Join(args, " ")
			ie["ie.forceCreateProcessApi"] = true
		}
		return selenium.Capabilities{
			"browserName":  "internet explorer",
			"se:ieOptions": ie,
		}, nil

	case entities.BrowserSafari:
		if len(args) > 0 {
			logger.Warnf("Safari takes no command line options, ignoring %v", args)
		}
		return selenium.Capabilities{"browserName": "safari"}, nil
	}

	return nil, fmt.Errorf("%w: %q", entities.ErrUnknownBrowser, cfg.Browser)
}

func appendMissing(args []string, flag string) []string {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return args
		}
	}
	return append(args, flag)
}

// FindElement - finds the first element matching the locator
func (s *SeleniumController) FindElement(locator entities.Locator) (interfaces.Node, error) {
	el, err := s.wd.FindElement(string(locator.Strategy), locator.Value)
	if err != nil {
		if isNoSuchElement(err) {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchElement, locator)
		}
		return nil, err
	}
	return el, nil
}

func isNoSuchElement(err error) bool {
	var se *selenium.Error
	if errors.As(err, &se) {
		return se.Err == "no such element" || se.LegacyCode == 7
	}
	return strings.Contains(err.Error(), "no such element")
}

// CurrentURL - returns current page URL
func (s *SeleniumController) CurrentURL() (string, error) {
	return s.wd.CurrentURL()
}

// Navigate - notifies the listener, then navigates browser to url
func (s *SeleniumController) Navigate(url string) error {
	s.logger.Infof("Navigating to: %s", url)
	if s.listener != nil {
		if err := s.listener.BeforeNavigateTo(url, s); err != nil {
			return err
		}
	}
	return s.wd.Get(url)
}

// Screenshot - takes screenshot of current page
func (s *SeleniumController) Screenshot() ([]byte, error) {
	return s.wd.Screenshot()
}

// Quit - closes browser and stops the driver service
func (s *SeleniumController) Quit() error {
	var quitErr error
	if s.wd != nil {
		quitErr = s.wd.Quit()
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil && quitErr == nil {
			quitErr = err
		}
		s.service = nil
	}
	return quitErr
}

var _ interfaces.Session = (*SeleniumController)(nil)
