package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
	"uitestframework/infrastructure/config"
)

// PlaywrightController drives a browser through playwright.
// Main frame navigation requests fire the navigation listener, including
// those started by clicks and redirects.
type PlaywrightController struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	context  playwright.BrowserContext
	listener interfaces.NavigationListener
	logger   logrus.FieldLogger

	pagesMutex sync.Mutex
	page       playwright.Page
	navErr     error // last listener failure, reported by Navigate
}

// NewPlaywrightController - starts playwright and opens a page in the configured browser
func NewPlaywrightController(cfg *config.Config, listener interfaces.NavigationListener, logger logrus.FieldLogger) (*PlaywrightController, error) {
	if err := checkSupported(entities.BackendPlaywright, cfg.Browser); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType, err := playwrightBrowserType(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args:     cfg.Options,
	}
	if cfg.BinaryPath != "" {
		launchOptions.ExecutablePath = playwright.String(cfg.BinaryPath)
	}

	browser, err := browserType.Launch(launchOptions)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	controller := &PlaywrightController{
		pw:       pw,
		browser:  browser,
		context:  context,
		listener: listener,
		logger:   logger,
		page:     page,
	}
	controller.watch(page)

	// Popups become the current page, like a user following a new tab
	context.OnPage(func(newPage playwright.Page) {
		controller.pagesMutex.Lock()
		controller.page = newPage
		controller.pagesMutex.Unlock()
		controller.watch(newPage)
	})

	return controller, nil
}

func playwrightBrowserType(pw *playwright.Playwright, browser entities.Browser) (playwright.BrowserType, error) {
	switch browser {
	case entities.BrowserChrome, "":
		return pw.Chromium, nil
	case entities.BrowserFirefox:
		return pw.Firefox, nil
	case entities.BrowserSafari:
		return pw.WebKit, nil
	}
	return nil, checkSupported(entities.BackendPlaywright, browser)
}

func (b *PlaywrightController) watch(page playwright.Page) {
	page.OnRequest(func(request playwright.Request) {
		if !request.IsNavigationRequest() || request.Frame() != page.MainFrame() {
			return
		}
		b.notify(request.URL())
	})
}

// notify - runs the listener for a main frame navigation and keeps its error
func (b *PlaywrightController) notify(url string) {
	if b.listener == nil {
		return
	}
	err := b.listener.BeforeNavigateTo(url, b)
	if err == nil {
		return
	}
	b.logger.WithError(err).Warnf("Navigation listener failed for %s", url)

	b.pagesMutex.Lock()
	b.navErr = err
	b.pagesMutex.Unlock()
}

// takeNavError - returns and clears the last listener error
func (b *PlaywrightController) takeNavError() error {
	b.pagesMutex.Lock()
	defer b.pagesMutex.Unlock()
	err := b.navErr
	b.navErr = nil
	return err
}

func (b *PlaywrightController) currentPage() playwright.Page {
	b.pagesMutex.Lock()
	defer b.pagesMutex.Unlock()
	return b.page
}

// playwrightSelector - converts a locator into a playwright selector
func playwrightSelector(locator entities.Locator) (string, error) {
	v := locator.Value
	switch locator.Strategy {
	case entities.ByID:
		return fmt.Sprintf("[id=%q]", v), nil
	case entities.ByName:
		return fmt.Sprintf("[name=%q]", v), nil
	case entities.ByCSSSelector, entities.ByTagName:
		return v, nil
	case entities.ByClassName:
		return "." + v, nil
	case entities.ByXPath:
		return "xpath=" + v, nil
	case entities.ByLinkText:
		return fmt.Sprintf("a:text-is(%q)", strings.TrimSpace(v)), nil
	case entities.ByPartialLinkText:
		return fmt.Sprintf("a:has-text(%q)", v), nil
	}
	return "", fmt.Errorf("unknown locator strategy %q", locator.Strategy)
}

// FindElement - finds the first element matching the locator without waiting
func (b *PlaywrightController) FindElement(locator entities.Locator) (interfaces.Node, error) {
	selector, err := playwrightSelector(locator)
	if err != nil {
		return nil, err
	}

	matches := b.currentPage().Locator(selector)
	count, err := matches.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", locator, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchElement, locator)
	}
	return &playwrightNode{locator: matches.First()}, nil
}

// CurrentURL - returns the current page URL
func (b *PlaywrightController) CurrentURL() (string, error) {
	return b.currentPage().URL(), nil
}

// Navigate - navigates the current page to url
func (b *PlaywrightController) Navigate(url string) error {
	b.logger.Infof("Navigating to: %s", url)
	b.takeNavError()
	_, err := b.currentPage().Goto(url)
	if navErr := b.takeNavError(); navErr != nil {
		return navErr
	}
	return err
}

// Screenshot - takes a screenshot of the current page
func (b *PlaywrightController) Screenshot() ([]byte, error) {
	return b.currentPage().Screenshot()
}

// Quit - closes the browser and stops playwright
func (b *PlaywrightController) Quit() error {
	var closeErr error

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !strings.Contains(err.Error(), "closed") {
			closeErr = fmt.Errorf("failed to close browser: %w", err)
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		b.pw = nil
	}

	return closeErr
}

type playwrightNode struct {
	locator playwright.Locator
}

func (n *playwrightNode) Click() error {
	return n.locator.Click()
}

func (n *playwrightNode) SendKeys(keys string) error {
	return n.locator.PressSequentially(keys)
}

func (n *playwrightNode) IsEnabled() (bool, error) {
	return n.locator.IsEnabled()
}

var _ interfaces.Session = (*PlaywrightController)(nil)
