package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
	"uitestframework/infrastructure/config"
)

// ChromedpController drives Chrome over the DevTools protocol
type ChromedpController struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	listener    interfaces.NavigationListener
	logger      logrus.FieldLogger
}

// NewChromedpController - launches Chrome with the configured flags
func NewChromedpController(cfg *config.Config, listener interfaces.NavigationListener, logger logrus.FieldLogger) (*ChromedpController, error) {
	if err := checkSupported(entities.BackendChromedp, cfg.Browser); err != nil {
		return nil, err
	}

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	if cfg.BinaryPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.BinaryPath))
	}
	for _, f := range chromedpFlags(cfg.Options) {
		opts = append(opts, chromedp.Flag(f.name, f.value))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Debugf))

	// the first Run starts the browser
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to launch chrome: %w", err)
	}

	c := &ChromedpController{
		ctx:         ctx,
		cancel:      cancel,
		allocCancel: allocCancel,
		listener:    listener,
		logger:      logger,
	}
	c.listen()
	return c, nil
}

// listen forwards navigations requested by the page itself (links, form
// posts, scripts) to the listener. Navigate notifies it directly.
func (c *ChromedpController) listen() {
	if c.listener == nil {
		return
	}
	var mainFrame cdp.FrameID
	if t := chromedp.FromContext(c.ctx).Target; t != nil {
		mainFrame = cdp.FrameID(t.TargetID)
	}

	chromedp.ListenTarget(c.ctx, func(ev interface{}) {
		e, ok := ev.(*page.EventFrameRequestedNavigation)
		if !ok || (mainFrame != "" && e.FrameID != mainFrame) {
			return
		}
		if err := c.listener.BeforeNavigateTo(e.URL, c); err != nil {
			c.logger.WithError(err).Warnf("Navigation listener failed for %s", e.URL)
		}
	})
}

type chromeFlag struct {
	name  string
	value interface{}
}

// chromedpFlags - converts command line options into allocator flags, keeping order
func chromedpFlags(options []string) []chromeFlag {
	flags := make([]chromeFlag, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimLeft(strings.TrimSpace(opt), "-")
		if opt == "" {
			continue
		}
		name, value, ok := strings.Cut(opt, "=")
		if !ok {
			flags = append(flags, chromeFlag{name: name, value: true})
			continue
		}
		flags = append(flags, chromeFlag{name: name, value: value})
	}
	return flags
}

// chromedpQuery - converts a locator into a query and its selector option
func chromedpQuery(locator entities.Locator) (string, chromedp.QueryOption, error) {
	v := locator.Value
	switch locator.Strategy {
	case entities.ByID:
		return fmt.Sprintf("[id=%q]", v), chromedp.ByQueryAll, nil
	case entities.ByName:
		return fmt.Sprintf("[name=%q]", v), chromedp.ByQueryAll, nil
	case entities.ByCSSSelector, entities.ByTagName:
		return v, chromedp.ByQueryAll, nil
	case entities.ByClassName:
		return "." + v, chromedp.ByQueryAll, nil
	case entities.ByXPath:
		return v, chromedp.BySearch, nil
	case entities.ByLinkText:
		return fmt.Sprintf(`//a[normalize-space(.)=%s]`, xpathLiteral(strings.TrimSpace(v))), chromedp.BySearch, nil
	case entities.ByPartialLinkText:
		return fmt.Sprintf(`//a[contains(., %s)]`, xpathLiteral(v)), chromedp.BySearch, nil
	}
	return "", nil, fmt.Errorf("unknown locator strategy %q", locator.Strategy)
}

// xpathLiteral quotes s as an XPath 1.0 string. Literals have no escapes,
// so a value holding both quote kinds is built with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	for i, p := range parts {
		parts[i] = `"` + p + `"`
	}
	return "concat(" + strings.Join(parts, `, '"', `) + ")"
}

// FindElement - finds the first element matching the locator without waiting
func (c *ChromedpController) FindElement(locator entities.Locator) (interfaces.Node, error) {
	query, by, err := chromedpQuery(locator)
	if err != nil {
		return nil, err
	}

	var nodes []*cdp.Node
	if err := chromedp.Run(c.ctx, chromedp.Nodes(query, &nodes, by, chromedp.AtLeast(0))); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", locator, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchElement, locator)
	}
	return &chromedpNode{ctx: c.ctx, node: nodes[0]}, nil
}

// CurrentURL - returns the current page URL
func (c *ChromedpController) CurrentURL() (string, error) {
	var url string
	if err := chromedp.Run(c.ctx, chromedp.Location(&url)); err != nil {
		return "", err
	}
	return url, nil
}

// Navigate - notifies the listener, then navigates to url
func (c *ChromedpController) Navigate(url string) error {
	c.logger.Infof("Navigating to: %s", url)
	if c.listener != nil {
		if err := c.listener.BeforeNavigateTo(url, c); err != nil {
			return err
		}
	}
	return chromedp.Run(c.ctx, chromedp.Navigate(url))
}

// Screenshot - captures the viewport as PNG
func (c *ChromedpController) Screenshot() ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(c.ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

// Quit - closes the browser
func (c *ChromedpController) Quit() error {
	err := chromedp.Cancel(c.ctx)
	c.cancel()
	c.allocCancel()
	return err
}

type chromedpNode struct {
	ctx  context.Context
	node *cdp.Node
}

func (n *chromedpNode) Click() error {
	return chromedp.Run(n.ctx, chromedp.MouseClickNode(n.node))
}

func (n *chromedpNode) SendKeys(keys string) error {
	return chromedp.Run(n.ctx, chromedp.SendKeys([]cdp.NodeID{n.node.NodeID}, keys, chromedp.ByNodeID))
}

// IsEnabled reads the disabled attribute captured when the node was found
func (n *chromedpNode) IsEnabled() (bool, error) {
	_, disabled := n.node.Attribute("disabled")
	return !disabled, nil
}

var _ interfaces.Session = (*ChromedpController)(nil)
