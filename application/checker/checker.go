package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"uitestframework/application/pom"
	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
)

// Checker visits every registered page and looks up its declared elements
type Checker struct {
	session interfaces.Session
	model   *pom.Model
	logger  logrus.FieldLogger
}

// NewChecker - creates a checker; session must report navigations to model
func NewChecker(session interfaces.Session, model *pom.Model, logger logrus.FieldLogger) *Checker {
	return &Checker{
		session: session,
		model:   model,
		logger:  logger,
	}
}

// CheckAll - checks every path of the model under baseURL, in path order
func (c *Checker) CheckAll(ctx context.Context, baseURL string) ([]entities.PageCheck, error) {
	paths := c.model.Paths()
	results := make([]entities.PageCheck, 0, len(paths))

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return results, fmt.Errorf("check canceled: %w", ctx.Err())
		default:
		}
		results = append(results, c.Check(baseURL, path))
	}
	return results, nil
}

// Check - navigates to path and looks up every element of the page it resolves to
func (c *Checker) Check(baseURL, path string) entities.PageCheck {
	url := strings.TrimRight(baseURL, "/") + path
	result := entities.PageCheck{Path: path, URL: url}

	if err := c.session.Navigate(url); err != nil {
		result.Error = err.Error()
		c.logger.WithError(err).Warnf("Failed to open %s", url)
		return result
	}

	result.Resolved = c.model.ActivePath() == path
	if !result.Resolved {
		result.Error = fmt.Sprintf("active page is %q", c.model.ActivePath())
		return result
	}

	page := c.model.ActivePage()
	for _, el := range page.Elements() {
		check := entities.ElementCheck{Name: el.Name(), Locator: el.Locator()}
		if _, err := el.Find(); err != nil {
			check.Error = err.Error()
		} else {
			check.Found = true
		}
		result.Elements = append(result.Elements, check)
	}

	c.logger.WithFields(logrus.Fields{
		"path": path,
		"ok":   result.OK(),
	}).Debug("Page checked")
	return result
}
