// Package scrape runs the quote extraction against a browser session.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/quotes"
)

// Scraper loads one page and extracts its quotes.
type Scraper struct {
	Launcher quotes.Launcher
	URL      string
	Selector quotes.Selector
}

// NewScraper returns a Scraper for quotes.TargetURL using quotes.DefaultSelector.
func NewScraper(launcher quotes.Launcher) *Scraper {
	return &Scraper{
		Launcher: launcher,
		URL:      quotes.TargetURL,
		Selector: quotes.DefaultSelector,
	}
}

// Scrape acquires a session, navigates to the page, and returns the text of
// every container that holds a quote, in document order. Containers without
// a text element are skipped. The result is empty, not nil, when the page
// holds no quotes.
func (s *Scraper) Scrape(ctx context.Context) ([]string, error) {
	if s.URL == "" {
		return nil, quotes.Errorf(quotes.EINVALID, "URL required")
	}
	if err := s.Selector.Validate(); err != nil {
		return nil, err
	}

	var result []string
	err := WithSession(ctx, s.Launcher, func(session quotes.Session) error {
		if err := session.Navigate(ctx, s.URL); err != nil {
			return fmt.Errorf("navigating: %w", err)
		}

		values, err := session.Query(ctx, s.Selector)
		if err != nil {
			return fmt.Errorf("querying quotes: %w", err)
		}

		result = quotes.Compact(values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// WithSession launches a session, passes it to fn, and closes it on every
// exit path, including a panic in fn. An error from fn takes precedence over
// an error from Close.
func WithSession(ctx context.Context, launcher quotes.Launcher, fn func(quotes.Session) error) (err error) {
	session, err := launcher.Launch(ctx)
	if err != nil {
		return fmt.Errorf("acquiring session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing session: %w", cerr)
		}
	}()

	return fn(session)
}
