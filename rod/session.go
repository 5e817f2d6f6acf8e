package rod

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/quotes"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Session implements quotes.Session at compile time.
var _ quotes.Session = (*Session)(nil)

// queryJS runs inside the page. It maps every container to the innerText of
// its text element, or null when the container has none.
const queryJS = `(container, text) => Array.from(
	document.querySelectorAll(container),
	(c) => {
		const el = c.querySelector(text);
		return el ? el.innerText : null;
	},
)`

// Session is a browser process with one open page.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	closed   atomic.Bool
}

// Navigate loads url and waits for the DOMContentLoaded lifecycle event of
// the new document in the main frame. Images and other sub-resources may
// still be loading when it returns. Lifecycle events from iframes, or from
// the document being replaced, are ignored.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if s.closed.Load() {
		return quotes.Errorf(quotes.EINVALID, "session closed")
	}

	// The event subscription below lives only as long as this call.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	page := s.page.Context(ctx)

	// Subscribe before navigating so the event cannot be missed. Events are
	// buffered and only handled once wait runs, after loaderID is known.
	var loaderID proto.NetworkLoaderID
	wait := page.EachEvent(func(e *proto.PageLifecycleEvent) bool {
		return e.FrameID == page.FrameID &&
			e.LoaderID == loaderID &&
			e.Name == proto.PageLifecycleEventNameDOMContentLoaded
	})

	res, err := proto.PageNavigate{URL: url}.Call(page)
	if err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if res.ErrorText != "" {
		return fmt.Errorf("navigating to %s: %s", url, res.ErrorText)
	}

	// Same-document navigations have no loader and no new document to parse.
	if res.LoaderID == "" {
		return nil
	}
	loaderID = res.LoaderID
	wait()

	// wait returns early without an error when ctx is done.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("waiting for %s: %w", url, err)
	}
	return nil
}

// Query evaluates sel in the page and decodes the result into plain strings.
func (s *Session) Query(ctx context.Context, sel quotes.Selector) ([]*string, error) {
	if s.closed.Load() {
		return nil, quotes.Errorf(quotes.EINVALID, "session closed")
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	res, err := s.page.Context(ctx).Eval(queryJS, sel.Container, sel.Text)
	if err != nil {
		return nil, fmt.Errorf("evaluating query: %w", err)
	}

	values := []*string{}
	if err := res.Value.Unmarshal(&values); err != nil {
		return nil, fmt.Errorf("decoding query result: %w", err)
	}
	return values, nil
}

// Close shuts down the browser and kills the launcher process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
