package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/quotes"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Launcher implements quotes.Launcher at compile time.
var _ quotes.Launcher = (*Launcher)(nil)

// Launcher starts Chrome browser sessions using rod.
type Launcher struct {
	headless bool
	bin      string
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithHeadless controls whether the browser runs without a visible window.
// Defaults to false.
func WithHeadless(headless bool) LauncherOption {
	return func(l *Launcher) {
		l.headless = headless
	}
}

// WithBin sets the path of the browser binary.
// By default rod looks up a local Chrome or downloads one.
func WithBin(path string) LauncherOption {
	return func(l *Launcher) {
		l.bin = path
	}
}

// NewLauncher creates a new Launcher. Sessions open a visible browser window
// unless WithHeadless(true) is given.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts a browser and opens a single blank page with an unconstrained
// viewport. Close must be called on the returned Session.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func (l *Launcher) Launch(ctx context.Context) (quotes.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(l.headless)
	if l.bin != "" {
		lnchr = lnchr.Bin(l.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	// The viewport follows the window size instead of an emulated device.
	browser := rod.New().ControlURL(u).NoDefaultDevice()
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	// Enabled once here so Navigate only sees events for new documents.
	if err := (proto.PageSetLifecycleEventsEnabled{Enabled: true}).Call(page); err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("enabling lifecycle events: %w", err)
	}

	return &Session{
		browser:  browser,
		launcher: lnchr,
		page:     page,
	}, nil
}
