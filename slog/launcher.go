package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quotes"
)

// Ensure logging decorators implement the quotes interfaces.
var (
	_ quotes.Launcher = (*LoggingLauncher)(nil)
	_ quotes.Session  = (*LoggingSession)(nil)
)

// LoggingLauncher wraps a Launcher with debug logging.
type LoggingLauncher struct {
	next   quotes.Launcher
	logger *slog.Logger
}

// NewLoggingLauncher creates a new LoggingLauncher.
func NewLoggingLauncher(next quotes.Launcher, logger *slog.Logger) *LoggingLauncher {
	return &LoggingLauncher{next: next, logger: logger}
}

// Launch logs the launch and wraps the returned session so that its
// operations are logged too.
func (l *LoggingLauncher) Launch(ctx context.Context) (session quotes.Session, err error) {
	defer func(begin time.Time) {
		l.logger.Info("launch",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	session, err = l.next.Launch(ctx)
	if err != nil {
		return nil, err
	}
	return &LoggingSession{next: session, logger: l.logger}, nil
}

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   quotes.Session
	logger *slog.Logger
}

// Navigate logs the URL and the time until the document was parsed.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// Query logs how many containers matched and how many held text.
func (s *LoggingSession) Query(ctx context.Context, sel quotes.Selector) (values []*string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("query",
			"container", sel.Container,
			"text", sel.Text,
			"containers", len(values),
			"quotes", countText(values),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Query(ctx, sel)
}

// Close logs the session release.
func (s *LoggingSession) Close() (err error) {
	defer func() {
		s.logger.Info("close", "err", err)
	}()
	return s.next.Close()
}

func countText(values []*string) int {
	var n int
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}
