package mock

import (
	"context"

	"github.com/fwojciec/quotes"
)

var _ quotes.Launcher = (*Launcher)(nil)

// Launcher is a mock implementation of quotes.Launcher.
type Launcher struct {
	LaunchFn func(ctx context.Context) (quotes.Session, error)
}

func (l *Launcher) Launch(ctx context.Context) (quotes.Session, error) {
	return l.LaunchFn(ctx)
}
