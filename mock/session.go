package mock

import (
	"context"

	"github.com/fwojciec/quotes"
)

var _ quotes.Session = (*Session)(nil)

// Session is a mock implementation of quotes.Session.
type Session struct {
	NavigateFn func(ctx context.Context, url string) error
	QueryFn    func(ctx context.Context, sel quotes.Selector) ([]*string, error)
	CloseFn    func() error
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *Session) Query(ctx context.Context, sel quotes.Selector) ([]*string, error) {
	return s.QueryFn(ctx, sel)
}

func (s *Session) Close() error {
	return s.CloseFn()
}
