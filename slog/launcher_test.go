package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/quotes"
	"github.com/fwojciec/quotes/mock"
	locslog "github.com/fwojciec/quotes/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestLoggingLauncher_Launch(t *testing.T) {
	t.Parallel()

	t.Run("logs launch and wraps session", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Launcher{
			LaunchFn: func(context.Context) (quotes.Session, error) {
				return &mock.Session{}, nil
			},
		}

		session, err := locslog.NewLoggingLauncher(inner, logger).Launch(context.Background())

		require.NoError(t, err)
		assert.IsType(t, &locslog.LoggingSession{}, session)
		output := buf.String()
		assert.Contains(t, output, "launch")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure and returns nil session", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Launcher{
			LaunchFn: func(context.Context) (quotes.Session, error) {
				return nil, errors.New("chrome not found")
			},
		}

		session, err := locslog.NewLoggingLauncher(inner, logger).Launch(context.Background())

		require.Error(t, err)
		assert.Nil(t, session)
		assert.Contains(t, buf.String(), "err=\"chrome not found\"")
	})
}

func TestLoggingSession(t *testing.T) {
	t.Parallel()

	launch := func(t *testing.T, inner *mock.Session) (quotes.Session, *bytes.Buffer) {
		t.Helper()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		launcher := &mock.Launcher{
			LaunchFn: func(context.Context) (quotes.Session, error) {
				return inner, nil
			},
		}
		session, err := locslog.NewLoggingLauncher(launcher, logger).Launch(context.Background())
		require.NoError(t, err)
		buf.Reset()
		return session, &buf
	}

	t.Run("logs navigate with url", func(t *testing.T) {
		t.Parallel()

		session, buf := launch(t, &mock.Session{
			NavigateFn: func(context.Context, string) error { return nil },
		})

		err := session.Navigate(context.Background(), "https://example.com/quotes")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "navigate")
		assert.Contains(t, buf.String(), "url=https://example.com/quotes")
	})

	t.Run("logs query counts", func(t *testing.T) {
		t.Parallel()

		session, buf := launch(t, &mock.Session{
			QueryFn: func(context.Context, quotes.Selector) ([]*string, error) {
				return []*string{ptr("A"), nil, ptr("C")}, nil
			},
		})

		values, err := session.Query(context.Background(), quotes.DefaultSelector)

		require.NoError(t, err)
		assert.Len(t, values, 3)
		output := buf.String()
		assert.Contains(t, output, "query")
		assert.Contains(t, output, "containers=3")
		assert.Contains(t, output, "quotes=2")
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closeCalled := false
		session, buf := launch(t, &mock.Session{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		})

		err := session.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
		assert.Contains(t, buf.String(), "close")
	})
}
