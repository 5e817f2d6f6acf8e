package quotes

import "context"

// TargetURL is the page quotes are fetched from.
const TargetURL = "https://www.brainyquote.com/authors/fyodor-dostoevsky-quotes"

// Selector describes where quotes live in the rendered document.
type Selector struct {
	// Container matches every quote container on the page.
	Container string

	// Text matches the quote text element nested in a container.
	// Containers holding images instead of text have no match.
	Text string
}

// DefaultSelector matches the quote markup of TargetURL.
var DefaultSelector = Selector{
	Container: ".grid-item",
	Text:      ".b-qt",
}

// Validate returns an error if the selector is incomplete.
func (s Selector) Validate() error {
	if s.Container == "" {
		return Errorf(EINVALID, "container selector required")
	}
	if s.Text == "" {
		return Errorf(EINVALID, "text selector required")
	}
	return nil
}

// Compact drops nil entries and returns the remaining values in their
// original order. The result is never nil.
func Compact(values []*string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		out = append(out, *v)
	}
	return out
}

// Session is a browser session with a single open page.
// A Session is owned by one caller and is not safe for concurrent use.
type Session interface {
	// Navigate loads url and returns once the document has been parsed.
	// Sub-resources such as images may still be loading.
	Navigate(ctx context.Context, url string) error

	// Query evaluates sel inside the page's own execution context.
	// It returns one entry per container in document order: the rendered
	// text of the nested text element, or nil if the container has none.
	Query(ctx context.Context, sel Selector) ([]*string, error)

	// Close releases the browser session.
	// Close is safe to call multiple times.
	Close() error
}

// Launcher acquires browser sessions.
type Launcher interface {
	// Launch starts a browser and opens a page.
	// The caller owns the returned Session and must Close it.
	Launch(ctx context.Context) (Session, error)
}
