// Package quotes fetches quotations from a web page by driving a real
// browser and querying the rendered DOM from inside the page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, slog/).
package quotes
