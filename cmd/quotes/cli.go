package main

// CLI defines the command-line interface structure for Kong.
// The target page and selectors are fixed; the only option controls logging.
type CLI struct {
	Verbose bool `short:"v" help:"Log browser activity to stderr"`
}
