package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// WithSpinner runs fn behind a progress spinner unless quiet mode is
// enabled. The spinner writes to stderr so formatted output on stdout stays
// clean for piping.
func WithSpinner(message string, quiet bool, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	return fn()
}
