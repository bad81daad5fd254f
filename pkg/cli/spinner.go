package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	refreshFrequency = time.Millisecond * 100
)

// Spinner indicates that a reply is pending
type Spinner struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSpinner creates a Spinner that draws on w with the given suffix.
// Nothing is drawn unless w is a terminal.
func NewSpinner(w io.Writer, suffix string) *Spinner {
	s := spinner.New(spinner.CharSets[35], refreshFrequency, spinner.WithWriter(w))
	_ = s.Color("bgBlue", "bold", "fgGreen")
	s.Suffix = suffix
	return &Spinner{spinner: s, enabled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start begins drawing the indicator
func (s *Spinner) Start() {
	if !s.enabled {
		return
	}
	s.spinner.Start()
}

// Stop erases the indicator
func (s *Spinner) Stop() {
	s.spinner.Stop()
}

// Active reports whether the indicator is drawing
func (s *Spinner) Active() bool {
	return s.spinner.Active()
}
