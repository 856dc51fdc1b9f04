package ui

import (
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/event"
)

type loggerUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
}

// NewLoggerUI writes all events to the common application logger and writes the final report to the given writer.
func NewLoggerUI(reportWriter io.Writer) UI {
	return &loggerUI{
		reportOutput: reportWriter,
	}
}

func (l *loggerUI) Setup(unsubscribe func() error) error {
	l.unsubscribe = unsubscribe
	return nil
}

func (l loggerUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.CLIReport:
		if err := handleCLIReport(e, l.reportOutput); err != nil {
			log.Warnf("unable to show check results: %+v", err)
		}
		return nil
	case event.CLIExit:
		// this is the last expected event, stop listening to events
		return l.unsubscribe()
	// ignore all events except for the final events
	default:
		return nil
	}
}

func (l loggerUI) Teardown(_ bool) error {
	return nil
}
