package ui

import (
	"fmt"
	"io"

	"github.com/wagoodman/go-partybus"

	eventParsers "github.com/EricDasha/mc-mod-compat-check/mccompat/event/parsers"
)

func handleCLIReport(e partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	_, report, err := eventParsers.ParseCLIReport(e)
	if err != nil {
		return fmt.Errorf("bad CLIReport event: %w", err)
	}

	if _, err := io.WriteString(reportOutput, report); err != nil {
		return fmt.Errorf("unable to show compatibility report: %w", err)
	}
	return nil
}
