//go:build linux || darwin
// +build linux darwin

package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"
	"github.com/wagoodman/jotframe/pkg/frame"

	"github.com/EricDasha/mc-mod-compat-check/internal"
	"github.com/EricDasha/mc-mod-compat-check/internal/ui/components"
	eventParsers "github.com/EricDasha/mc-mod-compat-check/mccompat/event/parsers"
)

const statusSet = components.SpinnerDotSet
const completedStatus = "✔"
const statusTitleColumn = 31
const titleFormat = color.Bold

var auxInfoFormat = color.HEX("#777777")
var statusTitleTemplate = fmt.Sprintf(" %%s %%-%ds ", statusTitleColumn)

func handleAppUpdateAvailable(e partybus.Event, fr *frame.Frame) error {
	newVersion, err := eventParsers.ParseAppUpdateAvailable(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}

	line, err := fr.Prepend()
	if err != nil {
		return err
	}

	message := color.Magenta.Sprintf("New version of %s is available: %s", internal.ApplicationName, newVersion)
	_, _ = io.WriteString(line, message)

	return nil
}

func handleModCheckStarted(e partybus.Event, fr *frame.Frame, wg *sync.WaitGroup) error {
	monitor, err := eventParsers.ParseModCheckStarted(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}

	line, err := fr.Append()
	if err != nil {
		return err
	}

	wg.Add(1)

	monitors := []progress.Monitorable{
		monitor.ModsProcessed,
		monitor.EvidenceDiscovered,
	}
	spinner := components.NewSpinner(statusSet)
	stream := progress.StreamMonitors(context.Background(), monitors, 50*time.Millisecond)
	title := titleFormat.Sprint("Checking mods...")

	formatFn := func(mods, evidence int64) {
		spin := color.Magenta.Sprint(spinner.Next())
		auxInfo := auxInfoFormat.Sprintf("[mods %d, evidence %d]", mods, evidence)
		_, _ = io.WriteString(line, fmt.Sprintf(statusTitleTemplate+"%s", spin, title, auxInfo))
	}

	go func() {
		defer wg.Done()

		formatFn(0, 0)
		for p := range stream {
			formatFn(p[0], p[1])
		}

		spin := color.Green.Sprint(completedStatus)
		title = titleFormat.Sprint("Checked mods")
		auxInfo := auxInfoFormat.Sprintf("[%d mods, %d evidence]", monitor.ModsProcessed.Current(), monitor.EvidenceDiscovered.Current())
		_, _ = io.WriteString(line, fmt.Sprintf(statusTitleTemplate+"%s", spin, title, auxInfo))
	}()

	return nil
}
