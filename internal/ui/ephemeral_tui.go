//go:build linux || darwin
// +build linux darwin

package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/jotframe/pkg/frame"

	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/internal/logger"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/event"
)

// TODO: specify per-platform implementations with build tags

type ephemeralTUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
	screenOutput *os.File
	frame        *frame.Frame
	logBuffer    *bytes.Buffer
	wg           *sync.WaitGroup
	frameClosed  bool
}

// NewEphemeralTUI renders live progress to stderr while the check runs, tears the
// dynamic content down when the results are ready, and writes the final report to
// the given writer.
func NewEphemeralTUI(reportWriter io.Writer) UI {
	return &ephemeralTUI{
		reportOutput: reportWriter,
		screenOutput: os.Stderr,
		wg:           &sync.WaitGroup{},
	}
}

func (e *ephemeralTUI) Setup(unsubscribe func() error) error {
	e.unsubscribe = unsubscribe

	// prep the logger to not clobber the screen from now on (logrus only)
	e.logBuffer = bytes.NewBufferString("")
	logWrapper, ok := log.Log.(*logger.LogrusLogger)
	if ok {
		logWrapper.Logger.SetOutput(e.logBuffer)
	}

	// hide cursor
	_, _ = fmt.Fprint(e.screenOutput, "\x1b[?25l")

	config := frame.Config{
		PositionPolicy: frame.PolicyFloatForward,
		// only report output to stderr, reserve report output for stdout
		Output: e.screenOutput,
	}

	fr, err := frame.New(config)
	if err != nil {
		return fmt.Errorf("failed to create screen object: %w", err)
	}
	e.frame = fr

	return nil
}

func (e *ephemeralTUI) Handle(ev partybus.Event) error {
	switch ev.Type {
	case event.AppUpdateAvailable:
		if err := handleAppUpdateAvailable(ev, e.frame); err != nil {
			log.Errorf("unable to show %s event: %+v", ev.Type, err)
		}

	case event.ModCheckStarted:
		if err := handleModCheckStarted(ev, e.frame, e.wg); err != nil {
			log.Errorf("unable to show %s event: %+v", ev.Type, err)
		}

	case event.CLIReport:
		// there may be background processes still displaying progress, wait for them
		// to finish before discontinuing dynamic content and showing the final report
		e.wg.Wait()
		e.closeFrame()

		if err := handleCLIReport(ev, e.reportOutput); err != nil {
			log.Errorf("unable to show %s event: %+v", ev.Type, err)
		}

	case event.CLIExit:
		// this is the last expected event, stop listening to events
		return e.unsubscribe()
	}
	return nil
}

func (e *ephemeralTUI) Teardown(force bool) error {
	if force {
		// take the screen down immediately, in-flight render goroutines are abandoned
		e.closeFrame()
	} else {
		e.wg.Wait()
		e.closeFrame()
	}

	logWrapper, ok := log.Log.(*logger.LogrusLogger)
	if ok {
		logWrapper.Logger.SetOutput(e.screenOutput)
	}

	// show cursor
	_, _ = fmt.Fprint(e.screenOutput, "\x1b[?25h")

	return nil
}

func (e *ephemeralTUI) closeFrame() {
	if e.frameClosed {
		return
	}
	e.frameClosed = true

	if e.frame != nil {
		e.frame.Close()
		frame.Close()
	}

	// flush any buffered log lines to the screen before the report
	if e.logBuffer != nil {
		_, _ = fmt.Fprint(e.screenOutput, e.logBuffer.String())
	}
}
