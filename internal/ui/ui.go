package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI is the visible interface of the application: it receives bus events from
// the worker and renders them until the final report is shown.
type UI interface {
	Setup(unsubscribe func() error) error
	partybus.Handler
	Teardown(force bool) error
}
