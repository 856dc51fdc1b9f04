package event

import "github.com/wagoodman/go-partybus"

const (
	ModCheckStarted    partybus.EventType = "mc-mod-compat-check-started"
	ModCheckFinished   partybus.EventType = "mc-mod-compat-check-finished"
	AppUpdateAvailable partybus.EventType = "mc-mod-compat-app-update-available"
	CLIReport          partybus.EventType = "mc-mod-compat-cli-report"
	CLIExit            partybus.EventType = "mc-mod-compat-cli-exit"
)
