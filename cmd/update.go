package cmd

import (
	"github.com/wagoodman/go-partybus"

	"github.com/EricDasha/mc-mod-compat-check/internal"
	"github.com/EricDasha/mc-mod-compat-check/internal/bus"
	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/internal/version"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/event"
)

func checkForAppUpdate() {
	if !appConfig.CheckForAppUpdate {
		return
	}

	isAvailable, newVersion, err := version.IsUpdateAvailable()
	if err != nil {
		log.Errorf(err.Error())
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s (currently running: %s)", internal.ApplicationName, newVersion, version.FromBuild().Version)

		bus.Publish(partybus.Event{
			Type:  event.AppUpdateAvailable,
			Value: newVersion,
		})
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
