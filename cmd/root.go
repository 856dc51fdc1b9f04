package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/EricDasha/mc-mod-compat-check/internal"
	"github.com/EricDasha/mc-mod-compat-check/internal/bus"
	"github.com/EricDasha/mc-mod-compat-check/internal/config"
	"github.com/EricDasha/mc-mod-compat-check/internal/format"
	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/internal/ui"
	"github.com/EricDasha/mc-mod-compat-check/internal/version"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/checker"
	curseforgeChecker "github.com/EricDasha/mc-mod-compat-check/mccompat/checker/curseforge"
	localChecker "github.com/EricDasha/mc-mod-compat-check/mccompat/checker/local"
	modrinthChecker "github.com/EricDasha/mc-mod-compat-check/mccompat/checker/modrinth"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/curseforge"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/modrinth"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/models"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/store"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

var persistentOpts = config.CliOnlyOptions{}

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s GAME-VERSION PATH [PATH...]", internal.ApplicationName),
	Short: "A Minecraft mod compatibility checker",
	Long: format.Tprintf(`Check mod jars against a target game version and loader:
    {{.appName}} 1.20.1 mods/                      check every jar in a directory
    {{.appName}} 1.20.1 --loader fabric mods/      also require the fabric loader
    {{.appName}} 1.20.1 foo.jar bar.jar            check individual files
    {{.appName}} 1.20.1 --relaxed mods/            accept any 1.20.x declaration
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		return eventLoop(
			startCheckWorker(args[0], args[1:]),
			setupSignals(),
			eventSubscription,
			func() {},
			ui.Select(isVerbose(), appConfig.Quiet, cmd.OutOrStdout())...,
		)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	setRootFlags(rootCmd.Flags())
}

func setRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output", "o", "",
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)

	flags.BoolP(
		"quiet", "q", false,
		"suppress all logging output",
	)

	flags.StringP(
		"loader", "l", "",
		"mod loader the target environment runs (e.g. fabric, forge, neoforge, quilt)",
	)

	flags.Bool(
		"relaxed", false,
		"treat any version in the target's major.minor series as compatible",
	)

	flags.String(
		"api-key", "",
		"CurseForge API key (enables CurseForge lookups)",
	)

	flags.Int(
		"workers", 4,
		"number of concurrent fingerprinting workers",
	)
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	if err := viper.BindPFlag("output", flags.Lookup("output")); err != nil {
		return err
	}

	if err := viper.BindPFlag("quiet", flags.Lookup("quiet")); err != nil {
		return err
	}

	if err := viper.BindPFlag("check.loader", flags.Lookup("loader")); err != nil {
		return err
	}

	if err := viper.BindPFlag("check.relaxed", flags.Lookup("relaxed")); err != nil {
		return err
	}

	if err := viper.BindPFlag("curseforge.api-key", flags.Lookup("api-key")); err != nil {
		return err
	}

	return viper.BindPFlag("check.workers", flags.Lookup("workers"))
}

func isVerbose() (result bool) {
	return appConfig.CliOptions.Verbosity > 0
}

func startCheckWorker(gameVersion string, userPaths []string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)
		defer bus.Exit()

		checkForAppUpdate()

		fs := afero.NewOsFs()

		paths, err := collectModPaths(fs, userPaths)
		if err != nil {
			errs <- err
			return
		}
		if len(paths) == 0 {
			errs <- fmt.Errorf("no mod files found at %v", userPaths)
			return
		}

		t := target.New(gameVersion, appConfig.Check.Loader, appConfig.Check.Relaxed)

		var resultStore *store.Store
		if appConfig.Cache.Enabled {
			resultStore = store.NewStore(fs, filepath.Join(appConfig.Cache.Dir, "results.json"))
		}

		pipeline := checker.NewPipeline(fs, buildCheckers(fs), resultStore, appConfig.Check.Workers)
		results := pipeline.Check(context.Background(), t, paths)

		presenterType := presenter.ParseOption(appConfig.Output)
		if presenterType == presenter.UnknownPresenter {
			errs <- fmt.Errorf("cannot find an output presenter for option: %s", appConfig.Output)
			return
		}

		buf := &bytes.Buffer{}
		if err := presenter.GetPresenter(presenterType, models.NewDocument(t, results)).Present(buf); err != nil {
			errs <- err
			return
		}

		bus.Report(buf.String())
	}()
	return errs
}

func buildCheckers(fs afero.Fs) []checker.Checker {
	userAgent := fmt.Sprintf("%s/%s", internal.ApplicationName, version.FromBuild().Version)

	checkers := []checker.Checker{
		localChecker.NewChecker(fs),
	}

	if appConfig.Modrinth.Enabled {
		client := modrinth.NewClient(userAgent, appConfig.Modrinth.BaseURL, time.Duration(appConfig.Modrinth.TimeoutSeconds)*time.Second)
		checkers = append(checkers, modrinthChecker.NewChecker(client))
	} else {
		log.Debug("modrinth lookups disabled")
	}

	cfClient := curseforge.NewClient(userAgent, appConfig.CurseForge.BaseURL, appConfig.CurseForge.APIKey, time.Duration(appConfig.CurseForge.TimeoutSeconds)*time.Second)
	if cfClient.Enabled() {
		checkers = append(checkers, curseforgeChecker.NewChecker(cfClient))
	} else {
		log.Debug("curseforge lookups disabled (no API key configured)")
	}

	return checkers
}

// collectModPaths expands the user-provided paths: directories are searched
// (recursively) for jar files, plain files are taken as-is.
func collectModPaths(fs afero.Fs, userPaths []string) ([]string, error) {
	var paths []string
	for _, userPath := range userPaths {
		info, err := fs.Stat(userPath)
		if err != nil {
			return nil, fmt.Errorf("unable to access path %q: %w", userPath, err)
		}

		if !info.IsDir() {
			paths = append(paths, userPath)
			continue
		}

		err = afero.Walk(fs, userPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(path), ".jar") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to search directory %q: %w", userPath, err)
		}
	}
	return paths, nil
}
