// Package kasvalidator is the command line entry point of the withdrawal validator.
package kasvalidator

import (
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/dymensionxyz/kaspa-validator/daemon"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/felixge/fgprof"
	"github.com/ordishs/gocore"
	"github.com/urfave/cli/v2"
)

// Run parses args and executes the selected command. Without a command the validator is served.
func Run(progname, version, commit string, args []string) error {
	gocore.SetInfo(progname, version, commit)

	if version != "" {
		settings.Version = version
	}

	if commit != "" {
		settings.Commit = commit
	}

	app := &cli.App{
		Name:    progname,
		Usage:   "validates and signs Kaspa withdrawal batches for the hub escrow",
		Version: fmt.Sprintf("%s (%s)", settings.Version, settings.Commit),
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the validator HTTP service",
				Action: serve,
			},
			{
				Name:      "validate",
				Usage:     "Validate a withdrawal request file against the hub without signing it",
				ArgsUsage: "<file>",
				Action:    validate,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:  "height",
						Usage: "hub height to query withdrawal status at, latest when unset",
					},
				},
			},
			{
				Name:   "info",
				Usage:  "Print the validator public key and escrow address",
				Action: info,
			},
			{
				Name:  "settings",
				Usage: "Print the resolved configuration",
				Action: func(_ *cli.Context) error {
					fmt.Printf("STATS\n%s\nVERSION\n-------\n%s (%s)\n\n", gocore.Config().Stats(), settings.Version, settings.Commit)
					return nil
				},
			},
		},
	}

	return app.Run(args)
}

func loggerFactory(tSettings *settings.Settings) func(service string) ulogger.Logger {
	return ulogger.Factory(ulogger.WithLevel(tSettings.LogLevel), ulogger.WithLoggerType(tSettings.LoggerType))
}

func newLogger(service string, tSettings *settings.Settings) ulogger.Logger {
	return loggerFactory(tSettings)(service)
}

// newProfilerMux serves the pprof endpoints plus fgprof, which samples off-CPU time as well. Signing
// latency is mostly spent waiting on hub queries, which on-CPU profiles do not show.
func newProfilerMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/fgprof", fgprof.Handler())

	return mux
}

func serve(c *cli.Context) error {
	tSettings := settings.NewSettings()
	logger := newLogger(c.App.Name, tSettings)

	logger.Infof("STATS\n%s\nVERSION\n-------\n%s (%s)\n\n", gocore.Config().Stats(), tSettings.Version, tSettings.Commit)

	if profilerAddr, ok := gocore.Config().Get("profilerAddr"); ok && profilerAddr != "" {
		go func() {
			logger.Infof("Starting profiler on http://%s/debug/pprof and /debug/fgprof", profilerAddr)
			logger.Errorf("%v", http.ListenAndServe(profilerAddr, newProfilerMux())) //nolint:gosec // debug endpoint
		}()
	}

	d := daemon.New(
		daemon.WithContext(c.Context),
		daemon.WithLoggerFactory(loggerFactory(tSettings)),
	)

	return d.Start(logger, tSettings)
}
