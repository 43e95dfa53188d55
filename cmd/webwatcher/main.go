package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
	"github.com/aleister1102/webwatcher/internal/datastore"
	"github.com/aleister1102/webwatcher/internal/httpclient"
	"github.com/aleister1102/webwatcher/internal/logger"
	"github.com/aleister1102/webwatcher/internal/monitor"
	"github.com/aleister1102/webwatcher/internal/notifier"
)

func main() {
	os.Exit(run(context.Background(), os.LookupEnv, os.Stderr))
}

// run performs one watch pass and returns the process exit status.
func run(ctx context.Context, lookup config.EnvLookup, stderr io.Writer) int {
	cfg, err := config.LoadFromEnv(lookup)
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] Main: could not load configuration: %v\n", err)
		return int(common.ExitCodeFor(err))
	}

	zLog, err := logger.NewLoggerBuilder().
		WithConsoleOutput(stderr).
		WithConfig(cfg.Log).
		Build()
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] Main: could not initialize logger: %v\n", err)
		return int(common.ExitConfiguration)
	}
	defer zLog.Close()
	log := zLog.GetZerolog().With().Str("component", "Main").Logger()

	store, err := datastore.NewFingerprintStoreFromConfig(cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("Could not prepare state directory")
		return int(common.ExitCodeFor(err))
	}

	httpClient := httpclient.NewHTTPClientBuilder(log).
		WithConfig(httpclient.FromAppConfig(cfg.HTTP)).
		Build()
	fetcher := httpclient.NewFetcher(httpClient, log)

	runner := monitor.NewRunner(
		cfg.URLs,
		monitor.NewURLChecker(fetcher, store, log),
		notifier.NewEmailNotifier(cfg.Email, nil, log),
		log,
	)

	summary, err := runner.Run(ctx)
	code := common.ExitCodeFor(err)
	if err != nil {
		log.Error().Err(err).Str("kind", string(common.KindOf(err))).Int("exit_code", int(code)).Msg("Run failed")
		return int(code)
	}

	log.Debug().
		Int("checked", summary.Checked).
		Strs("changed", summary.Changed).
		Bool("notified", summary.Notified).
		Dur("duration", summary.Duration).
		Msg("Run summary")
	return int(code)
}
