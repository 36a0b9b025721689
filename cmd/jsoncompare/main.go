package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/kardianos/minwinsvc"

	"github.com/joynutrics/json-assertions/config"
	"github.com/joynutrics/json-assertions/internal/application"
	"github.com/joynutrics/json-assertions/internal/version"
	"github.com/joynutrics/json-assertions/logging"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/fatih/color"
)

const (
	exitEqual    = 0
	exitNotEqual = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr, logging.MakeDefaultLoggers())
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, loggers ldlog.Loggers) int {
	opts, err := application.ReadOptions(args, stderr)
	if err != nil {
		loggers.Errorf("Error: %s", err)
		return exitError
	}
	if opts.NoColor {
		color.NoColor = true
	}

	var c config.Config
	if opts.ConfigFile != "" {
		if err := config.LoadConfigFile(&c, opts.ConfigFile, loggers); err != nil {
			loggers.Errorf("Error loading config file: %s", err)
			return exitError
		}
	}
	if opts.UseEnvironment {
		if err := config.LoadConfigFromEnvironment(&c, loggers); err != nil {
			loggers.Errorf("Configuration error: %s", err)
			return exitError
		}
	}
	if opts.ConfigFile == "" && !opts.UseEnvironment {
		if err := config.ValidateConfig(&c, loggers); err != nil {
			loggers.Errorf("Configuration error: %s", err)
			return exitError
		}
	}

	// Informational logging would be mixed in with the verdict, so the comparison modes only show
	// warnings and errors unless a level is configured.
	defaultLevel := ldlog.Warn
	if opts.Mode == application.Serve {
		defaultLevel = ldlog.Info
	}
	loggers.SetMinLevel(c.Main.LogLevel.GetOrElse(defaultLevel))

	switch opts.Mode {
	case application.Serve:
		loggers.Infof("Starting jsoncompare version %s with %s",
			application.DescribeVersion(version.Version), opts.DescribeConfigSource())
		return serve(ctx, c, loggers)
	case application.CompareManifest:
		return compareManifest(ctx, opts, c, stdout, loggers)
	default:
		return compareFiles(ctx, opts, c, stdout, loggers)
	}
}
