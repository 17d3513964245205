// Command tickctl is an interactive console for pausable timers.
//
// Usage:
//
//	tickctl [flags]
//
// Flags:
//
//	-config string     Timer definitions (YAML), defaults to a pomodoro setup
//	-log-level string  Log level: debug, info, warn, error, overrides the config
//
// Example configuration:
//
//	log:
//	  level: info
//	  format: text
//	timers:
//	  - name: tea
//	    kind: countdown
//	    duration: 3m
//	    interval: 1s
//	    autostart: true
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/romshark/tick"
	"github.com/romshark/tick/cmd/tickctl/console"
	"github.com/romshark/tick/config"
	"github.com/romshark/tick/sched"
)

func main() {
	fConfig := flag.String("config", "", "timer definitions (YAML)")
	fLogLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	if err := run(*fConfig, *fLogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string) error {
	conf := config.Default()
	if configPath != "" {
		var err error
		if conf, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		conf.Log.Level = logLevel
		if err := conf.Validate(); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	c, err := console.New()
	if err != nil {
		return err
	}

	log, err := conf.Logger(c.Stderr())
	if err != nil {
		return err
	}
	reg := tick.NewRegistry(sched.New(0), tick.WithRegistryLogger(log))
	c.Attach(reg, tick.WithLogger(log))

	if err := conf.Apply(reg, c.Listener, tick.WithLogger(log)); err != nil {
		return err
	}
	if err := conf.Autostart(reg); err != nil {
		log.Error("autostart", slog.Any("error", err))
	}

	c.Run(ctx, cancel)
	reg.CancelAll()
	return nil
}
