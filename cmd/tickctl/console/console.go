// Package console provides the interactive command loop of tickctl.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/romshark/tick"
	"github.com/romshark/tick/config"
)

// Console drives the timers of a registry from the command line.
type Console struct {
	reg  *tick.Registry
	rl   *readline.Instance
	out  io.Writer
	opts []tick.Option
}

// New creates a console. Attach must be called before Run.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tick> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("list"),
			readline.PcItem("start"),
			readline.PcItem("pause"),
			readline.PcItem("resume"),
			readline.PcItem("cancel"),
			readline.PcItem("restart"),
			readline.PcItem("add",
				readline.PcItem(config.KindInterval),
				readline.PcItem(config.KindCountdown),
				readline.PcItem(config.KindTicker),
			),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl, out: rl.Stdout()}, nil
}

// Attach sets the registry the console operates on.
// opts are applied to every timer added through the console.
func (c *Console) Attach(reg *tick.Registry, opts ...tick.Option) {
	c.reg = reg
	c.opts = opts
}

// Stdout returns a writer that coordinates with the prompt.
func (c *Console) Stdout() io.Writer { return c.out }

// Stderr returns a writer that coordinates with the prompt.
func (c *Console) Stderr() io.Writer {
	if c.rl == nil {
		return c.out
	}
	return c.rl.Stderr()
}

// Listener returns a listener printing the events of the named timer.
func (c *Console) Listener(name string) tick.Listener {
	emit := func(event string) func(time.Duration) {
		return func(v time.Duration) {
			fmt.Fprintf(c.out, "[%s] %s %s\n", name, event, formatValue(v))
		}
	}
	return tick.Listener{
		OnStart:  emit("started"),
		OnTick:   emit("tick"),
		OnPause:  emit("paused"),
		OnResume: emit("resumed"),
		OnCancel: emit("canceled"),
		OnFinish: emit("finished"),
	}
}

// Run reads commands until the user quits or ctx is done.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		<-ctx.Done()
		c.rl.Close()
	}()

	c.printHelp()
	for {
		if ctx.Err() != nil {
			return
		}
		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}
		if quit := c.exec(line); quit {
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}
	}
}

// exec runs a single command line and reports whether to quit.
func (c *Console) exec(line string) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()
	case "list", "ls":
		c.cmdList()
	case "start":
		c.cmdStart(args)
	case "pause":
		c.cmdPause(args)
	case "resume":
		c.cmdResume(args)
	case "cancel":
		c.cmdCancel(args)
	case "restart":
		c.cmdRestart(args)
	case "add":
		c.cmdAdd(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Commands:
  list                          - List timers
  start <name>|all              - Start a timer
  pause <name>                  - Pause a running timer
  resume <name>                 - Resume a paused timer
  cancel <name>|all             - Cancel and remove a timer
  restart <name>                - Cancel and start a timer again
  add interval <name> <every>
  add countdown <name> <duration> [every]
  add ticker <name> <delay>     - Add a timer
  help                          - Show this help
  quit                          - Exit

  Durations use Go syntax, e.g. 1m30s or 250ms.`)
}

func (c *Console) cmdList() {
	keys := c.reg.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(c.out, "No timers")
		return
	}
	for _, k := range keys {
		e, ok := c.reg.Get(k)
		if !ok {
			continue
		}
		fmt.Fprintf(c.out, "%-16s %-10s %-8s %12s %6d ticks\n",
			k, e.Mode(), e.State(), formatValue(e.Value()), e.Ticks())
	}
}

func (c *Console) cmdStart(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: start <name>|all")
		return
	}
	if args[0] == "all" {
		if err := c.reg.StartAll(); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		return
	}
	ok, err := c.reg.Start(args[0])
	c.report(args[0], ok, err)
}

func (c *Console) cmdPause(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: pause <name>")
		return
	}
	c.report(args[0], c.reg.Pause(args[0]), nil)
}

func (c *Console) cmdResume(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: resume <name>")
		return
	}
	ok, err := c.reg.Resume(args[0])
	c.report(args[0], ok, err)
}

func (c *Console) cmdCancel(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: cancel <name>|all")
		return
	}
	if args[0] == "all" {
		c.reg.CancelAll()
		return
	}
	c.report(args[0], c.reg.Cancel(args[0]), nil)
}

func (c *Console) cmdRestart(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: restart <name>")
		return
	}
	e, ok := c.reg.Get(args[0])
	if !ok {
		c.report(args[0], false, nil)
		return
	}
	c.report(args[0], true, e.Restart())
}

func (c *Console) cmdAdd(args []string) {
	if len(args) < 3 || len(args) > 4 {
		fmt.Fprintln(c.out, "Usage: add <kind> <name> <duration> [interval]")
		return
	}
	t := config.Timer{Kind: args[0], Name: args[1]}
	d, err := time.ParseDuration(args[2])
	if err != nil {
		fmt.Fprintf(c.out, "Invalid duration: %v\n", err)
		return
	}
	switch t.Kind {
	case config.KindCountdown:
		t.Duration, t.Interval = d, time.Second
		if len(args) == 4 {
			if t.Interval, err = time.ParseDuration(args[3]); err != nil {
				fmt.Fprintf(c.out, "Invalid interval: %v\n", err)
				return
			}
		}
	default:
		t.Interval = d
	}
	if err := t.Validate(); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if _, err := t.Register(c.reg, c.Listener(t.Name), c.opts...); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Added %s %q\n", t.Kind, t.Name)
}

func (c *Console) report(name string, ok bool, err error) {
	switch {
	case !ok:
		fmt.Fprintf(c.out, "No timer %q\n", name)
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

func formatValue(v time.Duration) string {
	return v.Round(time.Millisecond).String()
}
