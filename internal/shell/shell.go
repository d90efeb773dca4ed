// Package shell implements the interactive command loop: it tokenizes each
// input line, dispatches it to one tree operation and prints tagged results.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/oakwood-commons/zksim/internal/cel"
	"github.com/oakwood-commons/zksim/internal/config"
	"github.com/oakwood-commons/zksim/internal/formatter"
	"github.com/oakwood-commons/zksim/internal/znode"
	"github.com/oakwood-commons/zksim/pkg/logger"
)

// Options configures a Shell.
type Options struct {
	// Out receives all command output. Defaults to os.Stdout.
	Out io.Writer
	// Config supplies banner, prompt, styles and colors. Zero values fall
	// back to plain tree style, yaml export and no prompt.
	Config config.Config
	// NoColor disables tag styling.
	NoColor bool
	// Quiet suppresses the banner and the prompt.
	Quiet bool
	// Interactive puts the terminal in raw mode while reading so the prompt,
	// line editing, history and Ctrl-C are handled by the line reader.
	Interactive bool
	// Interrupts overrides the signal source used by Run. When nil, Run
	// subscribes to os.Interrupt.
	Interrupts <-chan os.Signal
}

// historyLimit bounds the in-memory command history of one session.
const historyLimit = 500

// Shell owns one tree and executes commands against it. Commands run one at
// a time on the caller's goroutine.
type Shell struct {
	tree         *znode.Tree
	w            io.Writer
	out          *Printer
	commands     map[string]command
	banner       string
	prompt       string
	quiet        bool
	interactive  bool
	treeStyle    formatter.TreeStyle
	exportFormat string
	interrupts   <-chan os.Signal

	eval *cel.Evaluator
}

// New returns a shell with an empty tree.
func New(opts Options) *Shell {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	style := formatter.TreeStyle(opts.Config.Shell.TreeStyle)
	if style == "" {
		style = formatter.TreeStylePlain
	}
	exportFormat := opts.Config.Shell.ExportFormat
	if exportFormat == "" {
		exportFormat = string(formatter.ExportYAML)
	}
	return &Shell{
		tree:         znode.NewTree(),
		w:            out,
		out:          NewPrinter(out, &opts.Config.Theme, opts.NoColor),
		commands:     defaultCommands(),
		banner:       opts.Config.App.Banner,
		prompt:       opts.Config.Shell.Prompt,
		quiet:        opts.Quiet,
		interactive:  opts.Interactive,
		treeStyle:    style,
		exportFormat: exportFormat,
		interrupts:   opts.Interrupts,
	}
}

// Tree returns the tree the shell operates on.
func (s *Shell) Tree() *znode.Tree {
	return s.tree
}

func (s *Shell) evaluator() (*cel.Evaluator, error) {
	if s.eval == nil {
		eval, err := cel.NewEvaluator()
		if err != nil {
			return nil, err
		}
		s.eval = eval
	}
	return s.eval, nil
}

// Execute runs a single command line and reports whether the shell should
// stop. Blank lines do nothing. Any failure, including a panic inside the
// command, is printed as an error line and never escapes.
func (s *Shell) Execute(ctx context.Context, line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := fields[0], fields[1:]
	lgr := logger.FromContext(ctx).WithValues(logger.CommandKey, name, logger.ArgCountKey, len(args))

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			lgr.Error(err, "command panicked")
			s.out.Err(err.Error())
			exit = false
		}
	}()

	err := s.dispatch(ctx, name, args)
	switch {
	case errors.Is(err, errExit):
		lgr.V(1).Info("command dispatched", logger.OutcomeKey, "exit")
		return true
	case err != nil:
		lgr.V(1).Info("command dispatched", logger.OutcomeKey, err.Error())
		s.out.Err(Message(err))
	default:
		lgr.V(1).Info("command dispatched", logger.OutcomeKey, "ok")
	}
	return false
}

func (s *Shell) dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := s.commands[name]
	if !ok {
		return ErrUnknownCommand
	}
	if len(args) < cmd.minArgs {
		return &UsageError{Usage: cmd.usage}
	}
	return cmd.run(ctx, s, args)
}

// ExecuteAll runs lines in order, stopping early at exit.
func (s *Shell) ExecuteAll(ctx context.Context, lines []string) {
	for _, line := range lines {
		if s.Execute(ctx, line) {
			return
		}
	}
}

// Run prints the banner and reads commands from in until exit, end of input
// or cancellation of ctx. An interrupt while waiting for input is reported
// and the prompt is shown again.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lgr := logger.FromContext(ctx)

	rl, err := readline.NewEx(s.readlineConfig(in))
	if err != nil {
		return fmt.Errorf("failed to open line reader: %w", err)
	}
	var closeOnce sync.Once
	closeReader := func() { closeOnce.Do(func() { _ = rl.Close() }) }
	defer closeReader()
	stop := context.AfterFunc(ctx, closeReader)
	defer stop()

	interrupts := s.interrupts
	if interrupts == nil {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		defer signal.Stop(sigs)
		interrupts = sigs
	}
	done := make(chan struct{})
	defer close(done)
	go forwardInterrupts(interrupts, done, func() error {
		_, err := rl.WriteStdin([]byte{readline.CharInterrupt})
		return err
	})

	if !s.quiet && s.banner != "" {
		s.out.Block(s.banner)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := rl.Readline()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			lgr.V(1).Info("interrupt received")
			if !s.interactive {
				s.out.Line("")
			}
			s.out.Info("Interrupted. Type 'exit' to quit.")
		case errors.Is(err, io.EOF):
			// End of input behaves like exit.
			s.out.Info("Bye.")
			return nil
		case err != nil:
			return fmt.Errorf("failed to read command: %w", err)
		default:
			if s.Execute(ctx, line) {
				return nil
			}
		}
	}
}

// forwardInterrupts turns each signal into a Ctrl-C keystroke for the line
// reader, so a SIGINT sent to the process is handled like Ctrl-C typed in raw
// mode.
func forwardInterrupts(sigs <-chan os.Signal, done <-chan struct{}, inject func() error) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-sigs:
			if !ok {
				return
			}
			_ = inject()
		}
	}
}

// readlineConfig builds the line reader settings. Raw mode, the prompt and
// history recall are only used when the session is interactive; otherwise in
// is read as plain lines.
func (s *Shell) readlineConfig(in io.Reader) *readline.Config {
	cfg := &readline.Config{
		Stdin:           readline.NewCancelableStdin(in),
		Stdout:          s.w,
		HistoryLimit:    historyLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		FuncIsTerminal:  func() bool { return s.interactive },
	}
	if !s.quiet {
		cfg.Prompt = s.prompt
	}
	if s.interactive {
		cfg.AutoComplete = commandCompleter()
	} else {
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}
	return cfg
}

// commandCompleter completes command names at the start of a line.
func commandCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commandOrder))
	for _, name := range commandOrder {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
