// Package app wires the pipeline together: arguments, logging, program
// loading, compilation, and execution.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zurustar/blip-machine/pkg/cli"
	"github.com/zurustar/blip-machine/pkg/compiler"
	"github.com/zurustar/blip-machine/pkg/engine"
	"github.com/zurustar/blip-machine/pkg/logger"
	"github.com/zurustar/blip-machine/pkg/pcm"
	"github.com/zurustar/blip-machine/pkg/program"
	"github.com/zurustar/blip-machine/pkg/script"
)

// Application holds the tool's main logic.
type Application struct {
	config *cli.Config
	log    *slog.Logger

	// Standard streams, replaceable in tests.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates an Application bound to the process streams.
func New() *Application {
	return &Application{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes the tool.
func (app *Application) Run(args []string) error {
	// 1. Parse command line arguments
	config, err := cli.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = config

	if app.config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	// 2. Initialize the logger
	if err := logger.InitLogger(app.config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.GetLogger()

	// 3. Load the program text
	src, err := script.Load(app.config.ProgramPath, app.stdin)
	if err != nil {
		return err
	}
	app.log.Info("Program loaded", "name", src.Name, "size", src.Size)

	// 4. Compile and build the program table. The load is all-or-nothing:
	// on any error nothing is emitted, and every error is reported at once.
	prog, errs := app.compile(src.Content)
	if len(errs) > 0 {
		app.reportErrors(errs)
		return fmt.Errorf("aborting due to %d previous errors", len(errs))
	}
	app.log.Info("Program compiled", "instructions", prog.Len())

	// 5. Execute, streaming samples to the selected sink
	if err := app.runEngine(prog); err != nil {
		return err
	}

	app.log.Info("Playback finished")
	return nil
}

// compile turns program text into a validated program table, collecting
// parse errors and label errors together.
func (app *Application) compile(source string) (*program.Program, []error) {
	instructions, errs := compiler.Compile(source)
	prog, buildErrs := program.Build(instructions)
	errs = append(errs, buildErrs...)
	if len(errs) > 0 {
		return nil, errs
	}
	return prog, nil
}

// reportErrors prints every compile error on stderr, one per line.
func (app *Application) reportErrors(errs []error) {
	for _, err := range errs {
		fmt.Fprintf(app.stderr, "blip-machine: error: %v\n", err)
	}
}

// runEngine streams the program's audio to the configured destination.
func (app *Application) runEngine(prog *program.Program) error {
	// A consumer that exits early (e.g. `| head`) must surface as an
	// EPIPE write error, not a fatal SIGPIPE, so the engine can shut
	// down cleanly.
	signal.Ignore(syscall.SIGPIPE)

	ctx := context.Background()
	if app.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.config.Timeout)
		defer cancel()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	format, err := pcm.ParseFormat(app.config.Format)
	if err != nil {
		return err
	}

	cfg := engine.Config{
		SampleRate: app.config.SampleRate,
		Seed:       app.config.Seed,
	}

	if app.config.Play {
		return app.playAudio(ctx, prog, format, cfg)
	}

	out := app.stdout
	if app.config.Output != "" {
		f, err := os.Create(app.config.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	sink := pcm.NewWriter(out, format)
	if err := engine.New(prog, sink, cfg).Run(ctx); err != nil {
		return err
	}
	return flush(sink)
}

// playAudio runs the engine and the sound device player as a pipeline.
func (app *Application) playAudio(ctx context.Context, prog *program.Program, format pcm.Format, cfg engine.Config) error {
	pr, pw := io.Pipe()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pw.Close()
		sink := pcm.NewWriter(pw, format)
		if err := engine.New(prog, sink, cfg).Run(gctx); err != nil {
			return err
		}
		return flush(sink)
	})

	g.Go(func() error {
		defer pr.Close()
		return pcm.Play(gctx, pr, cfg.SampleRate, format)
	})

	return g.Wait()
}

// flush drains the sink's buffer; a consumer that vanished between the last
// sample and the flush is still an orderly stop.
func flush(sink *pcm.Writer) error {
	if err := sink.Flush(); err != nil && !errors.Is(err, engine.ErrStreamClosed) {
		return err
	}
	return nil
}
