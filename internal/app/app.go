// Package app implements the application layer for makerun.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/makerun/internal/core/domain"
	"go.trai.ch/makerun/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	store        ports.RunStore
	hasher       ports.Hasher
	tracer       ports.Tracer
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance wired to the process standard streams.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	store ports.RunStore,
	hasher ports.Hasher,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		store:        store,
		hasher:       hasher,
		tracer:       tracer,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput replaces the streams handed to make and used for printing.
func (a *App) WithOutput(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Options are the settings overrides shared by every operation.
type Options struct {
	// WorkDir is where config discovery starts. Empty means the process working directory.
	WorkDir string
	// ConfigPath is an explicit config file. Empty means discovery.
	ConfigPath string
	// LogFormat overrides the configured log format when set.
	LogFormat string
	// Verbose forces debug logging.
	Verbose bool
}

// Request describes a single dispatch.
type Request struct {
	Options

	Target  string
	BinPath string
	// Extra holds positional arguments after the binary path. They are ignored.
	Extra []string

	PropagateExit bool
	DryRun        bool
}

// Dispatch prints and runs the make command for the request.
//
// Unless exit propagation is enabled, a failing make is only reported as a warning.
func (a *App) Dispatch(ctx context.Context, req Request) error {
	settings, err := a.loadSettings(req.Options)
	if err != nil {
		return err
	}
	propagate := settings.PropagateExit || req.PropagateExit

	if len(req.Extra) > 0 {
		a.logger.Warn("ignoring extra arguments: " + strings.Join(req.Extra, " "))
	}

	inv := domain.Invocation{Target: req.Target, BinPath: req.BinPath}
	cmd := domain.NewMakeCommand(inv)

	ctx, span := a.tracer.Start(ctx, "dispatch")
	defer span.End()
	span.SetAttribute("target", inv.Target)
	span.SetAttribute("bin_path", inv.BinPath)
	span.SetAttribute("test_binary", inv.IsTestBinary())

	if _, err := fmt.Fprintln(a.stdout, cmd.String()); err != nil {
		return zerr.Wrap(err, "failed to print command")
	}

	if req.DryRun {
		a.logger.Debug("dry run, not executing")
		return nil
	}

	record, runErr := a.execute(ctx, settings, inv, cmd)

	if code, ok := domain.GuestExitCode(record.ExitCode); ok {
		a.logger.Debug(describeGuestExit(record.ExitCode, code))
	}

	if settings.History {
		if err := a.store.Put(settings.StateDir, record); err != nil {
			a.logger.Warn("failed to record run: " + err.Error())
		}
	}

	if runErr == nil {
		return nil
	}

	span.RecordError(runErr)
	if propagate {
		return runErr
	}

	a.logger.Warn(runErr.Error())
	return nil
}

// execute runs make while the binary is digested alongside it.
func (a *App) execute(
	ctx context.Context,
	settings domain.Settings,
	inv domain.Invocation,
	cmd domain.MakeCommand,
) (domain.RunRecord, error) {
	record := domain.RunRecord{
		Target:     inv.Target,
		BinPath:    inv.BinPath,
		Command:    cmd.String(),
		TestBinary: inv.IsTestBinary(),
		StartedAt:  time.Now(),
	}

	var (
		g      errgroup.Group
		runErr error
	)

	if settings.History {
		g.Go(func() error {
			digest, err := a.hasher.HashFile(inv.BinPath)
			if err != nil {
				return err
			}
			record.BinDigest = digest
			return nil
		})
	}

	g.Go(func() error {
		makeCtx, span := a.tracer.Start(ctx, "make")
		defer span.End()

		runErr = a.executor.Execute(makeCtx, cmd, a.stdin, a.stdout, a.stderr)
		record.ExitCode = domain.ExitCode(runErr)
		span.SetAttribute("exit_code", record.ExitCode)
		if runErr != nil {
			span.RecordError(runErr)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Debug("binary not digested: " + err.Error())
	}
	record.Duration = time.Since(record.StartedAt)

	return record, runErr
}

// Last prints the latest run record as YAML.
func (a *App) Last(ctx context.Context, opts Options) error {
	settings, err := a.loadSettings(opts)
	if err != nil {
		return err
	}

	_, span := a.tracer.Start(ctx, "last")
	defer span.End()

	record, err := a.store.Last(settings.StateDir)
	if err != nil {
		return err
	}
	if record == nil {
		return zerr.With(domain.ErrNoRunRecorded, "state_dir", settings.StateDir)
	}

	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return zerr.Wrap(err, "failed to encode run record")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode run record")
	}
	return nil
}

// loadSettings resolves the configuration, applies overrides and configures the logger.
func (a *App) loadSettings(opts Options) (domain.Settings, error) {
	cwd := opts.WorkDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}

	settings, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.LogFormat != "" {
		format, err := domain.ParseLogFormat(opts.LogFormat)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.LogFormat = format
	}
	if opts.Verbose {
		settings.LogLevel = domain.LogLevelDebug
	}
	if !filepath.IsAbs(settings.StateDir) {
		settings.StateDir = filepath.Join(cwd, settings.StateDir)
	}

	a.logger.SetJSON(settings.LogFormat == domain.LogFormatJSON)
	a.logger.SetLevel(settings.LogLevel)

	if settings.Source != "" {
		a.logger.Debug("using configuration " + settings.Source)
	}

	return settings, nil
}

func describeGuestExit(status int, code uint32) string {
	msg := fmt.Sprintf("exit status %d is guest exit code %#x", status, code)
	switch code {
	case domain.GuestExitSuccess:
		msg += " (success)"
	case domain.GuestExitFailed:
		msg += " (failed)"
	}
	return msg
}
