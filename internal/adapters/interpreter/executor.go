// Package interpreter runs the external Python interpreter as a child process.
package interpreter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	setup  ports.SetupProvider
	logger ports.Logger
	tracer ports.Tracer
	grace  time.Duration
}

// NewExecutor creates a new Executor.
func NewExecutor(setup ports.SetupProvider, logger ports.Logger, tracer ports.Tracer) *Executor {
	return &Executor{
		setup:  setup,
		logger: logger,
		tracer: tracer,
		grace:  domain.KillGracePeriod,
	}
}

// Execute runs <interpreter> -m module args... and waits for it to exit.
func (e *Executor) Execute(
	ctx context.Context,
	module string,
	args []string,
	opts domain.ExecutionOptions,
) (*domain.ExecutionResult, error) {
	return e.run(ctx, module, append([]string{domain.ModuleFlag, module}, args...), opts)
}

// RunScript runs <interpreter> -c script args... and waits for it to exit.
func (e *Executor) RunScript(
	ctx context.Context,
	script string,
	args []string,
	opts domain.ExecutionOptions,
) (*domain.ExecutionResult, error) {
	return e.run(ctx, "inline-script", append([]string{domain.ScriptFlag, script}, args...), opts)
}

func (e *Executor) run(
	ctx context.Context,
	label string,
	argv []string,
	opts domain.ExecutionOptions,
) (*domain.ExecutionResult, error) {
	interpreter, popplerPath, err := e.resolveInterpreter(opts)
	if err != nil {
		return nil, err
	}

	ctx, span := e.tracer.Start(ctx, "interpreter.run")
	defer span.End()

	runID := uuid.NewString()
	span.SetAttribute("run.id", runID)
	span.SetAttribute("interpreter.path", interpreter)
	span.SetAttribute("interpreter.target", label)

	cmd := exec.Command(interpreter, argv...) //nolint:gosec // interpreter path comes from setup or the caller
	cmd.Dir = opts.WorkingDir
	cmd.Env = resolveEnvironment(os.Environ(), popplerPath, opts.Env)
	cmd.Stdin = strings.NewReader("")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren that inherit the pipes must not keep Wait blocked forever.
	cmd.WaitDelay = e.grace
	setProcessGroup(cmd)

	log := e.logger.With("run_id", runID)
	log.Info(fmt.Sprintf("starting %s %s", interpreter, label))

	start := time.Now()
	if err := cmd.Start(); err != nil {
		launchErr := zerr.With(zerr.Wrap(domain.ErrLaunchFailed, err.Error()), "interpreter", interpreter)
		span.RecordError(launchErr)
		return nil, launchErr
	}

	term := newTerminator(cmd, e.grace)
	timeout := opts.EffectiveTimeout()
	timer := time.AfterFunc(timeout, term.fire)
	stopWatch := context.AfterFunc(ctx, term.fire)

	waitErr := cmd.Wait()

	term.stop()
	timer.Stop()
	stopWatch()

	duration := time.Since(start)
	span.SetAttribute("duration_ms", duration.Milliseconds())

	if term.fired() {
		var runErr error
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
			runErr = zerr.With(zerr.Wrap(ctxErr, "interpreter run cancelled"), "run_id", runID)
		} else {
			runErr = zerr.With(
				zerr.Wrap(domain.ErrProcessTimeout, fmt.Sprintf("exceeded %s", timeout)),
				"run_id", runID,
			)
		}
		span.RecordError(runErr)
		log.With("duration", duration.Round(time.Millisecond)).Warn("interpreter terminated")
		return nil, runErr
	}

	exitCode, err := exitStatus(waitErr)
	if err != nil {
		runErr := zerr.With(err, "run_id", runID)
		span.RecordError(runErr)
		return nil, runErr
	}

	span.SetAttribute("exit_code", exitCode)
	log.With("exit_code", exitCode).With("duration", duration.Round(time.Millisecond)).Info("interpreter exited")

	return &domain.ExecutionResult{
		RunID:    runID,
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		ExitCode: exitCode,
		Duration: duration,
	}, nil
}

// resolveInterpreter returns the interpreter to launch and the Poppler
// directory to expose to it.
func (e *Executor) resolveInterpreter(opts domain.ExecutionOptions) (interpreter, popplerPath string, err error) {
	status := e.setup.Status()
	if opts.InterpreterPath != "" {
		return opts.InterpreterPath, status.PopplerPath, nil
	}
	if !status.InterpreterAvailable || status.InterpreterPath == "" {
		return "", "", domain.ErrInterpreterUnavailable
	}
	return status.InterpreterPath, status.PopplerPath, nil
}

// exitStatus maps the result of cmd.Wait to an exit code.
// A process killed by a signal nobody here sent is reported as ErrProcessTerminated.
func exitStatus(waitErr error) (int, error) {
	if waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		if errors.Is(waitErr, exec.ErrWaitDelay) {
			return 0, nil
		}
		return 0, zerr.Wrap(waitErr, "failed to wait for interpreter process")
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 0, zerr.With(
			zerr.Wrap(domain.ErrProcessTerminated, status.Signal().String()),
			"signal", status.Signal().String(),
		)
	}
	return exitErr.ExitCode(), nil
}

// terminator escalates from a graceful to a forceful stop of a process group.
type terminator struct {
	cmd      *exec.Cmd
	grace    time.Duration
	timedOut atomic.Bool

	mu      sync.Mutex
	stopped bool
	kill    *time.Timer
}

func newTerminator(cmd *exec.Cmd, grace time.Duration) *terminator {
	return &terminator{cmd: cmd, grace: grace}
}

// fire sends the graceful signal and arms the forceful one.
// Only the first call before stop has any effect.
func (t *terminator) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || !t.timedOut.CompareAndSwap(false, true) {
		return
	}
	_ = terminate(t.cmd)
	t.kill = time.AfterFunc(t.grace, func() {
		_ = kill(t.cmd)
	})
}

func (t *terminator) fired() bool {
	return t.timedOut.Load()
}

// stop disarms the terminator once the process has been reaped.
func (t *terminator) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.kill != nil {
		t.kill.Stop()
	}
}
