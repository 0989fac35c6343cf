package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/scptdisplay"
	"github.com/aretw0/scptdisplay/internal/config"
	"github.com/aretw0/scptdisplay/internal/logging"
	"github.com/aretw0/scptdisplay/pkg/domain"
)

// Options carries everything a single CLI invocation needs.
type Options struct {
	Config         config.Config
	Timeout        time.Duration // Zero waits for the user indefinitely
	CancelExitCode int
	Stdout         io.Writer
	Stderr         io.Writer
	Logger         *slog.Logger
}

// Show displays req, prints the response and returns the process exit status.
func Show(ctx context.Context, opts Options, req domain.Request) int {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	printer := NewPrinter(ResolveFormat(opts.Config.Format, opts.Stdout), opts.Stdout, opts.Stderr)

	sc := NewSignalContext(ctx)
	defer sc.Stop()

	runCtx := context.Context(sc)
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, opts.Timeout)
		defer cancel()
	}

	d := scptdisplay.New(
		scptdisplay.WithInterpreter(opts.Config.Interpreter),
		scptdisplay.WithLogger(logger),
		scptdisplay.WithRunnerOptions(opts.Config.RunnerOptions()...),
	)

	logger.Debug("Showing prompt", "kind", domain.KindOf(req), "interpreter", d.Interpreter())
	out, err := d.Show(runCtx, req)
	if err != nil {
		emit(logger, printer, ErrorResponse(err))
		return ExitUsage
	}

	if sig := sc.Signal(); sig != nil {
		logger.Info("Prompt interrupted", "signal", sig.String())
	}
	emit(logger, printer, NewResponse(domain.KindOf(req), out))
	return ExitCode(out, opts.CancelExitCode)
}

func emit(logger *slog.Logger, p *Printer, resp Response) {
	if err := p.Print(resp); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}
