package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"

	"addressbook/internal/adapters/cli/response"
	"addressbook/internal/config"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/middleware"
)

var exitCommands = map[string]bool{"exit": true, "quit": true}

// Shell reads one command per line and executes it against a fresh command
// tree. Errors are printed and the shell keeps reading until EOF or exit.
type Shell struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	router      Router
	logger      logger.Logger
	prompt      string
	interactive bool

	commandID int
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewShell(cfg *config.AddressBookConfig, log logger.Logger, router Router) *Shell {
	fd := os.Stdin.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return newShell(os.Stdin, os.Stdout, os.Stderr, router, log, cfg.Shell.Prompt, interactive)
}

func newShell(in io.Reader, out, errOut io.Writer, router Router, log logger.Logger, prompt string, interactive bool) *Shell {
	return &Shell{
		in:          in,
		out:         out,
		errOut:      errOut,
		router:      router,
		logger:      log,
		prompt:      prompt,
		interactive: interactive,
		done:        make(chan struct{}),
	}
}

// Start runs the read loop in the background; Done is closed once it ends.
func (s *Shell) Start(_ context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.logger.Info("Starting shell", logger.Bool("interactive", s.interactive))

	go func() {
		defer close(s.done)
		if err := s.Run(runCtx); err != nil {
			s.logger.Error("Shell stopped reading input", logger.Error(err))
		}
	}()

	return nil
}

// Stop does not wait for the read loop: it may be blocked on input that
// never arrives.
func (s *Shell) Stop(_ context.Context) error {
	s.logger.Info("Stopping shell")

	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

func (s *Shell) Done() <-chan struct{} {
	return s.done
}

func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	for {
		if s.interactive {
			_, _ = fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			response.RespondError(s.errOut, fmt.Errorf("cannot parse %q: %w", line, err))
			continue
		}
		if len(args) == 0 {
			continue
		}
		if exitCommands[args[0]] {
			return nil
		}

		_ = s.Execute(ctx, args)
	}

	if s.interactive {
		_, _ = fmt.Fprintln(s.out)
	}
	return scanner.Err()
}

// Execute runs a single command line and reports its error, if any, to the
// error output.
func (s *Shell) Execute(ctx context.Context, args []string) error {
	s.commandID++

	root := s.router()
	root.SetArgs(args)
	root.SetOut(s.out)
	root.SetErr(s.errOut)

	if err := root.ExecuteContext(middleware.WithCommandID(ctx, s.commandID)); err != nil {
		response.RespondError(s.errOut, err)
		return err
	}
	return nil
}
