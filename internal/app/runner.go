package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/cryptoalert-cli/internal/client/cryptoalert"
	"github.com/oshokin/cryptoalert-cli/internal/config"
	"github.com/oshokin/cryptoalert-cli/internal/credentials"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
	"github.com/oshokin/cryptoalert-cli/internal/service/auth"
)

// reloginHint is shown whenever the server rejects the stored token.
const reloginHint = "Your session is missing or expired. Run 'cryptoalert auth login' to sign in."

// Runner executes commands against a session and an API client.
type Runner struct {
	session    auth.Service
	client     cryptoalert.Client
	prompter   Prompter
	out        io.Writer
	newSpinner func(description string) Spinner
	now        func() time.Time
}

// NewRunner creates a Runner from explicit dependencies.
func NewRunner(session auth.Service, client cryptoalert.Client, prompter Prompter, out io.Writer) *Runner {
	return &Runner{
		session:    session,
		client:     client,
		prompter:   prompter,
		out:        out,
		newSpinner: NewProgressSpinner,
		now:        time.Now,
	}
}

// NewRunnerFromConfig builds the credential store, API client and session service described by cfg.
func NewRunnerFromConfig(ctx context.Context, cfg *config.Config) (*Runner, error) {
	path := cfg.CredentialsPath
	if path == "" {
		defaultPath, err := credentials.DefaultPath()
		if err != nil {
			return nil, err
		}

		path = defaultPath
	}

	store, err := credentials.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	logger.Debugf(ctx, "Credentials are kept in %s", store.Path())

	client, err := cryptoalert.NewClient(cfg, store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize API client: %w", err)
	}

	session := auth.NewService(client, store, cfg.ParsedBindPollInterval)

	return NewRunner(session, client, NewTerminalPrompter(os.Stdin, os.Stderr), os.Stdout), nil
}

// newRunnerOrDie is shared by the Execute* entry points.
func newRunnerOrDie(ctx context.Context, cfg *config.Config) *Runner {
	runner, err := NewRunnerFromConfig(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	return runner
}

// fail reports a command failure with a hint and exits.
func fail(ctx context.Context, action string, err error) {
	if hint := hintFor(err); hint != "" {
		logger.Warn(ctx, hint)
	}

	logger.Fatalf(ctx, "%s: %v", action, err)
}

// hintFor returns a suggestion for the user based on the error class.
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, cryptoalert.ErrUnauthorized), errors.Is(err, auth.ErrNotLoggedIn):
		return reloginHint
	case errors.Is(err, cryptoalert.ErrAuthFailure):
		return "Check the email and password and try again."
	case errors.Is(err, cryptoalert.ErrConflict):
		return "This email is already registered. Run 'cryptoalert auth login' instead."
	case errors.Is(err, cryptoalert.ErrServerUnavailable):
		return "The server could not be reached. Check api_base_url and try again later."
	case errors.Is(err, auth.ErrBindingExpired):
		return "Run 'cryptoalert auth telegram' again to get a fresh link."
	default:
		return ""
	}
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
