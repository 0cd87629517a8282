package app

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/cryptoalert-cli/internal/config"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
)

// ExecuteAuthLoginCommand logs in and stores the token in the credential store.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config, email string) {
	if err := newRunnerOrDie(ctx, cfg).Login(ctx, email); err != nil {
		fail(ctx, "Login failed", err)
	}
}

// ExecuteAuthRegisterCommand creates an account and stores its token.
func ExecuteAuthRegisterCommand(ctx context.Context, cfg *config.Config, email string) {
	if err := newRunnerOrDie(ctx, cfg).Register(ctx, email); err != nil {
		fail(ctx, "Registration failed", err)
	}
}

// ExecuteAuthLogoutCommand clears the stored token.
func ExecuteAuthLogoutCommand(ctx context.Context, cfg *config.Config) {
	if err := newRunnerOrDie(ctx, cfg).Logout(ctx); err != nil {
		fail(ctx, "Logout failed", err)
	}
}

// ExecuteAuthStatusCommand reports whether a token is stored.
func ExecuteAuthStatusCommand(ctx context.Context, cfg *config.Config) {
	newRunnerOrDie(ctx, cfg).Status(ctx)
}

// ExecuteAuthWhoAmICommand prints the authenticated user.
func ExecuteAuthWhoAmICommand(ctx context.Context, cfg *config.Config) {
	if err := newRunnerOrDie(ctx, cfg).WhoAmI(ctx); err != nil {
		fail(ctx, "Failed to fetch the current user", err)
	}
}

// ExecuteAuthTelegramCommand links a Telegram account to the user.
func ExecuteAuthTelegramCommand(ctx context.Context, cfg *config.Config) {
	if err := newRunnerOrDie(ctx, cfg).BindTelegram(ctx); err != nil {
		fail(ctx, "Telegram binding failed", err)
	}
}

// Login asks for missing credentials and logs in.
func (r *Runner) Login(ctx context.Context, email string) error {
	email, password, err := r.askCredentials(email)
	if err != nil {
		return err
	}

	response, err := r.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Logged in as %s", displayEmail(response.Email, email))

	return nil
}

// Register asks for missing credentials and creates an account.
func (r *Runner) Register(ctx context.Context, email string) error {
	email, password, err := r.askCredentials(email)
	if err != nil {
		return err
	}

	response, err := r.session.Register(ctx, email, password)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Account %s created, you are logged in", displayEmail(response.Email, email))

	return nil
}

// Logout clears the stored token.
func (r *Runner) Logout(ctx context.Context) error {
	if err := r.session.Logout(); err != nil {
		return err
	}

	logger.Info(ctx, "Logged out")

	return nil
}

// Status reports whether a token is stored. It makes no request.
func (r *Runner) Status(ctx context.Context) {
	baseURL := r.client.GetBaseURL()
	if baseURL == "" {
		baseURL = "relative /api on site_url"
	}

	logger.Debugf(ctx, "API base URL: %s", baseURL)

	if r.session.IsLoggedIn() {
		r.printf("Logged in\n")

		return
	}

	r.printf("Not logged in\n")
}

// WhoAmI prints the authenticated user's email and any other fields the server sent.
func (r *Runner) WhoAmI(ctx context.Context) error {
	user, err := r.session.CurrentUser(ctx)
	if err != nil {
		return err
	}

	r.printf("email: %s\n", user.Email)

	for _, key := range slices.Sorted(maps.Keys(user.Extra)) {
		r.printf("%s: %v\n", key, user.Extra[key])
	}

	return nil
}

// BindTelegram starts a binding session, shows the link and waits until the user opens it.
func (r *Runner) BindTelegram(ctx context.Context) error {
	session, err := r.session.StartTelegramBinding(ctx)
	if err != nil {
		return err
	}

	expiresAt := session.ExpiresAt(r.now())

	r.printf("Open this link in Telegram to connect @%s:\n%s\n", session.BotName, session.StartURL)
	r.printf("The link expires %s (%s).\n", humanize.Time(expiresAt), expiresAt.Format("15:04:05"))

	spinner := r.newSpinner("Waiting for Telegram")

	status, err := r.session.WaitForTelegramBinding(ctx, session, func(int) {
		_ = spinner.Add(1)
	})

	_ = spinner.Finish()

	if err != nil {
		return err
	}

	if status.TelegramID != "" {
		logger.Infof(ctx, "Telegram account %s is now linked", status.TelegramID)
	} else {
		logger.Info(ctx, "Telegram account is now linked")
	}

	return nil
}

func (r *Runner) askCredentials(email string) (string, string, error) {
	var err error

	if email == "" {
		email, err = r.prompter.ReadLine("Email: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := r.prompter.ReadPassword("Password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	return email, password, nil
}

func displayEmail(fromServer, entered string) string {
	if fromServer != "" {
		return fromServer
	}

	return entered
}
