package auth

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/cryptoalert-cli/internal/client/cryptoalert"
	"github.com/oshokin/cryptoalert-cli/internal/credentials"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
)

// DefaultPollInterval is used when the service is created without a poll interval.
const DefaultPollInterval = 2 * time.Second

var (
	// ErrNotLoggedIn is returned when an operation needs a stored token and there is none.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrMissingToken is returned when the server accepted credentials but sent no token.
	ErrMissingToken = errors.New("server response has no token")

	// ErrBindingExpired is returned when the binding window closes before the user starts the bot.
	ErrBindingExpired = errors.New("telegram binding session expired")
)

// Service is the session as seen by the rest of the application.
type Service interface {
	// IsLoggedIn reports whether a token is stored. It does not check the token with the server.
	IsLoggedIn() bool
	// CurrentUser fetches the authenticated user.
	CurrentUser(ctx context.Context) (*cryptoalert.User, error)
	// Logout clears the stored token. It is idempotent.
	Logout() error
	// Login authenticates with email and password and stores the token.
	Login(ctx context.Context, email, password string) (*cryptoalert.AuthResponse, error)
	// Register creates an account and stores its token.
	Register(ctx context.Context, email, password string) (*cryptoalert.AuthResponse, error)
	// StartTelegramBinding opens a Telegram binding session.
	StartTelegramBinding(ctx context.Context) (*cryptoalert.BindingSession, error)
	// WaitForTelegramBinding polls session until it is bound, expires or ctx ends.
	// onPoll, if not nil, is called after every status check with its 1-based number.
	WaitForTelegramBinding(
		ctx context.Context,
		session *cryptoalert.BindingSession,
		onPoll func(attempt int),
	) (*cryptoalert.BindingStatus, error)
}

// ServiceImpl implements Service on top of the API client and a credential store.
type ServiceImpl struct {
	client       cryptoalert.Client
	store        credentials.Store
	pollInterval time.Duration
	// now is replaced in tests.
	now func() time.Time
}

// NewService creates a new session service.
// The store must be the same one the client's transport reads the token from.
func NewService(client cryptoalert.Client, store credentials.Store, pollInterval time.Duration) *ServiceImpl {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &ServiceImpl{
		client:       client,
		store:        store,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// IsLoggedIn reports whether a token is stored.
func (s *ServiceImpl) IsLoggedIn() bool {
	_, ok := s.store.Token()

	return ok
}

// CurrentUser fetches the authenticated user. Without a stored token no request is made.
func (s *ServiceImpl) CurrentUser(ctx context.Context) (*cryptoalert.User, error) {
	if !s.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}

	return s.client.CurrentUser(ctx)
}

// Logout clears the stored token.
func (s *ServiceImpl) Logout() error {
	if err := s.store.ClearToken(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	return nil
}

// Login authenticates and stores the token. On failure the store is left untouched.
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*cryptoalert.AuthResponse, error) {
	response, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err = s.saveToken(ctx, response); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Logged in as %s", response.Email)

	return response, nil
}

// Register creates an account and stores its token. On failure the store is left untouched.
func (s *ServiceImpl) Register(ctx context.Context, email, password string) (*cryptoalert.AuthResponse, error) {
	response, err := s.client.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err = s.saveToken(ctx, response); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Registered %s", response.Email)

	return response, nil
}

// StartTelegramBinding opens a Telegram binding session.
func (s *ServiceImpl) StartTelegramBinding(ctx context.Context) (*cryptoalert.BindingSession, error) {
	if !s.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}

	return s.client.TelegramBindStart(ctx)
}

func (s *ServiceImpl) saveToken(ctx context.Context, response *cryptoalert.AuthResponse) error {
	if response == nil || response.Token == "" {
		return ErrMissingToken
	}

	if err := s.store.SetToken(response.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	logger.Debug(ctx, "Token stored")

	return nil
}
