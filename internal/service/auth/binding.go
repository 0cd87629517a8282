package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/cryptoalert-cli/internal/client/cryptoalert"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
)

// WaitForTelegramBinding polls the binding status until the user starts the bot.
// The window is counted from the moment of the call. One last check is made at the deadline.
// Server unavailability is logged and polling goes on; other errors stop it.
func (s *ServiceImpl) WaitForTelegramBinding(
	ctx context.Context,
	session *cryptoalert.BindingSession,
	onPoll func(attempt int),
) (*cryptoalert.BindingStatus, error) {
	if session == nil || session.Token == "" {
		return nil, cryptoalert.ErrEmptyCorrelationToken
	}

	var (
		startTime = s.now()
		deadline  = session.ExpiresAt(startTime)
	)

	logger.Debugf(ctx, "Waiting for Telegram binding until %s", deadline.Format(time.RFC3339))

	for attempt := 1; ; attempt++ {
		// Check context cancellation.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := s.client.TelegramBindStatus(ctx, session.Token)

		if onPoll != nil {
			onPoll(attempt)
		}

		switch {
		case err == nil && status != nil && status.Bound:
			logger.Debugf(ctx, "Telegram binding completed after %d checks", attempt)

			return status, nil
		case err == nil:
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, cryptoalert.ErrServerUnavailable):
			logger.Warnf(ctx, "Binding status check failed, retrying: %v", err)
		default:
			return nil, fmt.Errorf("failed to check binding status: %w", err)
		}

		remaining := deadline.Sub(s.now())
		if remaining <= 0 {
			return nil, fmt.Errorf("%w: waited for %v", ErrBindingExpired, session.ValidFor())
		}

		if err = s.sleep(ctx, min(s.pollInterval, remaining)); err != nil {
			return nil, err
		}
	}
}

// sleep pauses for d or until ctx ends.
func (s *ServiceImpl) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
