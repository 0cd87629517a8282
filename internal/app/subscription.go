package app

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/oshokin/cryptoalert-cli/internal/client/cryptoalert"
	"github.com/oshokin/cryptoalert-cli/internal/config"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
	"github.com/oshokin/cryptoalert-cli/internal/service/auth"
)

// ExecuteSubsListCommand prints the user's subscriptions, optionally for one symbol.
func ExecuteSubsListCommand(ctx context.Context, cfg *config.Config, symbol string) {
	if err := newRunnerOrDie(ctx, cfg).ListSubscriptions(ctx, symbol); err != nil {
		fail(ctx, "Failed to list subscriptions", err)
	}
}

// ExecuteSubsAddCommand subscribes to symbol for every cycle.
func ExecuteSubsAddCommand(ctx context.Context, cfg *config.Config, symbol string, cycles []string) {
	if err := newRunnerOrDie(ctx, cfg).AddSubscription(ctx, symbol, cycles); err != nil {
		fail(ctx, "Failed to subscribe", err)
	}
}

// ExecuteSubsRemoveCommand removes one subscription.
func ExecuteSubsRemoveCommand(ctx context.Context, cfg *config.Config, symbol, cycle string) {
	if err := newRunnerOrDie(ctx, cfg).RemoveSubscription(ctx, symbol, cycle); err != nil {
		fail(ctx, "Failed to unsubscribe", err)
	}
}

// ListSubscriptions prints subscriptions as a table.
func (r *Runner) ListSubscriptions(ctx context.Context, symbol string) error {
	if !r.session.IsLoggedIn() {
		return auth.ErrNotLoggedIn
	}

	list, err := r.client.ListSubscriptions(ctx, symbol)
	if err != nil {
		return err
	}

	if len(list.Data) == 0 {
		if symbol = cryptoalert.NormalizeSymbol(symbol); symbol != "" {
			r.printf("No subscriptions for %s\n", symbol)
		} else {
			r.printf("No subscriptions\n")
		}

		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "SYMBOL\tCYCLE")

	for _, s := range list.Data {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", s.Symbol, s.Cycle)
	}

	return w.Flush()
}

// AddSubscription subscribes to symbol for every cycle.
func (r *Runner) AddSubscription(ctx context.Context, symbol string, cycles []string) error {
	if !r.session.IsLoggedIn() {
		return auth.ErrNotLoggedIn
	}

	ack, err := r.client.CreateSubscription(ctx, symbol, cycles)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Subscribed to %s for %s%s",
		cryptoalert.NormalizeSymbol(symbol), strings.Join(cycles, ", "), ackSuffix(ack))

	return nil
}

// RemoveSubscription removes the (symbol, cycle) subscription.
func (r *Runner) RemoveSubscription(ctx context.Context, symbol, cycle string) error {
	if !r.session.IsLoggedIn() {
		return auth.ErrNotLoggedIn
	}

	ack, err := r.client.DeleteSubscription(ctx, symbol, cycle)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Unsubscribed from %s %s%s", cryptoalert.NormalizeSymbol(symbol), cycle, ackSuffix(ack))

	return nil
}

func ackSuffix(ack *cryptoalert.Ack) string {
	if ack == nil || ack.Message == "" {
		return ""
	}

	return ": " + ack.Message
}
