package cryptoalert

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Credentials is the request body of login and registration.
type Credentials struct {
	// Email is the account email.
	Email string `json:"email"`
	// Password is the account password.
	Password string `json:"password"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	// Token is the bearer token for authenticated endpoints.
	Token string `json:"token"`
	// Email is the identity the token was issued for.
	Email string `json:"email"`
}

// BindingSession is an open Telegram binding handshake.
type BindingSession struct {
	// Token is the correlation handle used to poll the binding status.
	// It is not a bearer token.
	Token string `json:"token"`
	// ExpiresIn is the validity window in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// BotName is the Telegram bot the user has to start.
	BotName string `json:"bot_name"`
	// StartURL is the deep link that opens the bot with the correlation token.
	StartURL string `json:"start_url"`
}

// maxBindingSeconds is the longest window a time.Duration can hold.
const maxBindingSeconds = int64(math.MaxInt64 / time.Second)

// ValidFor returns the validity window as a duration, capped at the largest time.Duration.
func (s *BindingSession) ValidFor() time.Duration {
	if s.ExpiresIn <= 0 {
		return 0
	}

	if s.ExpiresIn > maxBindingSeconds {
		return math.MaxInt64
	}

	return time.Duration(s.ExpiresIn) * time.Second
}

// ExpiresAt returns the moment the session stops being bindable, counted from startedAt.
func (s *BindingSession) ExpiresAt(startedAt time.Time) time.Time {
	return startedAt.Add(s.ValidFor())
}

// BindingStatus is the result of a binding status poll.
type BindingStatus struct {
	// Bound is true once the user has started the bot.
	Bound bool `json:"bound"`
	// TelegramID is the bound Telegram account ID, present only when Bound is true.
	TelegramID FlexString `json:"telegram_id,omitempty"`
}

// FlexString decodes from either a JSON string or a JSON number.
// Telegram IDs arrive as numbers from some backends and as strings from others.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		*f = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*f = FlexString(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*f = FlexString(n.String())

	return nil
}

// String returns the value as a plain string.
func (f FlexString) String() string {
	return string(f)
}

// User is the authenticated account as described by the server.
// Fields other than email are kept in Extra.
type User struct {
	// Email is the account email.
	Email string
	// Extra holds every other field of the user object.
	Extra map[string]any
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *User) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	u.Email, _ = fields["email"].(string)
	delete(fields, "email")
	u.Extra = fields

	return nil
}

// MarshalJSON implements json.Marshaler.
func (u User) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(u.Extra)+1)
	for k, v := range u.Extra {
		fields[k] = v
	}

	fields["email"] = u.Email

	return json.Marshal(fields)
}

// Subscription is a standing alert request for a symbol and cycle.
type Subscription struct {
	// Symbol is the uppercase trading symbol, e.g. "BTC".
	Symbol string `json:"symbol"`
	// Cycle is the timeframe label, e.g. "1h".
	Cycle string `json:"cycle"`
}

// SubscriptionList is the response of the subscription listing.
type SubscriptionList struct {
	// Data holds the subscriptions in server-defined order.
	Data []Subscription `json:"data"`
}

// Contains reports whether the list holds the (symbol, cycle) pair.
// The symbol is compared case-insensitively.
func (l *SubscriptionList) Contains(symbol, cycle string) bool {
	symbol = NormalizeSymbol(symbol)

	for _, s := range l.Data {
		if NormalizeSymbol(s.Symbol) == symbol && s.Cycle == cycle {
			return true
		}
	}

	return false
}

// CreateSubscriptionRequest is the request body of subscription creation.
type CreateSubscriptionRequest struct {
	// Symbol is the uppercase trading symbol.
	Symbol string `json:"symbol"`
	// Cycles lists the timeframes to subscribe to. The server creates one subscription per cycle.
	Cycles []string `json:"cycles"`
}

// Ack is a generic acknowledgement. An empty response body is a valid Ack.
type Ack struct {
	// Message is the server's message, if any.
	Message string
	// Status is the server's status word, if any.
	Status string
	// Extra holds every other field of the response.
	Extra map[string]any
	// Value holds the decoded response when it is not a JSON object.
	Value any
}

// UnmarshalJSON implements json.Unmarshaler.
// Any valid JSON is accepted; a non-object body ends up in Value.
func (a *Ack) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		var value any

		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()

		if decodeErr := decoder.Decode(&value); decodeErr != nil {
			return err
		}

		*a = Ack{Value: value}

		return nil
	}

	a.Message, _ = fields["message"].(string)
	a.Status, _ = fields["status"].(string)

	delete(fields, "message")
	delete(fields, "status")

	a.Extra = fields

	return nil
}

// NormalizeSymbol uppercases a trading symbol and trims surrounding spaces.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// decodeObject decodes a JSON object into a map. A null document yields an empty map.
func decodeObject(data []byte) (map[string]any, error) {
	fields := make(map[string]any)

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}

	if fields == nil {
		fields = make(map[string]any)
	}

	return fields, nil
}
